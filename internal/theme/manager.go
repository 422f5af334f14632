// internal/theme/manager.go
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bethropolis/tint/internal/logger"
)

// ErrThemeNotFound is returned when a theme name matches nothing loaded.
var ErrThemeNotFound = errors.New("theme not found")

// DefaultThemeName is active until SetTheme picks another.
const DefaultThemeName = "Comfort Dark"

// Manager holds loaded themes and tracks the active one. Names are matched
// case-insensitively.
type Manager struct {
	themes      map[string]*Theme
	activeTheme *Theme
	themesDir   string
	mutex       sync.RWMutex
}

// NewManager loads the built-in themes and, when themesDir is not empty,
// every theme file found there. A missing directory is not an error.
func NewManager(themesDir string) *Manager {
	mgr := &Manager{
		themes:    make(map[string]*Theme),
		themesDir: themesDir,
	}

	mgr.loadBuiltinThemes()

	if themesDir != "" {
		if err := mgr.LoadThemesFromDir(); err != nil {
			logger.Errorf("Error loading themes from '%s': %v", themesDir, err)
		}
	}

	mgr.activeTheme = mgr.themes[strings.ToLower(DefaultThemeName)]
	logger.Debugf("Initial active theme set to: %s", mgr.activeTheme.Name)
	return mgr
}

func (m *Manager) loadBuiltinThemes() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, t := range []*Theme{&ComfortDark, &PaperLight} {
		m.themes[strings.ToLower(t.Name)] = t
		logger.Debugf("Loaded built-in theme: %s", t.Name)
	}
}

// LoadThemesFromDir scans the themes directory for theme files. Files that
// fail to load are logged and skipped; a theme can override a built-in.
func (m *Manager) LoadThemesFromDir() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.themesDir == "" {
		return errors.New("theme directory path is not set")
	}

	files, err := os.ReadDir(m.themesDir)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debugf("Theme directory '%s' does not exist. No custom themes loaded.", m.themesDir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read theme directory '%s': %w", m.themesDir, err)
	}

	loadedCount := 0
	for _, file := range files {
		if file.IsDir() || !IsThemeFile(file.Name()) {
			continue
		}
		filePath := filepath.Join(m.themesDir, file.Name())
		theme, err := LoadThemeFromFile(filePath)
		if err != nil {
			logger.Warnf("Failed to load theme from '%s': %v", filePath, err)
			continue
		}

		key := strings.ToLower(theme.Name)
		if existing, ok := m.themes[key]; ok {
			logger.Warnf("Theme '%s' from '%s' overrides existing theme '%s'", theme.Name, filePath, existing.Name)
		}
		m.themes[key] = theme
		loadedCount++
	}
	logger.Debugf("Loaded %d custom themes from %s.", loadedCount, m.themesDir)
	return nil
}

// Add registers t, replacing any theme with the same name.
func (m *Manager) Add(t *Theme) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.themes[strings.ToLower(t.Name)] = t
}

// Current returns the active theme.
func (m *Manager) Current() *Theme {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.activeTheme
}

// SetTheme makes the named theme active.
func (m *Manager) SetTheme(name string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	theme, ok := m.themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrThemeNotFound, name)
	}
	if m.activeTheme != theme {
		m.activeTheme = theme
		logger.Debugf("Active theme set to: %s", theme.Name)
	}
	return nil
}

// ListThemes returns the display names of all loaded themes, sorted.
func (m *Manager) ListThemes() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	names := make([]string, 0, len(m.themes))
	for _, theme := range m.themes {
		names = append(names, theme.Name)
	}
	sort.Strings(names)
	return names
}

// GetTheme returns a theme by name.
func (m *Manager) GetTheme(name string) (*Theme, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	theme, ok := m.themes[strings.ToLower(name)]
	return theme, ok
}
