package clipboard

import (
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/tint/internal/logger"
)

// Manager holds the last copied text and mirrors it to the system
// clipboard when that is enabled and supported.
type Manager struct {
	mu        sync.Mutex
	clipboard []byte
	system    bool
	write     func(string) error
}

// NewManager creates a clipboard manager. useSystem is ignored on platforms
// where no clipboard utility is available.
func NewManager(useSystem bool) *Manager {
	if useSystem && clipboard.Unsupported {
		logger.Warnf("ClipboardManager: system clipboard unsupported, keeping copies internal")
		useSystem = false
	}
	return &Manager{
		system: useSystem,
		write:  clipboard.WriteAll,
	}
}

// UsesSystem reports whether copies reach the system clipboard.
func (m *Manager) UsesSystem() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.system
}

// Copy stores text. The internal copy is always kept, even when writing the
// system clipboard fails.
func (m *Manager) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clipboard = []byte(text)
	logger.Debugf("ClipboardManager: Copied %d bytes", len(m.clipboard))

	if !m.system {
		return nil
	}
	if err := m.write(text); err != nil {
		return fmt.Errorf("writing system clipboard: %w", err)
	}
	return nil
}

// Contents returns the last copied text.
func (m *Manager) Contents() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.clipboard)
}
