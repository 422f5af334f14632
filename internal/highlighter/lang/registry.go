package lang

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/bethropolis/tint/internal/logger"
)

// JavaScript is the one grammar the classifier implements. TypeScript and
// JSX files share it.
var JavaScript = &Language{
	Name:       "JavaScript",
	Extensions: []string{".js", ".mjs", ".cjs", ".jsx", ".ts", ".tsx", ".mts", ".cts"},
	Aliases:    []string{"js", "javascript", "jsx", "ts", "typescript", "tsx", "mjs", "cjs"},
}

var (
	// Global language registry
	registry struct {
		sync.RWMutex
		languages     []*Language
		extToLanguage map[string]*Language
	}

	// One-time initialization
	initOnce sync.Once
)

// Initialize ensures the registry is ready for use and holds the built-in
// language.
func Initialize() {
	initOnce.Do(func() {
		registry.extToLanguage = make(map[string]*Language)
		registry.languages = make([]*Language, 0, 1)
		register(JavaScript)
		logger.Debugf("Language registry initialized")
	})
}

func register(lang *Language) {
	registry.Lock()
	defer registry.Unlock()

	registry.languages = append(registry.languages, lang)
	for _, ext := range lang.Extensions {
		lowerExt := strings.ToLower(ext)
		if existing, ok := registry.extToLanguage[lowerExt]; ok {
			logger.Warnf("Extension %s already registered to %s, overriding with %s",
				lowerExt, existing.Name, lang.Name)
		}
		registry.extToLanguage[lowerExt] = lang
	}
	logger.Debugf("Registered language: %s with extensions: %v", lang.Name, lang.Extensions)
}

// ForFile returns the language for a given file path, or nil.
func ForFile(filePath string) *Language {
	Initialize()

	registry.RLock()
	defer registry.RUnlock()

	return registry.extToLanguage[strings.ToLower(filepath.Ext(filePath))]
}

// ForFence returns the language named by a markdown fence info string, or nil.
func ForFence(info string) *Language {
	Initialize()

	registry.RLock()
	defer registry.RUnlock()

	for _, l := range registry.languages {
		if l.MatchesFence(info) {
			return l
		}
	}
	return nil
}
