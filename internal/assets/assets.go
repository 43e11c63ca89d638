// Package assets resolves logical asset names to files on disk and watches
// asset directories for changes, so shaders can be reloaded while running.
package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"lumen/internal/config"
)

// Manager resolves named assets declared in the config file.
type Manager struct {
	root  string
	paths map[string]string
}

func NewManager(cfg config.Assets) *Manager {
	return &Manager{
		root:  cfg.Root,
		paths: cfg.Paths,
	}
}

// Path resolves a logical asset name to a file path. Unknown names are an
// error for the caller to log; nothing here is fatal.
func (m *Manager) Path(name string) (string, error) {
	rel, ok := m.paths[name]
	if !ok {
		return "", fmt.Errorf("asset %q is not declared in the config", name)
	}
	full := filepath.Join(m.root, rel)
	if _, err := os.Stat(full); err != nil {
		return "", fmt.Errorf("asset %q resolves to %s: %v", name, full, err)
	}
	return full, nil
}

// Root returns the asset root directory.
func (m *Manager) Root() string {
	return m.root
}
