package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Prefs persists UI preferences (currently just the display mode) as a
// small JSON file, taking the place a browser's localStorage would have.
// Writes go through a temp file and rename so a crash never leaves a
// half-written file behind.
type Prefs struct {
	mu   sync.RWMutex
	path string
}

type uiPrefs struct {
	DarkMode bool `json:"darkMode"`
}

// NewPrefs creates (or opens) the prefs store under dir.
func NewPrefs(dir string) (*Prefs, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Prefs{path: filepath.Join(dir, "ui-prefs.json")}, nil
}

// DarkMode returns the persisted preference; a missing or unreadable file
// means the default (false).
func (p *Prefs) DarkMode() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	b, err := os.ReadFile(p.path)
	if err != nil {
		return false
	}
	var v uiPrefs
	if err := json.Unmarshal(b, &v); err != nil {
		return false
	}
	return v.DarkMode
}

func (p *Prefs) SetDarkMode(on bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	b, err := json.MarshalIndent(uiPrefs{DarkMode: on}, "", "  ")
	if err != nil {
		return err
	}
	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, p.path)
}
