package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// State holds persistent UI preferences that are not configuration:
// things the app remembers between runs without the user editing a file.
type State struct {
	ActivePage string `json:"activePage,omitempty"` // last focused page id
	ShowHelp   bool   `json:"showHelp,omitempty"`   // expanded footer help
}

var (
	current *State
	mu      sync.RWMutex
	path    string
)

// Init loads state from the default location.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitWithDir(filepath.Join(home, ".config", "prism"))
}

// InitWithDir loads state from a specified directory.
// This is primarily for testing to avoid reading real user state.
func InitWithDir(dir string) error {
	path = filepath.Join(dir, "state.json")
	return Load()
}

// Load reads state from disk.
func Load() error {
	mu.Lock()
	defer mu.Unlock()

	current = &State{}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil // no state file yet, use defaults
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, current)
}

// Save writes state to disk.
func Save() error {
	mu.RLock()
	defer mu.RUnlock()

	if current == nil {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetActivePage returns the last focused page id, or "" when none saved.
func GetActivePage() string {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return ""
	}
	return current.ActivePage
}

// SetActivePage saves the focused page id.
func SetActivePage(id string) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.ActivePage = id
	mu.Unlock()
	return Save()
}

// GetShowHelp returns whether the expanded footer help was left on.
func GetShowHelp() bool {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return false
	}
	return current.ShowHelp
}

// SetShowHelp saves the footer help preference.
func SetShowHelp(on bool) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.ShowHelp = on
	mu.Unlock()
	return Save()
}
