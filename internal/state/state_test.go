package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func withTempState(t *testing.T) string {
	t.Helper()
	originalPath := path
	originalCurrent := current
	t.Cleanup(func() {
		path = originalPath
		current = originalCurrent
	})

	dir := t.TempDir()
	path = filepath.Join(dir, "state.json")
	current = &State{}
	return dir
}

func TestInitWithDir(t *testing.T) {
	originalPath := path
	originalCurrent := current
	t.Cleanup(func() {
		path = originalPath
		current = originalCurrent
	})

	if err := InitWithDir(filepath.Join(t.TempDir(), ".config", "prism")); err != nil {
		t.Fatalf("InitWithDir() failed: %v", err)
	}
	if current == nil {
		t.Fatal("current state should be initialized")
	}
	if got := GetActivePage(); got != "" {
		t.Errorf("default ActivePage = %q, want empty", got)
	}
	if GetShowHelp() {
		t.Error("default ShowHelp = true, want false")
	}
}

func TestLoadNonExistentUsesDefaults(t *testing.T) {
	withTempState(t)
	path = filepath.Join(t.TempDir(), "nonexistent", "state.json")

	if err := Load(); err != nil {
		t.Fatalf("Load() for non-existent file should return nil, got %v", err)
	}
	if current == nil {
		t.Error("current should be initialized with defaults")
	}
}

func TestLoadExistingFile(t *testing.T) {
	dir := withTempState(t)

	data, _ := json.Marshal(State{ActivePage: "themes", ShowHelp: true})
	if err := os.WriteFile(filepath.Join(dir, "state.json"), data, 0644); err != nil {
		t.Fatalf("failed to write test state file: %v", err)
	}

	if err := Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got := GetActivePage(); got != "themes" {
		t.Errorf("ActivePage = %q, want themes", got)
	}
	if !GetShowHelp() {
		t.Error("ShowHelp = false, want true")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := withTempState(t)

	if err := os.WriteFile(filepath.Join(dir, "state.json"), []byte("invalid json"), 0644); err != nil {
		t.Fatalf("failed to write invalid JSON: %v", err)
	}
	if err := Load(); err == nil {
		t.Error("Load() should return error for invalid JSON")
	}
}

func TestSetActivePagePersists(t *testing.T) {
	withTempState(t)

	if err := SetActivePage("preview"); err != nil {
		t.Fatalf("SetActivePage() failed: %v", err)
	}

	// Reload from disk and confirm the value survived.
	current = nil
	if err := Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got := GetActivePage(); got != "preview" {
		t.Errorf("ActivePage after reload = %q, want preview", got)
	}
}

func TestSaveCreatesParentDir(t *testing.T) {
	withTempState(t)
	path = filepath.Join(t.TempDir(), "nested", "deeper", "state.json")
	current = &State{ActivePage: "chat"}

	if err := Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("state file not written: %v", err)
	}
}
