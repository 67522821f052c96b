package theme

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

const selectionFile = "selection.json"

// Selection is the durable theme choice. At most one of AppliedThemeID /
// PreviewedThemeID is non-empty at any observable point; the engine
// enforces that on every transition.
type Selection struct {
	BaseMode         BaseMode `json:"baseMode"`
	AppliedThemeID   string   `json:"appliedThemeId,omitempty"`
	PreviewedThemeID string   `json:"previewedThemeId,omitempty"`
}

// DefaultSelection is the first-run state: auto mode, no named theme.
func DefaultSelection() Selection {
	return Selection{BaseMode: ModeAuto}
}

// SelectionStore persists the Selection as a JSON file under the config
// directory. It is the only writer of that file within a process; an
// optional watcher picks up edits made by other prism processes.
type SelectionStore struct {
	mu      sync.Mutex
	path    string
	current Selection

	watcher *fsnotify.Watcher
	logger  *slog.Logger
}

// NewSelectionStore loads the selection from dir, creating defaults when
// no file exists yet. A missing or unreadable file is not an error.
func NewSelectionStore(dir string, logger *slog.Logger) (*SelectionStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &SelectionStore{
		path:   filepath.Join(dir, selectionFile),
		logger: logger,
	}
	s.current = s.readFile()
	return s, nil
}

// Selection returns a copy of the current durable selection.
func (s *SelectionStore) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SetBaseMode persists a new base mode, leaving the active theme ids alone.
func (s *SelectionStore) SetBaseMode(mode BaseMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.BaseMode = mode
	return s.save()
}

// SetApplied records an applied theme and clears any preview, atomically
// with respect to the file write.
func (s *SelectionStore) SetApplied(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.AppliedThemeID = id
	s.current.PreviewedThemeID = ""
	return s.save()
}

// SetPreviewed records a previewed theme and clears any applied id.
func (s *SelectionStore) SetPreviewed(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.PreviewedThemeID = id
	s.current.AppliedThemeID = ""
	return s.save()
}

// ClearActive removes both theme ids, keeping the base mode.
func (s *SelectionStore) ClearActive() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.AppliedThemeID = ""
	s.current.PreviewedThemeID = ""
	return s.save()
}

// save writes the current selection. Caller holds s.mu.
func (s *SelectionStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.current, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// readFile loads the selection from disk, falling back to defaults on any
// problem so startup never fails on a corrupt selection file.
func (s *SelectionStore) readFile() Selection {
	sel := DefaultSelection()
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("read theme selection failed", "path", s.path, "err", err)
		}
		return sel
	}
	if err := json.Unmarshal(data, &sel); err != nil {
		s.logger.Warn("decode theme selection failed", "path", s.path, "err", err)
		return DefaultSelection()
	}
	sel.BaseMode = ParseBaseMode(string(sel.BaseMode))
	return sel
}

// Watch observes the selection file for edits by other processes and
// invokes onChange when the on-disk selection differs from the in-memory
// one. Self-writes are filtered by that comparison, so saves from this
// process never trigger the callback.
func (s *SelectionStore) Watch(onChange func(Selection)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		w.Close()
		return err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return err
	}
	s.watcher = w

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != s.path {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				s.mu.Lock()
				onDisk := s.readFile()
				changed := onDisk != s.current
				if changed {
					s.current = onDisk
				}
				s.mu.Unlock()
				if changed && onChange != nil {
					onChange(onDisk)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.logger.Warn("selection watcher error", "err", err)
			}
		}
	}()
	return nil
}

// Close stops the watcher if one was started.
func (s *SelectionStore) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}
