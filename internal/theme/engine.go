package theme

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/prismchat/prism/internal/catalog"
)

// ErrFetchFailed is the umbrella error surfaced to UI callers when a
// preview/apply could not load its theme. Wraps catalog.ErrNotFound or
// catalog.ErrUnavailable; use errors.Is to distinguish if needed.
var ErrFetchFailed = errors.New("theme fetch failed")

// Fetcher is the slice of the catalog client the engine needs.
type Fetcher interface {
	GetTheme(ctx context.Context, id string) (*catalog.ThemeRecord, error)
}

type activeKind int

const (
	activeNone activeKind = iota
	activePreviewing
	activeApplied
)

// Engine reconciles the base light/dark/auto preference and the optional
// named theme override into one resolved Palette, and keeps that palette
// published on the bus. It owns the in-memory palette and the cached
// record of the active named theme; the SelectionStore owns durability.
//
// All transitions run under one mutex. The only blocking work is the
// catalog fetch inside PreviewTheme/ApplyTheme/Start, which runs outside
// the lock; a sequence number discards results that a newer request has
// superseded (last request wins).
type Engine struct {
	store  *SelectionStore
	fetch  Fetcher
	bus    *Bus
	detect DetectFunc
	logger *slog.Logger

	mu       sync.Mutex
	baseMode BaseMode
	kind     activeKind
	themeID  string
	record   *catalog.ThemeRecord
	current  Palette
	fetchSeq uint64
}

// NewEngine builds an engine over its collaborators. The palette is
// immediately readable (base palette for the stored mode); call Start to
// reconstruct any persisted named theme.
func NewEngine(store *SelectionStore, fetch Fetcher, bus *Bus, detect DetectFunc, logger *slog.Logger) *Engine {
	if detect == nil {
		detect = DetectTerminal
	}
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		store:  store,
		fetch:  fetch,
		bus:    bus,
		detect: detect,
		logger: logger,
	}
	sel := store.Selection()
	e.baseMode = sel.BaseMode
	e.current = BuildBasePalette(Resolve(e.baseMode, e.detect))
	return e
}

// Start reconstructs the persisted selection. A stored preview is
// restored ahead of a stored applied id; if its fetch fails the stale id
// is cleared from storage and the engine falls back to the base palette.
// Start never fails — reconstruction problems degrade, they don't abort.
func (e *Engine) Start(ctx context.Context) {
	sel := e.store.Selection()

	restore := func(id string, kind activeKind, clear func() error) bool {
		record, err := e.fetch.GetTheme(ctx, id)
		if err != nil {
			e.logger.Warn("stored theme unavailable, clearing", "theme", id, "err", err)
			if cerr := clear(); cerr != nil {
				e.logger.Warn("clear stored theme failed", "err", cerr)
			}
			return false
		}
		e.mu.Lock()
		e.kind = kind
		e.themeID = id
		e.record = record
		e.mu.Unlock()
		return true
	}

	switch {
	case sel.PreviewedThemeID != "":
		restore(sel.PreviewedThemeID, activePreviewing, e.store.ClearActive)
	case sel.AppliedThemeID != "":
		restore(sel.AppliedThemeID, activeApplied, e.store.ClearActive)
	}

	e.mu.Lock()
	e.recomputeLocked()
	p := e.current
	e.mu.Unlock()
	e.publish(PaletteChanged{Palette: p})
}

// CurrentPalette returns the resolved palette for the current moment.
// Always available, never blocks on I/O.
func (e *Engine) CurrentPalette() Palette {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// BaseMode returns the current base preference.
func (e *Engine) BaseMode() BaseMode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.baseMode
}

// ActiveThemeID returns the named theme id in effect and whether it is
// applied (as opposed to previewed). Empty id means the base theme.
func (e *Engine) ActiveThemeID() (id string, applied bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.themeID, e.kind == activeApplied
}

// SetBaseMode persists a new base mode and recomputes the palette. When a
// named theme is active its palette is regenerated for the new mode from
// the cached record — no network call. Infallible: a storage write error
// is logged, never surfaced, and the in-memory state still advances.
func (e *Engine) SetBaseMode(mode BaseMode) {
	if err := e.store.SetBaseMode(mode); err != nil {
		e.logger.Warn("persist base mode failed", "err", err)
	}

	e.mu.Lock()
	e.baseMode = mode
	e.recomputeLocked()
	p := e.current
	e.mu.Unlock()

	e.publish(BaseModeChanged{Mode: p.EffectiveMode})
	e.publish(PaletteChanged{Palette: p})
}

// PreviewTheme activates a named theme temporarily. On fetch failure the
// engine state and persisted selection are left untouched and the error
// wraps ErrFetchFailed. A request superseded by a newer preview/apply is
// discarded silently when its fetch eventually resolves.
func (e *Engine) PreviewTheme(ctx context.Context, id string) error {
	return e.activate(ctx, id, activePreviewing)
}

// ApplyTheme activates a named theme persistently: it survives restarts
// until cleared or replaced. Same failure semantics as PreviewTheme.
func (e *Engine) ApplyTheme(ctx context.Context, id string) error {
	return e.activate(ctx, id, activeApplied)
}

func (e *Engine) activate(ctx context.Context, id string, kind activeKind) error {
	e.mu.Lock()
	e.fetchSeq++
	seq := e.fetchSeq
	e.mu.Unlock()

	record, err := e.fetch.GetTheme(ctx, id)

	e.mu.Lock()
	if seq != e.fetchSeq {
		// A newer preview/apply superseded this request while the fetch
		// was in flight; drop the result either way.
		e.mu.Unlock()
		return nil
	}
	if err != nil {
		e.mu.Unlock()
		return fmt.Errorf("%w: %s: %w", ErrFetchFailed, id, err)
	}

	var perr error
	if kind == activeApplied {
		perr = e.store.SetApplied(id)
	} else {
		perr = e.store.SetPreviewed(id)
	}
	if perr != nil {
		e.logger.Warn("persist theme selection failed", "theme", id, "err", perr)
	}

	e.kind = kind
	e.themeID = id
	e.record = record
	e.recomputeLocked()
	p := e.current
	e.mu.Unlock()

	e.publish(PaletteChanged{Palette: p})
	return nil
}

// Clear drops any previewed or applied theme and restores the base
// palette for the current mode. Infallible and idempotent.
func (e *Engine) Clear() {
	if err := e.store.ClearActive(); err != nil {
		e.logger.Warn("clear theme selection failed", "err", err)
	}

	e.mu.Lock()
	e.kind = activeNone
	e.themeID = ""
	e.record = nil
	e.recomputeLocked()
	p := e.current
	e.mu.Unlock()

	e.publish(PaletteChanged{Palette: p})
}

// ReevaluateAuto re-resolves the palette after an environment color-scheme
// change. Only meaningful when the base mode is auto; publishes nothing if
// the resolved palette is unchanged.
func (e *Engine) ReevaluateAuto() {
	e.mu.Lock()
	if e.baseMode != ModeAuto {
		e.mu.Unlock()
		return
	}
	before := e.current.Fingerprint()
	e.recomputeLocked()
	p := e.current
	changed := p.Fingerprint() != before
	e.mu.Unlock()

	if changed {
		e.publish(BaseModeChanged{Mode: p.EffectiveMode})
		e.publish(PaletteChanged{Palette: p})
	}
}

// AdoptSelection reacts to the selection file changing under us (another
// prism process applied or cleared a theme). The base mode is adopted
// directly; a changed theme id is fetched, and on failure the previous
// palette stays in effect rather than clearing the other process's choice.
func (e *Engine) AdoptSelection(ctx context.Context, sel Selection) {
	e.mu.Lock()
	e.baseMode = sel.BaseMode

	wantID := sel.AppliedThemeID
	wantKind := activeApplied
	if sel.PreviewedThemeID != "" {
		wantID = sel.PreviewedThemeID
		wantKind = activePreviewing
	}

	if wantID == "" {
		e.kind = activeNone
		e.themeID = ""
		e.record = nil
		e.recomputeLocked()
		p := e.current
		e.mu.Unlock()
		e.publish(PaletteChanged{Palette: p})
		return
	}

	if wantID == e.themeID && e.record != nil {
		e.kind = wantKind
		e.recomputeLocked()
		p := e.current
		e.mu.Unlock()
		e.publish(PaletteChanged{Palette: p})
		return
	}
	e.fetchSeq++
	seq := e.fetchSeq
	e.mu.Unlock()

	record, err := e.fetch.GetTheme(ctx, wantID)
	if err != nil {
		e.logger.Warn("adopt external theme failed", "theme", wantID, "err", err)
		return
	}

	e.mu.Lock()
	if seq != e.fetchSeq {
		e.mu.Unlock()
		return
	}
	e.kind = wantKind
	e.themeID = wantID
	e.record = record
	e.recomputeLocked()
	p := e.current
	e.mu.Unlock()
	e.publish(PaletteChanged{Palette: p})
}

// recomputeLocked rebuilds the current palette from the state tuple.
// Caller holds e.mu.
func (e *Engine) recomputeLocked() {
	mode := Resolve(e.baseMode, e.detect)
	if e.kind == activeNone || e.record == nil {
		e.current = BuildBasePalette(mode)
		return
	}
	e.current = BuildNamedPalette(e.record, mode)
}

func (e *Engine) publish(ev Event) {
	if e.bus != nil {
		e.bus.Publish(ev)
	}
}
