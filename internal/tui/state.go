package tui

import (
	"net/url"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/AntiHeld889/beamerctl/internal/search"
	"github.com/AntiHeld889/beamerctl/internal/selection"
	"github.com/AntiHeld889/beamerctl/internal/tui/layout"
)

// SearchState holds state for the search overlay. Matches are rebuilt on
// every keystroke and every toggle, so a proxy row can never show stale
// checkbox state.
type SearchState struct {
	Input   textinput.Model
	Matches []search.Match
	Cursor  int
}

// NewSearchState creates a new SearchState with initialized input.
func NewSearchState(cfg layout.LayoutConfig) SearchState {
	input := textinput.New()
	input.Placeholder = "Search videos..."
	input.CharLimit = cfg.Input.SearchCharLimit
	input.Width = cfg.Input.SearchWidth
	return SearchState{Input: input}
}

// Searching reports whether a non-blank query is active: the distinction
// between "no results panel" and "explicit no matches".
func (s *SearchState) Searching() bool {
	return len(s.Matches) > 0 || trimmedQuery(s.Input.Value()) != ""
}

// Reset clears the search state for a new session.
func (s *SearchState) Reset() {
	s.Input.Reset()
	s.Matches = nil
	s.Cursor = 0
}

// PickerState holds state for the loop-video fuzzy picker.
type PickerState struct {
	Input  textinput.Model
	Paths  []string
	Cursor int
}

// NewPickerState creates a new PickerState with initialized input.
func NewPickerState(cfg layout.LayoutConfig) PickerState {
	input := textinput.New()
	input.Placeholder = "Filter videos..."
	input.CharLimit = cfg.Input.SearchCharLimit
	input.Width = cfg.Input.StandardWidth
	return PickerState{Input: input}
}

// Reset clears the picker state for a new session.
func (p *PickerState) Reset() {
	p.Input.Reset()
	p.Paths = nil
	p.Cursor = 0
}

// NameState holds state for the playlist-name modal.
type NameState struct {
	Input  textinput.Model
	Submit bool // submit to player after naming, instead of saving a draft
}

// NewNameState creates a new NameState with initialized input.
func NewNameState(cfg layout.LayoutConfig) NameState {
	input := textinput.New()
	input.Placeholder = "Playlist name"
	input.CharLimit = cfg.Input.NameCharLimit
	input.Width = cfg.Input.StandardWidth
	return NameState{Input: input}
}

// PreviewState tracks the at-most-one highlighted/previewed entry and
// whether the modal is open.
type PreviewState struct {
	Active string // highlighted path, "" = none
	Open   bool
}

// Set highlights path, implicitly clearing any previous highlight.
func (p *PreviewState) Set(path string) {
	p.Active = path
	p.Open = true
}

// Close closes the modal. The highlight stays on the last previewed entry.
func (p *PreviewState) Close() {
	p.Open = false
}

// form is the serialized-order sink shared between selection model and
// app: the selection's change hook rebuilds Values from scratch after
// every mutation, so a submission at any instant reflects the latest
// order. Pointer-shared across App copies; all writes happen inside the
// bubbletea event loop.
type form struct {
	Name      string
	LoopVideo string
	Values    url.Values
}

// update is the selection.OnChange hook.
func (f *form) update(order []string) {
	f.Values = selection.FormValues(f.Name, f.LoopVideo, order)
}
