package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AntiHeld889/beamerctl/internal/catalog"
	"github.com/AntiHeld889/beamerctl/internal/model"
	"github.com/AntiHeld889/beamerctl/internal/player"
	"github.com/AntiHeld889/beamerctl/internal/preview"
	"github.com/AntiHeld889/beamerctl/internal/search"
	"github.com/AntiHeld889/beamerctl/internal/selection"
	"github.com/AntiHeld889/beamerctl/internal/tui/layout"
)

// Mode is the current input mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModePicker
	ModeName
	ModePreview
	ModeHelp
)

// Pane identifies the focused pane in normal mode.
type Pane int

const (
	PaneTree Pane = iota
	PaneSelected
)

// App is the main bubbletea model for the playlist control surface.
type App struct {
	index  *catalog.Index
	tree   []*catalog.Node
	sel    *selection.Model
	form   *form
	runner *preview.Runner
	client *player.Client // nil = no player configured
	store  *model.Store

	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig

	mode        Mode
	focusedPane Pane

	// Tree pane state
	expanded map[string]bool
	rows     []Row
	cursor   int

	// Selected pane state
	selCursor int

	// Overlay state
	search  SearchState
	picker  PickerState
	name    NameState
	preview PreviewState

	// Player status badge
	status       player.Status
	online       bool
	pollInterval time.Duration

	message string

	// For gg command
	lastKeyWasG bool

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Index        *catalog.Index
	Client       *player.Client // optional
	Store        *model.Store   // optional, local drafts
	Preselected  []string       // toggle state at load, encounter order
	InitialOrder []string       // optional server-supplied order
	PlaylistName string         // when editing an existing draft
	LoopVideo    string
	PreviewCmd   string        // external preview player, "" = default
	PollInterval time.Duration // 0 disables status polling
	Keys         *KeyMap       // optional, uses default if nil
	Styles       *Styles       // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	cfg := layout.DefaultConfig()

	store := params.Store
	if store == nil {
		store = model.NewStore()
	}

	f := &form{Name: params.PlaylistName, LoopVideo: params.LoopVideo}
	sel := selection.NewModel(params.Index, f.update)
	for _, path := range params.Preselected {
		sel.Seed(path)
	}
	sel.ApplyInitialOrder(params.InitialOrder)
	f.update(sel.Order())

	var entries []catalog.Entry
	for _, path := range params.Index.Paths() {
		e, _ := params.Index.Lookup(path)
		entries = append(entries, e)
	}

	app := App{
		index:        params.Index,
		tree:         catalog.Tree(entries),
		sel:          sel,
		form:         f,
		runner:       preview.NewRunner(params.PreviewCmd),
		client:       params.Client,
		store:        store,
		keys:         keys,
		styles:       styles,
		layoutConfig: cfg,
		expanded:     make(map[string]bool),
		search:       NewSearchState(cfg),
		picker:       NewPickerState(cfg),
		name:         NewNameState(cfg),
		pollInterval: params.PollInterval,
		width:        80,
		height:       24,
	}

	// Entries selected at load should be visible.
	for _, path := range sel.Order() {
		app.expandAncestors(path)
	}
	app.refreshRows()
	return app
}

// Store returns the draft store for persisting at exit.
func (a App) Store() *model.Store {
	return a.store
}

// Selection returns the selection model.
func (a App) Selection() *selection.Model {
	return a.sel
}

// SerializedOrder returns the current serialized playlist order.
func (a App) SerializedOrder() []string {
	return a.form.Values["videos"]
}

// PlaylistName returns the current playlist name.
func (a App) PlaylistName() string {
	return a.form.Name
}

// LoopVideo returns the current loop video path.
func (a App) LoopVideo() string {
	return a.form.LoopVideo
}

// Cursor returns the tree pane cursor position.
func (a App) Cursor() int {
	return a.cursor
}

// Rows returns the currently visible tree rows.
func (a App) Rows() []Row {
	return a.rows
}

// ActivePreview returns the highlighted entry path, "" for none.
func (a App) ActivePreview() string {
	return a.preview.Active
}

// SearchMatches returns the current search overlay matches.
func (a App) SearchMatches() []search.Match {
	return a.search.Matches
}

// Mode returns the current input mode.
func (a App) Mode() Mode {
	return a.mode
}

// WithDimensions returns a copy of the app with fixed terminal dimensions.
// Used in tests to get deterministic rendering.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.client == nil || a.pollInterval <= 0 {
		return nil
	}
	return tea.Batch(pollStatus(a.client), statusTick(a.pollInterval))
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case statusTickMsg:
		if a.client == nil || a.pollInterval <= 0 {
			return a, nil
		}
		return a, tea.Batch(pollStatus(a.client), statusTick(a.pollInterval))

	case statusMsg:
		a.online = msg.err == nil
		if msg.err == nil {
			a.status = msg.status
		}
		return a, nil

	case submitResultMsg:
		if msg.err != nil {
			a.message = fmt.Sprintf("submit %q failed: %v", msg.name, msg.err)
		} else {
			a.message = fmt.Sprintf("playlist %q running on player", msg.name)
		}
		return a, nil

	case triggerResultMsg:
		if msg.err != nil {
			a.message = "trigger failed"
		} else {
			a.message = "trigger fired"
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.mode {
	case ModeSearch:
		return a.updateSearch(msg)
	case ModePicker:
		return a.updatePicker(msg)
	case ModeName:
		return a.updateName(msg)
	case ModePreview:
		return a.updatePreview(msg)
	case ModeHelp:
		a.mode = ModeNormal
		return a, nil
	}
	return a.updateNormal(msg)
}

func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.setCursor(0)
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		a.runner.Close()
		return a, tea.Quit

	case key.Matches(msg, a.keys.SwitchPane):
		if a.focusedPane == PaneTree {
			a.focusedPane = PaneSelected
		} else {
			a.focusedPane = PaneTree
		}
		return a, nil

	case key.Matches(msg, a.keys.Down):
		a.moveCursor(1)

	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-1)

	case key.Matches(msg, a.keys.Bottom):
		a.setCursor(a.listLen() - 1)

	case key.Matches(msg, a.keys.Right):
		if a.focusedPane == PaneTree {
			a.expandAtCursor()
		}

	case key.Matches(msg, a.keys.Left):
		if a.focusedPane == PaneTree {
			a.collapseAtCursor()
		}

	case key.Matches(msg, a.keys.Toggle):
		if a.focusedPane == PaneTree {
			if row, ok := a.cursorRow(); ok && row.Node.IsFile {
				a.sel.Toggle(row.Node.Path)
			}
		} else if path, ok := a.selectedCursorPath(); ok {
			a.sel.Remove(path)
			a.clampSelCursor()
		}

	case key.Matches(msg, a.keys.Delete):
		if a.focusedPane == PaneSelected {
			if path, ok := a.selectedCursorPath(); ok {
				a.sel.Remove(path)
				a.clampSelCursor()
			}
		}

	case key.Matches(msg, a.keys.MoveUp):
		if a.focusedPane == PaneSelected {
			if path, ok := a.selectedCursorPath(); ok && a.sel.Move(path, -1) {
				a.selCursor--
			}
		}

	case key.Matches(msg, a.keys.MoveDown):
		if a.focusedPane == PaneSelected {
			if path, ok := a.selectedCursorPath(); ok && a.sel.Move(path, 1) {
				a.selCursor++
			}
		}

	case key.Matches(msg, a.keys.Search):
		// An empty catalog has nothing to mirror; search stays off.
		if a.index.Len() == 0 {
			a.message = "catalog is empty, search disabled"
			return a, nil
		}
		a.mode = ModeSearch
		a.search.Reset()
		a.search.Input.Focus()
		return a, nil

	case key.Matches(msg, a.keys.Preview):
		if path, ok := a.pathAtCursor(); ok {
			a.openPreview(path)
		}

	case key.Matches(msg, a.keys.LoopPick):
		if a.index.Len() == 0 {
			return a, nil
		}
		a.mode = ModePicker
		a.picker.Reset()
		a.picker.Paths = search.FuzzyPaths(a.index, "")
		a.picker.Input.Focus()
		return a, nil

	case key.Matches(msg, a.keys.Name):
		a.openNameModal(false)
		return a, nil

	case key.Matches(msg, a.keys.Save):
		if a.form.Name == "" {
			a.openNameModal(false)
			return a, nil
		}
		a.saveDraft()

	case key.Matches(msg, a.keys.Submit):
		if a.client == nil {
			a.message = "no player configured"
			return a, nil
		}
		if a.form.Name == "" {
			a.openNameModal(true)
			return a, nil
		}
		return a, submitPlaylist(a.client, a.form.Name, a.form.LoopVideo, a.sel.Order())

	case key.Matches(msg, a.keys.Trigger):
		if a.client == nil {
			a.message = "no player configured"
			return a, nil
		}
		return a, fireTrigger(a.client)

	case key.Matches(msg, a.keys.YankPath):
		if path, ok := a.pathAtCursor(); ok {
			if err := clipboard.WriteAll(path); err == nil {
				a.message = "path copied"
			}
		}

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp
	}

	return a, nil
}

func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.mode = ModeNormal
		a.search.Reset()
		return a, nil

	case tea.KeyDown, tea.KeyCtrlN:
		if a.search.Cursor < len(a.search.Matches)-1 {
			a.search.Cursor++
		}
		return a, nil

	case tea.KeyUp, tea.KeyCtrlP:
		if a.search.Cursor > 0 {
			a.search.Cursor--
		}
		return a, nil

	case tea.KeyTab:
		// Proxy checkbox: route the intent through the one canonical
		// entry point, then rebuild the result rows.
		if m, ok := a.searchCursorMatch(); ok {
			a.sel.Toggle(m.Entry.Path)
			a.refreshSearch()
		}
		return a, nil

	case tea.KeyEnter:
		// Reveal: expand ancestors and focus the entry in the tree.
		// Selection is untouched.
		if m, ok := a.searchCursorMatch(); ok {
			a.reveal(m.Entry.Path)
			a.mode = ModeNormal
			a.search.Reset()
		}
		return a, nil

	case tea.KeyCtrlO:
		if m, ok := a.searchCursorMatch(); ok {
			a.openPreview(m.Entry.Path)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.search.Input, cmd = a.search.Input.Update(msg)
	a.refreshSearch()
	a.search.Cursor = 0
	return a, cmd
}

func (a App) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.mode = ModeNormal
		a.picker.Reset()
		return a, nil

	case tea.KeyDown, tea.KeyCtrlN:
		if a.picker.Cursor < len(a.picker.Paths)-1 {
			a.picker.Cursor++
		}
		return a, nil

	case tea.KeyUp, tea.KeyCtrlP:
		if a.picker.Cursor > 0 {
			a.picker.Cursor--
		}
		return a, nil

	case tea.KeyCtrlX:
		a.setLoopVideo("")
		a.mode = ModeNormal
		a.picker.Reset()
		a.message = "loop video cleared"
		return a, nil

	case tea.KeyEnter:
		if a.picker.Cursor < len(a.picker.Paths) {
			a.setLoopVideo(a.picker.Paths[a.picker.Cursor])
			a.message = "loop video set"
		}
		a.mode = ModeNormal
		a.picker.Reset()
		return a, nil
	}

	var cmd tea.Cmd
	a.picker.Input, cmd = a.picker.Input.Update(msg)
	a.picker.Paths = search.FuzzyPaths(a.index, a.picker.Input.Value())
	a.picker.Cursor = 0
	return a, cmd
}

func (a App) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.mode = ModeNormal
		a.name.Input.Reset()
		return a, nil

	case tea.KeyEnter:
		name := strings.TrimSpace(a.name.Input.Value())
		a.mode = ModeNormal
		a.name.Input.Reset()
		if name == "" {
			return a, nil
		}
		a.setName(name)
		if a.name.Submit && a.client != nil {
			return a, submitPlaylist(a.client, a.form.Name, a.form.LoopVideo, a.sel.Order())
		}
		a.saveDraft()
		return a, nil
	}

	var cmd tea.Cmd
	a.name.Input, cmd = a.name.Input.Update(msg)
	return a, cmd
}

func (a App) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		a.closePreview()
		return a, nil
	}
	if msg.Type == tea.KeyRunes && string(msg.Runes) == "q" {
		a.closePreview()
	}
	return a, nil
}

// --- helpers -------------------------------------------------------------

func (a *App) refreshRows() {
	a.rows = flattenTree(a.tree, a.expanded)
	if a.cursor >= len(a.rows) {
		a.cursor = len(a.rows) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) refreshSearch() {
	a.search.Matches = search.Filter(a.index, a.search.Input.Value())
	if a.search.Cursor >= len(a.search.Matches) {
		a.search.Cursor = len(a.search.Matches) - 1
	}
	if a.search.Cursor < 0 {
		a.search.Cursor = 0
	}
}

func (a App) cursorRow() (Row, bool) {
	if len(a.rows) == 0 || a.cursor >= len(a.rows) {
		return Row{}, false
	}
	return a.rows[a.cursor], true
}

func (a App) searchCursorMatch() (search.Match, bool) {
	if len(a.search.Matches) == 0 || a.search.Cursor >= len(a.search.Matches) {
		return search.Match{}, false
	}
	return a.search.Matches[a.search.Cursor], true
}

func (a App) selectedCursorPath() (string, bool) {
	order := a.sel.Order()
	if len(order) == 0 || a.selCursor >= len(order) {
		return "", false
	}
	return order[a.selCursor], true
}

// pathAtCursor returns the video path under the cursor of the focused pane.
func (a App) pathAtCursor() (string, bool) {
	if a.focusedPane == PaneSelected {
		return a.selectedCursorPath()
	}
	row, ok := a.cursorRow()
	if !ok || !row.Node.IsFile {
		return "", false
	}
	return row.Node.Path, true
}

func (a App) listLen() int {
	if a.focusedPane == PaneSelected {
		return a.sel.Len()
	}
	return len(a.rows)
}

func (a *App) moveCursor(delta int) {
	a.setCursor(a.cursorPos() + delta)
}

func (a App) cursorPos() int {
	if a.focusedPane == PaneSelected {
		return a.selCursor
	}
	return a.cursor
}

func (a *App) setCursor(pos int) {
	max := a.listLen() - 1
	if pos > max {
		pos = max
	}
	if pos < 0 {
		pos = 0
	}
	if a.focusedPane == PaneSelected {
		a.selCursor = pos
	} else {
		a.cursor = pos
	}
}

func (a *App) clampSelCursor() {
	if a.selCursor >= a.sel.Len() {
		a.selCursor = a.sel.Len() - 1
	}
	if a.selCursor < 0 {
		a.selCursor = 0
	}
}

func (a *App) expandAtCursor() {
	row, ok := a.cursorRow()
	if !ok || row.Node.IsFile {
		return
	}
	a.expanded[row.Node.Path] = true
	a.refreshRows()
}

func (a *App) collapseAtCursor() {
	row, ok := a.cursorRow()
	if !ok {
		return
	}
	if !row.Node.IsFile && a.expanded[row.Node.Path] {
		delete(a.expanded, row.Node.Path)
		a.refreshRows()
		return
	}
	// On a file or collapsed dir: jump to the parent directory row.
	ancestors := catalog.Ancestors(row.Node.Path)
	if len(ancestors) == 0 {
		return
	}
	parent := ancestors[len(ancestors)-1]
	for i, r := range a.rows {
		if r.Node.Path == parent && !r.Node.IsFile {
			a.cursor = i
			return
		}
	}
}

func (a *App) expandAncestors(path string) {
	for _, dir := range catalog.Ancestors(path) {
		a.expanded[dir] = true
	}
}

// reveal expands every ancestor of path and moves the tree cursor to it.
func (a *App) reveal(path string) {
	a.expandAncestors(path)
	a.refreshRows()
	if i := rowIndex(a.rows, path); i >= 0 {
		a.cursor = i
	}
	a.focusedPane = PaneTree
}

// openPreview highlights path and starts external playback. Only one
// entry is highlighted at a time; a previous highlight is replaced.
func (a *App) openPreview(path string) {
	entry, ok := a.index.Lookup(path)
	if !ok {
		return
	}
	if entry.PreviewURI == "" {
		a.message = "no preview available"
		return
	}
	// A highlighted entry is always visible in the tree.
	a.expandAncestors(path)
	a.refreshRows()
	a.preview.Set(path)
	a.runner.Open(entry.PreviewURI)
	a.mode = ModePreview
}

func (a *App) closePreview() {
	a.runner.Close()
	a.preview.Close()
	a.mode = ModeNormal
}

// setLoopVideo updates the loop video and reserializes.
func (a *App) setLoopVideo(path string) {
	a.form.LoopVideo = path
	a.form.update(a.sel.Order())
}

// setName updates the playlist name and reserializes.
func (a *App) setName(name string) {
	a.form.Name = name
	a.form.update(a.sel.Order())
}

func (a *App) openNameModal(submit bool) {
	a.mode = ModeName
	a.name.Submit = submit
	a.name.Input.Reset()
	a.name.Input.SetValue(a.form.Name)
	a.name.Input.Focus()
}

func (a *App) saveDraft() {
	a.store.Upsert(model.NewPlaylist(model.NewPlaylistParams{
		Name:      a.form.Name,
		LoopVideo: a.form.LoopVideo,
		Videos:    a.sel.Order(),
	}))
	a.message = fmt.Sprintf("draft %q saved", a.form.Name)
}

// countLabel renders the human-readable selected count.
func countLabel(n int) string {
	if n == 1 {
		return "1 video"
	}
	return fmt.Sprintf("%d videos", n)
}

func trimmedQuery(s string) string {
	return strings.TrimSpace(s)
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
