package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AntiHeld889/beamerctl/internal/player"
	"github.com/AntiHeld889/beamerctl/internal/search"
	"github.com/AntiHeld889/beamerctl/internal/tui/layout"
)

// renderView creates the complete two-pane view, or the active overlay.
func (a App) renderView() string {
	switch a.mode {
	case ModeSearch:
		return a.renderSearchOverlay()
	case ModePicker:
		return a.renderPickerModal()
	case ModeName:
		return a.renderNameModal()
	case ModePreview:
		return a.renderPreviewModal()
	case ModeHelp:
		return a.renderHelpOverlay()
	}

	paneHeight := layout.CalculatePaneHeight(a.height, a.layoutConfig.Pane)
	paneWidth := layout.CalculatePaneWidth(a.width, a.layoutConfig.Pane)

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.renderTreePane(paneWidth, paneHeight),
		a.renderSelectedPane(paneWidth, paneHeight),
	)

	statusBar := a.renderStatusBar()
	helpBar := a.renderHelpBar()

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, statusBar, columns, helpBar),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderStatusBar renders the player badge line above the panes.
func (a App) renderStatusBar() string {
	var parts []string

	name := a.form.Name
	if name == "" {
		name = "(unnamed)"
	}
	parts = append(parts, a.styles.Title.Render("beamerctl"), a.styles.Path.Render(name))

	if a.form.LoopVideo != "" {
		loop, _ := layout.TruncateText(a.form.LoopVideo, 30, a.layoutConfig.Text)
		parts = append(parts, a.styles.Path.Render("loop:"+loop))
	}

	if a.client != nil {
		if a.online {
			badge := "player:" + modeBadge(a.status.Mode)
			if a.status.ActivePlaylist != "" {
				badge += " " + a.status.ActivePlaylist
			}
			parts = append(parts, a.styles.StatusOnline.Render(badge))
		} else {
			parts = append(parts, a.styles.StatusOff.Render("player:offline"))
		}
	}

	if a.message != "" {
		parts = append(parts, a.styles.Message.Render(a.message))
	}

	return strings.Join(parts, "  ")
}

// renderTreePane renders the source tree with one checkbox per video.
func (a App) renderTreePane(width, height int) string {
	var content strings.Builder

	visibleHeight := layout.CalculateVisibleHeight(height, 1)
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)

	content.WriteString(a.styles.Title.Render("Videos") + "\n")

	if len(a.rows) == 0 {
		content.WriteString(a.styles.Empty.Render("(no videos found)"))
	} else {
		offset := layout.CalculateViewportOffset(a.cursor, len(a.rows), visibleHeight)
		for i := offset; i < len(a.rows) && i < offset+visibleHeight; i++ {
			isCursor := a.focusedPane == PaneTree && i == a.cursor
			content.WriteString(a.renderTreeRow(a.rows[i], isCursor, itemWidth) + "\n")
		}
	}

	style := a.styles.Pane
	if a.focusedPane == PaneTree {
		style = a.styles.PaneActive
	}
	return style.
		Width(width).
		Height(height).
		Render(strings.TrimRight(content.String(), "\n"))
}

// renderTreeRow renders one tree line: indent, expander or checkbox, name.
// Truncation happens before styling so escape codes stay intact.
func (a App) renderTreeRow(row Row, isCursor bool, maxWidth int) string {
	indent := strings.Repeat("  ", row.Depth)

	var marker, markerStyled, name string
	if row.Node.IsFile {
		marker = "[ ]"
		markerStyled = marker
		if a.sel.Contains(row.Node.Path) {
			marker = "[x]"
			markerStyled = a.styles.Checked.Render(marker)
		}
		name = row.Node.Name
		if row.Node.Path == a.preview.Active {
			name = "* " + name
		}
	} else {
		marker = "▸"
		if a.expanded[row.Node.Path] {
			marker = "▾"
		}
		markerStyled = marker
		name = row.Node.Name + "/"
	}

	nameWidth := maxWidth - len(indent) - 4
	name, _ = layout.TruncateText(name, nameWidth, a.layoutConfig.Text)

	if isCursor {
		return a.styles.ItemCursor.Render(indent + marker + " " + name)
	}

	nameStyle := a.styles.Item
	switch {
	case row.Node.IsFile && row.Node.Path == a.preview.Active:
		nameStyle = a.styles.Highlight
	case !row.Node.IsFile:
		nameStyle = a.styles.Dir
	}
	return indent + markerStyled + " " + nameStyle.Render(name)
}

// renderSelectedPane renders the ordered selection with move indicators.
func (a App) renderSelectedPane(width, height int) string {
	var content strings.Builder

	visibleHeight := layout.CalculateVisibleHeight(height, 1)
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)

	order := a.sel.Order()
	content.WriteString(a.styles.Title.Render("Playlist") + " " +
		a.styles.Path.Render(countLabel(len(order))) + "\n")

	if len(order) == 0 {
		content.WriteString(a.styles.Empty.Render("(nothing selected)"))
	} else {
		offset := layout.CalculateViewportOffset(a.selCursor, len(order), visibleHeight)
		for i := offset; i < len(order) && i < offset+visibleHeight; i++ {
			isCursor := a.focusedPane == PaneSelected && i == a.selCursor
			content.WriteString(a.renderSelectedRow(order[i], i, isCursor, itemWidth) + "\n")
		}
	}

	style := a.styles.Pane
	if a.focusedPane == PaneSelected {
		style = a.styles.PaneActive
	}
	return style.
		Width(width).
		Height(height).
		Render(strings.TrimRight(content.String(), "\n"))
}

// renderSelectedRow renders one playlist entry with its move controls.
// The first item's up arrow and the last item's down arrow render
// disabled; a single item disables both.
func (a App) renderSelectedRow(path string, index int, isCursor bool, maxWidth int) string {
	up := a.styles.Disabled.Render("↑")
	if a.sel.CanMoveUp(path) {
		up = "↑"
	}
	down := a.styles.Disabled.Render("↓")
	if a.sel.CanMoveDown(path) {
		down = "↓"
	}

	name := path
	if entry, ok := a.index.Lookup(path); ok {
		name = entry.DisplayName
	}
	nameStyle := a.styles.Item
	if path == a.preview.Active {
		name = "* " + name
		nameStyle = a.styles.Highlight
	}
	name, _ = layout.TruncateText(name, maxWidth-7, a.layoutConfig.Text)

	if isCursor {
		return a.styles.ItemCursor.Render(fmt.Sprintf("%2d ↑↓ %s", index+1, name))
	}
	return fmt.Sprintf("%2d %s%s %s", index+1, up, down, nameStyle.Render(name))
}

// renderSearchOverlay renders the search mirror: query input plus proxy
// checkbox rows. A blank query hides the result list entirely; a query
// with no matches shows an explicit empty state.
func (a App) renderSearchOverlay() string {
	var content strings.Builder

	content.WriteString(a.styles.Title.Render("Search") + "\n\n")
	content.WriteString(a.search.Input.View() + "\n\n")

	switch {
	case !a.search.Searching():
		// Not searching: no result panel at all.
	case len(a.search.Matches) == 0:
		content.WriteString(a.styles.Empty.Render("No videos match.") + "\n")
	default:
		maxVisible := a.layoutConfig.Modal.SearchMaxVisible
		start, end := layout.CalculateVisibleListItems(maxVisible, a.search.Cursor, len(a.search.Matches))
		for i := start; i < end; i++ {
			content.WriteString(a.renderSearchRow(a.search.Matches[i], i == a.search.Cursor) + "\n")
		}
		content.WriteString("\n" + a.styles.Path.Render(countLabel(len(a.search.Matches))+" matching") + "\n")
	}

	content.WriteString("\n" + a.renderHintsInline([]Hint{
		{Key: "tab", Desc: "select/deselect"},
		{Key: "enter", Desc: "reveal in tree"},
		{Key: "ctrl+o", Desc: "preview"},
		{Key: "esc", Desc: "close"},
	}))

	return a.renderModalBox(content.String())
}

// renderSearchRow renders one proxy row: checkbox state read from the
// selection model at render time.
func (a App) renderSearchRow(m search.Match, isCursor bool) string {
	marker := "[ ]"
	if a.sel.Contains(m.Entry.Path) {
		marker = a.styles.Checked.Render("[x]")
	}

	path := m.Entry.Path
	highlighted := path[:m.Start] + a.styles.MatchRange.Render(path[m.Start:m.End]) + path[m.End:]

	line := marker + " " + highlighted
	if isCursor {
		return "> " + line
	}
	return "  " + line
}

// renderPickerModal renders the loop-video fuzzy picker.
func (a App) renderPickerModal() string {
	var content strings.Builder

	content.WriteString(a.styles.Title.Render("Loop Video") + "\n\n")
	content.WriteString(a.picker.Input.View() + "\n\n")

	if len(a.picker.Paths) == 0 {
		content.WriteString(a.styles.Empty.Render("No videos match.") + "\n")
	} else {
		maxVisible := a.layoutConfig.Modal.PickerMaxVisible
		// Keep the right end of long paths: that is where the file name is.
		pathWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.DefaultWidthPercent, a.layoutConfig.Modal) - 8
		start, end := layout.CalculateVisibleListItems(maxVisible, a.picker.Cursor, len(a.picker.Paths))
		for i := start; i < end; i++ {
			line := layout.TruncatePathFromLeft(a.picker.Paths[i], pathWidth, a.layoutConfig.Text)
			if i == a.picker.Cursor {
				content.WriteString("> " + a.styles.ItemCursor.Render(line) + "\n")
			} else {
				content.WriteString("  " + a.styles.Item.Render(line) + "\n")
			}
		}
	}

	content.WriteString("\n" + a.renderHintsInline([]Hint{
		{Key: "enter", Desc: "set loop"},
		{Key: "ctrl+x", Desc: "clear loop"},
		{Key: "esc", Desc: "cancel"},
	}))

	return a.renderModalBox(content.String())
}

// renderNameModal renders the playlist-name input.
func (a App) renderNameModal() string {
	var content strings.Builder

	if a.name.Submit {
		content.WriteString(a.styles.Title.Render("Submit Playlist") + "\n\n")
	} else {
		content.WriteString(a.styles.Title.Render("Save Draft") + "\n\n")
	}
	content.WriteString("Name:\n")
	content.WriteString(a.name.Input.View() + "\n\n")
	content.WriteString(a.renderHintsInline([]Hint{
		{Key: "enter", Desc: "confirm"},
		{Key: "esc", Desc: "cancel"},
	}))

	return a.renderModalBox(content.String())
}

// renderPreviewModal renders the preview modal for the active entry.
func (a App) renderPreviewModal() string {
	var content strings.Builder

	entry, ok := a.index.Lookup(a.preview.Active)
	if !ok {
		return a.renderModalBox(a.styles.Empty.Render("(no preview)"))
	}

	content.WriteString(a.styles.Title.Render("Preview") + "\n\n")
	content.WriteString(entry.DisplayName + "\n")
	content.WriteString(a.styles.Path.Render(entry.Path) + "\n\n")
	content.WriteString(a.styles.Path.Render(entry.PreviewURI) + "\n\n")
	content.WriteString(a.styles.Empty.Render("Playing in external player.") + "\n\n")
	content.WriteString(a.renderHintsInline([]Hint{
		{Key: "esc/q", Desc: "stop and close"},
	}))

	return a.renderModalBox(content.String())
}

// renderHelpOverlay renders the key reference.
func (a App) renderHelpOverlay() string {
	var content strings.Builder

	content.WriteString(a.styles.Title.Render("beamerctl keys") + "\n\n")
	groups := []struct {
		title string
		hints []Hint
	}{
		{"Navigate", []Hint{
			{Key: "j/k", Desc: "move"},
			{Key: "h/l", Desc: "collapse/expand"},
			{Key: "gg/G", Desc: "top/bottom"},
			{Key: "tab", Desc: "switch pane"},
		}},
		{"Playlist", []Hint{
			{Key: "space", Desc: "select/deselect"},
			{Key: "J/K", Desc: "reorder"},
			{Key: "d", Desc: "remove"},
			{Key: "L", Desc: "loop video"},
			{Key: "n", Desc: "name"},
		}},
		{"Player", []Hint{
			{Key: "w", Desc: "save draft"},
			{Key: "s", Desc: "submit + start"},
			{Key: "t", Desc: "trigger next"},
		}},
		{"Other", []Hint{
			{Key: "/", Desc: "search"},
			{Key: "p", Desc: "preview"},
			{Key: "Y", Desc: "yank path"},
			{Key: "q", Desc: "quit"},
		}},
	}

	for _, g := range groups {
		content.WriteString(a.styles.Title.Render(g.title) + "\n")
		for _, h := range g.hints {
			content.WriteString(fmt.Sprintf("  %-8s %s\n",
				a.styles.HintKey.Render(h.Key), a.styles.HintDesc.Render(h.Desc)))
		}
		content.WriteString("\n")
	}
	content.WriteString(a.styles.Help.Render("press any key to close"))

	return a.renderModalBox(content.String())
}

// renderModalBox wraps overlay content in the centered modal frame.
func (a App) renderModalBox(content string) string {
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}
	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.DefaultWidthPercent, a.layoutConfig.Modal)
	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Width(modalWidth)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		modalStyle.Render(strings.TrimRight(content, "\n")))
}

// modeBadge maps the player mode to the short badge text.
func modeBadge(m player.Mode) string {
	switch m {
	case player.ModeTrigger:
		return "TRIGGER"
	case player.ModeLoop:
		return "LOOP"
	default:
		return "IDLE"
	}
}
