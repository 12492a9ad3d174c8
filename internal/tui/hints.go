package tui

import "strings"

// Hint is a single key binding hint shown in the help bar or a modal.
type Hint struct {
	Key  string
	Desc string
}

// renderHintsInline renders hints on one line, dot-separated.
func (a App) renderHintsInline(hints []Hint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, a.styles.HintKey.Render(h.Key)+" "+a.styles.HintDesc.Render(h.Desc))
	}
	return strings.Join(parts, a.styles.HintDesc.Render(" · "))
}

// renderHelpBar renders the context hints below the panes.
func (a App) renderHelpBar() string {
	var hints []Hint
	if a.focusedPane == PaneTree {
		hints = []Hint{
			{Key: "space", Desc: "select"},
			{Key: "/", Desc: "search"},
			{Key: "p", Desc: "preview"},
			{Key: "tab", Desc: "playlist"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	} else {
		hints = []Hint{
			{Key: "J/K", Desc: "reorder"},
			{Key: "d", Desc: "remove"},
			{Key: "s", Desc: "submit"},
			{Key: "tab", Desc: "videos"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	}
	return a.styles.Help.Render(a.renderHintsInline(hints))
}
