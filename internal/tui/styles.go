package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	Pane         lipgloss.Style
	PaneActive   lipgloss.Style
	Title        lipgloss.Style
	Item         lipgloss.Style
	ItemCursor   lipgloss.Style
	Dir          lipgloss.Style
	Checked      lipgloss.Style
	Highlight    lipgloss.Style // active preview entry
	Disabled     lipgloss.Style // move controls at list boundaries
	Path         lipgloss.Style
	MatchRange   lipgloss.Style // matched substring in search results
	StatusOnline lipgloss.Style
	StatusOff    lipgloss.Style
	Help         lipgloss.Style
	Empty        lipgloss.Style
	Message      lipgloss.Style
	HintKey      lipgloss.Style
	HintDesc     lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Grayscale with a single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}  // inactive borders
	warn := lipgloss.AdaptiveColor{Light: "#8A6D3B", Dark: "#B8A154"}

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(border).
			Padding(0, 1),

		PaneActive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Item: lipgloss.NewStyle().
			Foreground(primary),

		ItemCursor: lipgloss.NewStyle().
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		Dir: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		Checked: lipgloss.NewStyle().
			Foreground(accent),

		Highlight: lipgloss.NewStyle().
			Foreground(warn).
			Bold(true),

		Disabled: lipgloss.NewStyle().
			Foreground(subtle),

		Path: lipgloss.NewStyle().
			Foreground(subtle),

		MatchRange: lipgloss.NewStyle().
			Foreground(accent).
			Underline(true),

		StatusOnline: lipgloss.NewStyle().
			Foreground(accent),

		StatusOff: lipgloss.NewStyle().
			Foreground(subtle),

		Help: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		Message: lipgloss.NewStyle().
			Foreground(warn),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),
	}
}
