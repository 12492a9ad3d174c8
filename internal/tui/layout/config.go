package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Pane  PaneConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// PaneConfig holds pane dimension configuration.
type PaneConfig struct {
	// HeightReduction is subtracted from terminal height for pane content.
	// Accounts for: app padding (1) + status bar (1) + pane borders (2) + help bar (3) = 7
	HeightReduction int

	// MinHeight is the minimum pane height.
	MinHeight int

	// TwoPaneWidthOffset is subtracted before dividing by 2.
	// Accounts for borders and spacing between the two panes.
	TwoPaneWidthOffset int

	// MinPaneWidth is the minimum width for each pane.
	MinPaneWidth int

	// ContentPadding is subtracted from pane width for item rendering.
	// Accounts for pane border/padding on each side.
	ContentPadding int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// DefaultWidthPercent is the standard modal width as percentage of terminal width.
	DefaultWidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int

	// PickerMaxVisible: max items shown in the loop-video picker.
	PickerMaxVisible int

	// SearchMaxVisible: max matches shown in the search overlay.
	SearchMaxVisible int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	NameCharLimit   int
	SearchCharLimit int

	StandardWidth int
	SearchWidth   int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Pane: PaneConfig{
			HeightReduction:    7, // app padding (1) + status bar (1) + pane borders (2) + help bar (3)
			MinHeight:          5,
			TwoPaneWidthOffset: 6,
			MinPaneWidth:       24,
			ContentPadding:     4,
		},
		Modal: ModalConfig{
			DefaultWidthPercent: 50,
			MinWidth:            50,
			MaxWidth:            90,
			PickerMaxVisible:    8,
			SearchMaxVisible:    10,
		},
		Input: InputConfig{
			NameCharLimit:   100,
			SearchCharLimit: 100,
			StandardWidth:   40,
			SearchWidth:     40,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
