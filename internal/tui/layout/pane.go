package layout

// CalculatePaneHeight computes the content height for panes.
// Returns at least MinHeight.
func CalculatePaneHeight(terminalHeight int, cfg PaneConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculatePaneWidth computes the width of each of the two panes.
func CalculatePaneWidth(terminalWidth int, cfg PaneConfig) int {
	width := (terminalWidth - cfg.TwoPaneWidthOffset) / 2
	if width < cfg.MinPaneWidth {
		return cfg.MinPaneWidth
	}
	return width
}

// CalculateItemWidth computes the width available for item content.
func CalculateItemWidth(paneWidth int, cfg PaneConfig) int {
	return paneWidth - cfg.ContentPadding
}

// CalculateVisibleHeight computes the visible item count in a pane.
func CalculateVisibleHeight(paneHeight, headerLines int) int {
	height := paneHeight - headerLines
	if height < 1 {
		return 1
	}
	return height
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected item visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	offset := selected - viewportHeight/2
	if offset < 0 {
		return 0
	}
	if offset > total-viewportHeight {
		return total - viewportHeight
	}
	return offset
}

// CalculateVisibleListItems computes the start and end indices for a
// scrollable list. Returns (start, end) where items[start:end] should be
// displayed.
func CalculateVisibleListItems(maxVisible, selectedIdx, totalItems int) (start, end int) {
	if totalItems <= maxVisible {
		return 0, totalItems
	}

	if selectedIdx >= maxVisible {
		start = selectedIdx - maxVisible + 1
	}

	end = start + maxVisible
	if end > totalItems {
		end = totalItems
	}

	return start, end
}
