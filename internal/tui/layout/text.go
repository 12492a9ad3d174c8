package layout

import "unicode/utf8"

// TruncateText truncates text to maxWidth with ellipsis.
// Handles edge cases where text is shorter than maxWidth or maxWidth is very small.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}

	ellipsisLen := utf8.RuneCountInString(cfg.Ellipsis)
	textLen := utf8.RuneCountInString(text)

	if textLen <= maxWidth {
		return text, false
	}

	// Need space for ellipsis
	if maxWidth <= ellipsisLen {
		runes := []rune(cfg.Ellipsis)
		return string(runes[:maxWidth]), true
	}

	runes := []rune(text)
	truncLen := maxWidth - ellipsisLen
	return string(runes[:truncLen]) + cfg.Ellipsis, true
}

// TruncatePathFromLeft truncates a path to maxWidth keeping the right end,
// which carries the file name, and prefixing the ellipsis.
func TruncatePathFromLeft(path string, maxWidth int, cfg TextConfig) string {
	if maxWidth <= 0 {
		return ""
	}

	pathLen := utf8.RuneCountInString(path)
	if pathLen <= maxWidth {
		return path
	}

	ellipsisLen := utf8.RuneCountInString(cfg.Ellipsis)
	if maxWidth <= ellipsisLen {
		runes := []rune(cfg.Ellipsis)
		return string(runes[:maxWidth])
	}

	runes := []rune(path)
	keep := maxWidth - ellipsisLen
	return cfg.Ellipsis + string(runes[pathLen-keep:])
}
