package boxframe

import (
	"strings"

	"github.com/boxframe/boxframe/internal/q/termtext"
)

// inferDimensions computes the interior (content-area) size implied by lines
// and padding. Zero lines still yield a width of 1 so a contentless box is
// never degenerate.
func inferDimensions(lines []string, padding Padding) (width, height int) {
	maxLine := 0
	for _, line := range lines {
		if w := termtext.VisibleWidth(line); w > maxLine {
			maxLine = w
		}
	}
	if len(lines) == 0 {
		maxLine = 1
	}

	width = padding.Left + maxLine + padding.Right
	height = padding.Top + len(lines) + padding.Bottom
	return width, height
}

// formatContent wraps, aligns, and pads content into the final interior rows
// of a box of the given total width. Two columns are always reserved for the
// left/right border glyphs, even when those sides are hidden, so geometry is
// stable across visibility changes. Empty content formats to no rows.
func formatContent(content string, totalWidth int, padding Padding, align Align) []string {
	if content == "" {
		return nil
	}

	innerWidth := totalWidth - 2 - padding.Left - padding.Right

	sep := termtext.DetectLineSeparator(content)
	normalized := content
	if sep != "\n" {
		normalized = strings.ReplaceAll(content, sep, "\n")
	}

	rows := termtext.Wrap(normalized, innerWidth)
	rows = termtext.AlignLines(rows, innerWidth, align)
	rows = termtext.PadLines(rows, padding.Top, padding.Right, padding.Bottom, padding.Left)

	return rows
}
