package boxframe

import (
	"strings"

	"github.com/boxframe/boxframe/internal/q/termtext"
)

// MergeBoxes concatenates two flowed-mode boxes side by side, row by row,
// separated by a two-space gutter. The shorter box is padded with blank rows
// of its own width so the result stays rectangular.
//
// Precondition: both inputs are flowed renderer output with uniform row
// width; each box's width is taken from its first line. Irregular inputs
// (or positioned-mode output) will visually misalign.
func MergeBoxes(main, addition string) string {
	mainLines := strings.Split(strings.TrimSuffix(main, "\n"), "\n")
	addLines := strings.Split(strings.TrimSuffix(addition, "\n"), "\n")

	mainWidth := termtext.VisibleWidth(mainLines[0])
	addWidth := termtext.VisibleWidth(addLines[0])

	rows := len(mainLines)
	if len(addLines) > rows {
		rows = len(addLines)
	}

	out := make([]string, rows)
	for i := 0; i < rows; i++ {
		left := strings.Repeat(" ", mainWidth)
		if i < len(mainLines) {
			left = mainLines[i]
		}
		right := strings.Repeat(" ", addWidth)
		if i < len(addLines) {
			right = addLines[i]
		}
		out[i] = left + gutter + right
	}

	return strings.Join(out, "\n")
}
