package termtext

import "strings"

// Alignment selects where a line sits inside a fixed-width row.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// AlignLines pads every line with spaces to exactly width cells, positioning
// the visible text per dir. Lines already at or above width are returned
// unchanged. Width is measured with VisibleWidth, so styled lines align the
// same as plain ones.
func AlignLines(lines []string, width int, dir Alignment) []string {
	if len(lines) == 0 {
		return nil
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		gap := width - VisibleWidth(line)
		if gap <= 0 {
			out[i] = line
			continue
		}

		switch dir {
		case AlignRight:
			out[i] = strings.Repeat(" ", gap) + line
		case AlignCenter:
			left := gap / 2
			out[i] = strings.Repeat(" ", left) + line + strings.Repeat(" ", gap-left)
		default:
			out[i] = line + strings.Repeat(" ", gap)
		}
	}

	return out
}

// PadLines surrounds lines with blank space: top/bottom rows of spaces and
// left/right space columns on every row. Lines are assumed to be of uniform
// visible width (AlignLines output); blank rows are sized to match.
func PadLines(lines []string, top, right, bottom, left int) []string {
	if top == 0 && right == 0 && bottom == 0 && left == 0 {
		return lines
	}

	lineWidth := 0
	if len(lines) > 0 {
		lineWidth = VisibleWidth(lines[0])
	}

	leftFill := strings.Repeat(" ", left)
	rightFill := strings.Repeat(" ", right)
	blankRow := strings.Repeat(" ", left+lineWidth+right)

	out := make([]string, 0, top+len(lines)+bottom)
	for i := 0; i < top; i++ {
		out = append(out, blankRow)
	}
	for _, line := range lines {
		out = append(out, leftFill+line+rightFill)
	}
	for i := 0; i < bottom; i++ {
		out = append(out, blankRow)
	}

	return out
}
