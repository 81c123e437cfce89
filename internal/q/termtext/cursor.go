package termtext

import "strconv"

// MoveTo returns the escape sequence placing the cursor at the given 0-based
// terminal coordinates (col across, row down). Terminals address cells
// 1-based, so (0, 0) becomes "ESC[1;1H".
func MoveTo(col, row int) string {
	return "\x1b[" + strconv.Itoa(row+1) + ";" + strconv.Itoa(col+1) + "H"
}
