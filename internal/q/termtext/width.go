package termtext

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

var widthCondition = func() *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true
	return cond
}()

// VisibleWidth returns the number of terminal cells str occupies when printed
// in a monospace terminal. ANSI escape sequences contribute zero width. str
// must not contain newlines.
func VisibleWidth(str string) int {
	if str == "" {
		return 0
	}

	width := 0
	segmentStart := 0

	for i := 0; i < len(str); {
		if str[i] != '\x1b' {
			i++
			continue
		}

		if segmentStart < i {
			width += widthCondition.StringWidth(str[segmentStart:i])
		}

		seqLen := ansiSequenceLength(str[i:])
		if seqLen == 0 {
			i++
		} else {
			i += seqLen
		}
		segmentStart = i
	}

	if segmentStart < len(str) {
		width += widthCondition.StringWidth(str[segmentStart:])
	}

	return width
}

// graphemeWidth returns the cell width of a single grapheme cluster.
func graphemeWidth(cluster string) int {
	return widthCondition.StringWidth(cluster)
}

// graphemeIterator returns a grapheme-cluster iterator over an escape-free segment.
func graphemeIterator(segment string) graphemes.Iterator[string] {
	return graphemes.FromString(segment)
}

// ansiSequenceLength returns the byte length of the escape sequence at the
// start of s, or 0 if s does not begin a recognizable sequence.
func ansiSequenceLength(s string) int {
	if len(s) == 0 || s[0] != '\x1b' {
		return 0
	}
	if len(s) == 1 {
		return 1
	}

	switch s[1] {
	case '[':
		for i := 2; i < len(s); i++ {
			final := s[i]
			if final >= 0x40 && final <= 0x7e { // final byte of a CSI sequence
				return i + 1
			}
		}
		return 0
	case ']':
		for i := 2; i < len(s); i++ {
			if s[i] == '\a' { // BEL terminator
				return i + 1
			}
			if s[i] == '\\' && s[i-1] == '\x1b' { // ST terminator (ESC \)
				return i + 1
			}
		}
		return 0
	case 'P', '^', '_':
		for i := 2; i < len(s); i++ {
			if s[i] == '\\' && s[i-1] == '\x1b' {
				return i + 1
			}
		}
		return 0
	default:
		return 2 // ESC followed by a single-character control sequence
	}
}
