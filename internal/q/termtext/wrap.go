package termtext

import "strings"

// DetectLineSeparator reports the line separator convention used by str.
// Windows-style "\r\n" is detected when present anywhere in str; otherwise
// "\n" is assumed.
func DetectLineSeparator(str string) string {
	if strings.Contains(str, "\r\n") {
		return "\r\n"
	}
	return "\n"
}

// SplitLines splits str on its detected line separator.
func SplitLines(str string) []string {
	return strings.Split(str, DetectLineSeparator(str))
}

// Wrap re-flows str so that no line exceeds width terminal cells. Existing
// line breaks are preserved. Wrapping is grapheme-cluster aware and ANSI
// escape sequences are carried through without contributing width.
//
// A width <= 0 returns str's lines unchanged.
func Wrap(str string, width int) []string {
	if str == "" {
		return nil
	}

	lines := strings.Split(str, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		core := strings.TrimSuffix(line, "\r")
		if width <= 0 {
			out = append(out, core)
			continue
		}
		out = append(out, wrapLine(core, width)...)
	}

	return out
}

func wrapLine(line string, width int) []string {
	if line == "" {
		return []string{""}
	}

	var out []string
	var row strings.Builder
	rowWidth := 0

	flush := func() {
		out = append(out, row.String())
		row.Reset()
		rowWidth = 0
	}

	for i := 0; i < len(line); {
		if line[i] == '\x1b' {
			seqLen := ansiSequenceLength(line[i:])
			if seqLen == 0 {
				seqLen = 1
			}
			row.WriteString(line[i : i+seqLen])
			i += seqLen
			continue
		}

		segmentEnd := len(line)
		if nextEsc := strings.IndexByte(line[i:], '\x1b'); nextEsc >= 0 {
			segmentEnd = i + nextEsc
		}
		segment := line[i:segmentEnd]
		i = segmentEnd

		iter := graphemeIterator(segment)
		for iter.Next() {
			cluster := iter.Value()
			cw := graphemeWidth(cluster)

			// A cluster wider than the whole row gets a row of its own.
			if cw > width {
				if row.Len() > 0 {
					flush()
				}
				row.WriteString(cluster)
				flush()
				continue
			}

			if rowWidth+cw > width && row.Len() > 0 {
				flush()
			}

			row.WriteString(cluster)
			rowWidth += cw
		}
	}

	if row.Len() > 0 {
		out = append(out, row.String())
	} else if len(out) == 0 {
		out = []string{""}
	}

	return out
}
