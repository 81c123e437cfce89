package boxframe

import (
	"strings"

	"github.com/boxframe/boxframe/internal/q/termtext"
)

// gutter separates tiled copies of a frame.
const gutter = "  "

// Frame renders a bordered box around content and returns it as a string.
// Multiple content blocks are joined by their own inferred line separator.
// In flowed mode (no Options.Position) the result is plain line-separated
// text; in positioned mode it is a stream of cursor-addressed fragments
// suitable for drawing at an absolute terminal coordinate.
func Frame(opts Options, content ...string) (string, error) {
	joined := strings.Join(content, "\n")
	if len(content) > 1 {
		if sep := termtext.DetectLineSeparator(strings.Join(content, "")); sep != "\n" {
			joined = strings.Join(content, sep)
		}
	}
	return render(joined, opts)
}

// FrameFunc renders a frame around the string produced by fn. It is the
// computed-content counterpart of Frame.
func FrameFunc(opts Options, fn func() string) (string, error) {
	return render(fn(), opts)
}

func render(content string, opts Options) (string, error) {
	spec, err := compileBorder(opts.Border)
	if err != nil {
		return "", err
	}
	styles, err := resolveStyles(opts.Style)
	if err != nil {
		return "", err
	}

	sep := termtext.DetectLineSeparator(content)
	var lines []string
	if content != "" {
		lines = strings.Split(content, sep)
	}

	innerWidth, innerHeight := inferDimensions(lines, opts.Padding)

	// One row/column per edge is always reserved for the border, visible or
	// not, so geometry is stable across visibility changes.
	width := opts.Width
	if width == 0 {
		width = innerWidth + 2
	}
	height := opts.Height
	if height == 0 {
		height = innerHeight + 2
	}

	// Titles and corners are a hard lower bound on width; an explicit width
	// is raised rather than clipping them.
	top := topEdge(opts.Title, spec)
	bottom := bottomEdge(opts.Title, spec)
	if spec.top && top.spaceTaken() > width {
		width = top.spaceTaken()
	}
	if spec.bottom && bottom.spaceTaken() > width {
		width = bottom.spaceTaken()
	}

	formatted := formatContent(content, width, opts.Padding, opts.Align)

	count := opts.Count
	if count < 1 {
		count = 1
	}

	positioned := opts.Position != nil
	var originTop, originLeft int
	if positioned {
		originTop, originLeft = opts.Position.Top, opts.Position.Left
	}

	var b strings.Builder

	if spec.top {
		line := top.render(width, spec, styles.border)
		if positioned {
			b.WriteString(termtext.MoveTo(originLeft, originTop))
		}
		for c := 0; c < count; c++ {
			if c > 0 {
				b.WriteString(gutter)
			}
			b.WriteString(line)
		}
		if !positioned {
			b.WriteString(sep)
		}
	}

	pipe := spec.glyph(KindPipe)
	contentStyled := !styles.content.IsZero()

	for i := 0; i < height-2; i++ {
		rowY := originTop + i + 1
		if positioned {
			b.WriteString(termtext.MoveTo(originLeft, rowY))
		}

		for c := 0; c < count; c++ {
			copyLeft := originLeft + c*(width+len(gutter))

			if spec.left {
				b.WriteString(styles.border.Apply(pipe))
			}

			contentSize := width - 2
			if i < len(formatted) {
				row := formatted[i]
				b.WriteString(styles.content.Apply(row))
				contentSize -= termtext.VisibleWidth(row)
				if contentSize < 0 {
					contentSize = 0
				}
			}

			// Flowed mode always pads to keep the box rectangular. Positioned
			// mode skips redundant space writes when the interior is unstyled:
			// cursor addressing makes the fill unnecessary.
			if contentStyled || !positioned {
				b.WriteString(styles.content.Apply(strings.Repeat(" ", contentSize)))
			}

			if spec.right {
				if positioned {
					b.WriteString(termtext.MoveTo(copyLeft+width-1, rowY))
				}
				b.WriteString(styles.border.Apply(pipe))
			}

			if c < count-1 {
				b.WriteString(gutter)
			}
		}

		if !positioned {
			b.WriteString(sep)
		}
	}

	if spec.bottom {
		line := bottom.render(width, spec, styles.border)
		if positioned {
			b.WriteString(termtext.MoveTo(originLeft, originTop+height-1))
		}
		for c := 0; c < count; c++ {
			if c > 0 {
				b.WriteString(gutter)
			}
			b.WriteString(line)
		}
		if !positioned {
			b.WriteString(sep)
		}
	}

	return b.String(), nil
}
