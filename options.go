package boxframe

import (
	"errors"
	"fmt"

	"github.com/boxframe/boxframe/internal/q/termtext"
)

// Align positions content horizontally inside the frame.
type Align = termtext.Alignment

const (
	AlignLeft   = termtext.AlignLeft
	AlignCenter = termtext.AlignCenter
	AlignRight  = termtext.AlignRight
)

// ErrInvalidPadding is returned by PadOf for shorthand of the wrong shape.
var ErrInvalidPadding = errors.New("boxframe: invalid padding")

// Padding is the blank space between content and border, per side.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Pad returns uniform padding of n on all four sides.
func Pad(n int) Padding {
	return Padding{Top: n, Right: n, Bottom: n, Left: n}
}

// PadOf normalizes CSS-style shorthand into a Padding: one value for all
// sides; two for vertical/horizontal; three for top/horizontal/bottom; four
// for top/right/bottom/left. Negative values and other lengths are rejected.
func PadOf(vals ...int) (Padding, error) {
	for _, v := range vals {
		if v < 0 {
			return Padding{}, fmt.Errorf("%w: negative value %d", ErrInvalidPadding, v)
		}
	}

	switch len(vals) {
	case 1:
		return Pad(vals[0]), nil
	case 2:
		return Padding{Top: vals[0], Right: vals[1], Bottom: vals[0], Left: vals[1]}, nil
	case 3:
		return Padding{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[1]}, nil
	case 4:
		return Padding{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}, nil
	default:
		return Padding{}, fmt.Errorf("%w: expected 1 to 4 values, got %d", ErrInvalidPadding, len(vals))
	}
}

// Title holds up to six strings embedded in the top and bottom border lines.
// Empty strings take no space.
type Title struct {
	TopLeft      string
	TopCenter    string
	TopRight     string
	BottomLeft   string
	BottomCenter string
	BottomRight  string
}

// BorderStyle colors the border glyphs and embedded titles.
type BorderStyle struct {
	FG string
	BG string
}

// Style names the colors applied to a frame. Empty names apply no styling.
// Names are the 16 ANSI color names ("red", "bright_cyan", ...) or "#rrggbb"
// hex values.
type Style struct {
	FG     string
	BG     string
	Border BorderStyle
}

// Position is a 0-based terminal coordinate. Supplying one switches Frame
// into positioned mode: output embeds absolute cursor moves instead of line
// separators.
type Position struct {
	Top  int
	Left int
}

// Options configures a single Frame call. The zero value renders a flowed,
// unstyled, unpadded light-border box sized to its content.
type Options struct {
	Position *Position

	// Explicit outer dimensions, including border rows/columns. Zero means
	// inferred from content. Width is additionally raised so border corners
	// and titles always fit.
	Width  int
	Height int

	Align   Align
	Padding Padding
	Title   Title
	Border  Border
	Style   Style

	// Count tiles that many identical copies left to right, separated by a
	// two-column gutter. Zero and one both render a single copy.
	Count int
}

// resolvedStyles carries the four style channels used during rendering.
type resolvedStyles struct {
	content termtext.Style
	border  termtext.Style
}

func resolveStyles(s Style) (resolvedStyles, error) {
	contentFG, err := termtext.Named(s.FG)
	if err != nil {
		return resolvedStyles{}, err
	}
	contentBG, err := termtext.Named(s.BG)
	if err != nil {
		return resolvedStyles{}, err
	}
	borderFG, err := termtext.Named(s.Border.FG)
	if err != nil {
		return resolvedStyles{}, err
	}
	borderBG, err := termtext.Named(s.Border.BG)
	if err != nil {
		return resolvedStyles{}, err
	}

	return resolvedStyles{
		content: termtext.Style{Foreground: contentFG, Background: contentBG},
		border:  termtext.Style{Foreground: borderFG, Background: borderBG},
	}, nil
}
