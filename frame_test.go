package boxframe

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boxframe/boxframe/internal/q/termtext"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestFrameThickExplicitDimensions(t *testing.T) {
	out, err := Frame(Options{
		Width:  35,
		Height: 4,
		Border: Border{Type: GlyphSetThick},
	})
	require.NoError(t, err)

	expected := "╔" + strings.Repeat("═", 33) + "╗\n" +
		"║" + strings.Repeat(" ", 33) + "║\n" +
		"║" + strings.Repeat(" ", 33) + "║\n" +
		"╚" + strings.Repeat("═", 33) + "╝\n"
	require.Equal(t, expected, out)
}

func TestFramePositionedHiddenTopBottom(t *testing.T) {
	out, err := Frame(Options{
		Position: &Position{Top: 0, Left: 0},
		Width:    35,
		Height:   4,
		Border:   Border{Type: GlyphSetThick, Top: SideHidden, Bottom: SideHidden},
	}, "Hello Piotr!")
	require.NoError(t, err)

	expected := "\x1b[2;1H" + "║" + "Hello Piotr!" + strings.Repeat(" ", 21) + "\x1b[2;35H" + "║" +
		"\x1b[3;1H" + "║" + "\x1b[3;35H" + "║"
	require.Equal(t, expected, out)
}

func TestFrameCrossCornersLineFill(t *testing.T) {
	out, err := Frame(Options{
		Width:  10,
		Height: 4,
		Border: Border{
			Top:         Side(KindLine),
			Bottom:      Side(KindLine),
			TopLeft:     KindCross,
			TopRight:    KindCross,
			BottomLeft:  KindCross,
			BottomRight: KindCross,
		},
	})
	require.NoError(t, err)

	expected := "┼────────┼\n" +
		"│        │\n" +
		"│        │\n" +
		"┼────────┼\n"
	require.Equal(t, expected, out)
}

func TestFrameRectangular(t *testing.T) {
	for _, set := range []GlyphSet{GlyphSetASCII, GlyphSetLight, GlyphSetThick} {
		t.Run(string(set), func(t *testing.T) {
			out, err := Frame(Options{
				Width:  12,
				Height: 5,
				Border: Border{Type: set},
			}, "hi")
			require.NoError(t, err)

			rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
			require.Len(t, rows, 5)
			for _, row := range rows {
				assert.Equal(t, 12, termtext.VisibleWidth(row))
			}
		})
	}
}

func TestFrameInferredDimensions(t *testing.T) {
	out, err := Frame(Options{}, "hello")
	require.NoError(t, err)

	expected := "┌─────┐\n" +
		"│hello│\n" +
		"└─────┘\n"
	require.Equal(t, expected, out)
}

func TestFrameInferredWithPadding(t *testing.T) {
	out, err := Frame(Options{Padding: Pad(1)}, "hi")
	require.NoError(t, err)

	expected := "┌────┐\n" +
		"│    │\n" +
		"│ hi │\n" +
		"│    │\n" +
		"└────┘\n"
	require.Equal(t, expected, out)
}

func TestFrameEmptyContentDefaults(t *testing.T) {
	// No content and no dimensions falls back to a minimal 3x2 box rather
	// than failing.
	out, err := Frame(Options{})
	require.NoError(t, err)

	expected := "┌─┐\n" +
		"└─┘\n"
	require.Equal(t, expected, out)
}

func TestFrameWrapsToExplicitWidth(t *testing.T) {
	out, err := Frame(Options{Width: 7, Height: 4}, "abcdefghij")
	require.NoError(t, err)

	expected := "┌─────┐\n" +
		"│abcde│\n" +
		"│fghij│\n" +
		"└─────┘\n"
	require.Equal(t, expected, out)
}

func TestFrameTitles(t *testing.T) {
	out, err := Frame(Options{
		Width:  14,
		Height: 3,
		Title:  Title{TopLeft: " hi ", BottomRight: " bye "},
	})
	require.NoError(t, err)

	expected := "┌ hi ────────┐\n" +
		"│            │\n" +
		"└─────── bye ┘\n"
	require.Equal(t, expected, out)
}

func TestFrameTitleRaisesWidth(t *testing.T) {
	// Explicit width is a request, not a cap: titles and corners never get
	// clipped.
	out, err := Frame(Options{
		Width: 4,
		Title: Title{TopCenter: " long title "},
	})
	require.NoError(t, err)

	rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Equal(t, "┌ long title ┐", rows[0])
	for _, row := range rows {
		assert.Equal(t, 14, termtext.VisibleWidth(row))
	}
}

func TestFrameAlignment(t *testing.T) {
	out, err := Frame(Options{Width: 8, Align: AlignRight}, "hi")
	require.NoError(t, err)

	rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Equal(t, "│    hi│", rows[1])
}

func TestFrameStyledContent(t *testing.T) {
	out, err := Frame(Options{
		Width:  8,
		Height: 3,
		Style:  Style{FG: "red", Border: BorderStyle{FG: "blue"}},
	}, "hi")
	require.NoError(t, err)

	rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, rows, 3)

	blue := "\x1b[34m"
	red := "\x1b[31m"
	assert.True(t, strings.HasPrefix(rows[0], blue+"┌"+termtext.Reset))
	assert.Contains(t, rows[1], blue+"│"+termtext.Reset)
	assert.Contains(t, rows[1], red+"hi    "+termtext.Reset)
	assert.Equal(t, "│hi    │", stripANSI(rows[1]))

	// Styling never changes geometry.
	for _, row := range rows {
		assert.Equal(t, 8, termtext.VisibleWidth(row))
	}
}

func TestFrameUnknownColor(t *testing.T) {
	_, err := Frame(Options{Style: Style{FG: "ultraviolet"}}, "hi")
	require.ErrorIs(t, err, termtext.ErrUnknownColor)
}

func TestFrameInvalidBorderValue(t *testing.T) {
	_, err := Frame(Options{Border: Border{Left: "unknown"}}, "hi")
	require.ErrorIs(t, err, ErrInvalidBorder)
	assert.Contains(t, err.Error(), `"unknown"`)
	assert.Contains(t, err.Error(), "left")
}

func TestFrameInvalidBorderType(t *testing.T) {
	_, err := Frame(Options{Border: Border{Type: "fancy"}}, "hi")
	require.ErrorIs(t, err, ErrInvalidBorder)
	assert.Contains(t, err.Error(), `"fancy"`)
}

func TestFrameIdempotent(t *testing.T) {
	opts := Options{
		Width:   20,
		Height:  6,
		Align:   AlignCenter,
		Padding: Pad(1),
		Title:   Title{TopCenter: " t "},
		Border:  Border{Type: GlyphSetThick},
		Style:   Style{FG: "red", Border: BorderStyle{FG: "blue"}},
		Count:   2,
	}

	first, err := Frame(opts, "same input")
	require.NoError(t, err)
	second, err := Frame(opts, "same input")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestFrameTiling(t *testing.T) {
	single, err := Frame(Options{Width: 8, Height: 3}, "hi")
	require.NoError(t, err)
	tiled, err := Frame(Options{Width: 8, Height: 3, Count: 3}, "hi")
	require.NoError(t, err)

	singleRows := strings.Split(strings.TrimSuffix(single, "\n"), "\n")
	tiledRows := strings.Split(strings.TrimSuffix(tiled, "\n"), "\n")
	require.Len(t, tiledRows, len(singleRows))

	for i, row := range singleRows {
		assert.Equal(t, row+gutter+row+gutter+row, tiledRows[i])
	}
}

func TestFramePositionedTiling(t *testing.T) {
	out, err := Frame(Options{
		Position: &Position{Top: 2, Left: 3},
		Width:    6,
		Height:   3,
		Count:    2,
	}, "a")
	require.NoError(t, err)

	// Second copy's right edge: left + width + gutter + width - 1.
	assert.Contains(t, out, termtext.MoveTo(3+6-1, 3))
	assert.Contains(t, out, termtext.MoveTo(3+6+2+6-1, 3))
	// Border rows tile as a flat repeat of the rendered line.
	topLine := "┌────┐"
	assert.Contains(t, out, topLine+gutter+topLine)
}

func TestFramePositionedFlowedEquivalence(t *testing.T) {
	content := "equivalence"
	flowed, err := Frame(Options{
		Width:  15,
		Height: 3,
		Border: Border{Top: SideHidden, Bottom: SideHidden, Left: SideHidden, Right: SideHidden},
	}, content)
	require.NoError(t, err)

	positioned, err := Frame(Options{
		Position: &Position{Top: 0, Left: 0},
		Width:    15,
		Height:   3,
		Border:   Border{Top: SideHidden, Bottom: SideHidden, Left: SideHidden, Right: SideHidden},
	}, content)
	require.NoError(t, err)

	flowedRows := strings.Split(strings.TrimSuffix(flowed, "\n"), "\n")

	// Positioned mode writes one fragment per interior row, addressed by a
	// cursor move. Stripping moves and trailing fill must leave the same
	// visible characters row by row.
	moves := regexp.MustCompile(`\x1b\[[0-9;]*H`)
	fragments := moves.Split(positioned, -1)[1:] // leading move produces an empty head
	require.Len(t, fragments, len(flowedRows))
	for i, fragment := range fragments {
		assert.Equal(t, strings.TrimRight(flowedRows[i], " "), strings.TrimRight(fragment, " "))
	}
}

func TestFrameWindowsSeparator(t *testing.T) {
	out, err := Frame(Options{}, "one\r\ntwo")
	require.NoError(t, err)

	require.Equal(t, "┌───┐\r\n│one│\r\n│two│\r\n└───┘\r\n", out)
}

func TestFrameMultipleContentBlocks(t *testing.T) {
	out, err := Frame(Options{}, "one", "two")
	require.NoError(t, err)

	require.Equal(t, "┌───┐\n│one│\n│two│\n└───┘\n", out)
}

func TestFrameFunc(t *testing.T) {
	out, err := FrameFunc(Options{}, func() string { return "generated" })
	require.NoError(t, err)

	direct, err := Frame(Options{}, "generated")
	require.NoError(t, err)
	require.Equal(t, direct, out)
}

func TestFramePositionedStyledFills(t *testing.T) {
	// With a content style set, positioned mode paints the interior fill so
	// the background color covers the whole box.
	out, err := Frame(Options{
		Position: &Position{Top: 0, Left: 0},
		Width:    8,
		Height:   3,
		Style:    Style{BG: "blue"},
	}, "x")
	require.NoError(t, err)

	assert.Contains(t, out, "\x1b[44m"+"x     "+termtext.Reset)
}
