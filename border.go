package boxframe

import (
	"errors"
	"fmt"
)

// ErrInvalidBorder is wrapped by every border validation failure.
var ErrInvalidBorder = errors.New("boxframe: invalid border")

// GlyphSet names a family of 11 border-drawing characters.
type GlyphSet string

const (
	GlyphSetASCII GlyphSet = "ascii"
	GlyphSetLight GlyphSet = "light"
	GlyphSetThick GlyphSet = "thick"
)

// Kind is the abstract role of a border glyph, independent of which glyph
// set realizes it.
type Kind string

const (
	KindCornerBottomRight Kind = "corner_bottom_right"
	KindCornerTopRight    Kind = "corner_top_right"
	KindCornerTopLeft     Kind = "corner_top_left"
	KindCornerBottomLeft  Kind = "corner_bottom_left"
	KindDividerLeft       Kind = "divider_left"
	KindDividerUp         Kind = "divider_up"
	KindDividerDown       Kind = "divider_down"
	KindDividerRight      Kind = "divider_right"
	KindLine              Kind = "line"
	KindPipe              Kind = "pipe"
	KindCross             Kind = "cross"
)

// glyphTable is the single source of truth for border drawing: every glyph
// any component emits is addressed here by kind and set.
var glyphTable = map[GlyphSet]map[Kind]rune{
	GlyphSetASCII: {
		KindCornerBottomRight: '+',
		KindCornerTopRight:    '+',
		KindCornerTopLeft:     '+',
		KindCornerBottomLeft:  '+',
		KindDividerLeft:       '+',
		KindDividerUp:         '+',
		KindDividerDown:       '+',
		KindDividerRight:      '+',
		KindLine:              '-',
		KindPipe:              '|',
		KindCross:             '+',
	},
	GlyphSetLight: {
		KindCornerBottomRight: '┘',
		KindCornerTopRight:    '┐',
		KindCornerTopLeft:     '┌',
		KindCornerBottomLeft:  '└',
		KindDividerLeft:       '┤',
		KindDividerUp:         '┴',
		KindDividerDown:       '┬',
		KindDividerRight:      '├',
		KindLine:              '─',
		KindPipe:              '│',
		KindCross:             '┼',
	},
	GlyphSetThick: {
		KindCornerBottomRight: '╝',
		KindCornerTopRight:    '╗',
		KindCornerTopLeft:     '╔',
		KindCornerBottomLeft:  '╚',
		KindDividerLeft:       '╣',
		KindDividerUp:         '╩',
		KindDividerDown:       '╦',
		KindDividerRight:      '╠',
		KindLine:              '═',
		KindPipe:              '║',
		KindCross:             '╬',
	},
}

// CornerChar returns the character realizing kind in set. It is exported for
// callers assembling custom layouts from frame output. Unknown kinds or sets
// return an error rather than a placeholder.
func CornerChar(kind Kind, set GlyphSet) (rune, error) {
	glyphs, ok := glyphTable[set]
	if !ok {
		return 0, fmt.Errorf("%w: wrong value %q for border type", ErrInvalidBorder, string(set))
	}
	ch, ok := glyphs[kind]
	if !ok {
		return 0, fmt.Errorf("%w: invalid value %q for glyph kind", ErrInvalidBorder, string(kind))
	}
	return ch, nil
}

// Side controls the visibility of one border side. The zero value draws the
// side; SideHidden hides it. Any Kind name is also accepted and counts as
// drawn, mirroring the truthy side values of the configuration format this
// renderer descends from.
type Side string

const (
	SideShown  Side = ""
	SideHidden Side = "hidden"
)

// Border configures the frame border: a glyph set, per-side visibility, and
// per-corner kind overrides. The zero value draws a full light border with
// natural corners.
type Border struct {
	Type GlyphSet // empty means GlyphSetLight

	Top    Side
	Bottom Side
	Left   Side
	Right  Side

	// Corner kind overrides; empty means the natural corner kind.
	TopLeft     Kind
	TopRight    Kind
	BottomLeft  Kind
	BottomRight Kind
}

// borderSpec is a validated, resolved Border: all lookups have been checked
// against the glyph table, so rendering cannot fail mid-way.
type borderSpec struct {
	set GlyphSet

	top    bool
	bottom bool
	left   bool
	right  bool

	topLeft     Kind
	topRight    Kind
	bottomLeft  Kind
	bottomRight Kind
}

// glyph resolves kind against the spec's glyph set. The spec is validated at
// compile time, so resolution cannot miss.
func (bs borderSpec) glyph(kind Kind) string {
	return string(glyphTable[bs.set][kind])
}

// compileBorder validates b and resolves defaults. It fails fast: any
// unknown glyph set, side value, or corner kind aborts before rendering.
func compileBorder(b Border) (borderSpec, error) {
	set := b.Type
	if set == "" {
		set = GlyphSetLight
	}
	if _, ok := glyphTable[set]; !ok {
		return borderSpec{}, fmt.Errorf("%w: wrong value %q for border type", ErrInvalidBorder, string(set))
	}

	spec := borderSpec{set: set}

	sides := []struct {
		key   string
		value Side
		out   *bool
	}{
		{"top", b.Top, &spec.top},
		{"bottom", b.Bottom, &spec.bottom},
		{"left", b.Left, &spec.left},
		{"right", b.Right, &spec.right},
	}
	for _, side := range sides {
		visible, err := sideVisible(side.key, side.value)
		if err != nil {
			return borderSpec{}, err
		}
		*side.out = visible
	}

	corners := []struct {
		key     string
		value   Kind
		natural Kind
		out     *Kind
	}{
		{"top_left", b.TopLeft, KindCornerTopLeft, &spec.topLeft},
		{"top_right", b.TopRight, KindCornerTopRight, &spec.topRight},
		{"bottom_left", b.BottomLeft, KindCornerBottomLeft, &spec.bottomLeft},
		{"bottom_right", b.BottomRight, KindCornerBottomRight, &spec.bottomRight},
	}
	for _, corner := range corners {
		kind := corner.value
		if kind == "" {
			kind = corner.natural
		}
		if !kindKnown(kind) {
			return borderSpec{}, fmt.Errorf("%w: invalid value %q for %s", ErrInvalidBorder, string(corner.value), corner.key)
		}
		*corner.out = kind
	}

	return spec, nil
}

func sideVisible(key string, value Side) (bool, error) {
	switch value {
	case SideShown:
		return true, nil
	case SideHidden:
		return false, nil
	}
	// A glyph kind is a valid, truthy side value.
	if kindKnown(Kind(value)) {
		return true, nil
	}
	return false, fmt.Errorf("%w: invalid value %q for %s", ErrInvalidBorder, string(value), key)
}

func kindKnown(kind Kind) bool {
	_, ok := glyphTable[GlyphSetLight][kind]
	return ok
}
