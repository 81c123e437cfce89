package boxframe

import (
	"strings"

	"github.com/boxframe/boxframe/internal/q/termtext"
)

// edgeTitles is one border edge's worth of title strings and corner glyphs.
type edgeTitles struct {
	leftCorner  string
	rightCorner string
	left        string
	center      string
	right       string
}

func topEdge(title Title, spec borderSpec) edgeTitles {
	e := edgeTitles{
		left:   title.TopLeft,
		center: title.TopCenter,
		right:  title.TopRight,
	}
	if spec.left {
		e.leftCorner = spec.glyph(spec.topLeft)
	}
	if spec.right {
		e.rightCorner = spec.glyph(spec.topRight)
	}
	return e
}

func bottomEdge(title Title, spec borderSpec) edgeTitles {
	e := edgeTitles{
		left:   title.BottomLeft,
		center: title.BottomCenter,
		right:  title.BottomRight,
	}
	if spec.left {
		e.leftCorner = spec.glyph(spec.bottomLeft)
	}
	if spec.right {
		e.rightCorner = spec.glyph(spec.bottomRight)
	}
	return e
}

// spaceTaken is the number of columns the edge's titles and corners consume.
// It is a lower bound on box width: Frame raises an under-specified width to
// it so titles and corners are never clipped.
func (e edgeTitles) spaceTaken() int {
	return termtext.VisibleWidth(e.left) +
		termtext.VisibleWidth(e.center) +
		termtext.VisibleWidth(e.right) +
		len([]rune(e.leftCorner)) +
		len([]rune(e.rightCorner))
}

// render lays the edge out over width columns: corner, left title, a run of
// line glyphs, center title, the remaining run, right title, corner. Absent
// pieces contribute empty strings and the runs absorb the slack; the left
// run takes the floor half, the right run the ceil half. Every segment is
// styled independently.
func (e edgeTitles) render(width int, spec borderSpec, style termtext.Style) string {
	remaining := width - e.spaceTaken()
	if remaining < 0 {
		remaining = 0
	}

	line := spec.glyph(KindLine)
	leftRun := strings.Repeat(line, remaining/2)
	rightRun := strings.Repeat(line, remaining-remaining/2)

	var b strings.Builder
	for _, segment := range []string{
		e.leftCorner,
		e.left,
		leftRun,
		e.center,
		rightRun,
		e.right,
		e.rightCorner,
	} {
		if segment == "" {
			continue
		}
		b.WriteString(style.Apply(segment))
	}
	return b.String()
}
