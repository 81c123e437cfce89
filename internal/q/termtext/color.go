package termtext

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"
)

// Reset clears all active SGR attributes.
const Reset = "\x1b[0m"

// ErrUnknownColor is returned by Named for color names outside the supported
// palette.
var ErrUnknownColor = errors.New("termtext: unknown color name")

// Color is a terminal color that can render itself as the SGR sequence for
// either the foreground or background channel.
type Color interface {
	// Sequence returns the full escape sequence selecting this color, for the
	// background channel if bg is true.
	Sequence(bg bool) string
	String() string
}

// NoColor is the identity color: it emits no escape sequences.
type NoColor struct{}

func (NoColor) Sequence(bg bool) string { return "" }
func (NoColor) String() string          { return "none" }

// BasicColor is one of the 16 standard ANSI colors, stored as the foreground
// SGR parameter (30-37 for normal, 90-97 for bright).
type BasicColor struct {
	Code int
	Name string
}

func (c BasicColor) Sequence(bg bool) string {
	code := c.Code
	if bg {
		code += 10
	}
	return "\x1b[" + strconv.Itoa(code) + "m"
}

func (c BasicColor) String() string { return c.Name }

// RGBColor is a 24-bit truecolor value.
type RGBColor struct {
	R, G, B uint8
}

func (c RGBColor) Sequence(bg bool) string {
	channel := 38
	if bg {
		channel = 48
	}
	return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", channel, c.R, c.G, c.B)
}

func (c RGBColor) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var namedColors = map[string]BasicColor{
	"black":          {Code: 30, Name: "black"},
	"red":            {Code: 31, Name: "red"},
	"green":          {Code: 32, Name: "green"},
	"yellow":         {Code: 33, Name: "yellow"},
	"blue":           {Code: 34, Name: "blue"},
	"magenta":        {Code: 35, Name: "magenta"},
	"cyan":           {Code: 36, Name: "cyan"},
	"white":          {Code: 37, Name: "white"},
	"bright_black":   {Code: 90, Name: "bright_black"},
	"bright_red":     {Code: 91, Name: "bright_red"},
	"bright_green":   {Code: 92, Name: "bright_green"},
	"bright_yellow":  {Code: 93, Name: "bright_yellow"},
	"bright_blue":    {Code: 94, Name: "bright_blue"},
	"bright_magenta": {Code: 95, Name: "bright_magenta"},
	"bright_cyan":    {Code: 96, Name: "bright_cyan"},
	"bright_white":   {Code: 97, Name: "bright_white"},
}

// Named resolves a color name to a Color. Supported names are the 16 ANSI
// color names ("red", "bright_cyan", ...) and "#rrggbb" hex values. The empty
// name resolves to NoColor.
func Named(name string) (Color, error) {
	if name == "" {
		return NoColor{}, nil
	}

	if c, ok := namedColors[strings.ToLower(name)]; ok {
		return c, nil
	}

	if strings.HasPrefix(name, "#") {
		parsed, err := colorful.Hex(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColor, name)
		}
		r, g, b := parsed.RGB255()
		return RGBColor{R: r, G: g, B: b}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// Style is a foreground/background color pair. The zero value applies no
// styling at all.
type Style struct {
	Foreground Color
	Background Color
}

// IsZero reports whether Apply would return its input unchanged.
func (s Style) IsZero() bool {
	return s.opening() == ""
}

func (s Style) opening() string {
	var b strings.Builder
	if s.Foreground != nil {
		b.WriteString(s.Foreground.Sequence(false))
	}
	if s.Background != nil {
		b.WriteString(s.Background.Sequence(true))
	}
	return b.String()
}

// Apply wraps str in this style's opening sequences and a trailing Reset.
// The zero style (and NoColor channels) return str unchanged, and the empty
// string is never styled.
func (s Style) Apply(str string) string {
	if str == "" {
		return ""
	}
	opening := s.opening()
	if opening == "" {
		return str
	}
	return opening + str + Reset
}

// ColorProfile describes the color fidelity of the attached terminal.
type ColorProfile int

const (
	ColorProfileNone ColorProfile = iota
	ColorProfileANSI
	ColorProfileANSI256
	ColorProfileTrueColor
)

func (p ColorProfile) String() string {
	switch p {
	case ColorProfileANSI:
		return "ansi"
	case ColorProfileANSI256:
		return "ansi256"
	case ColorProfileTrueColor:
		return "truecolor"
	default:
		return "none"
	}
}

// DetectColorProfile probes the environment for the color support of stdout.
// It honors NO_COLOR, then COLORTERM/TERM. Non-terminal stdout reports
// ColorProfileNone.
func DetectColorProfile() ColorProfile {
	if os.Getenv("NO_COLOR") != "" {
		return ColorProfileNone
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ColorProfileNone
	}

	colorTerm := strings.ToLower(os.Getenv("COLORTERM"))
	if colorTerm == "truecolor" || colorTerm == "24bit" {
		return ColorProfileTrueColor
	}

	termEnv := os.Getenv("TERM")
	switch {
	case strings.Contains(termEnv, "256color"):
		return ColorProfileANSI256
	case termEnv == "" || termEnv == "dumb":
		return ColorProfileNone
	default:
		return ColorProfileANSI
	}
}
