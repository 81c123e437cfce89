package boxframe

// Preset frames wrap a single message in a ready-made look. Overrides merge
// shallowly: a caller-supplied top-level field (Style, Title, Border, ...)
// replaces the preset's value for that field wholesale.

var infoPreset = Options{
	Padding: Pad(1),
	Title:   Title{TopLeft: " ℹ INFO "},
	Style: Style{
		FG:     "bright_cyan",
		Border: BorderStyle{FG: "bright_cyan"},
	},
}

var warnPreset = Options{
	Padding: Pad(1),
	Title:   Title{TopLeft: " ⚠ WARNING "},
	Style: Style{
		FG:     "bright_yellow",
		Border: BorderStyle{FG: "bright_yellow"},
	},
}

var successPreset = Options{
	Padding: Pad(1),
	Title:   Title{TopLeft: " ✔ OK "},
	Style: Style{
		FG:     "bright_green",
		Border: BorderStyle{FG: "bright_green"},
	},
}

var errorPreset = Options{
	Padding: Pad(1),
	Title:   Title{TopLeft: " ⨯ ERROR "},
	Style: Style{
		FG:     "bright_white",
		BG:     "red",
		Border: BorderStyle{FG: "bright_white", BG: "red"},
	},
}

// Info renders message in the informational preset.
func Info(message string, overrides Options) (string, error) {
	return Frame(mergeOptions(infoPreset, overrides), message)
}

// Warn renders message in the warning preset.
func Warn(message string, overrides Options) (string, error) {
	return Frame(mergeOptions(warnPreset, overrides), message)
}

// Success renders message in the success preset.
func Success(message string, overrides Options) (string, error) {
	return Frame(mergeOptions(successPreset, overrides), message)
}

// Error renders message in the error preset.
func Error(message string, overrides Options) (string, error) {
	return Frame(mergeOptions(errorPreset, overrides), message)
}

// mergeOptions overlays override on base, field by top-level field. A zero
// override field keeps the base value; a set one replaces it entirely. Note
// the merge is shallow: overriding Style drops the base's Style.Border too.
func mergeOptions(base, override Options) Options {
	out := base

	if override.Position != nil {
		out.Position = override.Position
	}
	if override.Width != 0 {
		out.Width = override.Width
	}
	if override.Height != 0 {
		out.Height = override.Height
	}
	if override.Align != "" {
		out.Align = override.Align
	}
	if override.Padding != (Padding{}) {
		out.Padding = override.Padding
	}
	if override.Title != (Title{}) {
		out.Title = override.Title
	}
	if override.Border != (Border{}) {
		out.Border = override.Border
	}
	if override.Style != (Style{}) {
		out.Style = override.Style
	}
	if override.Count != 0 {
		out.Count = override.Count
	}

	return out
}
