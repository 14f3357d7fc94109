package shuffle

import "log/slog"

// Mode identifies a reordering policy.
type Mode string

const (
	// ModeOff performs no reordering, only trimming.
	ModeOff Mode = "off"
	// ModeAll permutes every active row.
	ModeAll Mode = "all"
	// ModeTrailing keeps the first row fixed and permutes the rest.
	ModeTrailing Mode = "trailing"
	// ModeLeading permutes everything before the final active row.
	ModeLeading Mode = "leading"
	// ModeBetween keeps the first and final active rows fixed.
	ModeBetween Mode = "between"
	// ModeProgressive anchors to the final row of the full embedding.
	ModeProgressive Mode = "progressive"
	// ModeDynamic delegates to Between, Trailing, or All by count.
	ModeDynamic Mode = "dynamic"
)

// ParseMode normalizes a mode value to its canonical Mode.
//
// Accepted values:
//   - bool: true means ModeAll, false means ModeOff
//   - Mode or string: any canonical mode name, plus the alias "on" for ModeAll
//
// Anything else falls back to ModeOff. The fallback is deliberately silent
// at the API level (callers get a working policy, never an error); a
// warning is logged so misconfigurations remain visible.
func ParseMode(v any) Mode {
	switch m := v.(type) {
	case bool:
		if m {
			return ModeAll
		}
		return ModeOff
	case Mode:
		return normalize(string(m))
	case string:
		return normalize(m)
	}

	slog.Warn("unrecognized shuffle mode value, using off", "value", v)
	return ModeOff
}

func normalize(s string) Mode {
	switch s {
	case "on":
		return ModeAll
	case string(ModeOff), string(ModeAll), string(ModeTrailing), string(ModeLeading),
		string(ModeBetween), string(ModeProgressive), string(ModeDynamic):
		return Mode(s)
	}

	slog.Warn("unrecognized shuffle mode, using off", "mode", s)
	return ModeOff
}

// Valid reports whether m is a canonical mode name.
// Aliases ("on") are not valid; run them through ParseMode first.
func (m Mode) Valid() bool {
	switch m {
	case ModeOff, ModeAll, ModeTrailing, ModeLeading, ModeBetween, ModeProgressive, ModeDynamic:
		return true
	}
	return false
}

// String returns the canonical mode name.
func (m Mode) String() string {
	return string(m)
}
