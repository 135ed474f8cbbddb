package canvas

// Mode is the active drawing tool. Modes are mutually exclusive.
type Mode int

const (
	ModeFreehand Mode = iota
	ModeRectangle
	ModeCircle
	ModeFill
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeFreehand:
		return "freehand"
	case ModeRectangle:
		return "rectangle"
	case ModeCircle:
		return "circle"
	case ModeFill:
		return "fill"
	default:
		return "unknown"
	}
}
