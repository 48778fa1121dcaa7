// Package types contains shared types used across the application.
package types

// Mode represents the current interaction mode
type Mode int

const (
	// ModeNormal moves the cursor
	ModeNormal Mode = iota
	// ModeMove carries the selected card with the cursor keys
	ModeMove
	// ModeDrag is active while a mouse drag session runs
	ModeDrag
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeMove:
		return "MOVE"
	case ModeDrag:
		return "DRAG"
	default:
		return "UNKNOWN"
	}
}
