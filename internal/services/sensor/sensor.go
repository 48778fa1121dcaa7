// Package sensor decides when a press turns into a drag.
//
// A plain click must never start a drag, so a pointer press only activates
// after the pointer has travelled a minimum distance, and a touch press only
// after it has been held for a delay without drifting past a tolerance.
package sensor

import (
	"math"
	"time"

	"github.com/riordanpawley/dragboard/internal/core/collision"
)

// PointerConstraint activates a pointer drag once the pointer has moved
// Distance away from the press point.
type PointerConstraint struct {
	Distance float64
}

// TouchConstraint activates a touch drag once the press has been held for
// Delay. Moving more than Tolerance away before that aborts the press.
type TouchConstraint struct {
	Delay     time.Duration
	Tolerance float64
}

// Input identifies the device behind a press.
type Input int

const (
	InputPointer Input = iota
	InputTouch
)

func (i Input) String() string {
	switch i {
	case InputPointer:
		return "pointer"
	case InputTouch:
		return "touch"
	default:
		return "unknown"
	}
}

// State is the phase of the press being tracked.
type State int

const (
	StateIdle State = iota
	StatePending
	StateActive
)

// Activator tracks a single press from down to up.
type Activator struct {
	pointer PointerConstraint
	touch   TouchConstraint

	state     State
	input     Input
	origin    collision.Point
	pressedAt time.Time
}

// NewActivator creates an activator with the given constraints
func NewActivator(pointer PointerConstraint, touch TouchConstraint) *Activator {
	return &Activator{pointer: pointer, touch: touch}
}

// State returns the current phase
func (a *Activator) State() State {
	return a.state
}

// Origin returns where the current press began
func (a *Activator) Origin() collision.Point {
	return a.origin
}

// Press records the start of a press. A press while one is already tracked
// replaces it.
func (a *Activator) Press(input Input, at collision.Point, now time.Time) {
	a.state = StatePending
	a.input = input
	a.origin = at
	a.pressedAt = now
}

// Move feeds a movement and reports whether this movement activated the
// drag. It returns false for every move after activation.
func (a *Activator) Move(at collision.Point, now time.Time) bool {
	if a.state != StatePending {
		return false
	}

	moved := math.Hypot(at.X-a.origin.X, at.Y-a.origin.Y)
	switch a.input {
	case InputTouch:
		if moved > a.touch.Tolerance {
			a.Reset()
			return false
		}
		return a.Tick(now)
	default:
		if moved >= a.pointer.Distance {
			a.state = StateActive
			return true
		}
		return false
	}
}

// Tick checks the touch delay without movement. It reports whether the drag
// became active on this tick.
func (a *Activator) Tick(now time.Time) bool {
	if a.state != StatePending || a.input != InputTouch {
		return false
	}
	if now.Sub(a.pressedAt) >= a.touch.Delay {
		a.state = StateActive
		return true
	}
	return false
}

// Release ends the press. It reports whether a drag was active, which tells
// a drop apart from a click.
func (a *Activator) Release() bool {
	wasActive := a.state == StateActive
	a.Reset()
	return wasActive
}

// Reset forgets the current press
func (a *Activator) Reset() {
	a.state = StateIdle
	a.origin = collision.Point{}
	a.pressedAt = time.Time{}
}
