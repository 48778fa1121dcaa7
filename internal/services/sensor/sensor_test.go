package sensor

import (
	"testing"
	"time"

	"github.com/riordanpawley/dragboard/internal/core/collision"
	"github.com/stretchr/testify/assert"
)

func newTestActivator() *Activator {
	return NewActivator(
		PointerConstraint{Distance: 10},
		TouchConstraint{Delay: 250 * time.Millisecond, Tolerance: 5},
	)
}

func TestPointerActivation(t *testing.T) {
	a := newTestActivator()
	start := time.Unix(0, 0)

	a.Press(InputPointer, collision.Point{X: 100, Y: 100}, start)
	assert.Equal(t, StatePending, a.State())
	assert.Equal(t, collision.Point{X: 100, Y: 100}, a.Origin())

	assert.False(t, a.Move(collision.Point{X: 106, Y: 106}, start), "8.5 cells is below the threshold")
	assert.Equal(t, StatePending, a.State())

	assert.True(t, a.Move(collision.Point{X: 106, Y: 108}, start), "exactly 10 cells activates")
	assert.Equal(t, StateActive, a.State())

	assert.False(t, a.Move(collision.Point{X: 150, Y: 150}, start), "only the first move activates")
	assert.True(t, a.Release())
	assert.Equal(t, StateIdle, a.State())
}

func TestPointerClickIsNotADrag(t *testing.T) {
	a := newTestActivator()
	now := time.Unix(0, 0)

	a.Press(InputPointer, collision.Point{X: 10, Y: 10}, now)
	a.Move(collision.Point{X: 12, Y: 10}, now.Add(time.Second))
	assert.False(t, a.Tick(now.Add(time.Second)), "pointer presses ignore time")
	assert.False(t, a.Release())
}

func TestTouchActivation(t *testing.T) {
	tests := []struct {
		name       string
		moves      []collision.Point
		after      time.Duration
		wantActive bool
		wantState  State
	}{
		{
			name:       "held long enough",
			after:      300 * time.Millisecond,
			wantActive: true,
			wantState:  StateActive,
		},
		{
			name:      "released too early",
			after:     100 * time.Millisecond,
			wantState: StatePending,
		},
		{
			name:       "small wobble within tolerance",
			moves:      []collision.Point{{X: 3, Y: 0}, {X: 0, Y: 4}},
			after:      250 * time.Millisecond,
			wantActive: true,
			wantState:  StateActive,
		},
		{
			name:      "moved past tolerance aborts",
			moves:     []collision.Point{{X: 6, Y: 0}},
			after:     300 * time.Millisecond,
			wantState: StateIdle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestActivator()
			start := time.Unix(0, 0)
			a.Press(InputTouch, collision.Point{}, start)

			for _, p := range tt.moves {
				assert.False(t, a.Move(p, start.Add(10*time.Millisecond)))
			}

			assert.Equal(t, tt.wantActive, a.Tick(start.Add(tt.after)))
			assert.Equal(t, tt.wantState, a.State())
		})
	}
}

func TestTouchActivatesOnMoveAfterDelay(t *testing.T) {
	a := newTestActivator()
	start := time.Unix(0, 0)

	a.Press(InputTouch, collision.Point{X: 1, Y: 1}, start)
	assert.True(t, a.Move(collision.Point{X: 2, Y: 2}, start.Add(time.Second)))
	assert.Equal(t, StateActive, a.State())
}

func TestResetForgetsPress(t *testing.T) {
	a := newTestActivator()
	a.Press(InputPointer, collision.Point{X: 4, Y: 4}, time.Unix(0, 0))
	a.Reset()

	assert.Equal(t, StateIdle, a.State())
	assert.Equal(t, collision.Point{}, a.Origin())
	assert.False(t, a.Move(collision.Point{X: 100, Y: 100}, time.Unix(1, 0)))
}

func TestInputString(t *testing.T) {
	assert.Equal(t, "pointer", InputPointer.String())
	assert.Equal(t, "touch", InputTouch.String())
	assert.Equal(t, "unknown", Input(9).String())
}
