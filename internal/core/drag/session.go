// Package drag tracks one drag gesture at a time and turns its events into
// board snapshots.
package drag

import (
	"github.com/riordanpawley/dragboard/internal/core/collision"
	"github.com/riordanpawley/dragboard/internal/domain"
)

// Session is the state of the current drag gesture: Idle, DraggingColumn or
// DraggingCard.
type Session interface {
	isSession()
}

// Idle means no drag is in progress.
type Idle struct{}

// DraggingColumn is a column drag. ActiveColumn is the column as it was
// when the drag started.
type DraggingColumn struct {
	ActiveColumnID string
	ActiveColumn   domain.Column
}

// DraggingCard is a card drag.
//
// SourceColumn is captured once at start and never refreshed: intermediate
// moves rewrite the live column, and the drop compares against where the
// card came from.
type DraggingCard struct {
	ActiveCardID string
	ActiveCard   domain.Card
	SourceColumn domain.Column
}

func (Idle) isSession()           {}
func (DraggingColumn) isSession() {}
func (DraggingCard) isSession()   {}

// Item identifies the thing a drag starts on. Kind is supplied by the caller;
// the machine never guesses it from the payload.
type Item struct {
	ID   string
	Kind collision.Kind
}

// ActiveItem is the dragged entity as shown in the floating overlay.
// Exactly one of Column and Card is set.
type ActiveItem struct {
	ID     string
	Kind   collision.Kind
	Column *domain.Column
	Card   *domain.Card
}

// Event is the drag geometry delivered with an over or end event.
type Event struct {
	// Active is the dragged item's rect translated to its current position.
	Active collision.Rect
	// Pointer is nil when the sensor reports no coordinates.
	Pointer    *collision.Point
	Droppables []collision.Droppable
}

func (e Event) args() collision.Args {
	return collision.Args{Active: e.Active, Pointer: e.Pointer, Droppables: e.Droppables}
}
