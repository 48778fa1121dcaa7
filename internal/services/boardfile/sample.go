package boardfile

import "github.com/riordanpawley/dragboard/internal/domain"

// Sample returns a small board for trying the interface without a file
func Sample() domain.Board {
	todo := domain.Column{
		ID:    "column-todo",
		Title: "To Do",
	}.WithCards([]domain.Card{
		{ID: "card-1", ColumnID: "column-todo", Title: "Sketch board layout"},
		{ID: "card-2", ColumnID: "column-todo", Title: "Pick collision strategy"},
		{ID: "card-3", ColumnID: "column-todo", Title: "Write reorder tests"},
	})
	doing := domain.Column{
		ID:    "column-doing",
		Title: "In Progress",
	}.WithCards([]domain.Card{
		{ID: "card-4", ColumnID: "column-doing", Title: "Drag session state machine"},
		{ID: "card-5", ColumnID: "column-doing", Title: "Touch activation delay"},
	})
	review := domain.Column{
		ID:    "column-review",
		Title: "Review",
	}.WithCards([]domain.Card{})
	done := domain.Column{
		ID:    "column-done",
		Title: "Done",
	}.WithCards([]domain.Card{
		{ID: "card-6", ColumnID: "column-done", Title: "Board model"},
	})

	return domain.Board{
		ID:    "board-sample",
		Title: "Sample board",
	}.WithColumns([]domain.Column{todo, doing, review, done})
}
