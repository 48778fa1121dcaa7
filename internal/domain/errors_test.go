package domain

import (
	"errors"
	"testing"
)

func TestBoardError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  BoardError
		want string
	}{
		{
			name: "with id",
			err:  BoardError{Op: "validate", ID: "c1", Message: "duplicate card"},
			want: "board validate [c1]: duplicate card",
		},
		{
			name: "with id and cause",
			err:  BoardError{Op: "validate", ID: "c1", Message: "duplicate card", Err: ErrInvalidBoard},
			want: "board validate [c1]: duplicate card: invalid board",
		},
		{
			name: "with message and cause",
			err:  BoardError{Op: "load", Message: "board.json", Err: ErrNotFound},
			want: "board load: board.json: not found",
		},
		{
			name: "with message only",
			err:  BoardError{Op: "decode", Message: "failed to parse JSON"},
			want: "board decode: failed to parse JSON",
		},
		{
			name: "cause only",
			err:  BoardError{Op: "decode", Err: ErrInvalidBoard},
			want: "board decode: invalid board",
		},
		{
			name: "minimal",
			err:  BoardError{Op: "load"},
			want: "board load failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBoardError_Unwrap(t *testing.T) {
	err := &BoardError{Op: "load", Message: "board.json", Err: ErrNotFound}

	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is should find ErrNotFound")
	}
	if errors.Is(err, ErrInvalidBoard) {
		t.Error("errors.Is should not find ErrInvalidBoard")
	}

	var target *BoardError
	if !errors.As(error(err), &target) || target.Op != "load" {
		t.Error("errors.As should recover the BoardError")
	}
}
