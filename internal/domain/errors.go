package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidBoard = errors.New("invalid board")
)

// BoardError represents a failure loading or validating a board
type BoardError struct {
	Op      string // Operation: "load", "decode", "validate"
	ID      string // Optional: offending board, column or card ID
	Message string // Human-readable context
	Err     error  // Underlying error
}

func (e *BoardError) Error() string {
	if e.ID != "" {
		if e.Err != nil {
			return fmt.Sprintf("board %s [%s]: %s: %v", e.Op, e.ID, e.Message, e.Err)
		}
		return fmt.Sprintf("board %s [%s]: %s", e.Op, e.ID, e.Message)
	}
	if e.Message != "" {
		if e.Err != nil {
			return fmt.Sprintf("board %s: %s: %v", e.Op, e.Message, e.Err)
		}
		return fmt.Sprintf("board %s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("board %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("board %s failed", e.Op)
}

func (e *BoardError) Unwrap() error {
	return e.Err
}
