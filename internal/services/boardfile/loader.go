// Package boardfile loads boards from JSON documents.
package boardfile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/riordanpawley/dragboard/internal/domain"
)

// Loader reads board documents and hands back normalized, validated boards
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new Loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load reads the board at path. An empty path yields the sample board.
func (l *Loader) Load(path string) (domain.Board, error) {
	if path == "" {
		l.logger.Debug("no board path configured, using sample board")
		return Sample(), nil
	}

	l.logger.Debug("loading board", "path", path)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Board{}, &domain.BoardError{Op: "load", Message: path, Err: domain.ErrNotFound}
		}
		return domain.Board{}, &domain.BoardError{Op: "load", Message: path, Err: err}
	}

	board, err := l.Decode(data)
	if err != nil {
		return domain.Board{}, err
	}
	l.logger.Info("board loaded", "path", path, "board_id", board.ID,
		"columns", len(board.Columns), "cards", board.CardCount())
	return board, nil
}

// Decode parses a board document, arranges it by its order arrays and checks
// the board invariants.
func (l *Loader) Decode(data []byte) (domain.Board, error) {
	var board domain.Board
	if err := json.Unmarshal(data, &board); err != nil {
		return domain.Board{}, &domain.BoardError{Op: "decode", Message: "failed to parse JSON", Err: err}
	}

	board = domain.Normalize(board)
	if err := domain.Validate(board); err != nil {
		return domain.Board{}, err
	}
	return board, nil
}

// Encode renders the board as an indented JSON document
func Encode(b domain.Board) ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}
