package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// BoardsRegistry holds the named board files the user has registered
type BoardsRegistry struct {
	Boards       []BoardEntry `json:"boards"`
	DefaultBoard string       `json:"defaultBoard"`
}

// BoardEntry is a registered board file
type BoardEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

var (
	// ErrBoardNotFound is returned when a board doesn't exist in the registry
	ErrBoardNotFound = errors.New("board not found")
	// ErrDuplicateBoard is returned when trying to add a board name twice
	ErrDuplicateBoard = errors.New("board already exists")
	// ErrEmptyName is returned when the board name is empty
	ErrEmptyName = errors.New("board name cannot be empty")
	// ErrEmptyPath is returned when the board path is empty
	ErrEmptyPath = errors.New("board path cannot be empty")
	// ErrNotBoardFile is returned when the path is not a readable .json file
	ErrNotBoardFile = errors.New("path is not a board json file")
)

// LoadBoardsRegistry loads the registry from disk.
// Returns an empty registry if the file doesn't exist.
func LoadBoardsRegistry() (*BoardsRegistry, error) {
	path, err := registryPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &BoardsRegistry{Boards: []BoardEntry{}}, nil
	}
	if err != nil {
		return nil, err
	}

	var registry BoardsRegistry
	if err := json.Unmarshal(data, &registry); err != nil {
		return nil, err
	}
	return &registry, nil
}

// SaveBoardsRegistry saves the registry to disk
func SaveBoardsRegistry(reg *BoardsRegistry) error {
	path, err := registryPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Add registers a board file under name. The first board becomes the default.
func (r *BoardsRegistry) Add(name, path string) error {
	if name == "" {
		return ErrEmptyName
	}
	if path == "" {
		return ErrEmptyPath
	}
	if _, err := r.Get(name); err == nil {
		return ErrDuplicateBoard
	}
	if !isBoardFile(path) {
		return ErrNotBoardFile
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	r.Boards = append(r.Boards, BoardEntry{Name: name, Path: abs})
	if len(r.Boards) == 1 {
		r.DefaultBoard = name
	}
	return nil
}

// Remove drops a board from the registry
func (r *BoardsRegistry) Remove(name string) error {
	if name == "" {
		return ErrEmptyName
	}

	idx := -1
	for i, b := range r.Boards {
		if b.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrBoardNotFound
	}

	kept := make([]BoardEntry, 0, len(r.Boards)-1)
	kept = append(kept, r.Boards[:idx]...)
	r.Boards = append(kept, r.Boards[idx+1:]...)

	// Fall back to the first remaining board
	if r.DefaultBoard == name {
		r.DefaultBoard = ""
		if len(r.Boards) > 0 {
			r.DefaultBoard = r.Boards[0].Name
		}
	}
	return nil
}

// SetDefault sets the board opened when no name is given
func (r *BoardsRegistry) SetDefault(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, err := r.Get(name); err != nil {
		return err
	}
	r.DefaultBoard = name
	return nil
}

// Get retrieves a board by name
func (r *BoardsRegistry) Get(name string) (*BoardEntry, error) {
	for _, b := range r.Boards {
		if b.Name == name {
			return &b, nil
		}
	}
	return nil, ErrBoardNotFound
}

// GetDefault returns the default board, or nil if none is set
func (r *BoardsRegistry) GetDefault() *BoardEntry {
	if r.DefaultBoard == "" {
		return nil
	}
	b, err := r.Get(r.DefaultBoard)
	if err != nil {
		return nil
	}
	return b
}

// FindByPath finds a registered board by its file path
func (r *BoardsRegistry) FindByPath(path string) *BoardEntry {
	cleanPath := filepath.Clean(path)
	for _, b := range r.Boards {
		if filepath.Clean(b.Path) == cleanPath {
			return &b
		}
	}
	return nil
}

// ResolveBoardPath picks the board file to open. An explicit name wins, then
// the board.path setting, then the registry default. An empty result means
// the built-in sample board.
func ResolveBoardPath(cfg *Config, reg *BoardsRegistry, name string) (string, error) {
	if name != "" {
		if reg == nil {
			return "", ErrBoardNotFound
		}
		b, err := reg.Get(name)
		if err != nil {
			return "", err
		}
		return b.Path, nil
	}
	if cfg != nil && cfg.Board.Path != "" {
		return cfg.Board.Path, nil
	}
	if reg != nil {
		if b := reg.GetDefault(); b != nil {
			return b.Path, nil
		}
	}
	return "", nil
}

// registryPath returns the path to the registry file.
// Tests override it.
var registryPath = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "dragboard", "boards.json"), nil
}

// isBoardFile checks that path is an existing regular .json file
func isBoardFile(path string) bool {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
