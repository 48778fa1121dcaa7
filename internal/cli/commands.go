// Package cli implements the non-interactive dragboard subcommands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/dragboard/internal/config"
	"github.com/riordanpawley/dragboard/internal/domain"
	"github.com/riordanpawley/dragboard/internal/services/boardfile"
)

// Dependencies holds all the services needed for CLI commands
type Dependencies struct {
	Config   *config.Config
	Registry *config.BoardsRegistry
	Loader   *boardfile.Loader
	Logger   *slog.Logger
	Out      io.Writer
	// SaveRegistry persists registry changes
	SaveRegistry func(*config.BoardsRegistry) error
}

// NewDependencies wires the CLI services from the loaded config
func NewDependencies(cfg *config.Config, logger *slog.Logger, out io.Writer) (*Dependencies, error) {
	reg, err := config.LoadBoardsRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load boards registry: %w", err)
	}

	return &Dependencies{
		Config:       cfg,
		Registry:     reg,
		Loader:       boardfile.NewLoader(logger),
		Logger:       logger,
		Out:          out,
		SaveRegistry: config.SaveBoardsRegistry,
	}, nil
}

// OpenBoard resolves name (possibly empty) to a board and loads it
func OpenBoard(deps *Dependencies, name string) (domain.Board, error) {
	path, err := config.ResolveBoardPath(deps.Config, deps.Registry, name)
	if err != nil {
		return domain.Board{}, fmt.Errorf("failed to resolve board %q: %w", name, err)
	}
	deps.Logger.Info("opening board", "name", name, "path", path)
	return deps.Loader.Load(path)
}

// ShowCommand prints the board as a table, one row per card, or as the
// normalized board JSON when asJSON is set
func ShowCommand(deps *Dependencies, name string, asJSON bool) error {
	b, err := OpenBoard(deps, name)
	if err != nil {
		return err
	}

	if asJSON {
		data, err := boardfile.Encode(b)
		if err != nil {
			return fmt.Errorf("failed to encode board: %w", err)
		}
		_, err = fmt.Fprintf(deps.Out, "%s\n", data)
		return err
	}

	title := b.Title
	if title == "" {
		title = b.ID
	}
	fmt.Fprintf(deps.Out, "%s (%d columns, %d cards)\n\n", title, len(b.Columns), b.CardCount())

	w := tabwriter.NewWriter(deps.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COLUMN\t#\tCARD ID\tTITLE")
	fmt.Fprintln(w, "------\t-\t-------\t-----")
	for _, col := range b.Columns {
		if len(col.Cards) == 0 {
			fmt.Fprintf(w, "%s\t-\t-\t(empty)\n", col.Title)
			continue
		}
		for i, card := range col.Cards {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", col.Title, i+1, card.ID, ansi.Truncate(card.Title, 60, "..."))
		}
	}
	return w.Flush()
}

// ValidateCommand loads the board and reports whether it is well formed.
// Loading already normalizes and validates.
func ValidateCommand(deps *Dependencies, name string) error {
	b, err := OpenBoard(deps, name)
	if err != nil {
		var be *domain.BoardError
		if errors.As(err, &be) {
			fmt.Fprintf(deps.Out, "✗ %s\n", be.Error())
		}
		return err
	}
	fmt.Fprintf(deps.Out, "✓ board %s is valid: %d columns, %d cards\n", b.ID, len(b.Columns), b.CardCount())
	return nil
}

// ListBoardsCommand prints the registered boards
func ListBoardsCommand(deps *Dependencies) error {
	if len(deps.Registry.Boards) == 0 {
		fmt.Fprintln(deps.Out, "No registered boards")
		return nil
	}

	w := tabwriter.NewWriter(deps.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDEFAULT\tPATH")
	for _, b := range deps.Registry.Boards {
		def := ""
		if b.Name == deps.Registry.DefaultBoard {
			def = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.Name, def, b.Path)
	}
	return w.Flush()
}

// AddBoardCommand registers a board file under name
func AddBoardCommand(deps *Dependencies, name, path string) error {
	// Refuse files that do not load
	if _, err := deps.Loader.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	if err := deps.Registry.Add(name, path); err != nil {
		return fmt.Errorf("failed to add board %q: %w", name, err)
	}
	if err := deps.SaveRegistry(deps.Registry); err != nil {
		return fmt.Errorf("failed to save registry: %w", err)
	}
	fmt.Fprintf(deps.Out, "✓ Added board %s\n", name)
	return nil
}

// RemoveBoardCommand unregisters a board; the file itself is kept
func RemoveBoardCommand(deps *Dependencies, name string) error {
	if err := deps.Registry.Remove(name); err != nil {
		return fmt.Errorf("failed to remove board %q: %w", name, err)
	}
	if err := deps.SaveRegistry(deps.Registry); err != nil {
		return fmt.Errorf("failed to save registry: %w", err)
	}
	fmt.Fprintf(deps.Out, "✓ Removed board %s\n", name)
	return nil
}

// DefaultBoardCommand sets the board opened when no name is given
func DefaultBoardCommand(deps *Dependencies, name string) error {
	if err := deps.Registry.SetDefault(name); err != nil {
		return fmt.Errorf("failed to set default board %q: %w", name, err)
	}
	if err := deps.SaveRegistry(deps.Registry); err != nil {
		return fmt.Errorf("failed to save registry: %w", err)
	}
	fmt.Fprintf(deps.Out, "✓ Default board is now %s\n", name)
	return nil
}

// ConfigCommand prints the effective configuration
func ConfigCommand(deps *Dependencies) error {
	data, err := config.MarshalVersionedConfig(deps.Config)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Out, string(data))
	return nil
}

// PrintUsage prints CLI usage information
func PrintUsage(w io.Writer) {
	usage := `Usage: dragboard [command] [arguments]

Commands:
  (no command)             Open the board in the TUI
  open <name>              Open a registered board in the TUI
  show [name] [--json]     Print the board as a table, or as JSON
  validate [name]          Check that the board file is well formed
  boards                   List registered boards
  boards add <name> <path> Register a board file
  boards rm <name>         Unregister a board
  boards default <name>    Set the default board
  config                   Print the effective configuration
  help                     Show this help message

Without a name the board comes from board.path in .dragboard.json, then the
default registered board, then the built-in sample board.

Environment variables DRAGBOARD_<SECTION>_<KEY> override config values, e.g.
DRAGBOARD_BOARD_PATH, DRAGBOARD_LOG_LEVEL, DRAGBOARD_SENSORS_POINTER_DISTANCE.
`
	fmt.Fprint(w, usage)
}
