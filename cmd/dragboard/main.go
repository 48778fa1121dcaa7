// Package main provides the entry point for the dragboard TUI.
//
// dragboard is a terminal Kanban board whose columns and cards are reordered
// by dragging them with the mouse, or moved with the keyboard.
//
// Usage:
//
//	dragboard [command] [arguments]
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/dragboard/internal/app"
	"github.com/riordanpawley/dragboard/internal/cli"
	"github.com/riordanpawley/dragboard/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	deps, err := cli.NewDependencies(cfg, logger, os.Stdout)
	if err != nil {
		return err
	}

	cmd, rest := "", args
	if len(args) > 0 {
		cmd, rest = args[0], args[1:]
	}

	switch cmd {
	case "":
		return runTUI(deps, "")
	case "open":
		if len(rest) != 1 {
			return usageError()
		}
		return runTUI(deps, rest[0])
	case "show":
		name, asJSON := showArgs(rest)
		return cli.ShowCommand(deps, name, asJSON)
	case "validate":
		return cli.ValidateCommand(deps, optional(rest))
	case "boards":
		return runBoards(deps, rest)
	case "config":
		return cli.ConfigCommand(deps)
	case "help", "-h", "--help":
		cli.PrintUsage(os.Stdout)
		return nil
	default:
		return usageError()
	}
}

func runBoards(deps *cli.Dependencies, args []string) error {
	if len(args) == 0 {
		return cli.ListBoardsCommand(deps)
	}
	switch {
	case args[0] == "add" && len(args) == 3:
		return cli.AddBoardCommand(deps, args[1], args[2])
	case args[0] == "rm" && len(args) == 2:
		return cli.RemoveBoardCommand(deps, args[1])
	case args[0] == "default" && len(args) == 2:
		return cli.DefaultBoardCommand(deps, args[1])
	default:
		return usageError()
	}
}

func runTUI(deps *cli.Dependencies, name string) error {
	b, err := cli.OpenBoard(deps, name)
	if err != nil {
		return err
	}

	model := app.New(deps.Config, b, deps.Logger)
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, drag and release events
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// newLogger writes JSON logs to log.file, or discards them. The TUI owns
// stdout and stderr.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	if cfg.Log.File == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, opts)), func() {}, nil
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, opts))
	slog.SetDefault(logger)
	return logger, func() { _ = f.Close() }, nil
}

func optional(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// showArgs splits the --json flag from the optional board name
func showArgs(args []string) (string, bool) {
	var names []string
	asJSON := false
	for _, a := range args {
		if a == "--json" {
			asJSON = true
			continue
		}
		names = append(names, a)
	}
	return optional(names), asJSON
}

func usageError() error {
	cli.PrintUsage(os.Stderr)
	return fmt.Errorf("invalid arguments")
}
