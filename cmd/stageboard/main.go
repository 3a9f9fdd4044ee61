// Package main provides the entry point for the Stageboard application.
//
// Stageboard is a TUI Kanban board for tracking client project delivery
// across a fixed seven-stage pipeline. Running it without a subcommand
// opens the board; subcommands cover scripted listings and YAML
// export/import.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jthornberg/stageboard/internal/app"
	"github.com/jthornberg/stageboard/internal/cli"
	"github.com/jthornberg/stageboard/internal/config"
	"github.com/jthornberg/stageboard/internal/services/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "stageboard",
		Short:         "Kanban board for client project delivery",
		Long:          "Stageboard tracks project tasks across a seven-stage delivery pipeline.\nRun without arguments to open the interactive board.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	root.AddCommand(
		newProjectsCmd(&configPath),
		newTasksCmd(&configPath),
		newExportCmd(&configPath),
		newImportCmd(&configPath),
	)
	return root
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// newLogger writes structured logs next to the database so the TUI's
// alternate screen stays clean.
func newLogger(cfg *config.Config) *slog.Logger {
	logPath := filepath.Join(filepath.Dir(cfg.Database.Path), "stageboard.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	return slog.New(slog.NewTextHandler(f, nil))
}

func runTUI(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := newLogger(cfg)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	st, err := store.New(cfg.Database.Path, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	model := app.New(cfg, st, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}

func withDeps(configPath *string, fn func(*cli.Dependencies) error) error {
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	deps, err := cli.NewDependencies(cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	return fn(deps)
}

func newProjectsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List projects with progress and task counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(configPath, cli.ProjectsCommand)
		},
	}
}

func newTasksCmd(configPath *string) *cobra.Command {
	var stage string

	cmd := &cobra.Command{
		Use:   "tasks <project-id>",
		Short: "List a project's tasks grouped by stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(configPath, func(deps *cli.Dependencies) error {
				return cli.TasksCommand(deps, args[0], stage)
			})
		},
	}
	cmd.Flags().StringVarP(&stage, "stage", "s", "", "limit output to one stage")
	return cmd
}

func newExportCmd(configPath *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <project-id>",
		Short: "Export a project as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(configPath, func(deps *cli.Dependencies) error {
				return cli.ExportCommand(deps, args[0], output)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func newImportCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a project from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(configPath, func(deps *cli.Dependencies) error {
				return cli.ImportCommand(deps, args[0])
			})
		},
	}
}
