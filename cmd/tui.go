package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/oseayemenre/alexandria/internal/logger"
	"github.com/oseayemenre/alexandria/internal/store"
	"github.com/oseayemenre/alexandria/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotATerminal = errors.New("tui needs an interactive terminal")

func TUICommand(ctx context.Context) *cobra.Command {
	var logFile string
	var route string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "browse your library in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNotATerminal
			}

			cfg, err := loadConfig(cmd)

			if err != nil {
				return err
			}

			if cmd.Flags().Changed("log-file") {
				cfg.Log_file = logFile
			}

			var log logger.Logger = logger.Discard()

			if cfg.Log_file != "" {
				f, err := tea.LogToFile(cfg.Log_file, "alexandria")

				if err != nil {
					return fmt.Errorf("error opening log file: %w", err)
				}
				defer f.Close()

				log = logger.NewSlogLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
			}

			s, err := store.NewMemoryStore()

			if err != nil {
				return err
			}

			books, err := s.GetBooks(ctx)

			if err != nil {
				return fmt.Errorf("error loading books: %w", err)
			}

			showcase, err := s.GetShowcaseBooks(ctx)

			if err != nil {
				return fmt.Errorf("error loading showcase books: %w", err)
			}

			log.Info("tui startup", "books", len(books), "showcase", len(showcase), "route", route)

			p := tea.NewProgram(ui.NewApp(route, books, showcase, log), tea.WithAltScreen(), tea.WithContext(ctx))

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running tui: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "write debug logs to this file")
	cmd.Flags().StringVarP(&route, "route", "r", ui.RouteHome, "route to open on start (/ or /library)")

	return cmd
}
