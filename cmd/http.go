package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oseayemenre/alexandria/internal/config"
	"github.com/oseayemenre/alexandria/internal/logger"
	"github.com/oseayemenre/alexandria/internal/routes"
	"github.com/oseayemenre/alexandria/internal/shared"
	"github.com/spf13/cobra"
)

func HTTPCommand(ctx context.Context) *cobra.Command {
	var addr int
	var env string

	cmd := &cobra.Command{
		Use:   "http",
		Short: "run the alexandria status api",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)

			if err != nil {
				return err
			}

			if cmd.Flags().Changed("addr") {
				cfg.Port = addr
			}

			if cmd.Flags().Changed("env") {
				cfg.Env = env
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := logger.New(cfg.Env, os.Stderr)

			if err != nil {
				return err
			}

			httpServer := &http.Server{
				Addr: fmt.Sprintf(":%d", cfg.Port),
				Handler: routes.Mount(&shared.Server{
					Logger: logger,
					Config: cfg,
				}),
				ReadHeaderTimeout: 10 * time.Second,
				IdleTimeout:       15 * time.Minute,
			}

			return serve(ctx, httpServer, logger)
		},
	}

	cmd.Flags().IntVarP(&addr, "addr", "a", 8080, "server port")
	cmd.Flags().StringVarP(&env, "env", "e", "dev", "current working environment")

	return cmd
}

func serve(ctx context.Context, httpServer *http.Server, logger logger.Logger) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	errCh := make(chan error, 1)

	logger.Info("server startup", "status", fmt.Sprintf("server starting on %s", httpServer.Addr))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err

	case <-sig:
		logger.Info("server shutdown", "status", "kill signal recieved")
		ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("error shutting down server: %w", err)
		}

		logger.Info("server shutdown", "status", "shutdown complete...")
		return nil
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")

	if err != nil {
		return nil, err
	}

	return config.Load(path)
}
