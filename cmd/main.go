package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Run() error {
	ctx := context.Background()

	cmd := &cobra.Command{
		Use:           "alexandria",
		Short:         "Library of Alexander: track every page, remember every story",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().String("config", "internal/config/.env", "path to the .env config file")

	cmd.AddCommand(HTTPCommand(ctx))
	cmd.AddCommand(TUICommand(ctx))

	if err := cmd.Execute(); err != nil {
		return err
	}

	return nil
}
