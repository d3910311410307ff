package main

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/jask/browserpick/internal/database"
)

func newResetCmd(open envFunc, cfgFile *string) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget hotkeys, favourite, hidden apps and history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("reset deletes all settings and history, pass --yes to confirm")
			}
			ctx := cmd.Context()
			e, err := open(ctx, *cfgFile)
			if err != nil {
				return err
			}
			defer e.Close()

			if err := database.Reset(ctx, e.db, runtime.GOOS); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			e.log.Info("reset")
			fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("restored the default apps"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
