package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jask/browserpick/internal/database/repository"
)

func newHistoryCmd(open envFunc, cfgFile *string) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently opened URLs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}
			ctx := cmd.Context()
			e, err := open(ctx, *cfgFile)
			if err != nil {
				return err
			}
			defer e.Close()

			recent, err := e.launches.Recent(ctx, limit)
			if err != nil {
				return fmt.Errorf("history: %w", err)
			}
			if len(recent) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("nothing opened yet"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), historyTable(recent))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of launches to show")
	return cmd
}

func historyTable(launches []repository.Launch) string {
	t := table.New().
		Headers("WHEN", "APP", "BG", "URL").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, l := range launches {
		t.Row(l.LaunchedAt.Local().Format(time.DateTime), l.AppID, strconv.FormatBool(l.Background), l.URL)
	}
	return t.String()
}
