package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jask/browserpick/internal/catalog"
	"github.com/jask/browserpick/internal/domain"
)

func newAppsCmd(open envFunc, cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "apps",
		Short: "List apps with their hotkey, favourite and visibility",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			e, err := open(ctx, *cfgFile)
			if err != nil {
				return err
			}
			defer e.Close()

			s, err := e.store(ctx, "")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), appsTable(s.Snapshot().Apps))
			return nil
		},
	}
}

func appsTable(apps []domain.App) string {
	t := table.New().
		Headers("", "ID", "NAME", "KEY", "FAV", "SHOWN").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, a := range apps {
		t.Row(catalog.Glyph(a.ID), a.ID, a.Name, a.Hotkey, yesNo(a.IsFav), yesNo(a.IsVisible))
	}
	return t.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
