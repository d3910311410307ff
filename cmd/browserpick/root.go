package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jask/browserpick/internal/domain"
	"github.com/jask/browserpick/internal/tui"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c2e7")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	headerStyle = titleStyle.Padding(0, 1)
)

func newRootCmd(open envFunc) *cobra.Command {
	var (
		cfgFile string
		edit    bool
	)
	root := &cobra.Command{
		Use:   "browserpick [url]",
		Short: "Pick which browser opens a URL",
		Long: titleStyle.Render("browserpick") + dimStyle.Render(" - pick which browser opens a URL") + `

Run with a URL to choose an app from a grid of tiles. Press an app's
hotkey or click its tile to open the URL there; hold alt to open it in
the background, shift to keep the picker open. ctrl+e switches to edit
mode for hotkeys, the favourite and hidden apps.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := open(ctx, cfgFile)
			if err != nil {
				return err
			}
			defer e.Close()

			url := ""
			if len(args) == 1 {
				url = args[0]
			}
			s, err := e.store(ctx, url)
			if err != nil {
				return err
			}
			if edit {
				s.SetMode(domain.ModeEdit)
			}
			app := tui.New(s, tui.Options{TileWidth: e.cfg.UI.TileWidth, Columns: e.cfg.UI.Columns})
			defer app.Close()

			p := tea.NewProgram(app,
				tea.WithContext(ctx),
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				e.log.Error("tui", "err", err)
				return err
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/browserpick/config.toml)")
	root.Flags().BoolVarP(&edit, "edit", "e", false, "start in edit mode")

	root.AddCommand(
		newAppsCmd(open, &cfgFile),
		newOpenCmd(open, &cfgFile),
		newHistoryCmd(open, &cfgFile),
		newResetCmd(open, &cfgFile),
		newConfigCmd(&cfgFile),
	)
	return root
}
