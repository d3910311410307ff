package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/browserpick/internal/domain"
	"github.com/jask/browserpick/internal/intent"
)

func newOpenCmd(open envFunc, cfgFile *string) *cobra.Command {
	var (
		appName    string
		background bool
	)
	cmd := &cobra.Command{
		Use:   "open <url>",
		Short: "Open a URL in an app without the picker",
		Long: `Open a URL in the named app. The name is matched against app ids and
names, then by unique prefix, then by edit distance. Without --app the
favourite app is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := open(ctx, *cfgFile)
			if err != nil {
				return err
			}
			defer e.Close()

			s, err := e.store(ctx, args[0])
			if err != nil {
				return err
			}
			apps := s.Snapshot().Apps
			var app domain.App
			if appName == "" {
				fav, ok := domain.Favorite(apps)
				if !ok {
					return errors.New("no favourite app set, pass --app")
				}
				app = fav
			} else if app, err = domain.Resolve(apps, appName); err != nil {
				return err
			}

			s.Dispatch(intent.TileActivated{URL: args[0], AppID: app.ID, IsAlt: background})
			if st := s.Snapshot(); st.StatusErr {
				return errors.New(st.Status)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("opened in ")+app.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&appName, "app", "a", "", "app id or name")
	cmd.Flags().BoolVarP(&background, "background", "b", false, "open without raising the app")
	return cmd
}
