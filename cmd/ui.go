package cmd

import (
	portaladapter "github.com/bnema/wave-portal-cli/internal/adapters/render/portal"
	"github.com/spf13/cobra"
)

func newUICmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive wave portal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			restore, err := app.logToFile()
			if err != nil {
				return err
			}
			defer restore()

			return portaladapter.Run(cmd.Context(), app.client, portaladapter.RunOptions{
				RenderOptions: portaladapter.RenderOptions{Location: app.cfg.Location},
				Input:         cmd.InOrStdin(),
				Output:        cmd.OutOrStdout(),
				Alerts:        app.alerts,
			})
		},
	}
}
