package cmd

import (
	"github.com/bnema/wave-portal-cli/internal/adapters/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(app *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the client state over HTTP while following new waves",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if err := app.client.CheckExistingAuthorization(ctx); err != nil && !isProviderMissing(err) {
				return err
			}
			if !app.client.Snapshot().Connected() {
				_ = app.client.RefreshHistory(ctx)
			}

			sub, _ := app.client.SubscribeToNewWaves(ctx)
			defer sub.Close()

			if addr == "" {
				addr = app.cfg.ServeAddr
			}

			accessLog := app.logger.Writer()
			defer accessLog.Close()

			app.logger.WithField("addr", addr).Info("serving wave portal mirror")
			return httpapi.New(app.client, httpapi.Options{AccessLog: accessLog, Logger: app.logger}).Listen(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from serve.addr)")

	return cmd
}
