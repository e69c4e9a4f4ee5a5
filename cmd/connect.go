package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	portaladapter "github.com/bnema/wave-portal-cli/internal/adapters/render/portal"
	"github.com/bnema/wave-portal-cli/internal/application"
	"github.com/bnema/wave-portal-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newConnectCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Authorize a keystore account for this client",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := app.client.RequestConnection(cmd.Context())
			app.flushAlerts(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Connected: %s\n", app.client.Snapshot().Account)
			return err
		},
	}
}

func newWavesCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "waves",
		Short: "Show every wave sent to the portal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := loadHistory(cmd, app)
			if err != nil {
				return err
			}

			return writeStateOutput(cmd, app, state, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print waves as JSON")

	return cmd
}

// loadHistory restores an earlier authorization and reads the full history.
// The history is read even without an authorized account.
func loadHistory(cmd *cobra.Command, app *app) (application.State, error) {
	if err := app.client.CheckExistingAuthorization(cmd.Context()); err != nil {
		return application.State{}, err
	}

	if !app.client.Snapshot().Connected() {
		if err := app.client.RefreshHistory(cmd.Context()); err != nil {
			return application.State{}, err
		}
	}

	return app.client.Snapshot(), nil
}

type wavesOutput struct {
	Account string        `json:"account"`
	Waves   []domain.Wave `json:"waves"`
}

func writeStateOutput(cmd *cobra.Command, app *app, state application.State, asJSON bool) error {
	if asJSON {
		waves := state.Waves
		if waves == nil {
			waves = []domain.Wave{}
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(wavesOutput{Account: state.Account, Waves: waves})
	}

	rendered, err := app.renderer(state, portaladapter.RenderOptions{Location: app.cfg.Location})
	if err != nil {
		return fmt.Errorf("render waves: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func newTotalCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Print the number of waves the portal has received",
		RunE: func(cmd *cobra.Command, _ []string) error {
			total, err := app.client.TotalWaves(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), total.String())
			return err
		},
	}
}

func requireConnected(cmd *cobra.Command, app *app) error {
	if err := app.client.CheckExistingAuthorization(cmd.Context()); err != nil {
		return err
	}
	if !app.client.Snapshot().Connected() {
		return fmt.Errorf("%w: run `wave connect` first", domain.ErrNotConnected)
	}

	return nil
}

func isProviderMissing(err error) bool {
	return errors.Is(err, domain.ErrProviderUnavailable)
}
