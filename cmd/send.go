package cmd

import (
	"fmt"
	"strings"

	portaladapter "github.com/bnema/wave-portal-cli/internal/adapters/render/portal"
	"github.com/spf13/cobra"
)

func newSendCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "send <message>",
		Short: "Wave at the portal with a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireConnected(cmd, app); err != nil {
				return err
			}

			app.client.SetDraft(strings.Join(args, " "))
			if err := portaladapter.RunMining(cmd.Context(), cmd.ErrOrStderr(), app.client.SubmitWave); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Wave mined.")
			return err
		},
	}
}
