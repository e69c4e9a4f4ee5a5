package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Inspect wallet authorizations",
	}

	cmd.AddCommand(
		newAccountListCmd(app),
	)

	return cmd
}

func newAccountListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts this client has been authorized for",
		RunE: func(cmd *cobra.Command, _ []string) error {
			authorizations, err := app.authorizations.List(cmd.Context())
			if err != nil {
				return err
			}

			sort.SliceStable(authorizations, func(i, j int) bool {
				return authorizations[i].AuthorizedAt.After(authorizations[j].AuthorizedAt)
			})

			for _, authorization := range authorizations {
				authorizedAt := "unknown"
				if !authorization.AuthorizedAt.IsZero() {
					authorizedAt = authorization.AuthorizedAt.Format(time.RFC3339)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", authorization.Address, authorizedAt)
			}

			return nil
		},
	}
}
