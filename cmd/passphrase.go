package cmd

import (
	"fmt"

	"github.com/bnema/wave-portal-cli/internal/adapters/ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

func newPassphraseCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Manage keystore passphrases",
	}

	cmd.AddCommand(
		newPassphraseSetCmd(app),
		newPassphraseRemoveCmd(app),
	)

	return cmd
}

func newPassphraseSetCmd(app *app) *cobra.Command {
	var (
		account string
		value   string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the passphrase unlocking a keystore account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !common.IsHexAddress(account) {
				return fmt.Errorf("invalid account address %q", account)
			}
			if value == "" {
				return fmt.Errorf("passphrase value is empty")
			}

			address := common.HexToAddress(account).Hex()
			if err := app.secretStore.Put(cmd.Context(), ethereum.PassphraseKey(address), value); err != nil {
				return fmt.Errorf("store passphrase: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "stored passphrase for %s\n", address)
			return err
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "keystore account address")
	cmd.Flags().StringVar(&value, "value", "", "keystore passphrase")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newPassphraseRemoveCmd(app *app) *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Forget the stored passphrase of a keystore account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !common.IsHexAddress(account) {
				return fmt.Errorf("invalid account address %q", account)
			}

			address := common.HexToAddress(account).Hex()
			if err := app.secretStore.Delete(cmd.Context(), ethereum.PassphraseKey(address)); err != nil {
				return fmt.Errorf("remove passphrase: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed passphrase for %s\n", address)
			return err
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "keystore account address")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}
