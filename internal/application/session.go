package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/wave-portal-cli/internal/domain"
)

const MissingWalletAlert = "Get a wallet! Set rpc.url and wallet.keystore to connect."

// CheckExistingAuthorization adopts the first already-authorized account
// without prompting and refreshes the history when one is found.
func (c *Client) CheckExistingAuthorization(ctx context.Context) error {
	provider, err := c.locator.Locate(ctx)
	if err != nil {
		c.log.WithError(err).Info("make sure you have a wallet configured")
		return fmt.Errorf("locate wallet provider: %w", err)
	}

	accounts, err := provider.Accounts(ctx)
	if err != nil {
		c.log.WithError(err).Error("query authorized accounts")
		return fmt.Errorf("query authorized accounts: %w", err)
	}

	if len(accounts) == 0 {
		c.log.Info("no authorized account found")
		return nil
	}

	account := accounts[0]
	c.log.WithField("account", account).Info("found an authorized account")
	c.update(func() {
		c.account = account
	})

	return c.RefreshHistory(ctx)
}

// RequestConnection asks the wallet for access. A missing wallet raises an
// alert; any other failure is only logged and leaves the state untouched.
func (c *Client) RequestConnection(ctx context.Context) error {
	provider, err := c.locator.Locate(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrProviderUnavailable) {
			c.alerter.Alert(MissingWalletAlert)
		} else {
			c.log.WithError(err).Error("locate wallet provider")
		}
		return fmt.Errorf("locate wallet provider: %w", err)
	}

	accounts, err := provider.RequestAccounts(ctx)
	if err != nil {
		c.log.WithError(err).Error("request accounts")
		return fmt.Errorf("request accounts: %w", err)
	}
	if len(accounts) == 0 {
		c.log.Error("wallet granted no accounts")
		return fmt.Errorf("request accounts: %w", domain.ErrNoAuthorizedAccount)
	}

	account := accounts[0]
	c.log.WithField("account", account).Info("connected")
	c.update(func() {
		c.account = account
	})

	return nil
}
