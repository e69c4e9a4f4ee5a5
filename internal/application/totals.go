package application

import (
	"context"
	"fmt"
	"math/big"
)

// TotalWaves reads the contract's wave counter. It needs a provider but no
// connected account.
func (c *Client) TotalWaves(ctx context.Context) (*big.Int, error) {
	provider, err := c.locator.Locate(ctx)
	if err != nil {
		c.log.WithError(err).Info("wallet provider does not exist")
		return nil, fmt.Errorf("locate wallet provider: %w", err)
	}

	portal, err := provider.Portal(ctx, c.currentAccount())
	if err != nil {
		c.log.WithError(err).Error("open wave portal")
		return nil, fmt.Errorf("open wave portal: %w", err)
	}
	defer portal.Close()

	count, err := portal.GetTotalWaves(ctx)
	if err != nil {
		c.log.WithError(err).Error("get total waves")
		return nil, fmt.Errorf("get total waves: %w", err)
	}
	c.log.WithField("total", count.String()).Info("retrieved total wave count")

	return count, nil
}
