package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/wave-portal-cli/internal/domain"
)

func (c *Client) SetDraft(text string) {
	c.update(func() {
		c.draft = text
	})
}

// SubmitWave sends the current draft as a wave. The draft is cleared before
// the transaction is dispatched and the sending flag is reset on every path
// once it has been raised.
func (c *Client) SubmitWave(ctx context.Context) error {
	state := c.Snapshot()
	if !state.Connected() {
		c.log.Info("connect a wallet before waving")
		return domain.ErrNotConnected
	}
	if state.Sending {
		c.log.Info("a wave is already being mined")
		return domain.ErrSendInFlight
	}

	provider, err := c.locator.Locate(ctx)
	if err != nil {
		c.log.WithError(err).Info("wallet provider does not exist")
		return fmt.Errorf("locate wallet provider: %w", err)
	}

	portal, err := provider.Portal(ctx, state.Account)
	if err != nil {
		c.log.WithError(err).Error("open wave portal")
		return fmt.Errorf("open wave portal: %w", err)
	}
	defer portal.Close()

	count, err := portal.GetTotalWaves(ctx)
	if err != nil {
		c.log.WithError(err).Error("get total waves")
		return fmt.Errorf("get total waves: %w", err)
	}
	c.log.WithField("total", count.String()).Info("retrieved total wave count")

	var (
		message string
		started bool
	)
	c.update(func() {
		if c.sending {
			return
		}
		c.sending = true
		message = c.draft
		c.draft = ""
		started = true
	})
	if !started {
		c.log.Info("a wave is already being mined")
		return domain.ErrSendInFlight
	}

	finish := sync.OnceFunc(func() {
		c.update(func() {
			c.sending = false
		})
	})
	defer finish()

	tx, err := portal.Wave(ctx, message, c.cfg.GasLimit)
	if err != nil {
		c.log.WithError(err).Error("send wave")
		return fmt.Errorf("send wave: %w", err)
	}

	txLog := c.log.WithField("tx", tx.Hash())
	txLog.Info("mining...")

	waitCtx := ctx
	if c.cfg.ConfirmTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, c.cfg.ConfirmTimeout)
		defer cancel()
	}

	if err := tx.Wait(waitCtx); err != nil {
		txLog.WithError(err).Error("wait for wave to be mined")
		return fmt.Errorf("wait for wave %s: %w", tx.Hash(), err)
	}
	txLog.Info("mined")

	finish()

	count, err = portal.GetTotalWaves(ctx)
	if err != nil {
		c.log.WithError(err).Error("get total waves")
		return fmt.Errorf("get total waves: %w", err)
	}
	c.log.WithField("total", count.String()).Info("retrieved total wave count")

	return nil
}
