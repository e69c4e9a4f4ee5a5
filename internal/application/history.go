package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/wave-portal-cli/internal/domain"
	"github.com/bnema/wave-portal-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

// RefreshHistory replaces the history with the contract's full wave list.
// On failure the history is left as it was.
func (c *Client) RefreshHistory(ctx context.Context) error {
	provider, err := c.locator.Locate(ctx)
	if err != nil {
		c.log.WithError(err).Info("wallet provider does not exist")
		return fmt.Errorf("locate wallet provider: %w", err)
	}

	portal, err := provider.Portal(ctx, c.currentAccount())
	if err != nil {
		c.log.WithError(err).Error("open wave portal")
		return fmt.Errorf("open wave portal: %w", err)
	}
	defer portal.Close()

	records, err := portal.GetAllWaves(ctx)
	if err != nil {
		c.log.WithError(err).Error("get all waves")
		return fmt.Errorf("get all waves: %w", err)
	}

	waves := domain.WavesFromRemote(records)
	c.update(func() {
		c.history.Replace(waves)
	})
	c.log.WithField("count", len(waves)).Debug("wave history refreshed")

	return nil
}

// SubscribeToNewWaves appends every NewWave event to the history in delivery
// order until the returned handle is closed. Events emitted between a refresh
// and the subscription becoming active may be missed or delivered twice.
func (c *Client) SubscribeToNewWaves(ctx context.Context) (*WaveSubscription, error) {
	provider, err := c.locator.Locate(ctx)
	if err != nil {
		c.log.WithError(err).Info("wallet provider does not exist, not listening for new waves")
		return nil, fmt.Errorf("locate wallet provider: %w", err)
	}

	portal, err := provider.Portal(ctx, c.currentAccount())
	if err != nil {
		c.log.WithError(err).Error("open wave portal")
		return nil, fmt.Errorf("open wave portal: %w", err)
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub, err := portal.WatchNewWaves(subCtx, c.appendRemoteWave)
	if err != nil {
		cancel()
		portal.Close()
		c.log.WithError(err).Error("watch new waves")
		return nil, fmt.Errorf("watch new waves: %w", err)
	}

	handle := &WaveSubscription{
		sub:    sub,
		portal: portal,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go handle.watchErrors(subCtx, c)

	return handle, nil
}

func (c *Client) appendRemoteWave(record domain.RemoteWave) {
	wave := domain.WaveFromRemote(record)
	c.log.WithFields(logrus.Fields{
		"from":      wave.Address,
		"timestamp": record.Timestamp,
		"message":   wave.Message,
	}).Info("NewWave")

	c.update(func() {
		c.history.Append(wave)
	})
}

// WaveSubscription is the registration handle for the NewWave listener.
type WaveSubscription struct {
	sub    ports.Subscription
	portal ports.WavePortal
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func (s *WaveSubscription) watchErrors(ctx context.Context, c *Client) {
	defer close(s.done)

	select {
	case err, ok := <-s.sub.Err():
		if ok && err != nil {
			c.log.WithError(err).Error("new wave subscription dropped")
		}
	case <-ctx.Done():
	}
}

// Close unregisters the listener and releases its channel. It is safe to call
// more than once and on a nil handle.
func (s *WaveSubscription) Close() {
	if s == nil {
		return
	}

	s.once.Do(func() {
		s.cancel()
		s.sub.Unsubscribe()
		<-s.done
		s.portal.Close()
	})
}

// Done is closed once the subscription has stopped delivering.
func (s *WaveSubscription) Done() <-chan struct{} {
	return s.done
}
