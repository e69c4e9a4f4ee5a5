package ports

import (
	"context"
	"math/big"

	"github.com/bnema/wave-portal-cli/internal/domain"
)

// ProviderLocator finds the wallet provider for the current environment.
// Locate returns domain.ErrProviderUnavailable when no wallet is configured.
type ProviderLocator interface {
	Locate(ctx context.Context) (WalletProvider, error)
}

type WalletProvider interface {
	// Accounts lists accounts already authorized for this client without prompting.
	Accounts(ctx context.Context) ([]string, error)
	// RequestAccounts asks the wallet for access and returns the granted accounts.
	RequestAccounts(ctx context.Context) ([]string, error)
	// Portal opens a fresh signing/RPC channel bound to the wave contract.
	// An empty account yields a read-only channel.
	Portal(ctx context.Context, account string) (WavePortal, error)
}

type WavePortal interface {
	GetAllWaves(ctx context.Context) ([]domain.RemoteWave, error)
	GetTotalWaves(ctx context.Context) (*big.Int, error)
	Wave(ctx context.Context, message string, gasLimit uint64) (PendingWave, error)
	WatchNewWaves(ctx context.Context, sink func(domain.RemoteWave)) (Subscription, error)
	Close()
}

type PendingWave interface {
	Hash() string
	// Wait blocks until the transaction is mined or ctx is done.
	Wait(ctx context.Context) error
}

type Subscription interface {
	Unsubscribe()
	Err() <-chan error
}

// Alerter shows a blocking, user-visible message.
type Alerter interface {
	Alert(message string)
}

type AlerterFunc func(message string)

func (f AlerterFunc) Alert(message string) {
	f(message)
}
