package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/bnema/wave-portal-cli/internal/domain"
	"github.com/bnema/wave-portal-cli/internal/ports"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

var ErrReadOnlyPortal = errors.New("wave portal opened without an account")

// Backend is the RPC surface the portal needs; *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// SignerFunc returns transact options for the connected account.
type SignerFunc func(ctx context.Context) (*bind.TransactOpts, error)

type Portal struct {
	contract *bind.BoundContract
	backend  Backend
	signer   SignerFunc
	closeFn  func()
}

var _ ports.WavePortal = (*Portal)(nil)

func NewPortal(address common.Address, backend Backend, signer SignerFunc, closeFn func()) (*Portal, error) {
	parsed, err := WavePortalABI()
	if err != nil {
		return nil, err
	}
	if closeFn == nil {
		closeFn = func() {}
	}

	return &Portal{
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
		backend:  backend,
		signer:   signer,
		closeFn:  closeFn,
	}, nil
}

func (p *Portal) GetAllWaves(ctx context.Context) ([]domain.RemoteWave, error) {
	var out []interface{}
	if err := p.contract.Call(&bind.CallOpts{Context: ctx}, &out, methodGetAllWaves); err != nil {
		return nil, fmt.Errorf("call %s: %w", methodGetAllWaves, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("call %s: empty result", methodGetAllWaves)
	}

	waves := *abi.ConvertType(out[0], new([]wavePortalWave)).(*[]wavePortalWave)

	records := make([]domain.RemoteWave, 0, len(waves))
	for _, w := range waves {
		records = append(records, domain.RemoteWave{
			Waver:     w.Waver.Hex(),
			Timestamp: bigToInt64(w.Timestamp),
			Message:   w.Message,
		})
	}

	return records, nil
}

func (p *Portal) GetTotalWaves(ctx context.Context) (*big.Int, error) {
	var out []interface{}
	if err := p.contract.Call(&bind.CallOpts{Context: ctx}, &out, methodGetTotalWaves); err != nil {
		return nil, fmt.Errorf("call %s: %w", methodGetTotalWaves, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("call %s: empty result", methodGetTotalWaves)
	}

	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (p *Portal) Wave(ctx context.Context, message string, gasLimit uint64) (ports.PendingWave, error) {
	if p.signer == nil {
		return nil, ErrReadOnlyPortal
	}

	opts, err := p.signer(ctx)
	if err != nil {
		return nil, fmt.Errorf("prepare signer: %w", err)
	}
	opts.Context = ctx
	opts.GasLimit = gasLimit

	tx, err := p.contract.Transact(opts, methodWave, message)
	if err != nil {
		return nil, fmt.Errorf("transact %s: %w", methodWave, err)
	}

	return &pendingWave{tx: tx, backend: p.backend}, nil
}

func (p *Portal) WatchNewWaves(ctx context.Context, sink func(domain.RemoteWave)) (ports.Subscription, error) {
	logs, sub, err := p.contract.WatchLogs(&bind.WatchOpts{Context: ctx}, eventNewWave)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", eventNewWave, err)
	}

	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer sub.Unsubscribe()
		for {
			select {
			case log := <-logs:
				// Logs retracted by a reorg are not new waves.
				if log.Removed {
					continue
				}
				var ev newWaveEvent
				if err := p.contract.UnpackLog(&ev, eventNewWave, log); err != nil {
					return fmt.Errorf("unpack %s log: %w", eventNewWave, err)
				}
				sink(domain.RemoteWave{
					Waver:     ev.From.Hex(),
					Timestamp: bigToInt64(ev.Timestamp),
					Message:   ev.Message,
				})
			case err := <-sub.Err():
				return err
			case <-quit:
				return nil
			}
		}
	}), nil
}

func (p *Portal) Close() {
	p.closeFn()
}

type pendingWave struct {
	tx      *types.Transaction
	backend bind.DeployBackend
}

func (w *pendingWave) Hash() string {
	return w.tx.Hash().Hex()
}

func (w *pendingWave) Wait(ctx context.Context) error {
	receipt, err := bind.WaitMined(ctx, w.backend, w.tx)
	if err != nil {
		return err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%w: %s reverted in block %s", domain.ErrTransactionFailed, w.Hash(), receipt.BlockNumber)
	}

	return nil
}

func bigToInt64(v *big.Int) int64 {
	if v == nil {
		return 0
	}

	return v.Int64()
}
