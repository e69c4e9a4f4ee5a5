package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"strings"
	"sync"

	"github.com/bnema/wave-portal-cli/internal/domain"
	"github.com/bnema/wave-portal-cli/internal/ports"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
)

type LocatorConfig struct {
	RPCURL          string
	KeystoreDir     string
	ContractAddress string
	ChainID         int64
	Account         string
}

// Locator resolves the wallet provider from configuration. The provider is
// present when an RPC endpoint and an existing keystore directory are set.
type Locator struct {
	cfg     LocatorConfig
	authz   ports.AuthorizationRepository
	secrets ports.SecretStore

	mu       sync.Mutex
	provider *Provider
}

var _ ports.ProviderLocator = (*Locator)(nil)

func NewLocator(cfg LocatorConfig, authz ports.AuthorizationRepository, secrets ports.SecretStore) *Locator {
	return &Locator{cfg: cfg, authz: authz, secrets: secrets}
}

func (l *Locator) Locate(ctx context.Context) (ports.WalletProvider, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.provider != nil {
		return l.provider, nil
	}

	if strings.TrimSpace(l.cfg.RPCURL) == "" {
		return nil, fmt.Errorf("%w: rpc url not configured", domain.ErrProviderUnavailable)
	}
	if strings.TrimSpace(l.cfg.KeystoreDir) == "" {
		return nil, fmt.Errorf("%w: keystore not configured", domain.ErrProviderUnavailable)
	}
	info, err := os.Stat(l.cfg.KeystoreDir)
	if err != nil {
		return nil, fmt.Errorf("%w: keystore %s: %w", domain.ErrProviderUnavailable, l.cfg.KeystoreDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: keystore %s is not a directory", domain.ErrProviderUnavailable, l.cfg.KeystoreDir)
	}
	if !common.IsHexAddress(l.cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address %q", l.cfg.ContractAddress)
	}

	var chainID *big.Int
	if l.cfg.ChainID > 0 {
		chainID = big.NewInt(l.cfg.ChainID)
	}

	ks := keystore.NewKeyStore(l.cfg.KeystoreDir, keystore.StandardScryptN, keystore.StandardScryptP)
	l.provider = NewProvider(ProviderConfig{
		RPCURL:          l.cfg.RPCURL,
		ContractAddress: common.HexToAddress(l.cfg.ContractAddress),
		ChainID:         chainID,
		Account:         l.cfg.Account,
	}, ks, l.authz, l.secrets)

	return l.provider, nil
}
