package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/bnema/wave-portal-cli/internal/domain"
	"github.com/bnema/wave-portal-cli/internal/ports"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

const passphraseKeyPrefix = "waveportal/keystore/"

// PassphraseKey is the secret-store key holding the keystore passphrase for address.
func PassphraseKey(address string) string {
	return passphraseKeyPrefix + strings.ToLower(common.HexToAddress(address).Hex())
}

type DialFunc func(ctx context.Context, rawURL string) (Backend, func(), error)

type ProviderConfig struct {
	RPCURL          string
	ContractAddress common.Address
	// ChainID pins the signing chain; nil asks the node.
	ChainID *big.Int
	// Account selects the keystore account to authorize; empty picks the first.
	Account string
}

// Provider is a keystore-backed wallet reached over JSON-RPC. Authorizations
// survive restarts through the authorization repository.
type Provider struct {
	cfg      ProviderConfig
	keystore *keystore.KeyStore
	authz    ports.AuthorizationRepository
	secrets  ports.SecretStore
	dial     DialFunc
	now      func() time.Time
}

var _ ports.WalletProvider = (*Provider)(nil)

func NewProvider(cfg ProviderConfig, ks *keystore.KeyStore, authz ports.AuthorizationRepository, secrets ports.SecretStore) *Provider {
	return &Provider{
		cfg:      cfg,
		keystore: ks,
		authz:    authz,
		secrets:  secrets,
		dial:     dialEthclient,
		now:      time.Now,
	}
}

func dialEthclient(ctx context.Context, rawURL string) (Backend, func(), error) {
	client, err := ethclient.DialContext(ctx, rawURL)
	if err != nil {
		return nil, nil, err
	}

	return client, client.Close, nil
}

// Accounts returns authorized accounts still present in the keystore, most
// recently authorized first.
func (p *Provider) Accounts(ctx context.Context) ([]string, error) {
	authorizations, err := p.authz.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authorizations: %w", err)
	}

	sort.SliceStable(authorizations, func(i, j int) bool {
		return authorizations[i].AuthorizedAt.After(authorizations[j].AuthorizedAt)
	})

	accounts := make([]string, 0, len(authorizations))
	for _, authorization := range authorizations {
		if !common.IsHexAddress(authorization.Address) {
			continue
		}
		address := common.HexToAddress(authorization.Address)
		if !p.keystore.HasAddress(address) {
			continue
		}
		accounts = append(accounts, address.Hex())
	}

	return accounts, nil
}

func (p *Provider) RequestAccounts(ctx context.Context) ([]string, error) {
	account, err := p.selectAccount()
	if err != nil {
		return nil, err
	}

	if err := p.unlock(ctx, account); err != nil {
		return nil, err
	}

	authorization := domain.Authorization{
		Address:      account.Address.Hex(),
		AuthorizedAt: p.now().UTC(),
	}
	if err := p.authz.Save(ctx, authorization); err != nil {
		return nil, fmt.Errorf("save authorization: %w", err)
	}

	return p.Accounts(ctx)
}

func (p *Provider) Portal(ctx context.Context, account string) (ports.WavePortal, error) {
	var signingAccount *accounts.Account
	if account != "" {
		found, err := p.keystore.Find(accounts.Account{Address: common.HexToAddress(account)})
		if err != nil {
			return nil, fmt.Errorf("find account %s: %w", account, err)
		}
		signingAccount = &found
	}

	backend, closeFn, err := p.dial(ctx, p.cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", p.cfg.RPCURL, err)
	}

	var signer SignerFunc
	if signingAccount != nil {
		signer = p.signerFor(*signingAccount, backend)
	}

	portal, err := NewPortal(p.cfg.ContractAddress, backend, signer, closeFn)
	if err != nil {
		closeFn()
		return nil, err
	}

	return portal, nil
}

func (p *Provider) signerFor(account accounts.Account, backend Backend) SignerFunc {
	return func(ctx context.Context) (*bind.TransactOpts, error) {
		if err := p.unlock(ctx, account); err != nil {
			return nil, err
		}

		chainID := p.cfg.ChainID
		if chainID == nil {
			var err error
			chainID, err = backend.ChainID(ctx)
			if err != nil {
				return nil, fmt.Errorf("query chain id: %w", err)
			}
		}

		return bind.NewKeyStoreTransactorWithChainID(p.keystore, account, chainID)
	}
}

func (p *Provider) selectAccount() (accounts.Account, error) {
	candidates := p.keystore.Accounts()
	if len(candidates) == 0 {
		return accounts.Account{}, fmt.Errorf("%w: keystore holds no accounts", domain.ErrNoAuthorizedAccount)
	}

	if p.cfg.Account == "" {
		return candidates[0], nil
	}

	for _, candidate := range candidates {
		if domain.SameAddress(candidate.Address.Hex(), p.cfg.Account) {
			return candidate, nil
		}
	}

	return accounts.Account{}, fmt.Errorf("%w: account %s not in keystore", domain.ErrNoAuthorizedAccount, p.cfg.Account)
}

func (p *Provider) unlock(ctx context.Context, account accounts.Account) error {
	passphrase, err := p.secrets.Get(ctx, PassphraseKey(account.Address.Hex()))
	if err != nil {
		return fmt.Errorf("%w: load passphrase for %s: %w", domain.ErrAuthorizationDeclined, account.Address.Hex(), err)
	}

	if err := p.keystore.Unlock(account, passphrase); err != nil {
		return fmt.Errorf("%w: unlock %s: %w", domain.ErrAuthorizationDeclined, account.Address.Hex(), err)
	}

	return nil
}
