package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bnema/wave-portal-cli/internal/adapters/ethereum"
	portaladapter "github.com/bnema/wave-portal-cli/internal/adapters/render/portal"
	tomlrepo "github.com/bnema/wave-portal-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/wave-portal-cli/internal/adapters/secrets/chain"
	"github.com/bnema/wave-portal-cli/internal/application"
	"github.com/bnema/wave-portal-cli/internal/config"
	"github.com/bnema/wave-portal-cli/internal/ports"
	log "github.com/sirupsen/logrus"
)

type app struct {
	cfg            config.Config
	client         *application.Client
	authorizations ports.AuthorizationRepository
	secretStore    ports.SecretStore
	logger         *log.Logger
	alerts         <-chan string
	renderer       func(application.State, portaladapter.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	v, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.New()
	logger.SetLevel(cfg.LogLevel)
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&log.TextFormatter{})

	repo, err := tomlrepo.NewRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire authorization repository: %w", err)
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(cfg.SecretsDir)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	locator := ethereum.NewLocator(ethereum.LocatorConfig{
		RPCURL:          cfg.RPCURL,
		KeystoreDir:     cfg.KeystoreDir,
		ContractAddress: cfg.ContractAddress,
		ChainID:         cfg.ChainID,
		Account:         cfg.Account,
	}, repo, secretStore)

	alerter, alerts := portaladapter.NewAlerts()

	client := application.NewClient(locator, alerter, logger, application.Config{
		GasLimit:       cfg.GasLimit,
		ConfirmTimeout: cfg.ConfirmTimeout,
	})

	return &app{
		cfg:            cfg,
		client:         client,
		authorizations: repo,
		secretStore:    secretStore,
		logger:         logger,
		alerts:         alerts,
		renderer:       portaladapter.Render,
	}, nil
}

// logToFile moves log output to the configured log file so it does not tear
// the interactive view.
func (a *app) logToFile() (func(), error) {
	if err := os.MkdirAll(filepath.Dir(a.cfg.LogFile), 0o700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	a.logger.SetOutput(f)
	return func() {
		a.logger.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}

// flushAlerts prints alerts raised by the last client call.
func (a *app) flushAlerts(w io.Writer) {
	for {
		select {
		case msg := <-a.alerts:
			_, _ = fmt.Fprintln(w, msg)
		default:
			return
		}
	}
}
