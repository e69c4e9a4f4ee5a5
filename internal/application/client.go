package application

import (
	"slices"
	"sync"
	"time"

	"github.com/bnema/wave-portal-cli/internal/domain"
	"github.com/bnema/wave-portal-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

const (
	DefaultGasLimit       uint64 = 300000
	DefaultConfirmTimeout        = 5 * time.Minute
)

type Config struct {
	// GasLimit caps the gas a wave transaction may consume.
	GasLimit uint64
	// ConfirmTimeout bounds the wait for a wave to be mined. Zero waits on ctx only.
	ConfirmTimeout time.Duration
}

// Client owns the wave client state. All mutations go through its
// transition methods; readers get copies via Snapshot or OnChange.
type Client struct {
	locator ports.ProviderLocator
	alerter ports.Alerter
	log     logrus.FieldLogger
	cfg     Config

	mu        sync.Mutex
	account   string
	history   domain.History
	sending   bool
	draft     string
	listeners []func(State)
}

func NewClient(locator ports.ProviderLocator, alerter ports.Alerter, logger logrus.FieldLogger, cfg Config) *Client {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if alerter == nil {
		alerter = ports.AlerterFunc(func(message string) {
			logger.Warn(message)
		})
	}
	if cfg.GasLimit == 0 {
		cfg.GasLimit = DefaultGasLimit
	}

	return &Client{
		locator: locator,
		alerter: alerter,
		log:     logger,
		cfg:     cfg,
	}
}

// OnChange registers fn to receive a copy of the state after every transition.
// fn runs on the goroutine that caused the change and must not block.
func (c *Client) OnChange(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.listeners = append(c.listeners, fn)
}

func (c *Client) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotLocked()
}

func (c *Client) snapshotLocked() State {
	return State{
		Account: c.account,
		Waves:   c.history.Waves(),
		Sending: c.sending,
		Draft:   c.draft,
	}
}

func (c *Client) update(mutate func()) {
	c.mu.Lock()
	mutate()
	state := c.snapshotLocked()
	listeners := slices.Clone(c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}

func (c *Client) currentAccount() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.account
}
