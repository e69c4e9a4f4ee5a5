package httpapi

import (
	"context"
	"errors"
	"io"
	"math/big"

	"github.com/bnema/wave-portal-cli/internal/application"
	"github.com/bnema/wave-portal-cli/internal/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
)

// Source is the client state the HTTP mirror exposes.
type Source interface {
	Snapshot() application.State
	TotalWaves(ctx context.Context) (*big.Int, error)
}

type Options struct {
	// AccessLog receives one line per request; nil disables access logging.
	AccessLog io.Writer
	// Logger receives lifecycle events; nil discards them.
	Logger logrus.FieldLogger
}

// Server mirrors the wave client state over read-only HTTP routes.
type Server struct {
	app    *fiber.App
	source Source
	log    logrus.FieldLogger
}

type accountResponse struct {
	Account   string `json:"account"`
	Connected bool   `json:"connected"`
}

type wavesResponse struct {
	Sending bool          `json:"sending"`
	Waves   []domain.Wave `json:"waves"`
}

type totalResponse struct {
	Total string `json:"total"`
}

func New(source Source, opts Options) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "wave-portal",
	})

	if opts.AccessLog != nil {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${ip}:${port} ${status} - ${method} ${path} ${latency} ${error}\n",
			Output: opts.AccessLog,
		}))
	}

	logger := opts.Logger
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	s := &Server{app: app, source: source, log: logger}
	app.Get("/", s.health)
	app.Get("/account", s.account)
	app.Get("/waves", s.waves)
	app.Get("/waves/total", s.total)

	return s
}

// App exposes the fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until ctx is done.
func (s *Server) Listen(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.WithField("addr", addr).Info("shutting down wave mirror")
		if err := s.app.Shutdown(); err != nil {
			return err
		}
		return <-errCh
	}
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"error":  "",
	})
}

func (s *Server) account(c *fiber.Ctx) error {
	state := s.source.Snapshot()
	return c.JSON(accountResponse{
		Account:   state.Account,
		Connected: state.Connected(),
	})
}

func (s *Server) waves(c *fiber.Ctx) error {
	state := s.source.Snapshot()
	waves := state.Waves
	if waves == nil {
		waves = []domain.Wave{}
	}

	return c.JSON(wavesResponse{
		Sending: state.Sending,
		Waves:   waves,
	})
}

func (s *Server) total(c *fiber.Ctx) error {
	total, err := s.source.TotalWaves(c.UserContext())
	if err != nil {
		status := fiber.StatusBadGateway
		if errors.Is(err, domain.ErrProviderUnavailable) {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"status": "not ok",
			"error":  err.Error(),
		})
	}

	return c.JSON(totalResponse{Total: total.String()})
}
