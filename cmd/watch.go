package cmd

import (
	"fmt"
	"io"
	"sync"

	portaladapter "github.com/bnema/wave-portal-cli/internal/adapters/render/portal"
	"github.com/bnema/wave-portal-cli/internal/application"
	"github.com/bnema/wave-portal-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print new waves as they are mined until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newWavePrinter(cmd.OutOrStdout(), app, len(app.client.Snapshot().Waves))
			app.client.OnChange(printer.onChange)

			sub, err := app.client.SubscribeToNewWaves(cmd.Context())
			if err != nil {
				return err
			}
			defer sub.Close()

			app.logger.Info("listening for new waves, press ctrl+c to stop")

			select {
			case <-cmd.Context().Done():
				return nil
			case <-sub.Done():
				return fmt.Errorf("new wave subscription ended")
			}
		},
	}
}

// wavePrinter writes every wave appended after it was created.
type wavePrinter struct {
	mu      sync.Mutex
	out     io.Writer
	app     *app
	printed int
}

func newWavePrinter(out io.Writer, app *app, already int) *wavePrinter {
	return &wavePrinter{out: out, app: app, printed: already}
}

func (p *wavePrinter) onChange(state application.State) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(state.Waves) < p.printed {
		p.printed = len(state.Waves)
		return
	}

	for _, wave := range state.Waves[p.printed:] {
		p.print(wave)
	}
	p.printed = len(state.Waves)
}

func (p *wavePrinter) print(wave domain.Wave) {
	_, _ = fmt.Fprintf(p.out, "Address: %s\nTime: %s\nMessage: %s\n\n",
		wave.Address,
		portaladapter.FormatWaveTime(wave.Timestamp, p.app.cfg.Location),
		wave.Message,
	)
}
