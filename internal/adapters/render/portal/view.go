package portal

import (
	"time"

	"github.com/bnema/wave-portal-cli/internal/application"
	"github.com/bnema/wave-portal-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	headerText     = "👋 Wave Portal"
	taglineText    = "Send us a message, and stand a chance to win some cash"
	connectText    = "Connect Wallet"
	waveText       = "Wave at Me"
	messagesText   = "Messages:"
	loadingText    = "Mining..."
	noWavesText    = "No waves yet."
	waveTimeLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"
)

type RenderOptions struct {
	// Location renders wave times; nil means the local zone.
	Location *time.Location
}

// controls carries the widget views that differ between the static and the
// interactive renderer.
type controls struct {
	input   string
	loading string
	alert   string
	help    string
}

func staticControls(state application.State) controls {
	return controls{
		input:   "> " + state.Draft,
		loading: loadingText,
	}
}

func renderView(state application.State, opts RenderOptions, c controls, s styles) string {
	lines := []string{
		s.title.Render(headerText),
		s.tagline.Render(taglineText),
	}

	if c.alert != "" {
		lines = append(lines, s.alert.Render(c.alert))
	}

	if !state.Connected() {
		lines = append(lines, s.button.Render(connectText))
		return joinWithHelp(lines, c, s)
	}

	lines = append(lines, s.input.Render(c.input))
	if !state.Sending {
		lines = append(lines, s.button.Render(waveText))
	}
	lines = append(lines,
		s.connected.Render("Connected: "+state.Account),
		s.heading.Render(messagesText),
	)

	if state.Sending {
		lines = append(lines, s.loading.Render(c.loading))
		return joinWithHelp(lines, c, s)
	}

	if len(state.Waves) == 0 {
		lines = append(lines, s.empty.Render(noWavesText))
	}
	for _, wave := range state.Waves {
		lines = append(lines, renderWave(wave, opts, s))
	}

	return joinWithHelp(lines, c, s)
}

func renderWave(wave domain.Wave, opts RenderOptions, s styles) string {
	return s.message.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		s.label.Render("Address: ")+wave.Address,
		s.label.Render("Time: ")+FormatWaveTime(wave.Timestamp, opts.Location),
		s.label.Render("Message: ")+wave.Message,
	))
}

func joinWithHelp(lines []string, c controls, s styles) string {
	if c.help != "" {
		lines = append(lines, s.help.Render(c.help))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// FormatWaveTime renders t the way a browser prints a Date.
func FormatWaveTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}

	return t.In(loc).Format(waveTimeLayout)
}
