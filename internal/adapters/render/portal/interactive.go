package portal

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/wave-portal-cli/internal/application"
	"github.com/bnema/wave-portal-cli/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const helpText = "enter: connect / wave • ctrl+c: quit"

// Client is the part of the wave client the interactive view drives.
type Client interface {
	Snapshot() application.State
	OnChange(fn func(application.State))
	SetDraft(text string)
	CheckExistingAuthorization(ctx context.Context) error
	RequestConnection(ctx context.Context) error
	SubmitWave(ctx context.Context) error
	SubscribeToNewWaves(ctx context.Context) (*application.WaveSubscription, error)
}

type RunOptions struct {
	RenderOptions
	Input  io.Reader
	Output io.Writer
	// Alerts feeds the alert banner; see NewAlerts.
	Alerts <-chan string
}

// NewAlerts returns an Alerter for the client and the channel Run reads the
// banner from. Alerts raised while the banner is backed up are dropped.
func NewAlerts() (ports.Alerter, <-chan string) {
	ch := make(chan string, 4)
	return ports.AlerterFunc(func(message string) {
		select {
		case ch <- message:
		default:
		}
	}), ch
}

type stateChangedMsg struct {
	state application.State
}

type alertMsg struct {
	text string
}

// actionDoneMsg ends a connect or submit. Its error was already logged by the client.
type actionDoneMsg struct {
	err error
}

// stateFeed keeps only the latest state so listeners never block on the UI.
type stateFeed struct {
	ch chan application.State
}

func newStateFeed() *stateFeed {
	return &stateFeed{ch: make(chan application.State, 1)}
}

func (f *stateFeed) push(state application.State) {
	for {
		select {
		case f.ch <- state:
			return
		default:
		}
		select {
		case <-f.ch:
		default:
		}
	}
}

type interactiveModel struct {
	ctx     context.Context
	client  Client
	opts    RenderOptions
	styles  styles
	input   textinput.Model
	spinner spinner.Model
	state   application.State
	alert   string
	changes <-chan application.State
	alerts  <-chan string
}

func newInteractiveModel(ctx context.Context, client Client, opts RunOptions, changes <-chan application.State) interactiveModel {
	input := textinput.New()
	input.Placeholder = "Your message"
	input.CharLimit = 280
	input.Width = 48
	input.Focus()

	return interactiveModel{
		ctx:     ctx,
		client:  client,
		opts:    opts.RenderOptions,
		styles:  newStyles(),
		input:   input,
		spinner: newMiningSpinner(),
		state:   client.Snapshot(),
		changes: changes,
		alerts:  opts.Alerts,
	}
}

func (m interactiveModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		waitForState(m.changes),
		waitForAlert(m.alerts),
		m.action(m.client.CheckExistingAuthorization),
	)
}

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case stateChangedMsg:
		wasConnected := m.state.Connected()
		m.state = msg.state
		if m.input.Value() != m.state.Draft {
			m.input.SetValue(m.state.Draft)
		}
		if !wasConnected && m.state.Connected() {
			// A newly adopted account reloads the history for it.
			return m, tea.Batch(waitForState(m.changes), m.action(m.client.CheckExistingAuthorization))
		}
		return m, waitForState(m.changes)
	case alertMsg:
		m.alert = msg.text
		return m, waitForAlert(m.alerts)
	case actionDoneMsg:
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m interactiveModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		m.alert = ""
		if !m.state.Connected() {
			return m, m.action(m.client.RequestConnection)
		}
		if m.state.Sending {
			return m, nil
		}
		return m, m.action(m.client.SubmitWave)
	}

	if !m.state.Connected() {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != m.state.Draft {
		m.state.Draft = value
		m.client.SetDraft(value)
	}

	return m, cmd
}

func (m interactiveModel) action(run func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return actionDoneMsg{err: run(ctx)}
	}
}

func (m interactiveModel) View() string {
	return renderView(m.state, m.opts, controls{
		input:   m.input.View(),
		loading: fmt.Sprintf("%s %s", m.spinner.View(), loadingText),
		alert:   m.alert,
		help:    helpText,
	}, m.styles) + "\n"
}

func waitForState(ch <-chan application.State) tea.Cmd {
	if ch == nil {
		return nil
	}

	return func() tea.Msg {
		return stateChangedMsg{state: <-ch}
	}
}

func waitForAlert(ch <-chan string) tea.Cmd {
	if ch == nil {
		return nil
	}

	return func() tea.Msg {
		text, ok := <-ch
		if !ok {
			return nil
		}
		return alertMsg{text: text}
	}
}

// Run drives the interactive wave portal until the user quits or ctx ends.
// It listens for new waves for its whole lifetime.
func Run(ctx context.Context, client Client, opts RunOptions) error {
	feed := newStateFeed()
	client.OnChange(feed.push)

	sub, _ := client.SubscribeToNewWaves(ctx)
	defer sub.Close()

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(newInteractiveModel(ctx, client, opts, feed.ch), programOpts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run wave portal: %w", err)
	}

	return nil
}
