package portal

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type minedMsg struct {
	err error
}

// miningModel is the loading line on its own, for one-shot sends.
type miningModel struct {
	spinner spinner.Model
	send    tea.Cmd
	mined   bool
	err     error
}

func (m miningModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.send)
}

func (m miningModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case minedMsg:
		m.mined, m.err = true, msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m miningModel) View() string {
	if m.mined {
		return ""
	}
	return m.spinner.View() + " " + loadingText
}

// RunMining shows the mining line on output until send returns, and returns
// send's error.
func RunMining(ctx context.Context, output io.Writer, send func(context.Context) error) error {
	model := miningModel{
		spinner: newMiningSpinner(),
		send: func() tea.Msg {
			return minedMsg{err: send(ctx)}
		},
	}

	final, err := tea.NewProgram(model,
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	).Run()
	if err != nil {
		return fmt.Errorf("run mining view: %w", err)
	}

	return final.(miningModel).err
}
