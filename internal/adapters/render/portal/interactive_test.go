package portal

import (
	"context"
	"sync"
	"testing"

	"github.com/bnema/wave-portal-cli/internal/application"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu        sync.Mutex
	state     application.State
	drafts    []string
	connects  int
	submits   int
	checks    int
	listeners []func(application.State)
}

func (f *fakeClient) Snapshot() application.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeClient) OnChange(fn func(application.State)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
}

func (f *fakeClient) SetDraft(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drafts = append(f.drafts, text)
	f.state.Draft = text
}

func (f *fakeClient) CheckExistingAuthorization(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checks++
	return nil
}

func (f *fakeClient) RequestConnection(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connects++
	return nil
}

func (f *fakeClient) SubmitWave(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submits++
	return nil
}

func (f *fakeClient) SubscribeToNewWaves(context.Context) (*application.WaveSubscription, error) {
	return nil, nil
}

func newTestModel(client *fakeClient) interactiveModel {
	return newInteractiveModel(context.Background(), client, RunOptions{RenderOptions: utcOpts}, nil)
}

func press(t *testing.T, m interactiveModel, msg tea.KeyMsg) (interactiveModel, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	updated, ok := next.(interactiveModel)
	require.True(t, ok)
	return updated, cmd
}

// runCmds executes cmd and any batched commands it expands to.
func runCmds(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			runCmds(c)
		}
	}
}

func TestInteractiveEnterConnectsWhenDisconnected(t *testing.T) {
	client := &fakeClient{}
	m := newTestModel(client)

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	assert.IsType(t, actionDoneMsg{}, msg)
	assert.Equal(t, 1, client.connects)
	assert.Zero(t, client.submits)
}

func TestInteractiveConnectReloadsHistory(t *testing.T) {
	client := &fakeClient{}
	m := newTestModel(client)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()
	require.Equal(t, 1, client.connects)

	next, cmd := m.Update(stateChangedMsg{state: application.State{Account: "0xB"}})
	m = next.(interactiveModel)
	require.NotNil(t, cmd)
	runCmds(cmd)

	assert.Equal(t, 1, client.checks)
	assert.Equal(t, "0xB", m.state.Account)
}

func TestInteractiveStateChangeWhileConnectedDoesNotRecheck(t *testing.T) {
	client := &fakeClient{state: application.State{Account: "0xB"}}
	m := newTestModel(client)

	_, cmd := m.Update(stateChangedMsg{state: application.State{Account: "0xB", Draft: "hi"}})
	runCmds(cmd)

	assert.Zero(t, client.checks)
}

func TestInteractiveEnterSubmitsWhenConnected(t *testing.T) {
	client := &fakeClient{state: application.State{Account: "0xB"}}
	m := newTestModel(client)

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, 1, client.submits)
	assert.Zero(t, client.connects)
}

func TestInteractiveEnterIgnoredWhileSending(t *testing.T) {
	client := &fakeClient{state: application.State{Account: "0xB", Sending: true}}
	m := newTestModel(client)

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Zero(t, client.submits)
}

func TestInteractiveTypingUpdatesDraft(t *testing.T) {
	client := &fakeClient{state: application.State{Account: "0xB"}}
	m := newTestModel(client)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})

	assert.Equal(t, []string{"g", "gm"}, client.drafts)
	assert.Equal(t, "gm", m.input.Value())
}

func TestInteractiveTypingContinuesWhileSending(t *testing.T) {
	client := &fakeClient{state: application.State{Account: "0xB", Sending: true}}
	m := newTestModel(client)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})

	assert.Equal(t, []string{"n"}, client.drafts)
	assert.Equal(t, "n", m.input.Value())
	assert.Zero(t, client.submits)
}

func TestInteractiveTypingIgnoredWhenDisconnected(t *testing.T) {
	client := &fakeClient{}
	m := newTestModel(client)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	assert.Empty(t, client.drafts)
	assert.Empty(t, m.input.Value())
}

func TestInteractiveStateChangeClearsInput(t *testing.T) {
	client := &fakeClient{state: application.State{Account: "0xB"}}
	m := newTestModel(client)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello")})

	next, _ := m.Update(stateChangedMsg{state: application.State{Account: "0xB", Sending: true}})
	m = next.(interactiveModel)

	assert.Empty(t, m.input.Value())
	view := m.View()
	assert.Contains(t, view, "Mining...")
	assert.NotContains(t, view, "Wave at Me")
}

func TestInteractiveAlertBanner(t *testing.T) {
	m := newTestModel(&fakeClient{})

	next, _ := m.Update(alertMsg{text: application.MissingWalletAlert})
	m = next.(interactiveModel)
	assert.Contains(t, m.View(), application.MissingWalletAlert)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotContains(t, m.View(), application.MissingWalletAlert)
}

func TestInteractiveQuitKeys(t *testing.T) {
	m := newTestModel(&fakeClient{})

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestStateFeedKeepsLatest(t *testing.T) {
	feed := newStateFeed()

	feed.push(application.State{Account: "0xA"})
	feed.push(application.State{Account: "0xB"})

	assert.Equal(t, "0xB", (<-feed.ch).Account)
}

func TestNewAlertsDropsWhenFull(t *testing.T) {
	alerter, ch := NewAlerts()

	for i := 0; i < 10; i++ {
		alerter.Alert("get a wallet")
	}

	assert.Len(t, ch, 4)
}
