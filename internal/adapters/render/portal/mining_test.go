package portal

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMiningShowsLoadingAndReturnsSendError(t *testing.T) {
	var out bytes.Buffer
	rejected := errors.New("user denied transaction signature")

	err := RunMining(context.Background(), &out, func(context.Context) error {
		time.Sleep(200 * time.Millisecond)
		return rejected
	})

	require.ErrorIs(t, err, rejected)
	assert.Contains(t, out.String(), loadingText)
}

func TestRunMiningSucceeds(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, RunMining(context.Background(), &out, func(context.Context) error {
		return nil
	}))
}

func TestMiningModelQuitsOnceMined(t *testing.T) {
	m := miningModel{spinner: newMiningSpinner()}

	next, cmd := m.Update(minedMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}
