package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/wave-portal-cli/internal/application"
	"github.com/bnema/wave-portal-cli/internal/domain"
	"github.com/gofiber/fiber/v2"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	state application.State
	total *big.Int
	err   error
}

func (f fakeSource) Snapshot() application.State {
	return f.state
}

func (f fakeSource) TotalWaves(context.Context) (*big.Int, error) {
	return f.total, f.err
}

func get(t *testing.T, s *Server, path string) (int, []byte) {
	t.Helper()

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestHealth(t *testing.T) {
	status, body := get(t, New(fakeSource{}, Options{}), "/")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok","error":""}`, string(body))
}

func TestAccount(t *testing.T) {
	status, body := get(t, New(fakeSource{state: application.State{Account: "0xB"}}, Options{}), "/account")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"account":"0xB","connected":true}`, string(body))
}

func TestAccountDisconnected(t *testing.T) {
	_, body := get(t, New(fakeSource{}, Options{}), "/account")

	assert.JSONEq(t, `{"account":"","connected":false}`, string(body))
}

func TestWaves(t *testing.T) {
	at := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	source := fakeSource{state: application.State{
		Account: "0xB",
		Waves: []domain.Wave{
			{Address: "0xA", Timestamp: at, Message: "hi"},
			{Address: "0xC", Timestamp: at.Add(time.Minute), Message: "yo"},
		},
	}}

	status, body := get(t, New(source, Options{}), "/waves")

	assert.Equal(t, http.StatusOK, status)
	var decoded wavesResponse
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.False(t, decoded.Sending)
	require.Len(t, decoded.Waves, 2)
	assert.Equal(t, "0xA", decoded.Waves[0].Address)
	assert.True(t, at.Equal(decoded.Waves[0].Timestamp))
	assert.Equal(t, "yo", decoded.Waves[1].Message)
}

func TestWavesEmptyIsArray(t *testing.T) {
	_, body := get(t, New(fakeSource{}, Options{}), "/waves")

	assert.JSONEq(t, `{"sending":false,"waves":[]}`, string(body))
}

func TestTotal(t *testing.T) {
	status, body := get(t, New(fakeSource{total: big.NewInt(42)}, Options{}), "/waves/total")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"total":"42"}`, string(body))
}

func TestTotalWithoutProvider(t *testing.T) {
	status, body := get(t, New(fakeSource{err: domain.ErrProviderUnavailable}, Options{}), "/waves/total")

	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Contains(t, string(body), "wallet provider")
}

func TestTotalRemoteFailure(t *testing.T) {
	status, _ := get(t, New(fakeSource{err: errors.New("dial tcp: refused")}, Options{}), "/waves/total")

	assert.Equal(t, http.StatusBadGateway, status)
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	get(t, New(fakeSource{}, Options{AccessLog: &buf}), "/account")

	assert.Contains(t, buf.String(), "/account")
	assert.Contains(t, buf.String(), "200")
}

func TestListenLogsShutdownThroughInjectedLogger(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	s := New(fakeSource{}, Options{Logger: logger})

	ports := make(chan string, 1)
	s.App().Hooks().OnListen(func(data fiber.ListenData) error {
		ports <- data.Port
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Listen(ctx, "127.0.0.1:0")
	}()

	var port string
	select {
	case port = <-ports:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:" + port + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "shutting down wave mirror", entry.Message)
	assert.Equal(t, "127.0.0.1:0", entry.Data["addr"])
}
