package ethereum

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/bnema/wave-portal-cli/internal/domain"
	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testContract = common.HexToAddress("0xcDb92Efa941b936fFEeA2Dc69dF624F27E4ed9A5")

func TestWavePortalABIDeclaresContractSurface(t *testing.T) {
	parsed, err := WavePortalABI()
	require.NoError(t, err)

	for _, method := range []string{methodGetAllWaves, methodGetTotalWaves, methodWave} {
		assert.Contains(t, parsed.Methods, method)
	}
	require.Contains(t, parsed.Events, eventNewWave)
	assert.True(t, parsed.Events[eventNewWave].Inputs[0].Indexed)
}

func TestPortalGetAllWavesDecodesTuples(t *testing.T) {
	parsed, err := WavePortalABI()
	require.NoError(t, err)

	waver := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	packed, err := parsed.Methods[methodGetAllWaves].Outputs.Pack([]struct {
		Waver     common.Address
		Message   string
		Timestamp *big.Int
	}{
		{Waver: waver, Message: "hi", Timestamp: big.NewInt(1000)},
		{Waver: waver, Message: "again", Timestamp: big.NewInt(2000)},
	})
	require.NoError(t, err)

	backend := &fakeBackend{call: func(msg geth.CallMsg) ([]byte, error) {
		assert.Equal(t, testContract, *msg.To)
		assert.Equal(t, parsed.Methods[methodGetAllWaves].ID, msg.Data[:4])
		return packed, nil
	}}
	portal, err := NewPortal(testContract, backend, nil, nil)
	require.NoError(t, err)

	records, err := portal.GetAllWaves(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.RemoteWave{
		{Waver: waver.Hex(), Timestamp: 1000, Message: "hi"},
		{Waver: waver.Hex(), Timestamp: 2000, Message: "again"},
	}, records)
}

func TestPortalGetTotalWaves(t *testing.T) {
	parsed, err := WavePortalABI()
	require.NoError(t, err)

	packed, err := parsed.Methods[methodGetTotalWaves].Outputs.Pack(big.NewInt(42))
	require.NoError(t, err)

	portal, err := NewPortal(testContract, &fakeBackend{call: func(geth.CallMsg) ([]byte, error) {
		return packed, nil
	}}, nil, nil)
	require.NoError(t, err)

	total, err := portal.GetTotalWaves(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), total.Int64())
}

func TestPortalCallErrorIsWrapped(t *testing.T) {
	rpcErr := errors.New("connection refused")
	portal, err := NewPortal(testContract, &fakeBackend{call: func(geth.CallMsg) ([]byte, error) {
		return nil, rpcErr
	}}, nil, nil)
	require.NoError(t, err)

	_, err = portal.GetAllWaves(context.Background())
	require.ErrorIs(t, err, rpcErr)
	assert.ErrorContains(t, err, "call getAllWaves")
}

func TestPortalWaveWithoutSignerIsReadOnly(t *testing.T) {
	portal, err := NewPortal(testContract, &fakeBackend{}, nil, nil)
	require.NoError(t, err)

	_, err = portal.Wave(context.Background(), "hi", 300000)
	require.ErrorIs(t, err, ErrReadOnlyPortal)
}

func TestPortalWaveSendsCappedTransaction(t *testing.T) {
	parsed, err := WavePortalABI()
	require.NoError(t, err)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	backend := &fakeBackend{chainID: 1337}
	signer := func(context.Context) (*bind.TransactOpts, error) {
		return bind.NewKeyedTransactorWithChainID(key, big.NewInt(1337))
	}
	portal, err := NewPortal(testContract, backend, signer, nil)
	require.NoError(t, err)

	pending, err := portal.Wave(context.Background(), "hi", 300000)
	require.NoError(t, err)

	sent := backend.Sent()
	require.Len(t, sent, 1)
	tx := sent[0]
	assert.Equal(t, uint64(300000), tx.Gas())
	assert.Equal(t, uint64(7), tx.Nonce())
	require.NotNil(t, tx.To())
	assert.Equal(t, testContract, *tx.To())

	wantData, err := parsed.Pack(methodWave, "hi")
	require.NoError(t, err)
	assert.Equal(t, wantData, tx.Data())
	assert.Equal(t, tx.Hash().Hex(), pending.Hash())
}

func TestPendingWaveWaitChecksReceiptStatus(t *testing.T) {
	tx := types.NewTx(&types.LegacyTx{Nonce: 1, Gas: 21000, GasPrice: big.NewInt(1)})

	ok := &pendingWave{tx: tx, backend: &fakeBackend{receipt: &types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(10),
	}}}
	require.NoError(t, ok.Wait(context.Background()))

	reverted := &pendingWave{tx: tx, backend: &fakeBackend{receipt: &types.Receipt{
		Status:      types.ReceiptStatusFailed,
		BlockNumber: big.NewInt(11),
	}}}
	err := reverted.Wait(context.Background())
	require.ErrorIs(t, err, domain.ErrTransactionFailed)
	assert.ErrorContains(t, err, tx.Hash().Hex())
}

func newWaveLog(t *testing.T, from common.Address, timestamp int64, message string) types.Log {
	t.Helper()

	parsed, err := WavePortalABI()
	require.NoError(t, err)

	ev := parsed.Events[eventNewWave]
	data, err := ev.Inputs.NonIndexed().Pack(big.NewInt(timestamp), message)
	require.NoError(t, err)

	return types.Log{
		Address: testContract,
		Topics:  []common.Hash{ev.ID, common.BytesToHash(from.Bytes())},
		Data:    data,
	}
}

func TestPortalWatchNewWavesDeliversInOrder(t *testing.T) {
	from := common.HexToAddress("0x00000000000000000000000000000000000000bb")
	removed := newWaveLog(t, from, 1, "reorged")
	removed.Removed = true

	backend := &fakeBackend{logs: []types.Log{
		newWaveLog(t, from, 1700000000, "gm"),
		removed,
		newWaveLog(t, from, 1700000001, "gn"),
	}}
	portal, err := NewPortal(testContract, backend, nil, nil)
	require.NoError(t, err)

	received := make(chan domain.RemoteWave, 3)
	sub, err := portal.WatchNewWaves(context.Background(), func(w domain.RemoteWave) {
		received <- w
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	var got []domain.RemoteWave
	for len(got) < 2 {
		select {
		case w := <-received:
			got = append(got, w)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for waves, got %d", len(got))
		}
	}

	assert.Equal(t, []domain.RemoteWave{
		{Waver: from.Hex(), Timestamp: 1700000000, Message: "gm"},
		{Waver: from.Hex(), Timestamp: 1700000001, Message: "gn"},
	}, got)
}

func TestPortalWatchNewWavesReportsUndecodableLog(t *testing.T) {
	bad := types.Log{
		Address: testContract,
		Topics:  []common.Hash{common.HexToHash("0x01")},
	}
	portal, err := NewPortal(testContract, &fakeBackend{logs: []types.Log{bad}}, nil, nil)
	require.NoError(t, err)

	sub, err := portal.WatchNewWaves(context.Background(), func(domain.RemoteWave) {
		t.Error("undecodable log must not reach the sink")
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	select {
	case err := <-sub.Err():
		require.Error(t, err)
		assert.ErrorContains(t, err, "unpack NewWave log")
	case <-time.After(time.Second):
		t.Fatal("expected subscription error")
	}
}

func TestPortalCloseRunsCloser(t *testing.T) {
	closed := 0
	portal, err := NewPortal(testContract, &fakeBackend{}, nil, func() { closed++ })
	require.NoError(t, err)

	portal.Close()
	assert.Equal(t, 1, closed)
}
