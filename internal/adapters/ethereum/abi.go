package ethereum

import (
	_ "embed"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const (
	methodGetAllWaves   = "getAllWaves"
	methodGetTotalWaves = "getTotalWaves"
	methodWave          = "wave"
	eventNewWave        = "NewWave"
)

//go:embed wave_portal.abi.json
var wavePortalABIJSON string

var (
	parseABIOnce sync.Once
	parsedABI    abi.ABI
	parseABIErr  error
)

// WavePortalABI returns the parsed contract interface.
func WavePortalABI() (abi.ABI, error) {
	parseABIOnce.Do(func() {
		parsedABI, parseABIErr = abi.JSON(strings.NewReader(wavePortalABIJSON))
		if parseABIErr != nil {
			parseABIErr = fmt.Errorf("parse wave portal abi: %w", parseABIErr)
		}
	})

	return parsedABI, parseABIErr
}

// wavePortalWave mirrors the contract's Wave struct.
type wavePortalWave struct {
	Waver     common.Address
	Message   string
	Timestamp *big.Int
}

type newWaveEvent struct {
	From      common.Address
	Timestamp *big.Int
	Message   string
}
