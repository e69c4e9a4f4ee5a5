package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	RPCURL             = "rpc.url"
	ContractAddress    = "contract.address"
	ChainID            = "contract.chain_id"
	GasLimit           = "contract.gas_limit"
	ConfirmTimeout     = "contract.confirm_timeout"
	Keystore           = "wallet.keystore"
	Account            = "wallet.account"
	AuthorizationsPath = "wallet.authorizations_path"
	SecretsDir         = "secrets.dir"
	LogLevel           = "log.level"
	LogFile            = "log.file"
	ServeAddr          = "serve.addr"
	RenderLocation     = "render.location"

	envPrefix  = "WAVE"
	configName = "config"
	configType = "toml"
	dirName    = ".waveportal"

	DefaultContractAddress = "0xcDb92Efa941b936fFEeA2Dc69dF624F27E4ed9A5"
	defaultGasLimit        = 300000
	defaultConfirmTimeout  = 5 * time.Minute
	defaultLogLevel        = "info"
	defaultServeAddr       = "127.0.0.1:8080"
	defaultRenderLocation  = "Local"
)

type Config struct {
	RPCURL             string
	ContractAddress    string
	ChainID            int64
	GasLimit           uint64
	ConfirmTimeout     time.Duration
	KeystoreDir        string
	Account            string
	AuthorizationsPath string
	SecretsDir         string
	LogLevel           log.Level
	LogFile            string
	ServeAddr          string
	Location           *time.Location
}

// New returns a viper instance primed with defaults, WAVE_* environment
// overrides and ~/.waveportal/config.toml when present.
func New() (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, dirName)

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(baseDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(RPCURL, "")
	v.SetDefault(ContractAddress, DefaultContractAddress)
	v.SetDefault(ChainID, 0)
	v.SetDefault(GasLimit, defaultGasLimit)
	v.SetDefault(ConfirmTimeout, defaultConfirmTimeout)
	v.SetDefault(Keystore, "")
	v.SetDefault(Account, "")
	v.SetDefault(AuthorizationsPath, filepath.Join(baseDir, "authorizations.toml"))
	v.SetDefault(SecretsDir, filepath.Join(baseDir, "secrets"))
	v.SetDefault(LogLevel, defaultLogLevel)
	v.SetDefault(LogFile, filepath.Join(baseDir, "wave.log"))
	v.SetDefault(ServeAddr, defaultServeAddr)
	v.SetDefault(RenderLocation, defaultRenderLocation)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return v, nil
}

func Load(v *viper.Viper) (Config, error) {
	level, err := log.ParseLevel(v.GetString(LogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", LogLevel, err)
	}

	contract := strings.TrimSpace(v.GetString(ContractAddress))
	if !common.IsHexAddress(contract) {
		return Config{}, fmt.Errorf("invalid %s %q", ContractAddress, contract)
	}

	gasLimit := v.GetUint64(GasLimit)
	if gasLimit == 0 {
		return Config{}, fmt.Errorf("%s must be positive", GasLimit)
	}

	timeout := v.GetDuration(ConfirmTimeout)
	if timeout < 0 {
		return Config{}, fmt.Errorf("%s must not be negative", ConfirmTimeout)
	}

	chainID := v.GetInt64(ChainID)
	if chainID < 0 {
		return Config{}, fmt.Errorf("%s must not be negative", ChainID)
	}

	location, err := time.LoadLocation(v.GetString(RenderLocation))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", RenderLocation, err)
	}

	return Config{
		RPCURL:             strings.TrimSpace(v.GetString(RPCURL)),
		ContractAddress:    common.HexToAddress(contract).Hex(),
		ChainID:            chainID,
		GasLimit:           gasLimit,
		ConfirmTimeout:     timeout,
		KeystoreDir:        expandHome(v.GetString(Keystore)),
		Account:            strings.TrimSpace(v.GetString(Account)),
		AuthorizationsPath: expandHome(v.GetString(AuthorizationsPath)),
		SecretsDir:         expandHome(v.GetString(SecretsDir)),
		LogLevel:           level,
		LogFile:            expandHome(v.GetString(LogFile)),
		ServeAddr:          v.GetString(ServeAddr),
		Location:           location,
	}, nil
}

func expandHome(path string) string {
	path = strings.TrimSpace(path)
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
