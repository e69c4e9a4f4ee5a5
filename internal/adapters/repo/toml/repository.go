package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/wave-portal-cli/internal/domain"
	"github.com/bnema/wave-portal-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// PathKey is the config key overriding the authorizations file location.
	PathKey           = "wallet.authorizations_path"
	fileMode          = 0o600
	dirMode           = 0o700
	defaultConfigDir  = ".waveportal"
	defaultConfigFile = "authorizations.toml"
	tempFilePattern   = ".authorizations-*.toml.tmp"
)

// Repository persists wallet authorizations in a TOML file. Writers sharing a
// path share one lock, so concurrent saves from separate instances never drop
// each other's entries.
type Repository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.AuthorizationRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(PathKey, filepath.Join(homeDir, defaultConfigDir, defaultConfigFile))

	path := cfg.GetString(PathKey)
	if path == "" {
		return nil, errors.New("authorizations path is empty")
	}
	path, err = normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Repository{path: path, mu: lockForPath(path)}, nil
}

func (r *Repository) Path() string {
	return r.path
}

// Save records authorization, replacing any earlier entry for the same address.
func (r *Repository) Save(ctx context.Context, authorization domain.Authorization) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := authorization.Validate(); err != nil {
		return fmt.Errorf("save authorization: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(authorization)
	updated := false
	for i := range file.Authorizations {
		if domain.SameAddress(file.Authorizations[i].Address, encoded.Address) {
			file.Authorizations[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Authorizations = append(file.Authorizations, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) List(ctx context.Context) ([]domain.Authorization, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	authorizations := make([]domain.Authorization, 0, len(file.Authorizations))
	for _, entry := range file.Authorizations {
		authorizations = append(authorizations, fromSchema(entry))
	}

	return authorizations, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read authorizations file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode authorizations file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("create authorizations directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode authorizations file: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp authorizations file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp authorizations file: %w", err)
	}
	if err := tempFile.Chmod(fileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp authorizations file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp authorizations file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace authorizations file: %w", err)
	}
	cleanup = false

	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve authorizations path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(authorization domain.Authorization) authorizationSchema {
	authorizedAt := ""
	if !authorization.AuthorizedAt.IsZero() {
		authorizedAt = authorization.AuthorizedAt.UTC().Format(time.RFC3339)
	}

	return authorizationSchema{
		Address:      authorization.Address,
		AuthorizedAt: authorizedAt,
	}
}

// fromSchema tolerates a missing or malformed timestamp; such entries sort last.
func fromSchema(entry authorizationSchema) domain.Authorization {
	authorization := domain.Authorization{Address: entry.Address}
	if entry.AuthorizedAt == "" {
		return authorization
	}

	parsed, err := time.Parse(time.RFC3339, entry.AuthorizedAt)
	if err == nil {
		authorization.AuthorizedAt = parsed
	}

	return authorization
}
