package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version        int                   `toml:"version"`
	Authorizations []authorizationSchema `toml:"authorizations"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported authorizations schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type authorizationSchema struct {
	Address      string `toml:"address"`
	AuthorizedAt string `toml:"authorized_at"`
}
