package ports

import "context"

// SecretStore holds keystore passphrases keyed by a store-relative path.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
