package ports

import "context"

// SecretStore holds provider API keys by key path. Get reports a key that
// is not stored with domain.ErrSecretNotFound; Delete of a missing key
// succeeds.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
