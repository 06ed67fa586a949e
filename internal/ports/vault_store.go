package ports

import (
	"context"

	"github.com/bnema/video-transcriber/internal/domain"
)

// VaultStore loads and saves a whole vault. Callers hold the lock returned by
// Lock across every load/save cycle on the same layout.
type VaultStore interface {
	Lock(ctx context.Context, layout domain.VaultLayout) (Unlocker, error)
	Load(ctx context.Context, layout domain.VaultLayout) (domain.Vault, error)
	Save(ctx context.Context, layout domain.VaultLayout, vault domain.Vault) error
}

type Unlocker interface {
	Unlock() error
}
