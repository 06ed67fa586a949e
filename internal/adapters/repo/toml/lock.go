package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bnema/video-transcriber/internal/domain"
	"github.com/bnema/video-transcriber/internal/ports"
	"github.com/gofrs/flock"
)

const defaultLockRetryDelay = 100 * time.Millisecond

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]chan struct{}{}
)

type vaultLock struct {
	slot chan struct{}
	file *flock.Flock
	once sync.Once
}

// Lock serializes vault access per store path: a per-path slot inside this
// process, then an flock on the vault's lock file against other processes.
func (s *VaultStore) Lock(ctx context.Context, layout domain.VaultLayout) (ports.Unlocker, error) {
	slot := lockForPath(layout.StorePath())

	select {
	case slot <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if err := os.MkdirAll(layout.Root, vaultDirMode); err != nil {
		<-slot
		return nil, fmt.Errorf("%w: create vault directory: %w", domain.ErrStoreWriteFailed, err)
	}

	file := flock.New(layout.LockPath())
	locked, err := file.TryLockContext(ctx, s.lockRetryDelay)
	if err != nil {
		<-slot
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrVaultLocked, layout.LockPath(), err)
	}
	if !locked {
		<-slot
		return nil, fmt.Errorf("%w: %s", domain.ErrVaultLocked, layout.LockPath())
	}

	return &vaultLock{slot: slot, file: file}, nil
}

func (l *vaultLock) Unlock() error {
	var err error
	l.once.Do(func() {
		err = l.file.Unlock()
		<-l.slot
	})
	return err
}

func lockForPath(path string) chan struct{} {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if slot, ok := pathLockMap[path]; ok {
		return slot
	}

	slot := make(chan struct{}, 1)
	pathLockMap[path] = slot
	return slot
}
