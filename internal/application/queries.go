package application

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/video-transcriber/internal/domain"
	"github.com/bnema/video-transcriber/internal/ports"
)

// ItemStatus is an item together with what is on disk for it right now.
type ItemStatus struct {
	Item         domain.Item
	AudioPresent bool
	AudioBytes   int64
}

// Library answers read-only questions about a vault. Reads skip the vault
// lock because saves replace the store file atomically.
type Library struct {
	store ports.VaultStore
	paths Paths
}

func NewLibrary(store ports.VaultStore, paths Paths) *Library {
	return &Library{store: store, paths: paths}
}

func (l *Library) Layout(basePath string) domain.VaultLayout {
	return domain.ResolveLayout(basePath, l.paths.HomeDir, l.paths.TempDir)
}

func (l *Library) List(ctx context.Context, basePath string) ([]ItemStatus, error) {
	vault, err := l.store.Load(ctx, l.Layout(basePath))
	if err != nil {
		return nil, fmt.Errorf("load vault: %w", err)
	}

	items := vault.List()
	statuses := make([]ItemStatus, 0, len(items))
	for _, item := range items {
		statuses = append(statuses, StatusOf(item))
	}

	return statuses, nil
}

// Show accepts an item id or the URL it was derived from.
func (l *Library) Show(ctx context.Context, basePath, ref string) (ItemStatus, error) {
	vault, err := l.store.Load(ctx, l.Layout(basePath))
	if err != nil {
		return ItemStatus{}, fmt.Errorf("load vault: %w", err)
	}

	item, err := vault.Lookup(ref)
	if err != nil {
		return ItemStatus{}, fmt.Errorf("%w: %q", err, ref)
	}

	return StatusOf(item), nil
}

// StatusOf pairs item with the current state of its audio file.
func StatusOf(item domain.Item) ItemStatus {
	status := ItemStatus{Item: item}
	if item.AudioFile == nil {
		return status
	}

	info, err := os.Stat(*item.AudioFile)
	if err != nil || info.IsDir() {
		return status
	}

	status.AudioPresent = true
	status.AudioBytes = info.Size()
	return status
}
