package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/bnema/video-transcriber/internal/domain"
	"github.com/bnema/video-transcriber/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	vaultFileMode   = 0o600
	vaultDirMode    = 0o700
	tempFilePattern = ".vault-*.toml.tmp"
)

type VaultStore struct {
	lockRetryDelay time.Duration
}

var _ ports.VaultStore = (*VaultStore)(nil)

func NewVaultStore() *VaultStore {
	return &VaultStore{lockRetryDelay: defaultLockRetryDelay}
}

// Load reads the whole vault. A missing store file is an empty vault.
func (s *VaultStore) Load(ctx context.Context, layout domain.VaultLayout) (domain.Vault, error) {
	if err := ctx.Err(); err != nil {
		return domain.Vault{}, err
	}

	path := layout.StorePath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NewVault(), nil
		}
		return domain.Vault{}, fmt.Errorf("read vault file: %w", err)
	}

	var file vaultFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.Vault{}, fmt.Errorf("%w: decode %s: %w", domain.ErrStoreCorrupt, path, err)
	}
	if err := file.validateVersion(); err != nil {
		return domain.Vault{}, fmt.Errorf("%w: %s: %w", domain.ErrStoreCorrupt, path, err)
	}
	file.applyDefaults()

	vault := domain.NewVault()
	for key, entry := range file.Videos {
		item, err := fromSchema(key, entry)
		if err != nil {
			return domain.Vault{}, fmt.Errorf("%w: %s: %w", domain.ErrStoreCorrupt, path, err)
		}
		vault.Put(item)
	}

	return vault, nil
}

// Save replaces the store file with the full vault.
func (s *VaultStore) Save(ctx context.Context, layout domain.VaultLayout, vault domain.Vault) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file := vaultFileSchema{Videos: make(map[string]itemSchema, vault.Len())}
	file.applyDefaults()
	for id, item := range vault.Items {
		entry, err := toSchema(item)
		if err != nil {
			return fmt.Errorf("%w: record %s: %w", domain.ErrStoreSerializeFailed, id, err)
		}
		file.Videos[string(id)] = entry
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreSerializeFailed, err)
	}

	if err := writeFileAtomic(layout.StorePath(), data); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreWriteFailed, err)
	}

	return nil
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), vaultDirMode); err != nil {
		return fmt.Errorf("create vault directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp vault file: %w", err)
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
		return fmt.Errorf("write temp vault file: %w", err)
	}

	if err := tempFile.Chmod(vaultFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp vault file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp vault file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace vault file: %w", err)
	}

	cleanup = false
	return nil
}

// toSchema rejects text TOML cannot carry, so a bad record fails its own save
// instead of leaving a file that no longer loads.
func toSchema(item domain.Item) (itemSchema, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{"id", (*string)(&item.ID)},
		{"url", &item.URL},
		{"title", item.Title},
		{"audio_file", item.AudioFile},
		{"transcript_content", item.TranscriptContent},
		{"summary_content", item.SummaryContent},
	}
	for _, field := range fields {
		if field.value != nil && !utf8.ValidString(*field.value) {
			return itemSchema{}, fmt.Errorf("%s is not valid UTF-8", field.name)
		}
	}

	return itemSchema{
		ID:                string(item.ID),
		URL:               item.URL,
		Title:             item.Title,
		Downloaded:        item.Downloaded,
		Transcribed:       item.Transcribed,
		Summarized:        item.Summarized,
		AudioFile:         item.AudioFile,
		TranscriptContent: item.TranscriptContent,
		SummaryContent:    item.SummaryContent,
		CreatedAt:         formatEpoch(item.CreatedAt),
		UpdatedAt:         formatEpoch(item.UpdatedAt),
	}, nil
}

func fromSchema(key string, entry itemSchema) (domain.Item, error) {
	id := entry.ID
	if id == "" {
		id = key
	}
	if id != key {
		return domain.Item{}, fmt.Errorf("record %q carries id %q", key, entry.ID)
	}

	createdAt, err := parseEpoch(entry.CreatedAt)
	if err != nil {
		return domain.Item{}, fmt.Errorf("record %q created_at: %w", key, err)
	}
	updatedAt, err := parseEpoch(entry.UpdatedAt)
	if err != nil {
		return domain.Item{}, fmt.Errorf("record %q updated_at: %w", key, err)
	}

	return domain.Item{
		ID:                domain.ItemID(id),
		URL:               entry.URL,
		Title:             entry.Title,
		Downloaded:        entry.Downloaded,
		Transcribed:       entry.Transcribed,
		Summarized:        entry.Summarized,
		AudioFile:         entry.AudioFile,
		TranscriptContent: entry.TranscriptContent,
		SummaryContent:    entry.SummaryContent,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}, nil
}

func parseEpoch(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid epoch seconds %q", raw)
	}

	return time.Unix(seconds, 0).UTC(), nil
}

func formatEpoch(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return strconv.FormatInt(value.Unix(), 10)
}
