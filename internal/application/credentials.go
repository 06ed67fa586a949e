package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/video-transcriber/internal/domain"
	"github.com/bnema/video-transcriber/internal/ports"
)

var (
	ErrUnknownProvider = errors.New("unknown provider")
	ErrEmptyAPIKey     = errors.New("api key is empty")
)

type CredentialSource string

const (
	CredentialSourceNone   CredentialSource = "none"
	CredentialSourceConfig CredentialSource = "config"
	CredentialSourceStore  CredentialSource = "secret-store"
)

// CredentialService resolves provider API keys: a configured key wins over
// the secret store.
type CredentialService struct {
	store      ports.SecretStore
	configured string
}

func NewCredentialService(store ports.SecretStore, configuredKey string) *CredentialService {
	return &CredentialService{store: store, configured: strings.TrimSpace(configuredKey)}
}

func ParseProvider(raw string) (domain.Provider, error) {
	provider := domain.Provider(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range domain.Providers() {
		if provider == known {
			return provider, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownProvider, raw)
}

func (s *CredentialService) SetAPIKey(ctx context.Context, cmd SetAPIKeyCommand) error {
	key := strings.TrimSpace(cmd.APIKey)
	if key == "" {
		return ErrEmptyAPIKey
	}
	if s.store == nil {
		return errors.New("no secret store configured")
	}

	if err := s.store.Put(ctx, cmd.Provider.SecretKey(), key); err != nil {
		return fmt.Errorf("store %s api key: %w", cmd.Provider, err)
	}

	return nil
}

func (s *CredentialService) RemoveAPIKey(ctx context.Context, cmd RemoveAPIKeyCommand) error {
	if s.store == nil {
		return errors.New("no secret store configured")
	}

	if err := s.store.Delete(ctx, cmd.Provider.SecretKey()); err != nil {
		return fmt.Errorf("remove %s api key: %w", cmd.Provider, err)
	}

	return nil
}

// Resolve returns nil credentials, not an error, when no key is configured
// anywhere. The error reports a secret store that could not be read.
func (s *CredentialService) Resolve(ctx context.Context, provider domain.Provider) (*ports.Credentials, CredentialSource, error) {
	if s.configured != "" {
		return &ports.Credentials{APIKey: s.configured}, CredentialSourceConfig, nil
	}
	if s.store == nil {
		return nil, CredentialSourceNone, nil
	}

	key, err := s.store.Get(ctx, provider.SecretKey())
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return nil, CredentialSourceNone, nil
		}
		return nil, CredentialSourceNone, fmt.Errorf("read %s api key: %w", provider, err)
	}
	if strings.TrimSpace(key) == "" {
		return nil, CredentialSourceNone, nil
	}

	return &ports.Credentials{APIKey: strings.TrimSpace(key)}, CredentialSourceStore, nil
}
