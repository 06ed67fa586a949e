package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/video-transcriber/internal/domain"
	"github.com/bnema/video-transcriber/internal/ports"
)

const (
	DefaultMaxTokens   = 1000
	DefaultTemperature = 0.7
	DefaultTimeout     = 60 * time.Second

	maxResponseBytes    = 1 << 20
	maxTranscriptRunes  = 60_000
	systemPrompt        = "You summarize video transcripts. Reply with a concise summary in the transcript's language: a short overview paragraph followed by the key points as a bulleted list."
	truncatedTranscript = "\n\n[transcript truncated]"
)

type Config struct {
	// Model overrides the provider's default model.
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	// Endpoint overrides the provider endpoint, for proxies and tests.
	Endpoint string
}

type Summarizer struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

var _ ports.Summarizer = (*Summarizer)(nil)

func NewSummarizer(cfg Config, httpClient *http.Client, logger *slog.Logger) *Summarizer {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Summarizer{cfg: cfg, httpClient: httpClient, logger: logger}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

var errEmptyCompletion = errors.New("response has no completion content")

// Summarize never fails: without credentials, or when the remote call fails
// for any reason, it returns the local fallback summary.
func (s *Summarizer) Summarize(ctx context.Context, req ports.SummaryRequest) string {
	provider := domain.ResolveProvider(req.Provider)

	if req.Credentials == nil || strings.TrimSpace(req.Credentials.APIKey) == "" {
		s.logger.Info("no summarization credentials, using local summary",
			slog.String("provider", string(provider.Name)),
		)
		return domain.FallbackSummary(req.Transcript)
	}

	summary, err := s.complete(ctx, provider, strings.TrimSpace(req.Credentials.APIKey), req.Transcript)
	if err != nil {
		s.logger.Warn("remote summarization failed, using local summary",
			slog.String("provider", string(provider.Name)),
			slog.Any("error", err),
		)
		return domain.FallbackSummary(req.Transcript)
	}

	return summary
}

func (s *Summarizer) complete(ctx context.Context, provider domain.ProviderSpec, apiKey, transcript string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	model := strings.TrimSpace(s.cfg.Model)
	if model == "" {
		model = provider.DefaultModel
	}
	endpoint := strings.TrimSpace(s.cfg.Endpoint)
	if endpoint == "" {
		endpoint = provider.Endpoint
	}

	body, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: clampTranscript(transcript)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+apiKey)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", "vt/summarize")

	response, err := s.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return "", fmt.Errorf("status %d: %s", response.StatusCode, strings.TrimSpace(string(raw)))
	}

	var payload chatResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(payload.Choices) == 0 {
		return "", errEmptyCompletion
	}

	content := strings.TrimSpace(payload.Choices[0].Message.Content)
	if content == "" {
		return "", errEmptyCompletion
	}

	return content, nil
}

func clampTranscript(transcript string) string {
	runes := []rune(transcript)
	if len(runes) <= maxTranscriptRunes {
		return transcript
	}
	return string(runes[:maxTranscriptRunes]) + truncatedTranscript
}
