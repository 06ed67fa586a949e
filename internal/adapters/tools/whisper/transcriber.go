package whisper

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/video-transcriber/internal/adapters/tools"
	"github.com/bnema/video-transcriber/internal/artifacts"
	"github.com/bnema/video-transcriber/internal/domain"
	"github.com/bnema/video-transcriber/internal/ports"
)

const (
	DefaultBinary  = "whisper"
	DefaultModel   = "base"
	DefaultTimeout = 2 * time.Hour
)

type Config struct {
	Binary   string
	Model    string
	Language string
	Timeout  time.Duration
}

type Transcriber struct {
	cfg    Config
	run    tools.RunFunc
	logger *slog.Logger
}

var _ ports.Transcriber = (*Transcriber)(nil)

func NewTranscriber(cfg Config, logger *slog.Logger) *Transcriber {
	if strings.TrimSpace(cfg.Binary) == "" {
		cfg.Binary = DefaultBinary
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = DefaultModel
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Transcriber{cfg: cfg, run: tools.RunCommand, logger: logger}
}

// Transcribe runs speech-to-text on audioPath and returns the trimmed text the
// tool writes beside it.
func (t *Transcriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := tools.Probe(ctx, t.run, t.cfg.Binary, "--help"); err != nil {
		return "", err
	}

	dir := filepath.Dir(audioPath)
	args := []string{
		audioPath,
		"--model", t.cfg.Model,
		"--output_format", "txt",
		"--output_dir", dir,
	}
	if language := strings.TrimSpace(t.cfg.Language); language != "" {
		args = append(args, "--language", language)
	}

	runCtx, cancel := tools.WithTimeout(ctx, t.cfg.Timeout)
	defer cancel()

	started := time.Now()
	_, stderr, err := t.run(runCtx, t.cfg.Binary, args...)
	if err != nil {
		return "", tools.Failure(runCtx, t.cfg.Binary, t.cfg.Timeout, err, stderr)
	}
	t.logger.Debug("transcriber finished",
		slog.String("audio_file", audioPath),
		slog.Duration("elapsed", time.Since(started)),
	)

	transcriptPath, ok := artifacts.FindTranscript(audioPath)
	if !ok {
		return "", &domain.ArtifactError{Dir: dir, Want: "transcript (.txt)", Listing: artifacts.Listing(dir)}
	}

	data, err := os.ReadFile(transcriptPath)
	if err != nil {
		return "", fmt.Errorf("read transcript %s: %w", transcriptPath, err)
	}

	return strings.TrimSpace(strings.ToValidUTF8(string(data), "\uFFFD")), nil
}
