package ytdlp

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
	"github.com/bnema/video-transcriber/internal/ports"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultBinary      = "yt-dlp"
	DefaultAudioFormat = "wav"
	DefaultTimeout     = 30 * time.Minute

	outputTemplate = "%(title)s.%(ext)s"
	itemDirMode    = 0o755
)

type Config struct {
	Binary      string
	AudioFormat string
	Timeout     time.Duration
}

type Downloader struct {
	cfg    Config
	run    tools.RunFunc
	logger *slog.Logger
}

var _ ports.Downloader = (*Downloader)(nil)

func NewDownloader(cfg Config, logger *slog.Logger) *Downloader {
	if strings.TrimSpace(cfg.Binary) == "" {
		cfg.Binary = DefaultBinary
	}
	if strings.TrimSpace(cfg.AudioFormat) == "" {
		cfg.AudioFormat = DefaultAudioFormat
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Downloader{cfg: cfg, run: tools.RunCommand, logger: logger}
}

// Download fetches url and extracts its audio track into itemDir.
func (d *Downloader) Download(ctx context.Context, url string, itemDir string) (ports.DownloadResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.DownloadResult{}, err
	}

	if err := tools.Probe(ctx, d.run, d.cfg.Binary, "--version"); err != nil {
		return ports.DownloadResult{}, err
	}

	if err := os.MkdirAll(itemDir, itemDirMode); err != nil {
		return ports.DownloadResult{}, fmt.Errorf("create item directory: %w", err)
	}

	runCtx, cancel := tools.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	title := d.fetchTitle(runCtx, url)

	_, stderr, err := d.run(runCtx, d.cfg.Binary,
		"--no-playlist",
		"--extract-audio",
		"--audio-format", d.cfg.AudioFormat,
		"--output", filepath.Join(itemDir, outputTemplate),
		url,
	)
	if err != nil {
		return ports.DownloadResult{}, tools.Failure(runCtx, d.cfg.Binary, d.cfg.Timeout, err, stderr)
	}

	audioPath, ok := artifacts.FindAudio(itemDir)
	if !ok {
		return ports.DownloadResult{}, artifacts.MissingAudio(itemDir)
	}

	if title == "" {
		title = artifacts.StemTitle(audioPath)
	}

	return ports.DownloadResult{AudioPath: audioPath, Title: title}, nil
}

// fetchTitle asks the downloader for the title without downloading. The title
// is cosmetic, so failures are logged and yield "".
func (d *Downloader) fetchTitle(ctx context.Context, url string) string {
	stdout, stderr, err := d.run(ctx, d.cfg.Binary, "--no-playlist", "--skip-download", "--print", "title", url)
	if err != nil {
		d.logger.Debug("title probe failed",
			slog.String("url", url),
			slog.String("stderr", stderr),
			slog.Any("error", err),
		)
		return ""
	}

	return normalizeTitle(stdout)
}

func normalizeTitle(raw string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(raw), "\n")
	return norm.NFC.String(strings.TrimSpace(line))
}
