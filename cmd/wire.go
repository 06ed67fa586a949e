package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	tomlrepo "github.com/bnema/video-transcriber/internal/adapters/repo/toml"
	chainstore "github.com/bnema/video-transcriber/internal/adapters/secrets/chain"
	"github.com/bnema/video-transcriber/internal/adapters/summary/chat"
	"github.com/bnema/video-transcriber/internal/adapters/tools/whisper"
	"github.com/bnema/video-transcriber/internal/adapters/tools/ytdlp"
	"github.com/bnema/video-transcriber/internal/application"
	"github.com/bnema/video-transcriber/internal/config"
	"github.com/bnema/video-transcriber/internal/logging"
	"github.com/bnema/video-transcriber/internal/ports"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type app struct {
	cfg         config.Config
	logger      *slog.Logger
	pipeline    *application.Pipeline
	library     *application.Library
	credentials *application.CredentialService
	now         func() time.Time
	interactive func(io.Writer) bool
}

// wireOverrides replaces adapters that reach outside the process.
type wireOverrides struct {
	downloader  ports.Downloader
	transcriber ports.Transcriber
	summarizer  ports.Summarizer
	secretStore ports.SecretStore
	httpClient  *http.Client
	interactive func(io.Writer) bool
}

var flagBindings = map[string]string{
	"vault.path": "path",
	"log.level":  "log-level",
	"log.format": "log-format",
}

func wireApp(cmd *cobra.Command, overrides wireOverrides) (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	v := config.New(homeDir)
	for key, flag := range flagBindings {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind --%s: %w", flag, err)
		}
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, configPath, homeDir)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	secretStore := overrides.secretStore
	if secretStore == nil {
		chain, err := chainstore.NewPassFirstWithFileFallback(cfg.Secrets.Dir)
		if err != nil {
			return nil, fmt.Errorf("wire secret store chain: %w", err)
		}
		secretStore = chain
	}

	downloader := overrides.downloader
	if downloader == nil {
		downloader = ytdlp.NewDownloader(ytdlp.Config{
			Binary:      cfg.Downloader.Binary,
			AudioFormat: cfg.Downloader.AudioFormat,
			Timeout:     cfg.Downloader.Timeout,
		}, logger)
	}

	transcriber := overrides.transcriber
	if transcriber == nil {
		transcriber = whisper.NewTranscriber(whisper.Config{
			Binary:   cfg.Transcriber.Binary,
			Model:    cfg.Transcriber.Model,
			Language: cfg.Transcriber.Language,
			Timeout:  cfg.Transcriber.Timeout,
		}, logger)
	}

	summarizer := overrides.summarizer
	if summarizer == nil {
		summarizer = chat.NewSummarizer(chat.Config{
			Model:       cfg.Summary.Model,
			MaxTokens:   cfg.Summary.MaxTokens,
			Temperature: cfg.Summary.Temperature,
			Timeout:     cfg.Summary.Timeout,
			Endpoint:    cfg.Summary.Endpoint,
		}, overrides.httpClient, logger)
	}

	interactive := overrides.interactive
	if interactive == nil {
		interactive = isTerminal
	}

	store := tomlrepo.NewVaultStore()
	paths := application.SystemPaths()
	credentials := application.NewCredentialService(secretStore, cfg.Summary.APIKey)

	return &app{
		cfg:    cfg,
		logger: logger,
		pipeline: application.NewPipeline(application.PipelineDeps{
			Store:       store,
			Downloader:  downloader,
			Transcriber: transcriber,
			Summarizer:  summarizer,
			Credentials: credentials,
			Clock:       ports.SystemClock{},
			Logger:      logger,
			Paths:       paths,
		}),
		library:     application.NewLibrary(store, paths),
		credentials: credentials,
		now:         time.Now,
		interactive: interactive,
	}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
