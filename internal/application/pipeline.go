package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/bnema/video-transcriber/internal/artifacts"
	"github.com/bnema/video-transcriber/internal/domain"
	"github.com/bnema/video-transcriber/internal/ports"
	"github.com/google/uuid"
)

var ErrEmptyURL = errors.New("url is empty")

const itemDirMode = 0o755

// Paths anchors vault layouts: HomeDir expands "~/" and TempDir is the base
// used when no path is given.
type Paths struct {
	HomeDir string
	TempDir string
}

func SystemPaths() Paths {
	home, _ := os.UserHomeDir()
	return Paths{HomeDir: home, TempDir: os.TempDir()}
}

type PipelineDeps struct {
	Store       ports.VaultStore
	Downloader  ports.Downloader
	Transcriber ports.Transcriber
	Summarizer  ports.Summarizer
	Credentials *CredentialService
	Clock       ports.Clock
	Logger      *slog.Logger
	Paths       Paths
}

// Pipeline moves one item at a time through download, transcription and
// summarization, persisting the vault after every completed stage so an
// interrupted run resumes where it stopped.
type Pipeline struct {
	store       ports.VaultStore
	downloader  ports.Downloader
	transcriber ports.Transcriber
	summarizer  ports.Summarizer
	credentials *CredentialService
	clock       ports.Clock
	logger      *slog.Logger
	paths       Paths
}

func NewPipeline(deps PipelineDeps) *Pipeline {
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.Credentials == nil {
		deps.Credentials = NewCredentialService(nil, "")
	}

	return &Pipeline{
		store:       deps.Store,
		downloader:  deps.Downloader,
		transcriber: deps.Transcriber,
		summarizer:  deps.Summarizer,
		credentials: deps.Credentials,
		clock:       deps.Clock,
		logger:      deps.Logger,
		paths:       deps.Paths,
	}
}

func (p *Pipeline) Layout(basePath string) domain.VaultLayout {
	return domain.ResolveLayout(basePath, p.paths.HomeDir, p.paths.TempDir)
}

// run carries the state of one Run call.
type run struct {
	layout   domain.VaultLayout
	vault    domain.Vault
	item     domain.Item
	provider domain.ProviderSpec
	logger   *slog.Logger
	onStage  func(domain.Stage)
}

func (r *run) start(stage domain.Stage) {
	r.logger.Info("stage started", slog.String("stage", string(stage)))
	if r.onStage != nil {
		r.onStage(stage)
	}
}

// Run drives the item for cmd.URL to the summarized state and returns the
// final record. The vault lock is held for the whole run.
func (p *Pipeline) Run(ctx context.Context, cmd RunCommand) (domain.Item, error) {
	url := strings.TrimSpace(cmd.URL)
	if url == "" {
		return domain.Item{}, ErrEmptyURL
	}

	layout := p.Layout(cmd.BasePath)
	id := domain.DeriveID(url)
	logger := p.logger.With(
		slog.String("run_id", uuid.NewString()),
		slog.String("item_id", string(id)),
	)

	unlocker, err := p.store.Lock(ctx, layout)
	if err != nil {
		return domain.Item{}, fmt.Errorf("lock vault %s: %w", layout.Root, err)
	}
	defer func() {
		if unlockErr := unlocker.Unlock(); unlockErr != nil {
			logger.Warn("release vault lock", slog.Any("error", unlockErr))
		}
	}()

	vault, err := p.store.Load(ctx, layout)
	if err != nil {
		return domain.Item{}, fmt.Errorf("load vault: %w", err)
	}

	item, exists := vault.Get(id)
	switch {
	case !exists:
		item = domain.NewItem(url, p.clock.Now())
		logger.Info("tracking new item", slog.String("url", url))
	case item.URL != url:
		return domain.Item{}, fmt.Errorf("%w: %s already tracks %q", domain.ErrIDCollision, id, item.URL)
	default:
		logger.Debug("resuming item", slog.String("state", string(item.State())))
	}

	if err := os.MkdirAll(layout.ItemDir(id), itemDirMode); err != nil {
		return domain.Item{}, fmt.Errorf("create item directory: %w", err)
	}

	r := &run{
		layout:   layout,
		vault:    vault,
		item:     item,
		provider: domain.ResolveProvider(cmd.Provider),
		logger:   logger,
		onStage:  cmd.OnStage,
	}

	steps := []func(context.Context, *run) error{
		p.repair,
		p.download,
		p.transcribe,
		p.summarize,
	}
	for _, step := range steps {
		if err := step(ctx, r); err != nil {
			return r.item, err
		}
	}

	return r.item, nil
}

func (p *Pipeline) repair(ctx context.Context, r *run) error {
	if !r.item.NeedsAudioRepair() {
		return nil
	}

	dir := r.layout.ItemDir(r.item.ID)
	audioPath, ok := artifacts.FindAudio(dir)
	if !ok {
		r.logger.Warn("audio path missing and no audio file found", slog.String("dir", dir))
		return nil
	}

	r.start(domain.StageRepair)
	now := p.clock.Now()
	r.item.RepairAudio(audioPath, now)
	if r.item.Title == nil {
		r.item.SetTitle(artifacts.RecoverTitle(audioPath), now)
	}
	if err := p.persist(ctx, r, domain.StageRepair); err != nil {
		return err
	}

	r.logger.Info("recovered audio path", slog.String("audio_file", audioPath))
	return nil
}

func (p *Pipeline) download(ctx context.Context, r *run) error {
	if r.item.Downloaded {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := r.layout.ItemDir(r.item.ID)
	r.start(domain.StageDownload)

	result, err := p.downloader.Download(ctx, r.item.URL, dir)
	if err != nil {
		return stageFailure(ctx, domain.StageDownload, err)
	}

	audioPath, err := verifyAudio(dir, result.AudioPath)
	if err != nil {
		return stageFailure(ctx, domain.StageDownload, err)
	}

	title := strings.TrimSpace(result.Title)
	if title == "" {
		title = artifacts.RecoverTitle(audioPath)
	}

	r.item.MarkDownloaded(audioPath, title, p.clock.Now())
	if err := p.persist(ctx, r, domain.StageDownload); err != nil {
		return err
	}

	r.logger.Info("stage completed",
		slog.String("stage", string(domain.StageDownload)),
		slog.String("audio_file", audioPath),
		slog.String("title", title),
	)
	return nil
}

func (p *Pipeline) transcribe(ctx context.Context, r *run) error {
	if r.item.Transcribed {
		return nil
	}
	if r.item.AudioFile == nil {
		return &domain.StageError{Stage: domain.StageTranscribe, Err: domain.ErrMissingAudioArtifact}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.start(domain.StageTranscribe)

	transcript, err := p.transcriber.Transcribe(ctx, *r.item.AudioFile)
	if err != nil {
		return stageFailure(ctx, domain.StageTranscribe, err)
	}

	r.item.MarkTranscribed(transcript, p.clock.Now())
	if err := p.persist(ctx, r, domain.StageTranscribe); err != nil {
		return err
	}

	r.logger.Info("stage completed",
		slog.String("stage", string(domain.StageTranscribe)),
		slog.Int("transcript_chars", len(transcript)),
	)
	return nil
}

func (p *Pipeline) summarize(ctx context.Context, r *run) error {
	if r.item.Summarized || r.item.TranscriptContent == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	provider := r.provider
	credentials, source, err := p.credentials.Resolve(ctx, provider.Name)
	if err != nil {
		r.logger.Warn("credentials unavailable, summarizing locally", slog.Any("error", err))
	}

	r.logger.Debug("summarizer selected",
		slog.String("provider", string(provider.Name)),
		slog.String("credentials", string(source)),
	)
	r.start(domain.StageSummarize)

	summary := p.summarizer.Summarize(ctx, ports.SummaryRequest{
		Transcript:  *r.item.TranscriptContent,
		Credentials: credentials,
		Provider:    string(provider.Name),
	})
	// A canceled run must not record the fallback it degraded to.
	if err := ctx.Err(); err != nil {
		return err
	}

	r.item.MarkSummarized(summary, p.clock.Now())
	if err := p.persist(ctx, r, domain.StageSummarize); err != nil {
		return err
	}

	r.logger.Info("stage completed", slog.String("stage", string(domain.StageSummarize)))
	return nil
}

func (p *Pipeline) persist(ctx context.Context, r *run, stage domain.Stage) error {
	r.vault.Put(r.item)
	if err := p.store.Save(ctx, r.layout, r.vault); err != nil {
		return fmt.Errorf("save vault after %s: %w", stage, err)
	}
	return nil
}

// verifyAudio confirms the reported audio file exists, rescanning dir when
// the adapter's path is stale or empty.
func verifyAudio(dir, reported string) (string, error) {
	if reported != "" {
		if info, err := os.Stat(reported); err == nil && !info.IsDir() {
			return reported, nil
		}
	}
	if found, ok := artifacts.FindAudio(dir); ok {
		return found, nil
	}
	return "", artifacts.MissingAudio(dir)
}

func stageFailure(ctx context.Context, stage domain.Stage, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return err
	}
	return &domain.StageError{Stage: stage, Err: err}
}
