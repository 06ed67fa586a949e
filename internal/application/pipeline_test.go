package application

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tomlrepo "github.com/bnema/video-transcriber/internal/adapters/repo/toml"
	"github.com/bnema/video-transcriber/internal/domain"
	"github.com/bnema/video-transcriber/internal/ports"
	"github.com/bnema/video-transcriber/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testURL = "https://example.com/v1"

var testNow = time.Date(2026, time.February, 14, 11, 0, 0, 0, time.UTC)

type pipelineFixture struct {
	base        string
	store       *tomlrepo.VaultStore
	downloader  *mocks.MockDownloader
	transcriber *mocks.MockTranscriber
	summarizer  *mocks.MockSummarizer
	secrets     *mocks.MockSecretStore
	pipeline    *Pipeline
}

func newPipelineFixture(t *testing.T, configuredKey string) *pipelineFixture {
	t.Helper()

	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(testNow).Maybe()

	f := &pipelineFixture{
		base:        t.TempDir(),
		store:       tomlrepo.NewVaultStore(),
		downloader:  mocks.NewMockDownloader(t),
		transcriber: mocks.NewMockTranscriber(t),
		summarizer:  mocks.NewMockSummarizer(t),
		secrets:     mocks.NewMockSecretStore(t),
	}
	f.pipeline = NewPipeline(PipelineDeps{
		Store:       f.store,
		Downloader:  f.downloader,
		Transcriber: f.transcriber,
		Summarizer:  f.summarizer,
		Credentials: NewCredentialService(f.secrets, configuredKey),
		Clock:       clock,
		Paths:       Paths{HomeDir: t.TempDir(), TempDir: t.TempDir()},
	})

	return f
}

func (f *pipelineFixture) layout() domain.VaultLayout {
	return f.pipeline.Layout(f.base)
}

func (f *pipelineFixture) run(ctx context.Context, url string) (domain.Item, error) {
	return f.pipeline.Run(ctx, RunCommand{URL: url, BasePath: f.base})
}

func (f *pipelineFixture) loadVault(t *testing.T) domain.Vault {
	t.Helper()

	vault, err := f.store.Load(context.Background(), f.layout())
	require.NoError(t, err)
	return vault
}

func (f *pipelineFixture) saveVault(t *testing.T, items ...domain.Item) {
	t.Helper()

	vault := domain.NewVault()
	for _, item := range items {
		vault.Put(item)
	}
	require.NoError(t, f.store.Save(context.Background(), f.layout(), vault))
}

func (f *pipelineFixture) readStoreFile(t *testing.T) []byte {
	t.Helper()

	data, err := os.ReadFile(f.layout().StorePath())
	require.NoError(t, err)
	return data
}

// expectDownloadWritingAudio makes the download stub leave name in the item directory.
func (f *pipelineFixture) expectDownloadWritingAudio(url, name, title string) {
	f.downloader.EXPECT().Download(mock.Anything, url, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, itemDir string) (ports.DownloadResult, error) {
			audioPath := filepath.Join(itemDir, name)
			if err := os.WriteFile(audioPath, []byte("RIFF"), 0o644); err != nil {
				return ports.DownloadResult{}, err
			}
			return ports.DownloadResult{AudioPath: audioPath, Title: title}, nil
		}).Once()
}

func writeAudio(t *testing.T, dir, name string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0o644))
	return path
}

func completedItem(url string) domain.Item {
	item := domain.NewItem(url, testNow.Add(-time.Hour))
	item.MarkDownloaded("/vault/audio.wav", "Done Talk", testNow.Add(-time.Hour))
	item.MarkTranscribed("hello world", testNow.Add(-time.Hour))
	item.MarkSummarized("a summary", testNow.Add(-time.Hour))
	return item
}

func TestPipelineRunFreshVaultCompletesAllStages(t *testing.T) {
	f := newPipelineFixture(t, "")

	f.expectDownloadWritingAudio(testURL, "Intro Talk.wav", "Intro Talk")
	f.transcriber.EXPECT().Transcribe(mock.Anything, mock.Anything).Return("We talk about vaults.", nil).Once()
	f.secrets.EXPECT().Get(mock.Anything, domain.ProviderOpenAI.SecretKey()).Return("", domain.ErrSecretNotFound).Once()
	f.summarizer.EXPECT().Summarize(mock.Anything, ports.SummaryRequest{
		Transcript: "We talk about vaults.",
		Provider:   "openai",
	}).Return("Vaults, briefly.").Once()

	item, err := f.run(context.Background(), testURL)
	require.NoError(t, err)

	wantAudio := filepath.Join(f.base, domain.VaultDirName, string(domain.DeriveID(testURL)), "Intro Talk.wav")
	assert.Equal(t, domain.DeriveID(testURL), item.ID)
	assert.Equal(t, testURL, item.URL)
	assert.Equal(t, domain.StateSummarized, item.State())
	assert.Equal(t, "Intro Talk", domain.Deref(item.Title))
	assert.Equal(t, wantAudio, domain.Deref(item.AudioFile))
	assert.Equal(t, "We talk about vaults.", domain.Deref(item.TranscriptContent))
	assert.Equal(t, "Vaults, briefly.", domain.Deref(item.SummaryContent))
	assert.Equal(t, testNow, item.CreatedAt)
	assert.Equal(t, testNow, item.UpdatedAt)

	vault := f.loadVault(t)
	require.Equal(t, 1, vault.Len())
	stored, ok := vault.Get(item.ID)
	require.True(t, ok)
	assert.Equal(t, item, stored)
}

func TestPipelineRunReportsStagesAsTheyStart(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, f *pipelineFixture)
		want  []domain.Stage
	}{
		{
			name: "fresh item",
			setup: func(_ *testing.T, f *pipelineFixture) {
				f.expectDownloadWritingAudio(testURL, "talk.wav", "Talk")
				f.transcriber.EXPECT().Transcribe(mock.Anything, mock.Anything).Return("text", nil).Once()
				f.summarizer.EXPECT().Summarize(mock.Anything, mock.Anything).Return("summary").Once()
			},
			want: []domain.Stage{domain.StageDownload, domain.StageTranscribe, domain.StageSummarize},
		},
		{
			name: "repaired item",
			setup: func(t *testing.T, f *pipelineFixture) {
				item := domain.NewItem(testURL, testNow.Add(-time.Hour))
				item.Downloaded = true
				f.saveVault(t, item)
				writeAudio(t, f.layout().ItemDir(item.ID), "talk.wav")
				f.transcriber.EXPECT().Transcribe(mock.Anything, mock.Anything).Return("text", nil).Once()
				f.summarizer.EXPECT().Summarize(mock.Anything, mock.Anything).Return("summary").Once()
			},
			want: []domain.Stage{domain.StageRepair, domain.StageTranscribe, domain.StageSummarize},
		},
		{
			name: "completed item",
			setup: func(t *testing.T, f *pipelineFixture) {
				f.saveVault(t, completedItem(testURL))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPipelineFixture(t, "sk-config")
			tt.setup(t, f)

			var got []domain.Stage
			_, err := f.pipeline.Run(context.Background(), RunCommand{
				URL:      testURL,
				BasePath: f.base,
				OnStage:  func(stage domain.Stage) { got = append(got, stage) },
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPipelineRunCompletedItemInvokesNoAdapters(t *testing.T) {
	f := newPipelineFixture(t, "")
	done := completedItem(testURL)
	f.saveVault(t, done)
	before := f.readStoreFile(t)

	item, err := f.run(context.Background(), testURL)
	require.NoError(t, err)

	assert.Equal(t, done, item)
	assert.Equal(t, before, f.readStoreFile(t))
}

func TestPipelineRunTwiceDoesNotRepeatStages(t *testing.T) {
	f := newPipelineFixture(t, "sk-config")

	f.expectDownloadWritingAudio(testURL, "talk.mp3", "Talk")
	f.transcriber.EXPECT().Transcribe(mock.Anything, mock.Anything).Return("text", nil).Once()
	f.summarizer.EXPECT().Summarize(mock.Anything, mock.Anything).Return("summary").Once()

	first, err := f.run(context.Background(), testURL)
	require.NoError(t, err)

	second, err := f.run(context.Background(), testURL)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPipelineRunResumesAfterDownload(t *testing.T) {
	f := newPipelineFixture(t, "")

	item := domain.NewItem(testURL, testNow.Add(-time.Hour))
	audio := writeAudio(t, f.layout().ItemDir(item.ID), "talk.wav")
	item.MarkDownloaded(audio, "Talk", testNow.Add(-time.Hour))
	f.saveVault(t, item)

	f.transcriber.EXPECT().Transcribe(mock.Anything, audio).Return("resumed text", nil).Once()
	f.secrets.EXPECT().Get(mock.Anything, mock.Anything).Return("", domain.ErrSecretNotFound).Once()
	f.summarizer.EXPECT().Summarize(mock.Anything, mock.Anything).Return("resumed summary").Once()

	got, err := f.run(context.Background(), testURL)
	require.NoError(t, err)

	assert.Equal(t, domain.StateSummarized, got.State())
	assert.Equal(t, testNow.Add(-time.Hour), got.CreatedAt)
	assert.Equal(t, testNow, got.UpdatedAt)
}

func TestPipelineRunRepairsMissingAudioPath(t *testing.T) {
	f := newPipelineFixture(t, "sk-config")

	item := domain.NewItem(testURL, testNow.Add(-time.Hour))
	item.Downloaded = true
	f.saveVault(t, item)
	audio := writeAudio(t, f.layout().ItemDir(item.ID), "Recovered Talk.m4a")

	f.transcriber.EXPECT().Transcribe(mock.Anything, audio).Return("text", nil).Once()
	f.summarizer.EXPECT().Summarize(mock.Anything, mock.Anything).Return("summary").Once()

	got, err := f.run(context.Background(), testURL)
	require.NoError(t, err)

	assert.Equal(t, audio, domain.Deref(got.AudioFile))
	assert.Equal(t, "Recovered Talk", domain.Deref(got.Title))
	assert.Equal(t, domain.StateSummarized, got.State())
}

func TestPipelineRunPersistsRepairBeforeLaterFailure(t *testing.T) {
	f := newPipelineFixture(t, "")

	item := domain.NewItem(testURL, testNow.Add(-time.Hour))
	item.Downloaded = true
	f.saveVault(t, item)
	audio := writeAudio(t, f.layout().ItemDir(item.ID), "talk.flac")

	f.transcriber.EXPECT().Transcribe(mock.Anything, audio).
		Return("", &domain.ToolError{Tool: "whisper", Kind: domain.ErrStageFailed, Diagnostic: "bad model"}).Once()

	_, err := f.run(context.Background(), testURL)
	require.ErrorIs(t, err, domain.ErrStageFailed)

	stored, ok := f.loadVault(t).Get(item.ID)
	require.True(t, ok)
	assert.Equal(t, audio, domain.Deref(stored.AudioFile))
	assert.False(t, stored.Transcribed)
}

func TestPipelineRunWithoutRecoverableAudioFailsAtTranscribe(t *testing.T) {
	f := newPipelineFixture(t, "")

	item := domain.NewItem(testURL, testNow.Add(-time.Hour))
	item.Downloaded = true
	f.saveVault(t, item)

	_, err := f.run(context.Background(), testURL)
	require.ErrorIs(t, err, domain.ErrMissingAudioArtifact)

	stage, ok := domain.FailedStage(err)
	require.True(t, ok)
	assert.Equal(t, domain.StageTranscribe, stage)
}

func TestPipelineRunDownloadFailureStopsRun(t *testing.T) {
	f := newPipelineFixture(t, "")

	toolErr := &domain.ToolError{Tool: "yt-dlp", Kind: domain.ErrStageFailed, Diagnostic: "ERROR: Unsupported URL"}
	f.downloader.EXPECT().Download(mock.Anything, testURL, mock.Anything).Return(ports.DownloadResult{}, toolErr).Once()

	item, err := f.run(context.Background(), testURL)
	require.ErrorIs(t, err, domain.ErrStageFailed)
	assert.ErrorContains(t, err, "download: yt-dlp")
	assert.ErrorContains(t, err, "Unsupported URL")

	stage, ok := domain.FailedStage(err)
	require.True(t, ok)
	assert.Equal(t, domain.StageDownload, stage)

	assert.False(t, item.Downloaded)
	assert.False(t, item.Transcribed)
	assert.False(t, item.Summarized)
	assert.Nil(t, item.TranscriptContent)
	assert.Nil(t, item.SummaryContent)

	_, statErr := os.Stat(f.layout().StorePath())
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestPipelineRunToolUnavailableIsDistinct(t *testing.T) {
	f := newPipelineFixture(t, "")

	toolErr := &domain.ToolError{Tool: "yt-dlp", Kind: domain.ErrToolUnavailable, Diagnostic: "command not found in PATH"}
	f.downloader.EXPECT().Download(mock.Anything, testURL, mock.Anything).Return(ports.DownloadResult{}, toolErr).Once()

	_, err := f.run(context.Background(), testURL)
	require.ErrorIs(t, err, domain.ErrToolUnavailable)
	assert.NotErrorIs(t, err, domain.ErrStageFailed)
}

func TestPipelineRunDownloadWithoutAudioLeavesVaultUnchanged(t *testing.T) {
	f := newPipelineFixture(t, "")
	other := completedItem("https://example.com/other")
	f.saveVault(t, other)
	before := f.readStoreFile(t)

	f.downloader.EXPECT().Download(mock.Anything, testURL, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, itemDir string) (ports.DownloadResult, error) {
			require.NoError(t, os.WriteFile(filepath.Join(itemDir, "notes.txt"), []byte("x"), 0o644))
			return ports.DownloadResult{AudioPath: filepath.Join(itemDir, "ghost.wav"), Title: "Ghost"}, nil
		}).Once()

	item, err := f.run(context.Background(), testURL)
	require.ErrorIs(t, err, domain.ErrArtifactMissing)
	assert.ErrorContains(t, err, "notes.txt")
	assert.False(t, item.Downloaded)
	assert.Equal(t, before, f.readStoreFile(t))
}

func TestPipelineRunUsesRescannedAudioWhenReportedPathIsStale(t *testing.T) {
	f := newPipelineFixture(t, "sk-config")

	f.downloader.EXPECT().Download(mock.Anything, testURL, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, itemDir string) (ports.DownloadResult, error) {
			writeAudio(t, itemDir, "actual.ogg")
			return ports.DownloadResult{AudioPath: filepath.Join(itemDir, "expected.wav")}, nil
		}).Once()
	f.transcriber.EXPECT().Transcribe(mock.Anything, mock.Anything).Return("text", nil).Once()
	f.summarizer.EXPECT().Summarize(mock.Anything, mock.Anything).Return("summary").Once()

	item, err := f.run(context.Background(), testURL)
	require.NoError(t, err)
	assert.Equal(t, "actual.ogg", filepath.Base(domain.Deref(item.AudioFile)))
	assert.Equal(t, "actual", domain.Deref(item.Title))
}

func TestPipelineRunTranscribeFailureKeepsDownload(t *testing.T) {
	f := newPipelineFixture(t, "")

	f.expectDownloadWritingAudio(testURL, "talk.wav", "Talk")
	f.transcriber.EXPECT().Transcribe(mock.Anything, mock.Anything).
		Return("", &domain.ArtifactError{Dir: "/x", Want: "transcript (.txt)"}).Once()

	_, err := f.run(context.Background(), testURL)
	require.ErrorIs(t, err, domain.ErrArtifactMissing)

	stage, ok := domain.FailedStage(err)
	require.True(t, ok)
	assert.Equal(t, domain.StageTranscribe, stage)

	stored, ok := f.loadVault(t).Get(domain.DeriveID(testURL))
	require.True(t, ok)
	assert.True(t, stored.Downloaded)
	assert.False(t, stored.Transcribed)
	assert.False(t, stored.Summarized)
}

func TestPipelineRunPassesResolvedCredentials(t *testing.T) {
	f := newPipelineFixture(t, "")

	f.expectDownloadWritingAudio(testURL, "talk.wav", "Talk")
	f.transcriber.EXPECT().Transcribe(mock.Anything, mock.Anything).Return("text", nil).Once()
	f.secrets.EXPECT().Get(mock.Anything, domain.ProviderDeepSeek.SecretKey()).Return("sk-stored\n", nil).Once()
	f.summarizer.EXPECT().Summarize(mock.Anything, ports.SummaryRequest{
		Transcript:  "text",
		Credentials: &ports.Credentials{APIKey: "sk-stored"},
		Provider:    "deepseek",
	}).Return("remote summary").Once()

	item, err := f.pipeline.Run(context.Background(), RunCommand{URL: testURL, BasePath: f.base, Provider: "DeepSeek"})
	require.NoError(t, err)
	assert.Equal(t, "remote summary", domain.Deref(item.SummaryContent))
}

func TestPipelineRunUnknownProviderFallsBackToDefault(t *testing.T) {
	f := newPipelineFixture(t, "sk-config")

	f.expectDownloadWritingAudio(testURL, "talk.wav", "Talk")
	f.transcriber.EXPECT().Transcribe(mock.Anything, mock.Anything).Return("text", nil).Once()
	f.summarizer.EXPECT().Summarize(mock.Anything, ports.SummaryRequest{
		Transcript:  "text",
		Credentials: &ports.Credentials{APIKey: "sk-config"},
		Provider:    string(domain.DefaultProvider),
	}).Return("summary").Once()

	_, err := f.pipeline.Run(context.Background(), RunCommand{URL: testURL, BasePath: f.base, Provider: "mystery"})
	require.NoError(t, err)
}

func TestPipelineRunSecretStoreErrorStillSummarizes(t *testing.T) {
	f := newPipelineFixture(t, "")

	f.expectDownloadWritingAudio(testURL, "talk.wav", "Talk")
	f.transcriber.EXPECT().Transcribe(mock.Anything, mock.Anything).Return("text", nil).Once()
	f.secrets.EXPECT().Get(mock.Anything, mock.Anything).Return("", errors.New("gpg agent down")).Once()
	f.summarizer.EXPECT().Summarize(mock.Anything, ports.SummaryRequest{Transcript: "text", Provider: "openai"}).
		Return(domain.FallbackSummary("text")).Once()

	item, err := f.run(context.Background(), testURL)
	require.NoError(t, err)
	assert.True(t, item.Summarized)
	assert.NotEmpty(t, domain.Deref(item.SummaryContent))
}

func TestPipelineRunCancelDuringSummarizeDoesNotRecordFallback(t *testing.T) {
	f := newPipelineFixture(t, "sk-config")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.expectDownloadWritingAudio(testURL, "talk.wav", "Talk")
	f.transcriber.EXPECT().Transcribe(mock.Anything, mock.Anything).Return("text", nil).Once()
	f.summarizer.EXPECT().Summarize(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, ports.SummaryRequest) string {
			cancel()
			return domain.FallbackSummary("text")
		}).Once()

	_, err := f.run(ctx, testURL)
	require.ErrorIs(t, err, context.Canceled)

	stored, ok := f.loadVault(t).Get(domain.DeriveID(testURL))
	require.True(t, ok)
	assert.True(t, stored.Transcribed)
	assert.False(t, stored.Summarized)
}

func TestPipelineRunCanceledDownloadIsNotWrappedAsStage(t *testing.T) {
	f := newPipelineFixture(t, "")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.downloader.EXPECT().Download(mock.Anything, testURL, mock.Anything).
		RunAndReturn(func(context.Context, string, string) (ports.DownloadResult, error) {
			cancel()
			return ports.DownloadResult{}, context.Canceled
		}).Once()

	_, err := f.run(ctx, testURL)
	require.ErrorIs(t, err, context.Canceled)
	_, staged := domain.FailedStage(err)
	assert.False(t, staged)
}

func TestPipelineRunDetectsIDCollision(t *testing.T) {
	f := newPipelineFixture(t, "")

	impostor := completedItem("https://example.com/elsewhere")
	impostor.ID = domain.DeriveID(testURL)
	f.saveVault(t, impostor)

	_, err := f.run(context.Background(), testURL)
	require.ErrorIs(t, err, domain.ErrIDCollision)
	assert.ErrorContains(t, err, "https://example.com/elsewhere")
}

func TestPipelineRunIgnoresSurroundingWhitespaceInURL(t *testing.T) {
	f := newPipelineFixture(t, "")
	f.saveVault(t, completedItem(testURL))

	got, err := f.run(context.Background(), "  "+testURL+"\n")
	require.NoError(t, err)

	assert.Equal(t, domain.DeriveID(testURL), got.ID)
	assert.Equal(t, testURL, got.URL)
	assert.Equal(t, 1, f.loadVault(t).Len())
}

func TestPipelineRunRejectsEmptyURL(t *testing.T) {
	f := newPipelineFixture(t, "")

	_, err := f.run(context.Background(), "   ")
	require.ErrorIs(t, err, ErrEmptyURL)
}

func TestPipelineRunSurfacesCorruptStore(t *testing.T) {
	f := newPipelineFixture(t, "")
	require.NoError(t, os.MkdirAll(f.layout().Root, 0o755))
	require.NoError(t, os.WriteFile(f.layout().StorePath(), []byte("videos = ["), 0o600))

	_, err := f.run(context.Background(), testURL)
	require.ErrorIs(t, err, domain.ErrStoreCorrupt)
}

func TestPipelineRunSurfacesStoreErrors(t *testing.T) {
	t.Run("lock", func(t *testing.T) {
		store := mocks.NewMockVaultStore(t)
		store.EXPECT().Lock(mock.Anything, mock.Anything).Return(nil, domain.ErrVaultLocked).Once()

		pipeline := NewPipeline(PipelineDeps{Store: store, Paths: Paths{TempDir: t.TempDir()}})
		_, err := pipeline.Run(context.Background(), RunCommand{URL: testURL})
		require.ErrorIs(t, err, domain.ErrVaultLocked)
	})

	t.Run("save", func(t *testing.T) {
		store := mocks.NewMockVaultStore(t)
		unlocker := mocks.NewMockUnlocker(t)
		downloader := mocks.NewMockDownloader(t)

		store.EXPECT().Lock(mock.Anything, mock.Anything).Return(unlocker, nil).Once()
		store.EXPECT().Load(mock.Anything, mock.Anything).Return(domain.NewVault(), nil).Once()
		store.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).
			Return(errors.Join(domain.ErrStoreWriteFailed, errors.New("disk full"))).Once()
		unlocker.EXPECT().Unlock().Return(nil).Once()
		downloader.EXPECT().Download(mock.Anything, testURL, mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, itemDir string) (ports.DownloadResult, error) {
				return ports.DownloadResult{AudioPath: writeAudio(t, itemDir, "a.wav")}, nil
			}).Once()

		pipeline := NewPipeline(PipelineDeps{Store: store, Downloader: downloader, Paths: Paths{TempDir: t.TempDir()}})
		_, err := pipeline.Run(context.Background(), RunCommand{URL: testURL})
		require.ErrorIs(t, err, domain.ErrStoreWriteFailed)
		assert.ErrorContains(t, err, "save vault after download")
	})
}

func TestPipelineConcurrentRunsDoNotLoseUpdates(t *testing.T) {
	f := newPipelineFixture(t, "sk-config")
	urls := []string{"https://example.com/a", "https://example.com/b", "https://example.com/c", "https://example.com/d"}

	for _, url := range urls {
		f.expectDownloadWritingAudio(url, "talk.wav", url)
	}
	f.transcriber.EXPECT().Transcribe(mock.Anything, mock.Anything).Return("text", nil).Times(len(urls))
	f.summarizer.EXPECT().Summarize(mock.Anything, mock.Anything).Return("summary").Times(len(urls))

	var wg sync.WaitGroup
	errs := make(chan error, len(urls))
	for _, url := range urls {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.run(context.Background(), url)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	vault := f.loadVault(t)
	require.Equal(t, len(urls), vault.Len())
	for _, url := range urls {
		item, ok := vault.Get(domain.DeriveID(url))
		require.True(t, ok, url)
		assert.Equal(t, domain.StateSummarized, item.State())
	}
}

func TestPipelineLayoutExpandsHome(t *testing.T) {
	pipeline := NewPipeline(PipelineDeps{Paths: Paths{HomeDir: "/home/me", TempDir: "/tmp"}})

	assert.Equal(t, "/home/me/videos/video-transcriber-vault", pipeline.Layout("~/videos").Root)
	assert.Equal(t, "/tmp/video-transcriber-vault", pipeline.Layout("").Root)
}
