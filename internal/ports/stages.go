package ports

import "context"

type DownloadResult struct {
	AudioPath string
	Title     string
}

type Downloader interface {
	Download(ctx context.Context, url string, itemDir string) (DownloadResult, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

type Credentials struct {
	APIKey string
}

type SummaryRequest struct {
	Transcript  string
	Credentials *Credentials
	Provider    string
}

// Summarizer has no failure case: remote errors degrade to a local summary.
type Summarizer interface {
	Summarize(ctx context.Context, req SummaryRequest) string
}
