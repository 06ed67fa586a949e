package domain

import "time"

type ItemID string

// State is the furthest pipeline stage an item has completed.
type State string

const (
	StateNew         State = "new"
	StateDownloaded  State = "downloaded"
	StateTranscribed State = "transcribed"
	StateSummarized  State = "summarized"
)

type Stage string

const (
	StageDownload   Stage = "download"
	StageTranscribe Stage = "transcribe"
	StageSummarize  Stage = "summarize"
	StageRepair     Stage = "repair"
)

// Item tracks one source URL through the download, transcribe and summarize
// stages. Optional fields stay nil until the stage that produces them succeeds.
type Item struct {
	ID                ItemID
	URL               string
	Title             *string
	Downloaded        bool
	Transcribed       bool
	Summarized        bool
	AudioFile         *string
	TranscriptContent *string
	SummaryContent    *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewItem(url string, now time.Time) Item {
	now = Timestamp(now)
	return Item{
		ID:        DeriveID(url),
		URL:       url,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Timestamp truncates to the second precision the vault persists.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

func (i Item) State() State {
	switch {
	case i.Summarized:
		return StateSummarized
	case i.Transcribed:
		return StateTranscribed
	case i.Downloaded:
		return StateDownloaded
	default:
		return StateNew
	}
}

// NeedsAudioRepair reports the recoverable drift where the download stage is
// recorded but the audio path was lost.
func (i Item) NeedsAudioRepair() bool {
	return i.Downloaded && i.AudioFile == nil
}

func (i *Item) MarkDownloaded(audioFile, title string, now time.Time) {
	i.Downloaded = true
	i.AudioFile = optional(audioFile)
	if title != "" {
		i.Title = optional(title)
	}
	i.touch(now)
}

func (i *Item) RepairAudio(audioFile string, now time.Time) {
	i.AudioFile = optional(audioFile)
	i.touch(now)
}

func (i *Item) SetTitle(title string, now time.Time) {
	if title == "" {
		return
	}
	i.Title = optional(title)
	i.touch(now)
}

func (i *Item) MarkTranscribed(transcript string, now time.Time) {
	i.Transcribed = true
	i.TranscriptContent = optional(transcript)
	i.touch(now)
}

func (i *Item) MarkSummarized(summary string, now time.Time) {
	i.Summarized = true
	i.SummaryContent = optional(summary)
	i.touch(now)
}

func (i *Item) touch(now time.Time) {
	i.UpdatedAt = Timestamp(now)
}

// Deref returns the pointed-to value or "" for unset optional fields.
func Deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func optional(value string) *string {
	return &value
}
