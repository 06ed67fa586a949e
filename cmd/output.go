package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/bnema/video-transcriber/internal/application"
)

type itemJSON struct {
	ID                string  `json:"id"`
	URL               string  `json:"url"`
	Title             *string `json:"title"`
	State             string  `json:"state"`
	Downloaded        bool    `json:"downloaded"`
	Transcribed       bool    `json:"transcribed"`
	Summarized        bool    `json:"summarized"`
	AudioFile         *string `json:"audio_file"`
	AudioPresent      bool    `json:"audio_present"`
	AudioBytes        int64   `json:"audio_bytes,omitempty"`
	TranscriptContent *string `json:"transcript_content"`
	SummaryContent    *string `json:"summary_content"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

func toItemJSON(status application.ItemStatus) itemJSON {
	item := status.Item
	return itemJSON{
		ID:                string(item.ID),
		URL:               item.URL,
		Title:             item.Title,
		State:             string(item.State()),
		Downloaded:        item.Downloaded,
		Transcribed:       item.Transcribed,
		Summarized:        item.Summarized,
		AudioFile:         item.AudioFile,
		AudioPresent:      status.AudioPresent,
		AudioBytes:        status.AudioBytes,
		TranscriptContent: item.TranscriptContent,
		SummaryContent:    item.SummaryContent,
		CreatedAt:         item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:         item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func writeJSON(w io.Writer, value any) error {
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	_, err = fmt.Fprintln(w, string(payload))
	return err
}
