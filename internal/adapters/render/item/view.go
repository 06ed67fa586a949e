// Package item renders vault records for the terminal.
package item

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/video-transcriber/internal/application"
	"github.com/bnema/video-transcriber/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

type RenderOptions struct {
	// Now anchors relative times; zero prints absolute timestamps.
	Now time.Time
	// TranscriptPreview caps the transcript excerpt in runes; zero prints it whole.
	TranscriptPreview int
}

func renderView(status application.ItemStatus, opts RenderOptions, s styles) string {
	item := status.Item

	heading := domain.Deref(item.Title)
	if heading == "" {
		heading = item.URL
	}

	lines := []string{
		s.title.Render(heading),
		field(s, "id", string(item.ID)),
		field(s, "url", item.URL),
		lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render("state"), renderProgress(item, s), " ", s.value.Render(string(item.State()))),
		audioLine(status, s),
		field(s, "created", formatWhen(item.CreatedAt, opts.Now)),
		field(s, "updated", formatWhen(item.UpdatedAt, opts.Now)),
	}

	if item.TranscriptContent != nil {
		transcript := *item.TranscriptContent
		lines = append(lines,
			s.section.Render(s.header.Render(fmt.Sprintf("transcript (%s words)", humanize.Comma(int64(len(strings.Fields(transcript))))))),
			s.body.Render(preview(transcript, opts.TranscriptPreview)),
		)
	}
	if item.SummaryContent != nil {
		lines = append(lines,
			s.section.Render(s.header.Render("summary")),
			s.body.Render(*item.SummaryContent),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func field(s styles, label, value string) string {
	if value == "" {
		return lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(label), s.empty.Render("n/a"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(label), s.value.Render(value))
}

func audioLine(status application.ItemStatus, s styles) string {
	item := status.Item
	switch {
	case item.AudioFile == nil && item.Downloaded:
		return lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render("audio"), s.warning.Render("path lost, repaired on next run"))
	case item.AudioFile == nil:
		return field(s, "audio", "")
	case !status.AudioPresent:
		return lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render("audio"), s.value.Render(*item.AudioFile+" "), s.warning.Render("[missing]"))
	default:
		return field(s, "audio", fmt.Sprintf("%s (%s)", *item.AudioFile, humanize.Bytes(uint64(status.AudioBytes))))
	}
}

// renderProgress draws one segment per completed stage.
func renderProgress(item domain.Item, s styles) string {
	steps := []bool{item.Downloaded, item.Transcribed, item.Summarized}

	parts := []string{s.barBracket.Render("[")}
	for _, done := range steps {
		if done {
			parts = append(parts, s.stepDone.Render("="))
		} else {
			parts = append(parts, s.stepTodo.Render("-"))
		}
	}
	parts = append(parts, s.barBracket.Render("]"))

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func formatWhen(at, now time.Time) string {
	if at.IsZero() {
		return ""
	}
	if now.IsZero() {
		return at.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("%s (%s)", humanize.RelTime(at, now, "ago", "from now"), at.UTC().Format(time.RFC3339))
}

func preview(text string, limit int) string {
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}
	return strings.TrimSpace(string(runes[:limit])) + "..."
}
