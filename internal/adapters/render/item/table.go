package item

import (
	"time"

	"github.com/bnema/video-transcriber/internal/application"
	"github.com/bnema/video-transcriber/internal/domain"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const maxTitleWidth = 48

// RenderTable lists records one per row.
func RenderTable(statuses []application.ItemStatus, now time.Time) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Title", "State", "Audio", "Updated"})

	for _, status := range statuses {
		item := status.Item
		tw.AppendRow(table.Row{
			string(item.ID),
			text.Trim(titleOrURL(item), maxTitleWidth),
			string(item.State()),
			audioCell(status),
			updatedCell(item.UpdatedAt, now),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func titleOrURL(item domain.Item) string {
	if title := domain.Deref(item.Title); title != "" {
		return title
	}
	return item.URL
}

func audioCell(status application.ItemStatus) string {
	switch {
	case status.AudioPresent:
		return humanize.Bytes(uint64(status.AudioBytes))
	case status.Item.Downloaded:
		return "missing"
	default:
		return "-"
	}
}

func updatedCell(at, now time.Time) string {
	if now.IsZero() {
		return at.UTC().Format(time.RFC3339)
	}
	return humanize.RelTime(at, now, "ago", "from now")
}
