package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/video-transcriber/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	progressSpinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	progressDoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	progressURLStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

var stageLabels = map[domain.Stage]string{
	domain.StageRepair:     "Recovering audio path",
	domain.StageDownload:   "Downloading audio",
	domain.StageTranscribe: "Transcribing",
	domain.StageSummarize:  "Summarizing",
}

type stageStartedMsg struct {
	stage domain.Stage
}

type runFinishedMsg struct {
	err error
}

// progressModel lists the stages a run has finished and spins beside the
// one in flight.
type progressModel struct {
	spinner  spinner.Model
	url      string
	current  domain.Stage
	finished []domain.Stage
	done     bool
}

func newProgressModel(url string) progressModel {
	return progressModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(progressSpinnerStyle)),
		url:     url,
	}
}

func (m progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case stageStartedMsg:
		if m.current != "" {
			m.finished = append(m.finished, m.current)
		}
		m.current = msg.stage
		return m, nil
	case runFinishedMsg:
		m.done = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	for _, stage := range m.finished {
		fmt.Fprintf(&b, "%s %s\n", progressDoneStyle.Render("✓"), stageLabel(stage))
	}

	label := "Opening vault"
	if m.current != "" {
		label = stageLabel(m.current)
	}
	fmt.Fprintf(&b, "%s %s %s", m.spinner.View(), label, progressURLStyle.Render(m.url))
	return b.String()
}

func stageLabel(stage domain.Stage) string {
	if label, ok := stageLabels[stage]; ok {
		return label
	}
	return string(stage)
}

// runWithProgress shows pipeline progress on output while task runs. It
// always waits for task to return, so a canceled run has stopped its child
// processes before the caller exits.
func runWithProgress(ctx context.Context, output io.Writer, url string, task func(context.Context, func(domain.Stage)) error) error {
	p := tea.NewProgram(
		newProgressModel(url),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	taskDone := make(chan error, 1)
	go func() {
		err := task(ctx, func(stage domain.Stage) {
			p.Send(stageStartedMsg{stage: stage})
		})
		taskDone <- err
		p.Send(runFinishedMsg{err: err})
	}()

	_, uiErr := p.Run()
	taskErr := <-taskDone

	if taskErr != nil {
		return taskErr
	}
	if uiErr != nil && !errors.Is(uiErr, tea.ErrProgramKilled) {
		return fmt.Errorf("progress display: %w", uiErr)
	}
	return nil
}
