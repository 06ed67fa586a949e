// Package tools runs the external command-line programs behind the download
// and transcription stages.
package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/bnema/video-transcriber/internal/domain"
)

var ErrNotInstalled = errors.New("command not found in PATH")

// RunFunc executes name with args and returns captured stdout and trimmed stderr.
type RunFunc func(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)

func RunCommand(ctx context.Context, name string, args ...string) (string, string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", fmt.Errorf("%s: %w", name, ErrNotInstalled)
		}
		return "", "", fmt.Errorf("locate %s: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.WaitDelay = 5 * time.Second

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

// Probe checks that the tool can be started at all.
func Probe(ctx context.Context, run RunFunc, name string, args ...string) error {
	_, stderr, err := run(ctx, name, args...)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	diagnostic := err.Error()
	if stderr != "" {
		diagnostic += ": " + stderr
	}
	return &domain.ToolError{Tool: name, Kind: domain.ErrToolUnavailable, Diagnostic: diagnostic}
}

// Failure maps a failed run to the stage failure kinds. Cancellation is
// passed through untouched.
func Failure(ctx context.Context, name string, timeout time.Duration, err error, stderr string) error {
	if errors.Is(err, ErrNotInstalled) {
		return &domain.ToolError{Tool: name, Kind: domain.ErrToolUnavailable, Diagnostic: err.Error()}
	}

	switch ctxErr := ctx.Err(); {
	case errors.Is(ctxErr, context.DeadlineExceeded):
		return &domain.ToolError{Tool: name, Kind: domain.ErrStageFailed, Diagnostic: fmt.Sprintf("timed out after %s", timeout)}
	case ctxErr != nil:
		return ctxErr
	}

	diagnostic := stderr
	if diagnostic == "" {
		diagnostic = err.Error()
	}
	return &domain.ToolError{Tool: name, Kind: domain.ErrStageFailed, Diagnostic: diagnostic}
}

// WithTimeout bounds ctx when timeout is positive.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
