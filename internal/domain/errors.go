package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrToolUnavailable      = errors.New("tool unavailable")
	ErrStageFailed          = errors.New("stage failed")
	ErrArtifactMissing      = errors.New("artifact missing")
	ErrMissingAudioArtifact = errors.New("missing audio artifact")
	ErrStoreCorrupt         = errors.New("vault store corrupt")
	ErrStoreWriteFailed     = errors.New("vault store write failed")
	ErrStoreSerializeFailed = errors.New("vault store serialize failed")
	ErrItemNotFound         = errors.New("item not found")
	ErrIDCollision          = errors.New("item id collision")
	ErrVaultLocked          = errors.New("vault locked")
	ErrSecretNotFound       = errors.New("secret not found")
)

// ToolError reports an external tool that could not run (Kind ErrToolUnavailable)
// or ran and signaled failure (Kind ErrStageFailed).
type ToolError struct {
	Tool       string
	Kind       error
	Diagnostic string
}

func (e *ToolError) Error() string {
	if e.Diagnostic == "" {
		return fmt.Sprintf("%s: %v", e.Tool, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s", e.Tool, e.Kind, e.Diagnostic)
}

func (e *ToolError) Unwrap() error {
	return e.Kind
}

// ArtifactError reports a tool that succeeded without leaving the expected output.
type ArtifactError struct {
	Dir     string
	Want    string
	Listing []string
}

func (e *ArtifactError) Error() string {
	listing := "(empty)"
	if len(e.Listing) > 0 {
		listing = strings.Join(e.Listing, ", ")
	}
	return fmt.Sprintf("%v: no %s in %s; directory contains: %s", ErrArtifactMissing, e.Want, e.Dir, listing)
}

func (e *ArtifactError) Unwrap() error {
	return ErrArtifactMissing
}

// StageError names the pipeline stage that aborted a run.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// FailedStage extracts the stage from a pipeline error, if any.
func FailedStage(err error) (Stage, bool) {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Stage, true
	}
	return "", false
}
