package application

import "github.com/bnema/video-transcriber/internal/domain"

type RunCommand struct {
	URL string
	// BasePath is the directory the vault lives under; empty selects the
	// OS temp dir.
	BasePath string
	// Provider selects the summarization backend. Unknown values fall back
	// to the default provider.
	Provider string
	// OnStage, when set, is called as each stage that actually runs starts.
	OnStage func(domain.Stage)
}

type SetAPIKeyCommand struct {
	Provider domain.Provider
	APIKey   string
}

type RemoveAPIKeyCommand struct {
	Provider domain.Provider
}
