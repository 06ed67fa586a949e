package toml

import "fmt"

const currentSchemaVersion = 1

type vaultFileSchema struct {
	Version int                   `toml:"version"`
	Videos  map[string]itemSchema `toml:"videos"`
}

func (s *vaultFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Videos == nil {
		s.Videos = map[string]itemSchema{}
	}
}

func (s vaultFileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported vault schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type itemSchema struct {
	ID                string  `toml:"id"`
	URL               string  `toml:"url"`
	Title             *string `toml:"title,omitempty"`
	Downloaded        bool    `toml:"downloaded"`
	Transcribed       bool    `toml:"transcribed"`
	Summarized        bool    `toml:"summarized"`
	AudioFile         *string `toml:"audio_file,omitempty"`
	TranscriptContent *string `toml:"transcript_content,multiline,omitempty"`
	SummaryContent    *string `toml:"summary_content,multiline,omitempty"`
	CreatedAt         string  `toml:"created_at"`
	UpdatedAt         string  `toml:"updated_at"`
}
