// Package config loads vt settings from the config file and VT_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "VT"
	appDir    = "video-transcriber"
)

type Config struct {
	Vault       VaultConfig
	Downloader  DownloaderConfig
	Transcriber TranscriberConfig
	Summary     SummaryConfig
	Secrets     SecretsConfig
	Log         LogConfig
}

type VaultConfig struct {
	// Path is the directory holding the vault; empty selects the OS temp dir.
	Path string
}

type DownloaderConfig struct {
	Binary      string
	AudioFormat string
	Timeout     time.Duration
}

type TranscriberConfig struct {
	Binary   string
	Model    string
	Language string
	Timeout  time.Duration
}

type SummaryConfig struct {
	Provider    string
	Model       string
	APIKey      string
	Endpoint    string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

type SecretsConfig struct {
	Dir string
}

type LogConfig struct {
	Level  string
	Format string
}

// DefaultPath is where Load looks when no explicit file is given.
func DefaultPath(homeDir string) string {
	return filepath.Join(homeDir, ".config", appDir, "config.toml")
}

// New returns a viper instance with every default registered and VT_*
// environment overrides enabled.
func New(homeDir string) *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("vault.path", "")
	v.SetDefault("downloader.binary", "yt-dlp")
	v.SetDefault("downloader.audio_format", "wav")
	v.SetDefault("downloader.timeout", 30*time.Minute)
	v.SetDefault("transcriber.binary", "whisper")
	v.SetDefault("transcriber.model", "base")
	v.SetDefault("transcriber.language", "")
	v.SetDefault("transcriber.timeout", 2*time.Hour)
	v.SetDefault("summary.provider", "openai")
	v.SetDefault("summary.model", "")
	v.SetDefault("summary.api_key", "")
	v.SetDefault("summary.endpoint", "")
	v.SetDefault("summary.max_tokens", 1000)
	v.SetDefault("summary.temperature", 0.7)
	v.SetDefault("summary.timeout", 60*time.Second)
	v.SetDefault("secrets.dir", filepath.Join(homeDir, ".config", appDir, "secrets"))
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	return v
}

// Load reads path (DefaultPath when empty) into v. A missing default file is
// not an error; a missing explicit file is.
func Load(v *viper.Viper, path, homeDir string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath(homeDir)
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if explicit || !isNotFound(err) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{
		Vault: VaultConfig{Path: v.GetString("vault.path")},
		Downloader: DownloaderConfig{
			Binary:      v.GetString("downloader.binary"),
			AudioFormat: v.GetString("downloader.audio_format"),
			Timeout:     v.GetDuration("downloader.timeout"),
		},
		Transcriber: TranscriberConfig{
			Binary:   v.GetString("transcriber.binary"),
			Model:    v.GetString("transcriber.model"),
			Language: v.GetString("transcriber.language"),
			Timeout:  v.GetDuration("transcriber.timeout"),
		},
		Summary: SummaryConfig{
			Provider:    v.GetString("summary.provider"),
			Model:       v.GetString("summary.model"),
			APIKey:      v.GetString("summary.api_key"),
			Endpoint:    v.GetString("summary.endpoint"),
			MaxTokens:   v.GetInt("summary.max_tokens"),
			Temperature: v.GetFloat64("summary.temperature"),
			Timeout:     v.GetDuration("summary.timeout"),
		},
		Secrets: SecretsConfig{Dir: v.GetString("secrets.dir")},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
}

func (c Config) Validate() error {
	var errs []error

	for key, timeout := range map[string]time.Duration{
		"downloader.timeout":  c.Downloader.Timeout,
		"transcriber.timeout": c.Transcriber.Timeout,
		"summary.timeout":     c.Summary.Timeout,
	} {
		if timeout <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", key, timeout))
		}
	}
	if c.Summary.MaxTokens <= 0 {
		errs = append(errs, fmt.Errorf("summary.max_tokens must be positive, got %d", c.Summary.MaxTokens))
	}
	if c.Summary.Temperature < 0 || c.Summary.Temperature > 2 {
		errs = append(errs, fmt.Errorf("summary.temperature must be within [0, 2], got %g", c.Summary.Temperature))
	}
	if strings.TrimSpace(c.Downloader.Binary) == "" {
		errs = append(errs, errors.New("downloader.binary is empty"))
	}
	if strings.TrimSpace(c.Transcriber.Binary) == "" {
		errs = append(errs, errors.New("transcriber.binary is empty"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
