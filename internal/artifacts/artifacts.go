// Package artifacts locates the files external tools leave in an item
// directory.
package artifacts

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/video-transcriber/internal/domain"
	"github.com/dhowden/tag"
)

var AudioExtensions = []string{"wav", "mp3", "m4a", "aac", "flac", "ogg"}

const transcriptExtension = ".txt"

// FindAudio returns the first regular file in dir, in directory order, whose
// extension is a recognized audio format.
func FindAudio(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsAudio(entry.Name()) {
			return filepath.Join(dir, entry.Name()), true
		}
	}

	return "", false
}

// MissingAudio describes an item directory that holds no recognized audio file.
func MissingAudio(dir string) *domain.ArtifactError {
	return &domain.ArtifactError{
		Dir:     dir,
		Want:    "audio file (" + strings.Join(AudioExtensions, ", ") + ")",
		Listing: Listing(dir),
	}
}

func IsAudio(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	for _, known := range AudioExtensions {
		if ext == known {
			return true
		}
	}
	return false
}

// FindTranscript looks for <audio stem>.txt beside the audio file, then for
// any .txt file in the same directory.
func FindTranscript(audioPath string) (string, bool) {
	dir := filepath.Dir(audioPath)
	stem := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))

	preferred := filepath.Join(dir, stem+transcriptExtension)
	if info, err := os.Stat(preferred); err == nil && info.Mode().IsRegular() {
		return preferred, true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), transcriptExtension) {
			return filepath.Join(dir, entry.Name()), true
		}
	}

	return "", false
}

// Listing names every entry in dir for diagnostics; directories get a
// trailing slash.
func Listing(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return []string{"<unreadable: " + err.Error() + ">"}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	return names
}

// StemTitle derives a display title from the audio file name.
func StemTitle(audioPath string) string {
	base := filepath.Base(audioPath)
	return strings.TrimSpace(strings.ToValidUTF8(strings.TrimSuffix(base, filepath.Ext(base)), "\uFFFD"))
}

// TagTitle reads the embedded title tag, if the format carries one.
func TagTitle(audioPath string) (string, bool) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", false
	}
	defer f.Close()

	metadata, err := tag.ReadFrom(f)
	if err != nil {
		return "", false
	}

	title := strings.TrimSpace(strings.ToValidUTF8(metadata.Title(), "\uFFFD"))
	return title, title != ""
}

// RecoverTitle prefers the embedded tag and falls back to the file stem.
func RecoverTitle(audioPath string) string {
	if title, ok := TagTitle(audioPath); ok {
		return title
	}
	return StemTitle(audioPath)
}
