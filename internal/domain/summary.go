package domain

import (
	"fmt"
	"strings"
	"unicode"
)

const fallbackSentenceCount = 3

const FallbackNote = "Note: configure a summarization API key for a higher-quality summary."

// FallbackSummary builds a deterministic summary from the transcript alone:
// the word count followed by the first few non-empty sentences.
func FallbackSummary(transcript string) string {
	words := len(strings.Fields(transcript))
	sentences := leadingSentences(transcript, fallbackSentenceCount)

	var b strings.Builder
	fmt.Fprintf(&b, "Transcript length: %d words.", words)
	if len(sentences) > 0 {
		b.WriteString("\n\nOpening: ")
		b.WriteString(strings.Join(sentences, " "))
	}
	b.WriteString("\n\n")
	b.WriteString(FallbackNote)

	return b.String()
}

func leadingSentences(text string, limit int) []string {
	sentences := make([]string, 0, limit)
	var current strings.Builder

	flush := func() {
		sentence := strings.TrimSpace(current.String())
		current.Reset()
		if sentence == "" || strings.IndexFunc(sentence, isWordRune) < 0 {
			return
		}
		sentences = append(sentences, strings.Join(strings.Fields(sentence), " "))
	}

	for _, r := range text {
		current.WriteRune(r)
		if isSentenceEnd(r) {
			flush()
			if len(sentences) == limit {
				return sentences
			}
		}
	}
	flush()

	if len(sentences) > limit {
		sentences = sentences[:limit]
	}
	return sentences
}

func isSentenceEnd(r rune) bool {
	switch r {
	case '.', '!', '?', '\n', '。', '！', '？':
		return true
	default:
		return false
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
