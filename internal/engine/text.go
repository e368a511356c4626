package engine

import (
	"strings"
)

const (
	summarySentenceLimit = 2
	glossTokenLimit      = 8
)

// SegmentSentences splits raw text into trimmed sentence fragments.
// "!" and "?" are treated as sentence terminators alongside ".".
// Empty fragments are dropped; order is preserved.
func SegmentSentences(text string) []string {
	normalized := strings.NewReplacer("!", ".", "?", ".").Replace(text)
	parts := strings.Split(normalized, ".")
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		sentences = append(sentences, trimmed)
	}
	return sentences
}

// Summarize truncates text to its first two sentences joined by ". ".
// An ellipsis marks that more sentences followed.
func Summarize(text string) string {
	sentences := SegmentSentences(text)
	limit := summarySentenceLimit
	if len(sentences) < limit {
		limit = len(sentences)
	}
	summary := strings.Join(sentences[:limit], ". ")
	if len(sentences) > summarySentenceLimit {
		summary += "..."
	}
	return summary
}

// ExtractGloss tokenizes text into upper-cased sign gloss tokens, capped
// at 8. Tokens keep their original order; no deduplication is done.
func ExtractGloss(text string) []string {
	words := strings.Split(strings.ReplaceAll(text, "\n", " "), " ")
	gloss := make([]string, 0, glossTokenLimit)
	for _, word := range words {
		if word == "" {
			continue
		}
		if len(gloss) == glossTokenLimit {
			break
		}
		gloss = append(gloss, strings.ToUpper(word))
	}
	return gloss
}
