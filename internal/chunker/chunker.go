package chunker

import (
	"strings"
	"unicode/utf8"
)

// Options controls how document text is split before embedding
type Options struct {
	// MaxChunkTokens is the size of each piece
	MaxChunkTokens int

	// MaxTotalTokens is the provider's input budget for one embedding call
	MaxTotalTokens int
}

func DefaultOptions() Options {
	return Options{
		MaxChunkTokens: 800,
		MaxTotalTokens: 8000,
	}
}

// EstimateTokens approximates token count; close enough for budgeting
func EstimateTokens(text string) int {
	return len(text) / 4
}

// SplitText breaks text into fixed-size pieces at paragraph boundaries.
// A single paragraph larger than the chunk size becomes its own piece.
func SplitText(text string, opts Options) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if EstimateTokens(text) <= opts.MaxChunkTokens {
		return []string{text}
	}

	paragraphs := strings.Split(text, "\n\n")

	var chunks []string
	var current strings.Builder

	for _, para := range paragraphs {
		para = strings.TrimSpace(para)

		if para == "" {
			continue
		}

		testContent := current.String() + "\n\n" + para

		if EstimateTokens(testContent) > opts.MaxChunkTokens && current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}

		if current.Len() > 0 {
			current.WriteString("\n\n")
		}

		current.WriteString(para)
	}

	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}

	return chunks
}

// JoinWithinBudget concatenates pieces in order until the token budget is
// reached, producing the single text that gets one embedding. Later pieces
// past the budget are dropped rather than embedded separately. A first piece
// that alone exceeds the budget is truncated, so a single giant paragraph
// still yields an input the provider accepts.
func JoinWithinBudget(chunks []string, maxTokens int) string {
	var joined strings.Builder

	for _, chunk := range chunks {
		if joined.Len() == 0 && EstimateTokens(chunk) > maxTokens {
			chunk = truncate(chunk, maxTokens*4)
		}

		candidate := joined.Len() + len("\n\n") + len(chunk)

		if joined.Len() > 0 && candidate/4 > maxTokens {
			break
		}

		if joined.Len() > 0 {
			joined.WriteString("\n\n")
		}

		joined.WriteString(chunk)
	}

	return joined.String()
}

// cuts s to at most maxBytes without splitting a rune
func truncate(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}

	for maxBytes > 0 && !utf8.RuneStart(s[maxBytes]) {
		maxBytes--
	}

	return s[:maxBytes]
}
