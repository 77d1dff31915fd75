package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitText_ShortTextIsOneChunk(t *testing.T) {
	chunks := SplitText("a short archive entry", DefaultOptions())

	require.Len(t, chunks, 1)
	assert.Equal(t, "a short archive entry", chunks[0])
}

func TestSplitText_EmptyText(t *testing.T) {
	assert.Nil(t, SplitText("", DefaultOptions()))
	assert.Nil(t, SplitText("   \n\n  ", DefaultOptions()))
}

func TestSplitText_SplitsAtParagraphs(t *testing.T) {
	para := strings.Repeat("word ", 100) // ~125 estimated tokens
	text := strings.Join([]string{para, para, para, para}, "\n\n")

	opts := Options{MaxChunkTokens: 200, MaxTotalTokens: 8000}
	chunks := SplitText(text, opts)

	require.Greater(t, len(chunks), 1, "long text must be split")

	for _, chunk := range chunks {
		assert.NotEmpty(t, strings.TrimSpace(chunk))
	}
}

func TestSplitText_OversizedParagraphKept(t *testing.T) {
	// a single paragraph beyond the chunk size still becomes a piece
	huge := strings.Repeat("x", 5000)

	chunks := SplitText(huge, Options{MaxChunkTokens: 100, MaxTotalTokens: 8000})

	require.Len(t, chunks, 1)
	assert.Equal(t, huge, chunks[0])
}

func TestJoinWithinBudget_KeepsOrder(t *testing.T) {
	chunks := []string{"first", "second", "third"}

	joined := JoinWithinBudget(chunks, 8000)

	assert.Equal(t, "first\n\nsecond\n\nthird", joined)
}

func TestJoinWithinBudget_DropsPastBudget(t *testing.T) {
	big := strings.Repeat("a", 400) // ~100 estimated tokens

	joined := JoinWithinBudget([]string{big, big, big}, 150)

	assert.True(t, strings.HasPrefix(joined, big))
	assert.Less(t, len(joined), 3*len(big), "pieces past the budget are dropped")
	assert.NotEmpty(t, joined, "the first piece always survives")
}

func TestJoinWithinBudget_TruncatesOversizedFirstPiece(t *testing.T) {
	// a blank-line-free document survives SplitText as one oversized piece;
	// joining must still respect the provider's input budget
	giant := strings.Repeat("x", 160000)

	chunks := SplitText(giant, Options{MaxChunkTokens: 800, MaxTotalTokens: 8000})
	joined := JoinWithinBudget(chunks, 8000)

	assert.NotEmpty(t, joined)
	assert.LessOrEqual(t, EstimateTokens(joined), 8000)
}

func TestJoinWithinBudget_TruncationKeepsValidUTF8(t *testing.T) {
	text := strings.Repeat("你", 20) // 3 bytes per rune; the cut lands mid-rune

	joined := JoinWithinBudget([]string{text}, 5)

	assert.True(t, utf8.ValidString(joined))
	assert.LessOrEqual(t, len(joined), 20)
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 25, EstimateTokens(strings.Repeat("a", 100)))
}
