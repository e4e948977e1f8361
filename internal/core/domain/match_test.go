package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScan_TwoTerms tests the canonical two-term scan.
func TestScan_TwoTerms(t *testing.T) {
	spans := Scan("The quick brown fox", "quick fox")

	require.Len(t, spans, 2)
	assert.Equal(t, MatchSpan{Start: 4, End: 9, Term: "quick"}, spans[0])
	assert.Equal(t, MatchSpan{Start: 16, End: 19, Term: "fox"}, spans[1])
}

// TestScan_EmptyInputs tests that blank query or text yields no spans.
func TestScan_EmptyInputs(t *testing.T) {
	assert.Empty(t, Scan("", "query"))
	assert.Empty(t, Scan("some text", ""))
	assert.Empty(t, Scan("some text", "   \t  "))
	assert.Empty(t, Scan("", ""))
}

// TestScan_CaseInsensitive tests default case folding.
func TestScan_CaseInsensitive(t *testing.T) {
	spans := Scan("Go go GO", "go")

	require.Len(t, spans, 3)
	assert.Equal(t, "Go", spans[0].Term)
	assert.Equal(t, "go", spans[1].Term)
	assert.Equal(t, "GO", spans[2].Term)
}

// TestScan_NonOverlappingPerTerm tests cursor advancement past hits.
func TestScan_NonOverlappingPerTerm(t *testing.T) {
	// "aaaa" contains "aa" at 0,1,2 but the cursor advances past each
	// hit, so only 0 and 2 survive.
	spans := Scan("aaaa", "aa")

	require.Len(t, spans, 2)
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, 2, spans[1].Start)
}

// TestScan_DifferentTermsMayOverlap tests cross-term overlap.
func TestScan_DifferentTermsMayOverlap(t *testing.T) {
	spans := Scan("abcd", "abc bcd")

	require.Len(t, spans, 2)
	assert.Equal(t, MatchSpan{Start: 0, End: 3, Term: "abc"}, spans[0])
	assert.Equal(t, MatchSpan{Start: 1, End: 4, Term: "bcd"}, spans[1])
}

// TestScan_RegexMetacharactersAreLiteral tests literal matching.
func TestScan_RegexMetacharactersAreLiteral(t *testing.T) {
	spans := Scan("price is $5.00 (sale)", "$5.00 (sale)")

	require.Len(t, spans, 2)
	assert.Equal(t, "$5.00", spans[0].Term)
	assert.Equal(t, "(sale)", spans[1].Term)
}

// TestScan_SortedAscending tests merged span ordering.
func TestScan_SortedAscending(t *testing.T) {
	spans := Scan("beta alpha beta alpha", "alpha beta")

	require.Len(t, spans, 4)
	for i := 1; i < len(spans); i++ {
		assert.LessOrEqual(t, spans[i-1].Start, spans[i].Start)
	}
}

// TestScan_SpanBounds tests the totality property over varied input.
func TestScan_SpanBounds(t *testing.T) {
	texts := []string{
		"",
		"a",
		"The quick brown fox jumps over the lazy dog",
		strings.Repeat("word ", 200),
		"héllo wörld héllo",
		"日本語のテキストです",
		"mixed 日本語 and ascii",
	}
	queries := []string{"", "word", "HÉLLO", "日本語", "o", ". * ["}

	for _, text := range texts {
		for _, query := range queries {
			spans := Scan(text, query)
			for _, span := range spans {
				assert.GreaterOrEqual(t, span.Start, 0)
				assert.Less(t, span.Start, span.End)
				assert.LessOrEqual(t, span.End, len(text))
				assert.Equal(t, text[span.Start:span.End], span.Term)
			}
		}
	}
}

// TestScan_UnicodeFolding tests case folding beyond ASCII.
func TestScan_UnicodeFolding(t *testing.T) {
	spans := Scan("Héllo there", "héllo")

	require.Len(t, spans, 1)
	assert.Equal(t, "Héllo", spans[0].Term)
	assert.Equal(t, 0, spans[0].Start)
}

// TestSplitTerms tests whitespace splitting.
func TestSplitTerms(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitTerms("  a\tb \n c "))
	assert.Empty(t, SplitTerms(""))
	assert.Empty(t, SplitTerms("   "))
}

// TestMatchSpan_Len tests span length.
func TestMatchSpan_Len(t *testing.T) {
	assert.Equal(t, 5, MatchSpan{Start: 4, End: 9}.Len())
}
