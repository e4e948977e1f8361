package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildExcerpt_TextWithinLimit tests the no-op path.
func TestBuildExcerpt_TextWithinLimit(t *testing.T) {
	text := "short text"

	assert.Equal(t, text, BuildExcerpt(text, "short", 100, 0))
	assert.Equal(t, text, BuildExcerpt(text, "", 100, 0))
	assert.Equal(t, text, BuildExcerpt(text, "missing", 100, 0))
	assert.Equal(t, "", BuildExcerpt("", "anything", 100, 0))
}

// TestBuildExcerpt_BlankQueryHeadTruncates tests the documented
// head-truncation fallback for a blank query over long text.
func TestBuildExcerpt_BlankQueryHeadTruncates(t *testing.T) {
	text := strings.Repeat("a", 300)

	got := BuildExcerpt(text, "", 100, 0)

	assert.Equal(t, strings.Repeat("a", 100)+"...", got)
}

// TestBuildExcerpt_NoMatchHeadTruncates tests the no-match fallback.
func TestBuildExcerpt_NoMatchHeadTruncates(t *testing.T) {
	text := strings.Repeat("b", 250)

	got := BuildExcerpt(text, "zzz", 80, 0)

	assert.Equal(t, strings.Repeat("b", 80)+"...", got)
}

// TestBuildExcerpt_CentresOnFirstMatch tests window placement.
func TestBuildExcerpt_CentresOnFirstMatch(t *testing.T) {
	head := strings.Repeat("x ", 100)
	tail := strings.Repeat(" y", 100)
	text := head + "needle" + tail

	got := BuildExcerpt(text, "needle", 60, 0)

	assert.Contains(t, got, "needle")
	assert.True(t, strings.HasPrefix(got, "..."))
	assert.True(t, strings.HasSuffix(got, "..."))
	// The window plus widening stays well below the full text.
	assert.Less(t, len(got), len(text)/2)
}

// TestBuildExcerpt_MatchNearStart tests clamping at the left edge.
func TestBuildExcerpt_MatchNearStart(t *testing.T) {
	text := "needle " + strings.Repeat("pad ", 100)

	got := BuildExcerpt(text, "needle", 40, 0)

	assert.True(t, strings.HasPrefix(got, "needle"))
	assert.True(t, strings.HasSuffix(got, "..."))
}

// TestBuildExcerpt_MatchNearEnd tests clamping at the right edge.
func TestBuildExcerpt_MatchNearEnd(t *testing.T) {
	text := strings.Repeat("pad ", 100) + "needle"

	got := BuildExcerpt(text, "needle", 40, 0)

	assert.True(t, strings.HasPrefix(got, "..."))
	assert.True(t, strings.HasSuffix(got, "needle"))
}

// TestBuildExcerpt_NeverSplitsWords tests outward word-boundary
// widening on both window edges.
func TestBuildExcerpt_NeverSplitsWords(t *testing.T) {
	words := make([]string, 0, 80)
	for i := 0; i < 80; i++ {
		words = append(words, "wordpiece")
	}
	words[40] = "needle"
	text := strings.Join(words, " ")

	got := BuildExcerpt(text, "needle", 55, 0)
	trimmed := strings.TrimSuffix(strings.TrimPrefix(got, "..."), "...")

	// Every token in the excerpt must be a complete word from the
	// source text, so the boundary never landed mid-word.
	for _, token := range strings.Fields(trimmed) {
		assert.Contains(t, []string{"wordpiece", "needle"}, token)
	}
	assert.Contains(t, trimmed, "needle")
}

// TestBuildExcerpt_DefaultsApplied tests non-positive parameter
// handling.
func TestBuildExcerpt_DefaultsApplied(t *testing.T) {
	text := strings.Repeat("c", DefaultExcerptLength+100)

	got := BuildExcerpt(text, "", 0, 0)

	assert.Equal(t, strings.Repeat("c", DefaultExcerptLength)+"...", got)
}

// TestBuildExcerpt_UTF8Safety tests that head truncation never cuts a
// rune in half.
func TestBuildExcerpt_UTF8Safety(t *testing.T) {
	text := strings.Repeat("日", 200)

	got := BuildExcerpt(text, "", 100, 0)

	require.True(t, strings.HasSuffix(got, "..."))
	body := strings.TrimSuffix(got, "...")
	assert.Equal(t, strings.Repeat("日", len(body)/3), body)
}

// TestBuildExcerpt_Total tests totality over awkward inputs.
func TestBuildExcerpt_Total(t *testing.T) {
	inputs := []struct{ text, query string }{
		{"", ""},
		{"", "q"},
		{strings.Repeat("q", 1000), "q"},
		{strings.Repeat(" ", 500), "q"},
		{"\x80\x81\x82" + strings.Repeat("a", 300), "a"},
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() {
			_ = BuildExcerpt(in.text, in.query, 50, 10)
		})
	}
}

// TestHeadTruncate tests the shared truncation helper.
func TestHeadTruncate(t *testing.T) {
	assert.Equal(t, "abc", headTruncate("abc", 10))
	assert.Equal(t, "ab...", headTruncate("abcdef", 2))
}
