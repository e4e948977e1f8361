package domain

import "strings"

const (
	// DefaultExcerptLength is the window width used when callers pass
	// a non-positive maxLength.
	DefaultExcerptLength = 200

	// DefaultContextRadius is the minimum context kept on each side of
	// the primary match when the window allows it.
	DefaultContextRadius = 50

	ellipsis = "..."
)

// BuildExcerpt derives a bounded preview of text centred on the first
// match of query, for display as a search-result snippet.
//
// Behaviour, in order:
//   - text already within maxLength: returned unchanged, no ellipsis.
//   - blank query, or no match found: head truncation to maxLength
//     plus a trailing ellipsis.
//   - otherwise: a window of maxLength bytes centred on the midpoint
//     of the primary (first) match, clamped to the text, then widened
//     outward to the nearest word boundary on each side so no word is
//     split. The window start is additionally pulled back so at least
//     contextRadius bytes precede the match where available. An
//     ellipsis is prefixed/suffixed for each side that was clipped.
//
// Non-positive maxLength and contextRadius fall back to the defaults.
// The function never fails for any string input, including empty.
func BuildExcerpt(text, query string, maxLength, contextRadius int) string {
	if maxLength <= 0 {
		maxLength = DefaultExcerptLength
	}
	if contextRadius <= 0 {
		contextRadius = DefaultContextRadius
	}

	if len(text) <= maxLength {
		return text
	}

	if strings.TrimSpace(query) == "" {
		return headTruncate(text, maxLength)
	}

	spans := Scan(text, query)
	if len(spans) == 0 {
		return headTruncate(text, maxLength)
	}

	primary := spans[0]
	center := (primary.Start + primary.End) / 2

	start := center - maxLength/2
	if start < 0 {
		start = 0
	}
	end := start + maxLength
	if end > len(text) {
		end = len(text)
	}

	// Keep at least contextRadius bytes ahead of the match when the
	// centred window starts too late. This only ever grows the window.
	if want := primary.Start - contextRadius; want >= 0 && want < start {
		start = want
	}

	start = widenLeft(text, start)
	end = widenRight(text, end)

	excerpt := text[start:end]
	if start > 0 {
		excerpt = ellipsis + excerpt
	}
	if end < len(text) {
		excerpt += ellipsis
	}
	return excerpt
}

// headTruncate keeps the first maxLength bytes, avoiding a cut inside
// a multi-byte rune, and appends an ellipsis.
func headTruncate(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	cut := maxLength
	for cut > 0 && text[cut]&0xC0 == 0x80 {
		cut--
	}
	return text[:cut] + ellipsis
}

// widenLeft moves start outward (towards 0) until it no longer falls
// inside a word.
func widenLeft(text string, start int) int {
	if start <= 0 || start >= len(text) {
		return start
	}
	if !isWordByte(text[start]) || !isWordByte(text[start-1]) {
		return start
	}
	for start > 0 && isWordByte(text[start-1]) {
		start--
	}
	return start
}

// widenRight moves end outward (towards len(text)) until it no longer
// falls inside a word.
func widenRight(text string, end int) int {
	if end <= 0 || end >= len(text) {
		return end
	}
	if !isWordByte(text[end]) || !isWordByte(text[end-1]) {
		return end
	}
	for end < len(text) && isWordByte(text[end]) {
		end++
	}
	return end
}
