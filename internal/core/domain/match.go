package domain

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MatchSpan marks one term occurrence inside a text as a half-open
// [Start,End) byte range. Spans from a single scan are sorted by Start
// ascending and never overlap for the same term.
type MatchSpan struct {
	// Start is the index of the first matched byte.
	Start int

	// End is the index one past the last matched byte.
	End int

	// Term is the matched text as it appears in the source,
	// preserving its original case.
	Term string
}

// Len returns the span length.
func (s MatchSpan) Len() int {
	return s.End - s.Start
}

// Scan finds every occurrence of each whitespace-separated query term
// in text, case-insensitively. Terms are matched as literal text;
// regex metacharacters carry no meaning. For a single term the scan
// cursor advances past each hit, so matches of the same term never
// overlap. Spans of different terms may overlap each other.
//
// An empty query or text yields an empty result, never an error.
func Scan(text, query string) []MatchSpan {
	terms := SplitTerms(query)
	if len(terms) == 0 || text == "" {
		return nil
	}

	var spans []MatchSpan
	for _, term := range terms {
		for idx := 0; idx <= len(text); {
			start, matchLen := indexFold(text[idx:], term)
			if start < 0 {
				break
			}
			start += idx
			spans = append(spans, MatchSpan{
				Start: start,
				End:   start + matchLen,
				Term:  text[start : start+matchLen],
			})
			idx = start + matchLen
		}
	}

	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})

	return spans
}

// SplitTerms splits a query on whitespace into its non-empty terms.
func SplitTerms(query string) []string {
	return strings.Fields(query)
}

// indexFold locates the first case-insensitive occurrence of substr
// in s. It returns the byte offset and the matched length in s, or
// (-1, 0) when there is no match. Matching folds rune by rune, so
// offsets stay valid even where case conversion changes byte lengths.
func indexFold(s, substr string) (int, int) {
	if substr == "" {
		return -1, 0
	}

	for i := 0; i < len(s); {
		if n := matchFoldAt(s[i:], substr); n > 0 {
			return i, n
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return -1, 0
}

// matchFoldAt reports how many bytes of s a case-insensitive match of
// substr consumes when anchored at the start of s, or 0 for no match.
func matchFoldAt(s, substr string) int {
	consumed := 0
	for _, want := range substr {
		r, size := utf8.DecodeRuneInString(s[consumed:])
		if size == 0 || !runeEqualFold(r, want) {
			return 0
		}
		consumed += size
	}
	return consumed
}

// runeEqualFold compares two runes under Unicode simple folding.
func runeEqualFold(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}

// isWordByte reports whether b counts as a word character for
// boundary checks: [A-Za-z0-9_], the \w class the platform's
// highlighting used. Multi-byte runes count as non-word, which keeps
// every boundary decision total over arbitrary byte input.
func isWordByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '_':
		return true
	default:
		return false
	}
}
