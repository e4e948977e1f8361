package domain

import (
	"regexp"
	"strings"
)

// Segment is one piece of a highlighted text. Consumers render
// Matched segments with emphasis; this package emits only the tagged
// pieces, no styling.
type Segment struct {
	// Text is the segment content.
	Text string

	// Matched is true when the segment is a query-term hit.
	Matched bool
}

// HighlightOptions configures Highlight.
type HighlightOptions struct {
	// CaseSensitive disables the default case folding.
	CaseSensitive bool

	// WholeWordsOnly anchors matches on word boundaries.
	WholeWordsOnly bool
}

// Highlight splits text into alternating plain and matched segments
// for the whitespace-separated terms of query. Concatenating segment
// texts in order always reproduces the input exactly.
//
// A blank query yields a single unmatched segment holding all of
// text. Terms are escaped, so regex metacharacters in the query match
// literally.
func Highlight(text, query string, opts HighlightOptions) []Segment {
	terms := SplitTerms(query)
	if len(terms) == 0 {
		return []Segment{{Text: text}}
	}

	re, err := compileTermPattern(terms, opts)
	if err != nil {
		// Terms are quoted, so compilation cannot realistically fail;
		// degrade to an unhighlighted segment rather than erroring.
		return []Segment{{Text: text}}
	}

	matches := re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []Segment{{Text: text}}
	}

	segments := make([]Segment, 0, len(matches)*2+1)
	prev := 0
	for _, m := range matches {
		if m[0] > prev {
			segments = append(segments, Segment{Text: text[prev:m[0]]})
		}
		piece := text[m[0]:m[1]]
		segments = append(segments, Segment{
			Text:    piece,
			Matched: isTermMatch(piece, terms, opts.CaseSensitive),
		})
		prev = m[1]
	}
	if prev < len(text) {
		segments = append(segments, Segment{Text: text[prev:]})
	}

	return segments
}

// compileTermPattern builds one alternation regex over the escaped
// terms in query order.
func compileTermPattern(terms []string, opts HighlightOptions) (*regexp.Regexp, error) {
	quoted := make([]string, len(terms))
	for i, term := range terms {
		quoted[i] = regexp.QuoteMeta(term)
	}

	pattern := "(" + strings.Join(quoted, "|") + ")"
	if opts.WholeWordsOnly {
		pattern = `\b` + pattern + `\b`
	}
	if !opts.CaseSensitive {
		pattern = "(?i)" + pattern
	}

	return regexp.Compile(pattern)
}

// isTermMatch re-tests a matched piece against the term set, exact up
// to the configured case sensitivity.
func isTermMatch(piece string, terms []string, caseSensitive bool) bool {
	for _, term := range terms {
		if caseSensitive {
			if piece == term {
				return true
			}
		} else if strings.EqualFold(piece, term) {
			return true
		}
	}
	return false
}
