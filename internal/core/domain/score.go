package domain

import "math"

// Scoring weights. These mirror the heuristic the platform's client
// used for re-ordering and analytics; the numbers are tuning
// constants, not probabilities.
const (
	scorePerMatch      = 10.0
	scorePositionBonus = 5.0
	scoreWholeWord     = 5.0
	scoreCoverage      = 10.0
)

// Score computes a heuristic relevance score for text against query,
// given the spans a prior Scan produced. It is deterministic and
// non-negative, and returns 0 when spans is empty.
//
// The score combines match count, match position (earlier is better),
// a whole-word bonus, and the ratio of matched bytes to query length,
// rounded to two decimal places. It is a client-side ranking aid only
// and is independent of any server-assigned rank.
func Score(text, query string, spans []MatchSpan) float64 {
	if len(spans) == 0 {
		return 0
	}

	textLen := len(text)
	queryLen := len(query)

	score := scorePerMatch * float64(len(spans))

	for _, span := range spans {
		if textLen > 0 {
			score += scorePositionBonus * (1 - float64(span.Start)/float64(textLen))
		}
		if isWholeWord(text, span) {
			score += scoreWholeWord
		}
	}

	if queryLen > 0 {
		total := 0
		for _, span := range spans {
			total += span.Len()
		}
		score += scoreCoverage * float64(total) / float64(queryLen)
	}

	return math.Round(score*100) / 100
}

// isWholeWord reports whether the span is delimited by non-word
// characters or the text boundaries on both sides.
func isWholeWord(text string, span MatchSpan) bool {
	if span.Start < 0 || span.End > len(text) || span.Start >= span.End {
		return false
	}
	beforeOK := span.Start == 0 || !isWordByte(text[span.Start-1])
	afterOK := span.End == len(text) || !isWordByte(text[span.End])
	return beforeOK && afterOK
}
