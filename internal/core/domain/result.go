package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RecordID identifies a record within its source table. The search
// service emits it as either a JSON number or a JSON string, so it
// normalises to a string on decode.
type RecordID string

// UnmarshalJSON accepts both string and numeric identifiers.
func (r *RecordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*r = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = RecordID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("record id: %w", err)
	}
	*r = RecordID(n.String())
	return nil
}

// String returns the string representation.
func (r RecordID) String() string {
	return string(r)
}

// SearchResult is a single hit produced by the search service.
// It is consumed read-only; AdditionalData carries type-specific
// optional fields whose absence is expected and must degrade
// gracefully.
type SearchResult struct {
	// TableName identifies the source table or collection.
	TableName string `json:"table_name"`

	// RecordID is unique within TableName.
	RecordID RecordID `json:"record_id"`

	// ContentType classifies the result.
	ContentType ContentType `json:"content_type"`

	// Title is the display string.
	Title string `json:"title"`

	// Snippet is a raw text excerpt candidate. May be long and is not
	// pre-highlighted.
	Snippet string `json:"snippet"`

	// Rank is the provider-assigned relevance. The platform service
	// emits values in [0,1]; the local provider emits raw match scores.
	Rank float64 `json:"rank"`

	// CreatedAt is the record timestamp as emitted by the service.
	CreatedAt string `json:"created_at"`

	// AdditionalData is an open mapping of type-specific fields
	// (slug, course_slug, username, class_code, ...).
	AdditionalData map[string]any `json:"additional_data"`
}

// Identity returns the stable composite key used for de-duplication
// and list keys: "table_name:record_id".
func (r *SearchResult) Identity() string {
	return r.TableName + ":" + string(r.RecordID)
}

// Field returns the named AdditionalData value as a non-empty string.
// Numeric values are formatted without a decimal point where possible;
// missing, empty, or non-scalar values report ok=false.
func (r *SearchResult) Field(key string) (string, bool) {
	if r.AdditionalData == nil {
		return "", false
	}

	val, ok := r.AdditionalData[key]
	if !ok || val == nil {
		return "", false
	}

	switch v := val.(type) {
	case string:
		s := strings.TrimSpace(v)
		return s, s != ""
	case json.Number:
		return v.String(), v.String() != ""
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10), true
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

// SearchStats summarises a search response.
type SearchStats struct {
	// TotalResults is the number of hits before client-side slicing.
	TotalResults int `json:"total_results"`

	// ContentTypes is the number of distinct content types present.
	ContentTypes int `json:"content_types"`

	// MaxRank is the highest server rank in the response.
	MaxRank float64 `json:"max_rank"`

	// SearchTime is the provider-reported time in seconds.
	SearchTime float64 `json:"search_time"`
}

// SearchResponse is the full payload returned by a search provider.
type SearchResponse struct {
	// Query is the query the provider actually executed.
	Query string `json:"query"`

	// Results are ranked hits, best first.
	Results []SearchResult `json:"results"`

	// Stats summarises the response.
	Stats SearchStats `json:"stats"`

	// Context is the search context the provider applied.
	Context SearchContext `json:"context"`
}

// GroupByContentType buckets results by their content type, preserving
// rank order within each bucket.
func (r *SearchResponse) GroupByContentType() map[ContentType][]SearchResult {
	grouped := make(map[ContentType][]SearchResult)
	for i := range r.Results {
		ct := r.Results[i].ContentType
		grouped[ct] = append(grouped[ct], r.Results[i])
	}
	return grouped
}
