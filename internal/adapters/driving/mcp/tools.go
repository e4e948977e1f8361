package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/unisearch/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query        string   `json:"query" jsonschema:"the search query"`
	Context      string   `json:"context,omitempty" jsonschema:"search context: general, learning, or teaching (default general)"`
	ContentTypes []string `json:"content_types,omitempty" jsonschema:"restrict results to these content types"`
	Limit        int      `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
	Total   int                  `json:"total"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	ContentType string  `json:"content_type"`
	Title       string  `json:"title"`
	Snippet     string  `json:"snippet,omitempty"`
	Path        string  `json:"path"`
	Rank        float64 `json:"rank"`
	TableName   string  `json:"table_name"`
	RecordID    string  `json:"record_id"`
}

// ResolveInput is the input schema for the resolve_result tool.
type ResolveInput struct {
	ContentType string         `json:"content_type" jsonschema:"the result's content type"`
	TableName   string         `json:"table_name,omitempty" jsonschema:"the backing table name"`
	RecordID    string         `json:"record_id" jsonschema:"the record identifier"`
	Data        map[string]any `json:"data,omitempty" jsonschema:"type-specific fields such as slug or username"`
}

// ResolveOutput is the output schema for the resolve_result tool.
type ResolveOutput struct {
	Path string `json:"path"`
}

// SuggestInput is the input schema for the suggest tool.
type SuggestInput struct {
	Query string `json:"query" jsonschema:"the partial query to suggest completions for"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of suggestions (default 5)"`
}

// SuggestOutput is the output schema for the suggest tool.
type SuggestOutput struct {
	Suggestions []string `json:"suggestions"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search platform content: courses, lessons, posts, users, and more",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_result",
		Description: "Resolve a search result to its navigation path",
	}, s.handleResolve)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest",
		Description: "Suggest result titles completing a partial query",
	}, s.handleSuggest)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	searchContext := domain.SearchContext(input.Context)
	if !searchContext.IsValid() {
		searchContext = domain.ContextGeneral
	}

	types := make([]domain.ContentType, 0, len(input.ContentTypes))
	for _, t := range input.ContentTypes {
		types = append(types, domain.ContentType(t))
	}

	resp, err := s.ports.Search.Search(ctx, input.Query, domain.SearchFilters{
		ContentTypes: types,
		Context:      searchContext,
		Limit:        limit,
	})
	if err != nil {
		return nil, SearchOutput{}, err
	}

	results := resp.Results
	if len(results) > limit {
		results = results[:limit]
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
		Total:   resp.Stats.TotalResults,
	}
	for i := range results {
		output.Results[i] = SearchResultOutput{
			ContentType: string(results[i].ContentType),
			Title:       results[i].Title,
			Snippet:     results[i].Snippet,
			Path:        s.ports.Actions.Resolve(results[i]),
			Rank:        results[i].Rank,
			TableName:   results[i].TableName,
			RecordID:    string(results[i].RecordID),
		}
	}

	return nil, output, nil
}

// handleResolve handles the resolve_result tool invocation.
func (s *Server) handleResolve(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ResolveInput,
) (*mcp.CallToolResult, ResolveOutput, error) {
	result := domain.SearchResult{
		TableName:      input.TableName,
		RecordID:       domain.RecordID(input.RecordID),
		ContentType:    domain.ContentType(input.ContentType),
		AdditionalData: input.Data,
	}
	return nil, ResolveOutput{Path: s.ports.Actions.Resolve(result)}, nil
}

// handleSuggest handles the suggest tool invocation.
func (s *Server) handleSuggest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SuggestInput,
) (*mcp.CallToolResult, SuggestOutput, error) {
	suggestions, err := s.ports.Search.Suggestions(ctx, input.Query, input.Limit)
	if err != nil {
		return nil, SuggestOutput{}, err
	}
	return nil, SuggestOutput{Suggestions: suggestions}, nil
}
