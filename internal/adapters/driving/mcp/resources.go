package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/unisearch/internal/core/domain"
)

// uriScheme is the custom URI scheme for unisearch resources.
const uriScheme = "unisearch://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "content-types",
		Name:        "content-types",
		Description: "The content types search results can have",
		MIMEType:    "application/json",
	}, s.handleContentTypesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recent search queries, most recent first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// handleContentTypesResource returns the closed set of content types.
func (s *Server) handleContentTypesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type typeInfo struct {
		Type        string `json:"type"`
		Label       string `json:"label"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}

	all := domain.AllContentTypes()
	infos := make([]typeInfo, len(all))
	for i, t := range all {
		info := t.Info()
		infos[i] = typeInfo{
			Type:        string(t),
			Label:       info.Label,
			Description: info.Description,
			Category:    string(info.Category),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling content types: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleHistoryResource returns recent queries. Hosts without a
// history store get an empty list.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	entries := []string{}
	if s.ports.History != nil {
		loaded, err := s.ports.History.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}
		if loaded != nil {
			entries = loaded
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
