package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/railsdocs/mcp-server/internal/registry"
)

// SearchInput defines input for the search tool. Limit is a pointer so an
// omitted limit falls back to the default while an explicit zero is
// rejected as invalid.
type SearchInput struct {
	Query string `json:"query" jsonschema:"Search query for the Rails API documentation"`
	Group string `json:"group,omitempty" jsonschema:"Documentation group to search (e.g. activerecord); all groups when omitted"`
	Limit *int   `json:"limit,omitempty" jsonschema:"Maximum number of matches to return (optional, defaults to 10)"`
}

func (s *DocService) handleSearch(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, registry.Result, error) {
	limit := registry.DefaultLimit
	if input.Limit != nil {
		limit = *input.Limit
	}

	result, err := s.snapshot().registry.Search(input.Query, input.Group, limit)
	if err != nil {
		return nil, registry.Result{}, err
	}
	return nil, *result, nil
}
