package tools

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ReloadInput defines input for the reload_docs tool.
type ReloadInput struct{}

// ReloadOutput reports what a documentation reload produced.
type ReloadOutput struct {
	Groups     int   `json:"groups"`
	Sections   int   `json:"sections"`
	DurationMS int64 `json:"duration_ms"`
}

func (s *DocService) handleReload(ctx context.Context, req *mcp.CallToolRequest, input ReloadInput) (*mcp.CallToolResult, ReloadOutput, error) {
	started := time.Now()

	snap, err := s.reload()
	if err != nil {
		return nil, ReloadOutput{}, err
	}

	return nil, ReloadOutput{
		Groups:     len(snap.order),
		Sections:   snap.registry.Len(),
		DurationMS: time.Since(started).Milliseconds(),
	}, nil
}
