package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/railsdocs/mcp-server/internal/config"
)

// uriScheme is the fixed scheme of documentation resource URIs.
const uriScheme = "rails-api"

// GroupURI returns the resource URI for a documentation group.
// Example: "activerecord" -> "rails-api://activerecord"
func GroupURI(group string) string {
	return uriScheme + "://" + group
}

// RegisterResources registers one HTML resource per loaded group, plus the
// complete document under rails-api://all when it was loaded. The resource
// list is fixed at registration; reads always serve the current snapshot,
// so a reload refreshes content without re-registering.
func (s *DocService) RegisterResources(server *mcp.Server) {
	snap := s.snapshot()

	count := 0
	for _, name := range snap.order {
		server.AddResource(&mcp.Resource{
			URI:         GroupURI(name),
			Name:        "Rails API Documentation - " + snap.titles[name],
			Description: fmt.Sprintf("HTML reference documentation for %s", snap.titles[name]),
			MIMEType:    "text/html",
		}, s.handleReadResource)
		count++
	}

	if snap.hasDoc(config.ReservedGroup) {
		server.AddResource(&mcp.Resource{
			URI:         GroupURI(config.ReservedGroup),
			Name:        "Rails API Documentation - " + snap.titles[config.ReservedGroup],
			Description: "Complete HTML reference documentation across all groups",
			MIMEType:    "text/html",
		}, s.handleReadResource)
		count++
	}

	s.logger.Info("documentation resources registered", "resources", count)
}

func (s *DocService) handleReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := req.Params.URI
	group := strings.TrimPrefix(uri, uriScheme+"://")

	raw, ok := s.snapshot().raw[group]
	if !ok {
		return nil, fmt.Errorf("unknown documentation resource: %s", uri)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{URI: uri, MIMEType: "text/html", Text: string(raw)},
		},
	}, nil
}
