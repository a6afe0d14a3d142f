package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/railsdocs/mcp-server/internal/config"
)

// SectionEntry identifies one loadable documentation group.
type SectionEntry struct {
	Group string `json:"group"`
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// ListSectionsInput defines input for the list_sections tool.
type ListSectionsInput struct{}

// ListSectionsOutput lists the loaded documentation groups in load order,
// with the complete document last when it is available.
type ListSectionsOutput struct {
	Sections []SectionEntry `json:"sections"`
	Count    int            `json:"count"`
}

func (s *DocService) handleListSections(ctx context.Context, req *mcp.CallToolRequest, input ListSectionsInput) (*mcp.CallToolResult, ListSectionsOutput, error) {
	snap := s.snapshot()

	entries := make([]SectionEntry, 0, len(snap.order)+1)
	for _, name := range snap.order {
		entries = append(entries, SectionEntry{
			Group: name,
			URI:   GroupURI(name),
			Title: snap.titles[name],
		})
	}
	if snap.hasDoc(config.ReservedGroup) {
		entries = append(entries, SectionEntry{
			Group: config.ReservedGroup,
			URI:   GroupURI(config.ReservedGroup),
			Title: snap.titles[config.ReservedGroup],
		})
	}

	return nil, ListSectionsOutput{Sections: entries, Count: len(entries)}, nil
}
