package tools

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/railsdocs/mcp-server/internal/registry"
)

func TestHandleSearch(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("default limit", func(t *testing.T) {
		_, out, err := svc.handleSearch(ctx, nil, SearchInput{Query: "migrations"})
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		// Matches the Migrations section and the document heading that
		// spans it
		if out.Total != 2 {
			t.Errorf("Expected 2 matches, got %d", out.Total)
		}
		if len(out.Matches) != 2 {
			t.Errorf("Expected 2 returned matches, got %d", len(out.Matches))
		}
		if out.Query != "migrations" {
			t.Errorf("Expected query echo 'migrations', got %q", out.Query)
		}
		if out.Group != nil {
			t.Errorf("Expected null group for an all-groups search, got %q", *out.Group)
		}
		if out.Timestamp == "" {
			t.Error("Expected a timestamp")
		}
	})

	t.Run("ranking", func(t *testing.T) {
		// "mapping" appears only in the document heading's own text, so the
		// heading matches both terms and the Migrations section only one.
		_, out, err := svc.handleSearch(ctx, nil, SearchInput{Query: "mapping migrations"})
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if len(out.Matches) != 2 {
			t.Fatalf("Expected 2 matches, got %d", len(out.Matches))
		}
		if out.Matches[0].Title != "Active Record Basics" || out.Matches[0].Relevance != 1.0 {
			t.Errorf("Expected 'Active Record Basics' at 1.0 first, got %q at %v",
				out.Matches[0].Title, out.Matches[0].Relevance)
		}
		if out.Matches[1].Title != "Migrations" || out.Matches[1].Relevance != 0.5 {
			t.Errorf("Expected 'Migrations' at 0.5 second, got %q at %v",
				out.Matches[1].Title, out.Matches[1].Relevance)
		}
	})

	t.Run("group filter", func(t *testing.T) {
		_, out, err := svc.handleSearch(ctx, nil, SearchInput{Query: "helpers", Group: "actionview"})
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if out.Group == nil || *out.Group != "actionview" {
			t.Error("Expected group echo 'actionview'")
		}
		if out.Total == 0 {
			t.Fatal("Expected matches within actionview")
		}
		for _, m := range out.Matches {
			if m.Group != "actionview" {
				t.Errorf("Expected all matches from actionview, got %q", m.Group)
			}
		}
	})

	t.Run("explicit limit", func(t *testing.T) {
		limit := 1
		_, out, err := svc.handleSearch(ctx, nil, SearchInput{Query: "migrations", Limit: &limit})
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if len(out.Matches) != 1 {
			t.Errorf("Expected 1 returned match, got %d", len(out.Matches))
		}
		// Total still counts everything that matched
		if out.Total != 2 {
			t.Errorf("Expected total 2, got %d", out.Total)
		}
	})

	t.Run("zero limit rejected", func(t *testing.T) {
		zero := 0
		_, _, err := svc.handleSearch(ctx, nil, SearchInput{Query: "migrations", Limit: &zero})
		if !errors.Is(err, registry.ErrInvalidLimit) {
			t.Errorf("Expected ErrInvalidLimit, got: %v", err)
		}
	})

	t.Run("empty query rejected", func(t *testing.T) {
		_, _, err := svc.handleSearch(ctx, nil, SearchInput{Query: "   "})
		if !errors.Is(err, registry.ErrEmptyQuery) {
			t.Errorf("Expected ErrEmptyQuery, got: %v", err)
		}
	})

	t.Run("unknown group rejected", func(t *testing.T) {
		_, _, err := svc.handleSearch(ctx, nil, SearchInput{Query: "migrations", Group: "actiontext"})
		if !errors.Is(err, registry.ErrUnknownGroup) {
			t.Errorf("Expected ErrUnknownGroup, got: %v", err)
		}
	})
}

func TestHandleListSections(t *testing.T) {
	svc := newTestService(t)

	_, out, err := svc.handleListSections(context.Background(), nil, ListSectionsInput{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// Manifest order, complete document last
	want := []SectionEntry{
		{Group: "activerecord", URI: "rails-api://activerecord", Title: "Active Record"},
		{Group: "actionview", URI: "rails-api://actionview", Title: "Actionview"},
		{Group: "all", URI: "rails-api://all", Title: "All"},
	}
	if !reflect.DeepEqual(out.Sections, want) {
		t.Errorf("Unexpected section list:\n got: %+v\nwant: %+v", out.Sections, want)
	}
	if out.Count != len(want) {
		t.Errorf("Expected count %d, got %d", len(want), out.Count)
	}
}

func TestHandleListSectionsNoCompleteDocument(t *testing.T) {
	mock := NewMockDataProvider()
	mock.AddFile("data/docs/activerecord.html", []byte(activeRecordDoc))

	svc, err := NewDocService(testConfig(t), WithLogger(quietLogger()), WithDataProvider(mock))
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	_, out, err := svc.handleListSections(context.Background(), nil, ListSectionsInput{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	for _, entry := range out.Sections {
		if entry.Group == "all" {
			t.Error("Expected no 'all' entry when the complete document is missing")
		}
	}
}

func TestHandleReload(t *testing.T) {
	svc := newTestService(t)

	_, out, err := svc.handleReload(context.Background(), nil, ReloadInput{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if out.Groups != 2 {
		t.Errorf("Expected 2 groups, got %d", out.Groups)
	}
	if out.Sections != 5 {
		t.Errorf("Expected 5 sections, got %d", out.Sections)
	}
	if out.DurationMS < 0 {
		t.Errorf("Expected non-negative duration, got %d", out.DurationMS)
	}
}

func TestHandleReadResource(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("group document", func(t *testing.T) {
		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: "rails-api://activerecord"},
		}
		res, err := svc.handleReadResource(ctx, req)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if len(res.Contents) != 1 {
			t.Fatalf("Expected 1 content item, got %d", len(res.Contents))
		}
		c := res.Contents[0]
		if c.URI != "rails-api://activerecord" {
			t.Errorf("Expected URI echo, got %q", c.URI)
		}
		if c.MIMEType != "text/html" {
			t.Errorf("Expected text/html, got %q", c.MIMEType)
		}
		if c.Text != activeRecordDoc {
			t.Error("Expected the raw document bytes")
		}
	})

	t.Run("complete document", func(t *testing.T) {
		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: "rails-api://all"},
		}
		res, err := svc.handleReadResource(ctx, req)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if res.Contents[0].Text != completeDoc {
			t.Error("Expected the complete document bytes")
		}
	})

	t.Run("unknown resource", func(t *testing.T) {
		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: "rails-api://actiontext"},
		}
		if _, err := svc.handleReadResource(ctx, req); err == nil {
			t.Error("Expected an error for an unknown resource")
		}
	})
}

func TestGroupURI(t *testing.T) {
	if got := GroupURI("activerecord"); got != "rails-api://activerecord" {
		t.Errorf("Expected 'rails-api://activerecord', got %q", got)
	}
	if got := GroupURI("all"); got != "rails-api://all" {
		t.Errorf("Expected 'rails-api://all', got %q", got)
	}
}
