package registry

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/railsdocs/mcp-server/internal/docs"
)

// titleBonus is added when the full query appears inside a section title.
const titleBonus = 0.5

// Match is one ranked section in a search response.
type Match struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Path      string  `json:"path"`
	Group     string  `json:"group"`
	Relevance float64 `json:"relevance"`
}

// Result is the response to one search call. Group is nil when the search
// spanned all groups.
type Result struct {
	Matches   []Match `json:"matches"`
	Total     int     `json:"total"`
	Query     string  `json:"query"`
	Group     *string `json:"group"`
	Timestamp string  `json:"timestamp"`
}

// Search scores every section in scope against the query, drops
// non-matches, sorts by relevance descending (ties keep section order) and
// returns the first limit matches. Total counts matches before truncation.
//
// An empty group means all groups, in load order. The query must be
// non-empty after trimming and the limit positive; violations return
// ErrEmptyQuery, ErrUnknownGroup or ErrInvalidLimit and no Result.
func (r *Registry) Search(query, group string, limit int) (*Result, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}

	var scope []docs.Section
	var echo *string
	if group == "" {
		scope = r.all()
	} else {
		secs, ok := r.sections[group]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, group)
		}
		scope = secs
		echo = &group
	}

	lowered := strings.ToLower(q)
	terms := strings.Fields(lowered)

	matches := make([]Match, 0, limit)
	for _, s := range scope {
		score := scoreSection(s, lowered, terms)
		if score <= 0 {
			continue
		}
		matches = append(matches, Match{
			Title:     s.Title,
			Content:   snippet(s.Content, r.snippetLength),
			Path:      s.Path(),
			Group:     s.Group,
			Relevance: score,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Relevance > matches[j].Relevance
	})

	total := len(matches)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	r.logger.Debug("search executed",
		"query", q,
		"group", group,
		"total", total,
		"returned", len(matches))

	return &Result{
		Matches:   matches,
		Total:     total,
		Query:     q,
		Group:     echo,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// scoreSection computes the bounded [0,1] relevance of one section: the
// fraction of query terms appearing as substrings of the lowercased
// title+content, plus titleBonus when the whole query sits in the title.
// Sections matching no term at all score 0 and are not matches.
func scoreSection(s docs.Section, query string, terms []string) float64 {
	text := strings.ToLower(s.Title + " " + s.Content)

	matched := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			matched++
		}
	}
	if matched == 0 {
		return 0
	}

	score := float64(matched) / float64(len(terms))
	if strings.Contains(strings.ToLower(s.Title), query) {
		score += titleBonus
	}
	if score > 1 {
		score = 1
	}
	return score
}

// snippet truncates text at a word boundary near max so match content
// stays a readable preview rather than a whole section body.
func snippet(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	cut := max
	for i := max; i > max-100 && i > 0; i-- {
		if text[i] == ' ' {
			cut = i
			break
		}
	}
	return text[:cut] + "..."
}
