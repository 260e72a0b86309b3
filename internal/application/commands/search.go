package commands

import (
	"context"
	"sort"
	"strings"

	"td/internal/domain"
	"td/internal/ports"
)

// SearchResult wraps domain.SearchResult with a relevance score
type SearchResult struct {
	domain.SearchResult
	Score int
}

// SearchCommand searches task titles and tags with fuzzy matching.
// The index narrows the candidates when one is configured; otherwise the graph is scanned.
type SearchCommand struct {
	store ports.TaskStore
	index ports.TaskIndex
	Query string
}

// NewSearchCommand creates a new SearchCommand. index may be nil, and must mirror
// store.State() when set.
func NewSearchCommand(store ports.TaskStore, index ports.TaskIndex, query string) *SearchCommand {
	return &SearchCommand{
		store: store,
		index: index,
		Query: query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	if len(c.Query) < 2 {
		return nil, nil
	}

	var results []domain.SearchResult
	if c.index != nil {
		var err error
		results, err = c.index.Search(c.Query)
		if err != nil {
			return nil, err
		}
	} else {
		results = ScanGraph(c.store.State())
	}

	return FuzzySort(results, c.Query), nil
}

// ScanGraph turns every title and tag in g into a search candidate
func ScanGraph(g *domain.Graph) []domain.SearchResult {
	var results []domain.SearchResult
	for t := range g.Tasks() {
		status := t.Status()
		results = append(results, domain.SearchResult{
			ID:          t.ID,
			Title:       t.Title,
			Status:      status,
			Field:       "title",
			MatchedText: t.Title,
		})
		for _, tag := range t.Tags {
			results = append(results, domain.SearchResult{
				ID:          t.ID,
				Title:       t.Title,
				Status:      status,
				Field:       "tag",
				MatchedText: tag,
			})
		}
	}
	return results
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		// Bonus if it starts with query
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == ' ' || target[i-1] == '-' || target[i-1] == '/') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort scores results against the query, keeps the best match per task and
// sorts by relevance
func FuzzySort(results []domain.SearchResult, query string) []SearchResult {
	best := make(map[domain.TaskID]int)
	scored := make([]SearchResult, 0, len(results))

	for _, r := range results {
		score := max(FuzzyScore(string(r.ID), query), FuzzyScore(r.MatchedText, query))
		if score == 0 {
			continue
		}

		if i, ok := best[r.ID]; ok {
			if score > scored[i].Score {
				scored[i] = SearchResult{SearchResult: r, Score: score}
			}
			continue
		}
		best[r.ID] = len(scored)
		scored = append(scored, SearchResult{SearchResult: r, Score: score})
	}

	// Sort by score descending
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
