package query

import (
	"sort"
	"strings"

	"github.com/Priya8975/city-events-api/internal/domain"
)

// DistinctCategories flattens every event's category list, trims whitespace,
// drops empties, and returns the distinct values sorted ascending.
func DistinctCategories(events []domain.Event) []string {
	seen := make(map[string]struct{})
	for _, ev := range events {
		for _, cat := range ev.Categories {
			if trimmed := strings.TrimSpace(cat); trimmed != "" {
				seen[trimmed] = struct{}{}
			}
		}
	}
	return sortedKeys(seen)
}

// DistinctAreas returns the distinct non-empty area labels sorted ascending.
func DistinctAreas(events []domain.Event) []string {
	seen := make(map[string]struct{})
	for _, ev := range events {
		if trimmed := strings.TrimSpace(ev.Area); trimmed != "" {
			seen[trimmed] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
