package query

import (
	"unicode/utf8"

	"github.com/Priya8975/city-events-api/internal/domain"
)

// Suggestion is one autocomplete entry. The group it belongs to is carried
// by the response map key, not repeated here.
type Suggestion struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

const (
	// eventGroup labels event-name suggestions in the grouped response.
	// Further groups (categories, areas, organizations) slot in as new map
	// keys without changing the response shape.
	eventGroup = "Events"
	eventType  = "event"

	// DefaultAutocompleteLimit applies when the caller gives no limit.
	DefaultAutocompleteLimit = 10

	minQueryLen = 2
)

// Autocomplete returns suggestions grouped by display label. Queries shorter
// than two characters produce an empty grouping. An event contributes at
// most one suggestion, keyed by its name; duplicate names are suppressed
// with the first occurrence winning in store order. Suggestions are
// truncated to limit before grouping.
func Autocomplete(events []domain.Event, q string, limit int) map[string][]Suggestion {
	result := make(map[string][]Suggestion)
	if utf8.RuneCountInString(q) < minQueryLen {
		return result
	}
	if limit <= 0 {
		limit = DefaultAutocompleteLimit
	}

	seen := make(map[string]struct{})
	var suggestions []Suggestion
	for _, ev := range events {
		if len(suggestions) >= limit {
			break
		}
		if ev.Name == "" || !containsFold(ev.Name, q) {
			continue
		}
		if _, dup := seen[ev.Name]; dup {
			continue
		}
		seen[ev.Name] = struct{}{}
		suggestions = append(suggestions, Suggestion{Text: ev.Name, Type: eventType})
	}

	if len(suggestions) > 0 {
		result[eventGroup] = suggestions
	}
	return result
}
