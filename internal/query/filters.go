// Package query implements the filter, facet, and autocomplete operations.
// Every function is a pure transformation over the snapshot it is given;
// filters compose by intersection in any order.
package query

import (
	"strings"
	"time"

	"github.com/Priya8975/city-events-api/internal/domain"
)

// FilterAll is the sentinel filter value that matches everything.
const FilterAll = "all"

func isNoop(value string) bool {
	return value == "" || strings.EqualFold(value, FilterAll)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// ByCategory keeps events where any category element contains the given
// value, case-insensitively. Substring match: callers wanting exact category
// names must pre-normalize.
func ByCategory(events []domain.Event, category string) []domain.Event {
	if isNoop(category) {
		return events
	}
	out := make([]domain.Event, 0, len(events))
	for _, ev := range events {
		for _, cat := range ev.Categories {
			if containsFold(cat, category) {
				out = append(out, ev)
				break
			}
		}
	}
	return out
}

// ByArea keeps events whose area contains the given value, case-insensitively.
func ByArea(events []domain.Event, area string) []domain.Event {
	if isNoop(area) {
		return events
	}
	out := make([]domain.Event, 0, len(events))
	for _, ev := range events {
		if containsFold(ev.Area, area) {
			out = append(out, ev)
		}
	}
	return out
}

// BySearch keeps events where the term appears in the name, description,
// any category element, area, or presenting organization.
func BySearch(events []domain.Event, term string) []domain.Event {
	if term == "" {
		return events
	}
	out := make([]domain.Event, 0, len(events))
	for _, ev := range events {
		if matchesSearch(ev, term) {
			out = append(out, ev)
		}
	}
	return out
}

func matchesSearch(ev domain.Event, term string) bool {
	if containsFold(ev.Name, term) ||
		containsFold(ev.Description, term) ||
		containsFold(ev.Area, term) ||
		containsFold(ev.Organization, term) {
		return true
	}
	for _, cat := range ev.Categories {
		if containsFold(cat, term) {
			return true
		}
	}
	return false
}

// Date windows accepted by ByDateWindow.
const (
	WindowToday = "today"
	WindowWeek  = "week"
	WindowMonth = "month"
)

// startDateLayouts are tried in order when parsing an event's start date.
var startDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseStartDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range startDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ByDateWindow keeps events whose start date falls within the window
// relative to now. Events with a missing or unparseable start date are kept
// under every window (fails open) so malformed records are never silently
// hidden. An empty or unknown window is a no-op.
func ByDateWindow(events []domain.Event, window string, now time.Time) []domain.Event {
	if window == "" {
		return events
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var within func(t time.Time) bool
	switch window {
	case WindowToday:
		within = func(t time.Time) bool {
			y1, m1, d1 := t.Date()
			y2, m2, d2 := today.Date()
			return y1 == y2 && m1 == m2 && d1 == d2
		}
	case WindowWeek:
		end := today.AddDate(0, 0, 7)
		within = func(t time.Time) bool {
			return !t.Before(today) && !t.After(end)
		}
	case WindowMonth:
		// Calendar-month increment, not 30 days: overflow at month ends
		// follows time.AddDate semantics.
		end := today.AddDate(0, 1, 0)
		within = func(t time.Time) bool {
			return !t.Before(today) && !t.After(end)
		}
	default:
		return events
	}

	out := make([]domain.Event, 0, len(events))
	for _, ev := range events {
		start, ok := parseStartDate(ev.StartDate)
		if !ok || within(start) {
			out = append(out, ev)
		}
	}
	return out
}
