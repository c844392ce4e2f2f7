// Package normalize maps raw feed records onto the canonical Event. Every
// resolver is a pure function with a priority-ordered fallback chain, so a
// malformed field degrades to a default instead of rejecting the record.
package normalize

import (
	"fmt"
	"strings"

	"github.com/Priya8975/city-events-api/internal/domain"
	"github.com/Priya8975/city-events-api/internal/feed"
)

// Normalize converts one raw record into a canonical Event. The id is the
// 1-based position in the batch and is only meaningful within the store
// generation built from that batch.
func Normalize(rec feed.Record, ordinal int) domain.Event {
	address, area := resolveLocation(rec)
	startDate, endDate := resolveDates(rec)
	phone, email := resolveContacts(rec)

	return domain.Event{
		ID:             ordinal + 1,
		Name:           rec.EventName,
		Description:    rec.Description.Join(),
		StartDate:      startDate,
		EndDate:        endDate,
		StartTime:      rec.StartTime,
		EndTime:        rec.EndTime,
		Area:           area,
		Categories:     resolveCategories(rec),
		Address:        address,
		Phone:          phone,
		Email:          email,
		Website:        rec.EventWebsite,
		Cost:           resolveCost(rec),
		Organization:   rec.OrgName,
		Image:          rec.Image,
		OriginalRecord: rec.Raw,
	}
}

// Batch normalizes a whole fetch result, assigning ids by position.
func Batch(records []feed.Record) []domain.Event {
	events := make([]domain.Event, 0, len(records))
	for i, rec := range records {
		events = append(events, Normalize(rec, i))
	}
	return events
}

func resolveLocation(rec feed.Record) (address, area string) {
	if len(rec.Locations) == 0 {
		return "", ""
	}
	loc := rec.Locations[0]
	return loc.Address, loc.LocationName
}

func resolveCategories(rec feed.Record) domain.StringList {
	if len(rec.Category) > 0 {
		names := make(domain.StringList, 0, len(rec.Category))
		for _, tag := range rec.Category {
			names = append(names, tag.Name)
		}
		return names
	}
	if len(rec.CategoryString) > 0 {
		return rec.CategoryString
	}
	return nil
}

// resolveCost renders a display cost. A record not explicitly marked
// not-free is always "Free", whatever its cost field says.
func resolveCost(rec feed.Record) string {
	if rec.FreeEvent != "No" {
		return "Free"
	}
	cost := rec.Cost
	switch {
	case cost.Scalar != "":
		return cost.Scalar
	case !cost.GA.IsZero():
		return "$" + cost.GA.String()
	case !cost.Adult.IsZero():
		return "$" + cost.Adult.String()
	case !cost.From.IsZero() && !cost.To.IsZero():
		return fmt.Sprintf("$%s - $%s", cost.From, cost.To)
	default:
		return "Paid"
	}
}

func resolveDates(rec feed.Record) (start, end string) {
	if len(rec.Dates) > 0 {
		return rec.Dates[0].StartDateTime, rec.Dates[0].EndDateTime
	}
	start = firstNonEmpty(rec.StartDateTime, rec.StartDate)
	end = firstNonEmpty(rec.EndDateTime, rec.EndDate)
	return start, end
}

func resolveContacts(rec feed.Record) (phone, email string) {
	phone = firstNonEmpty(rec.EventPhone, rec.OrgPhone)
	email = firstNonEmpty(rec.EventEmail, rec.OrgEmail)
	return phone, email
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
