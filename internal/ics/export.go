// Package ics renders a single canonical event as an iCalendar file for
// "add to calendar" links.
package ics

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/Priya8975/city-events-api/internal/domain"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

var timeLayouts = []string{"3:04 PM", "15:04"}

// Export serializes one event as a VCALENDAR with a single VEVENT. It fails
// only when the event carries no parseable start date, since DTSTART is
// mandatory.
func Export(ev domain.Event) (string, error) {
	start, allDay, ok := resolveStart(ev)
	if !ok {
		return "", fmt.Errorf("event %d has no parseable start date", ev.ID)
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//city-events-api//EN")

	ve := cal.AddEvent(fmt.Sprintf("event-%d@city-events-api", ev.ID))
	ve.SetSummary(ev.Name)
	ve.SetDtStampTime(time.Now().UTC())

	if allDay {
		ve.SetAllDayStartAt(start)
		if end, _, endOK := parseWithTime(ev.EndDate, ev.EndTime); endOK {
			ve.SetAllDayEndAt(end)
		}
	} else {
		ve.SetStartAt(start)
		if end, _, endOK := parseWithTime(ev.EndDate, ev.EndTime); endOK {
			ve.SetEndAt(end)
		}
	}

	if ev.Description != "" {
		ve.SetDescription(ev.Description)
	}
	if loc := location(ev); loc != "" {
		ve.SetLocation(loc)
	}
	if ev.Website != "" {
		ve.SetURL(ev.Website)
	}

	return cal.Serialize(), nil
}

func resolveStart(ev domain.Event) (t time.Time, allDay, ok bool) {
	return parseWithTime(ev.StartDate, ev.StartTime)
}

// parseWithTime parses a source date string and, when the date carries no
// time of day, folds in the free-text time field if it parses.
func parseWithTime(date, clock string) (t time.Time, allDay, ok bool) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Time{}, false, false
	}

	var parsed time.Time
	var layout string
	for _, l := range dateLayouts {
		if p, err := time.ParseInLocation(l, date, time.Local); err == nil {
			parsed, layout = p, l
			break
		}
	}
	if layout == "" {
		return time.Time{}, false, false
	}

	if layout != "2006-01-02" {
		return parsed, false, true
	}

	for _, tl := range timeLayouts {
		if c, err := time.Parse(tl, strings.TrimSpace(clock)); err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(),
				c.Hour(), c.Minute(), 0, 0, time.Local), false, true
		}
	}
	return parsed, true, true
}

func location(ev domain.Event) string {
	parts := make([]string, 0, 2)
	if ev.Area != "" {
		parts = append(parts, ev.Area)
	}
	if ev.Address != "" {
		parts = append(parts, ev.Address)
	}
	return strings.Join(parts, ", ")
}
