package ics

import (
	"strings"
	"testing"

	"github.com/Priya8975/city-events-api/internal/domain"
)

func TestExport_TimedEvent(t *testing.T) {
	ev := domain.Event{
		ID:          7,
		Name:        "Jazz Night",
		Description: "Live quartet downtown.",
		StartDate:   "2026-09-01T20:00:00",
		EndDate:     "2026-09-01T23:00:00",
		Area:        "Downtown",
		Address:     "100 Queen St W",
		Website:     "https://example.org/jazz",
	}

	out, err := Export(ev)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"BEGIN:VEVENT",
		"SUMMARY:Jazz Night",
		"UID:event-7@city-events-api",
		"LOCATION:Downtown",
		"END:VEVENT",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExport_BareDateUsesFreeTextTime(t *testing.T) {
	ev := domain.Event{
		ID:        1,
		Name:      "Farmers Market",
		StartDate: "2026-06-07",
		StartTime: "9:00 AM",
	}

	out, err := Export(ev)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(out, "DTSTART") {
		t.Errorf("missing DTSTART:\n%s", out)
	}
	if strings.Contains(out, "VALUE=DATE") {
		t.Errorf("a parseable free-text time should produce a timed event:\n%s", out)
	}
}

func TestExport_BareDateWithoutTimeIsAllDay(t *testing.T) {
	ev := domain.Event{ID: 2, Name: "Street Festival", StartDate: "2026-06-07"}

	out, err := Export(ev)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(out, "VALUE=DATE") {
		t.Errorf("expected an all-day DTSTART:\n%s", out)
	}
}

func TestExport_NoParseableDate(t *testing.T) {
	tests := []string{"", "soon", "31/12/2026"}
	for _, date := range tests {
		if _, err := Export(domain.Event{ID: 1, Name: "X", StartDate: date}); err == nil {
			t.Errorf("StartDate %q should fail export", date)
		}
	}
}
