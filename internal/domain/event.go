package domain

import "encoding/json"

// Event is the canonical record every filter, search, and autocomplete
// operation works on. IDs are assigned by ingestion order within one store
// generation and are not stable across refreshes.
type Event struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	StartDate    string     `json:"startDate"`
	EndDate      string     `json:"endDate"`
	StartTime    string     `json:"startTime,omitempty"`
	EndTime      string     `json:"endTime,omitempty"`
	Area         string     `json:"area,omitempty"`
	Categories   StringList `json:"categories"`
	Address      string     `json:"address,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Email        string     `json:"email,omitempty"`
	Website      string     `json:"website,omitempty"`
	Cost         string     `json:"cost,omitempty"`
	Organization string     `json:"organization,omitempty"`
	Image        string     `json:"image,omitempty"`

	// OriginalRecord retains the raw source payload for traceability.
	// It is never consulted by filtering.
	OriginalRecord json.RawMessage `json:"originalRecord,omitempty"`
}
