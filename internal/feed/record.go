package feed

import (
	"encoding/json"

	"github.com/Priya8975/city-events-api/internal/domain"
)

// Record is one raw event as the municipal feed delivers it. Records arrive
// either flat or wrapped in a {"calEvent": {...}} envelope; both decode to
// the same Record. Raw keeps the payload exactly as received.
type Record struct {
	EventName      string            `json:"eventName"`
	Description    domain.TextList   `json:"description"`
	StartDateTime  string            `json:"startDateTime"`
	StartDate      string            `json:"startDate"`
	EndDateTime    string            `json:"endDateTime"`
	EndDate        string            `json:"endDate"`
	StartTime      string            `json:"startTime"`
	EndTime        string            `json:"endTime"`
	Dates          []DateEntry       `json:"dates"`
	Locations      []Location        `json:"locations"`
	Category       []CategoryTag     `json:"category"`
	CategoryString domain.StringList `json:"categoryString"`
	FreeEvent      string            `json:"freeEvent"`
	Cost           Cost              `json:"cost"`
	EventPhone     string            `json:"eventPhone"`
	EventEmail     string            `json:"eventEmail"`
	EventWebsite   string            `json:"eventWebsite"`
	OrgName        string            `json:"orgName"`
	OrgPhone       string            `json:"orgPhone"`
	OrgEmail       string            `json:"orgEmail"`
	Image          string            `json:"image"`

	Raw json.RawMessage `json:"-"`
}

// DateEntry is one occurrence in a record's dates sequence.
type DateEntry struct {
	StartDateTime string `json:"startDateTime"`
	EndDateTime   string `json:"endDateTime"`
}

// Location is one entry in a record's locations sequence.
type Location struct {
	LocationName string `json:"locationName"`
	Address      string `json:"address"`
}

// CategoryTag is one tagged category object.
type CategoryTag struct {
	Name string `json:"name"`
}

// Cost absorbs the feed's polymorphic cost field: either a breakdown object
// (general admission / adult / from-to range) or a plain scalar. A shape
// that is neither degrades to the zero Cost; the record survives.
type Cost struct {
	GA     domain.FlexNumber
	Adult  domain.FlexNumber
	From   domain.FlexNumber
	To     domain.FlexNumber
	Scalar string
}

func (c *Cost) UnmarshalJSON(data []byte) error {
	*c = Cost{}
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			GA    domain.FlexNumber `json:"ga"`
			Adult domain.FlexNumber `json:"adult"`
			From  domain.FlexNumber `json:"from"`
			To    domain.FlexNumber `json:"to"`
		}
		if err := json.Unmarshal(data, &obj); err == nil {
			c.GA, c.Adult, c.From, c.To = obj.GA, obj.Adult, obj.From, obj.To
		}
		return nil
	}
	var scalar domain.FlexNumber
	if err := json.Unmarshal(data, &scalar); err == nil {
		c.Scalar = scalar.String()
	}
	return nil
}

// recordFields mirrors Record for decoding without recursing into
// Record.UnmarshalJSON.
type recordFields Record

func (r *Record) UnmarshalJSON(data []byte) error {
	var envelope struct {
		CalEvent json.RawMessage `json:"calEvent"`
	}
	inner := data
	if err := json.Unmarshal(data, &envelope); err == nil && len(envelope.CalEvent) > 0 {
		inner = envelope.CalEvent
	}

	var fields recordFields
	if err := json.Unmarshal(inner, &fields); err != nil {
		return err
	}
	*r = Record(fields)
	r.Raw = append(json.RawMessage(nil), data...)
	return nil
}
