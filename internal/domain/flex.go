package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The municipal feed is loose about scalar-vs-array and number-vs-string
// fields. These types absorb both shapes at decode time so the rest of the
// system only ever sees one canonical form. A shape they cannot absorb
// degrades to the zero value instead of failing the record: one odd field
// must never reject a record, let alone a batch.

// StringList decodes from either a JSON string or an array of strings.
// A scalar decodes to a singleton list; anything else decodes to nil.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	*l = nil
	if len(data) > 0 && data[0] == '[' {
		var items []string
		if err := json.Unmarshal(data, &items); err == nil {
			*l = items
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = StringList{s}
	}
	return nil
}

// TextList decodes like StringList but renders as one string: fragments are
// joined with a single space, matching how the source represents multi-part
// descriptions.
type TextList []string

func (t *TextList) UnmarshalJSON(data []byte) error {
	return (*StringList)(t).UnmarshalJSON(data)
}

// Join returns the fragments joined by a single space.
func (t TextList) Join() string {
	return strings.Join(t, " ")
}

// FlexNumber decodes from a JSON number or a numeric string and keeps a
// display form without a trailing ".00" (25 renders as "25", 12.5 as
// "12.5"). Non-scalar shapes decode to the empty value.
type FlexNumber string

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	*n = ""
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			*n = FlexNumber(strings.TrimSpace(s))
		}
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return nil
	}
	if f, err := num.Float64(); err == nil && f == float64(int64(f)) {
		*n = FlexNumber(strconv.FormatInt(int64(f), 10))
		return nil
	}
	*n = FlexNumber(num.String())
	return nil
}

func (n FlexNumber) String() string { return string(n) }

// IsZero reports whether no value was present in the source.
func (n FlexNumber) IsZero() bool { return n == "" }
