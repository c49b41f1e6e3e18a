/*
Package isotime handles the ISO-8601 timestamp encoding used at the storage
boundary. Every timestamp that crosses into or out of the database travels as a
string; this package converts in both directions, at two levels:

Scalar level: Format and Parse convert a single time value, and the Time type
applies them on every JSON boundary (request bodies and the translations
column).

Structure level: Encode and Decode walk a JSON-shaped tree (maps, slices,
scalars). Encode converts every embedded time value anywhere in the tree to a
string. Decode is deliberately more conservative: it converts strings in
mapping value positions, but never reinterprets bare strings inside sequences,
so a list of plain strings survives untouched even when an element happens to
look like a timestamp.
*/
package isotime

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layouts accepted by Parse, tried in order. The offset-less forms keep rows
// readable that were written by clients storing naive UTC timestamps.
var parseLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// Format renders t as an ISO-8601 string. UTC times carry the explicit "Z"
// suffix; other locations keep their numeric offset.
func Format(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// Parse reads an ISO-8601 timestamp string. Strings without an offset are
// interpreted as UTC. Bare dates do not parse: a value like "2013-05-15" is
// data, not a timestamp.
func Parse(s string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("isotime: %q is not an ISO-8601 timestamp", s)
}

// Time is a time.Time that marshals to and from the ISO-8601 interchange
// format.
type Time struct {
	time.Time
}

// New wraps a time.Time.
func New(t time.Time) Time {
	return Time{t}
}

// Now returns the current wall-clock time in UTC.
func Now() Time {
	return Time{time.Now().UTC()}
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(Format(t.Time))
}

func (t *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("isotime: timestamp must be a string: %w", err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// Encode returns a structurally identical copy of v with every embedded time
// value rendered as an ISO-8601 string. It recurses through maps and slices;
// all other scalars pass through unchanged.
func Encode(v interface{}) interface{} {
	switch val := v.(type) {
	case time.Time:
		return Format(val)
	case Time:
		return Format(val.Time)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = Encode(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = Encode(item)
		}
		return out
	default:
		return v
	}
}

// Decode returns a structurally identical copy of v with every string in
// mapping value position that parses as an ISO-8601 timestamp converted to a
// time.Time. Strings that fail to parse pass through unchanged. Sequence
// elements are only recursed when they are mappings; bare strings inside
// sequences are never timestamp-parsed. Decode is idempotent: values already
// decoded come back unchanged.
func Decode(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		if t, err := Parse(val); err == nil {
			return t
		}
		return val
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = Decode(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			if m, ok := item.(map[string]interface{}); ok {
				out[i] = Decode(m)
			} else {
				out[i] = item
			}
		}
		return out
	default:
		return v
	}
}
