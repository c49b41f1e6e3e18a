package isotime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatUTC(t *testing.T) {
	ts := time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "2023-01-15T10:30:00Z", Format(ts))
}

func TestFormatKeepsOffset(t *testing.T) {
	ts := time.Date(2023, 1, 15, 10, 30, 0, 0, time.FixedZone("", 2*60*60))

	assert.Equal(t, "2023-01-15T10:30:00+02:00", Format(ts))
}

func TestFormatFractionalSeconds(t *testing.T) {
	ts := time.Date(2023, 1, 15, 10, 30, 0, 500000000, time.UTC)

	// Trailing zeros in the fraction are not emitted
	assert.Equal(t, "2023-01-15T10:30:00.5Z", Format(ts))
}

func TestParseWithOffset(t *testing.T) {
	parsed, err := Parse("2023-01-15T10:30:00+02:00")

	assert.NoError(t, err)
	assert.True(t, parsed.Equal(time.Date(2023, 1, 15, 8, 30, 0, 0, time.UTC)))
	_, offset := parsed.Zone()
	assert.Equal(t, 2*60*60, offset)
}

func TestParseZuluSuffix(t *testing.T) {
	parsed, err := Parse("2023-01-15T10:30:00Z")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC), parsed)
}

func TestParseNaiveAssumesUTC(t *testing.T) {
	// Strings without an offset come from clients that stored naive UTC timestamps
	parsed, err := Parse("2023-01-15T10:30:00")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC), parsed)
}

func TestParseSpaceSeparator(t *testing.T) {
	parsed, err := Parse("2023-01-15 10:30:00.123456")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 15, 10, 30, 0, 123456000, time.UTC), parsed)
}

func TestParseRejectsBareDate(t *testing.T) {
	// A date without a time-of-day is data, not a timestamp
	_, err := Parse("2013-05-15")

	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("hello.world")

	assert.Error(t, err)
}

func TestParseRejectsEmptyString(t *testing.T) {
	_, err := Parse("")

	assert.Error(t, err)
}

func TestFormatParseRoundTrip(t *testing.T) {
	ts := time.Date(2023, 6, 1, 23, 59, 59, 987654321, time.UTC)

	parsed, err := Parse(Format(ts))

	assert.NoError(t, err)
	assert.Equal(t, ts, parsed)
}

func TestTimeMarshalJSON(t *testing.T) {
	ts := New(time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC))

	data, err := json.Marshal(ts)

	assert.NoError(t, err)
	assert.Equal(t, `"2023-01-15T10:30:00Z"`, string(data))
}

func TestTimeUnmarshalJSON(t *testing.T) {
	var ts Time

	err := json.Unmarshal([]byte(`"2023-01-15T10:30:00Z"`), &ts)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC), ts.Time)
}

func TestTimeUnmarshalNaive(t *testing.T) {
	var ts Time

	err := json.Unmarshal([]byte(`"2023-01-15T10:30:00"`), &ts)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC), ts.Time)
}

func TestTimeUnmarshalNullIsNoop(t *testing.T) {
	var ts Time

	err := json.Unmarshal([]byte(`null`), &ts)

	assert.NoError(t, err)
	assert.True(t, ts.IsZero())
}

func TestTimeUnmarshalRejectsNumber(t *testing.T) {
	var ts Time

	err := json.Unmarshal([]byte(`1673778600`), &ts)

	assert.Error(t, err)
}

func TestTimeUnmarshalRejectsBadString(t *testing.T) {
	var ts Time

	err := json.Unmarshal([]byte(`"not a timestamp"`), &ts)

	assert.Error(t, err)
}

func TestEncodeConvertsNestedTimes(t *testing.T) {
	ts := time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC)
	input := map[string]interface{}{
		"greeting": map[string]interface{}{
			"value":      "Hello",
			"updated_at": ts,
		},
		"count": 3,
	}

	encoded := Encode(input)

	expected := map[string]interface{}{
		"greeting": map[string]interface{}{
			"value":      "Hello",
			"updated_at": "2023-01-15T10:30:00Z",
		},
		"count": 3,
	}
	assert.Equal(t, expected, encoded)
}

func TestEncodeConvertsSliceElements(t *testing.T) {
	ts := time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC)
	input := []interface{}{ts, "plain", 42, []interface{}{ts}}

	encoded := Encode(input)

	expected := []interface{}{"2023-01-15T10:30:00Z", "plain", 42, []interface{}{"2023-01-15T10:30:00Z"}}
	assert.Equal(t, expected, encoded)
}

func TestEncodeWrappedTime(t *testing.T) {
	ts := New(time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC))

	assert.Equal(t, "2023-01-15T10:30:00Z", Encode(ts))
}

func TestEncodePassesScalarsThrough(t *testing.T) {
	assert.Equal(t, 42, Encode(42))
	assert.Equal(t, true, Encode(true))
	assert.Equal(t, "plain", Encode("plain"))
	assert.Nil(t, Encode(nil))
}

func TestDecodeConvertsMapValues(t *testing.T) {
	input := map[string]interface{}{
		"updated_at": "2023-01-15T10:30:00Z",
		"value":      "Hello",
		"count":      3,
	}

	decoded := Decode(input)

	expected := map[string]interface{}{
		"updated_at": time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC),
		"value":      "Hello",
		"count":      3,
	}
	assert.Equal(t, expected, decoded)
}

func TestDecodeRecursesNestedMaps(t *testing.T) {
	input := map[string]interface{}{
		"translations": map[string]interface{}{
			"en": map[string]interface{}{
				"value":      "Hello",
				"updated_at": "2023-01-15T10:30:00Z",
			},
		},
	}

	decoded := Decode(input)

	expected := map[string]interface{}{
		"translations": map[string]interface{}{
			"en": map[string]interface{}{
				"value":      "Hello",
				"updated_at": time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC),
			},
		},
	}
	assert.Equal(t, expected, decoded)
}

func TestDecodeLeavesSequenceStringsAlone(t *testing.T) {
	// Strings inside a list are never reinterpreted, even when they would parse
	input := []interface{}{"2023-01-15T10:30:00Z", "plain"}

	decoded := Decode(input)

	assert.Equal(t, []interface{}{"2023-01-15T10:30:00Z", "plain"}, decoded)
}

func TestDecodeRecursesMapsInsideSequences(t *testing.T) {
	input := []interface{}{
		map[string]interface{}{"updated_at": "2023-01-15T10:30:00Z"},
		"2023-01-15T10:30:00Z",
	}

	decoded := Decode(input)

	expected := []interface{}{
		map[string]interface{}{"updated_at": time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC)},
		"2023-01-15T10:30:00Z",
	}
	assert.Equal(t, expected, decoded)
}

func TestDecodeIsIdempotent(t *testing.T) {
	input := map[string]interface{}{
		"updated_at": "2023-01-15T10:30:00Z",
		"value":      "Hello",
	}

	once := Decode(input)
	twice := Decode(once)

	assert.Equal(t, once, twice)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := map[string]interface{}{
		"en": map[string]interface{}{
			"value":      "Hello",
			"updated_at": time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC),
			"updated_by": "reviewer@example.com",
		},
	}

	assert.Equal(t, original, Decode(Encode(original)))
}
