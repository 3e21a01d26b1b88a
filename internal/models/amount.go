package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Amount is a decimal quantity as returned by the backend. The backend
// serializes DECIMAL columns inconsistently (sometimes a JSON number,
// sometimes a quoted string), so Amount accepts both and decodes anything
// unparsable as zero. It never holds NaN or an infinity.
type Amount float64

// ParseAmount converts a raw string to an Amount, defaulting to zero for
// empty or non-numeric input.
func ParseAmount(s string) Amount {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return Amount(v)
}

// Float returns the amount as a float64.
func (a Amount) Float() float64 {
	return float64(a)
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = 0
			return nil
		}
		*a = ParseAmount(s)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*a = 0
		return nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	*a = Amount(v)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}
