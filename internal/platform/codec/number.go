// Package codec holds tolerant JSON scalar types used at the persistence
// mapping boundary. Backends and older client payloads sometimes deliver
// numeric columns as quoted strings; these types coerce instead of failing
// so that a malformed fee or quantity becomes zero rather than NaN or a
// rejected row.
package codec

import (
	"bytes"
	"strconv"
)

// Number is a float64 that unmarshals from a JSON number, a quoted number,
// or null. Anything unparsable decodes to 0.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number(parseFloat(data))
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(n), 'f', -1, 64)), nil
}

// Float64 returns the plain float value.
func (n Number) Float64() float64 { return float64(n) }

// Int is an int that unmarshals from a JSON number, a quoted number, or
// null. Fractions are truncated; anything unparsable decodes to 0.
type Int int

// UnmarshalJSON implements json.Unmarshaler.
func (i *Int) UnmarshalJSON(data []byte) error {
	*i = Int(parseFloat(data))
	return nil
}

// MarshalJSON implements json.Marshaler.
func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(i))), nil
}

// Int returns the plain int value.
func (i Int) Int() int { return int(i) }

func parseFloat(data []byte) float64 {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
