package request

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexBool accepts JSON booleans, numbers and the string sentinels sent by the
// survey form. Unknown values decode as false rather than failing the request.
type FlexBool bool

// FlexNumber accepts JSON numbers and numeric strings. Unknown or non-finite
// values decode as 0.
type FlexNumber float64

var truthy = map[string]bool{
	"true":            true,
	"yes":             true,
	"y":               true,
	"1":               true,
	"on":              true,
	"change_location": true,
	"yes_include":     true,
}

// ParseFlexBool interprets a form or query value.
func ParseFlexBool(raw string) bool {
	return truthy[strings.ToLower(strings.TrimSpace(raw))]
}

// ParseFlexNumber interprets a form or query value.
func ParseFlexNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("true")):
		*b = true
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*b = false
			return nil
		}
		*b = FlexBool(ParseFlexBool(s))
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err == nil {
			*b = n != 0
			return nil
		}
		*b = false
	}
	return nil
}

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = 0
			return nil
		}
		*n = FlexNumber(ParseFlexNumber(s))
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*n = 0
		return nil
	}
	*n = FlexNumber(v)
	return nil
}

func (n FlexNumber) Float64() float64 {
	return float64(n)
}
