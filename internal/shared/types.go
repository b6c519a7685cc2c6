// Package shared holds small cross-domain types so the four entity domains do
// not import each other.
package shared

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// OptionalString is a JSON string field that remembers whether it appeared in
// the payload at all. Partial updates need the three-way distinction between
// absent (keep the stored value), explicit null/empty (clear) and a value.
// Decoding never fails: a non-string value marks the field invalid so the
// domain validator can report it with the proper message.
type OptionalString struct {
	Present bool
	Null    bool
	Invalid bool
	Value   string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(data, []byte("null")) {
		o.Null = true
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		o.Invalid = true
	}
	return nil
}

// Trimmed returns the value with surrounding whitespace removed.
func (o OptionalString) Trimmed() string {
	return strings.TrimSpace(o.Value)
}

// Empty reports whether the field is null, invalid or blank after trimming.
// An absent field is also Empty; callers check Present first.
func (o OptionalString) Empty() bool {
	return o.Null || o.Invalid || o.Trimmed() == ""
}

// OptionalInt is a JSON integer field with the same presence tracking as
// OptionalString. It coerces numeric strings ("2001") the way the public
// contract requires; anything else marks the field invalid.
type OptionalInt struct {
	Present bool
	Null    bool
	Invalid bool
	Value   int
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(data, []byte("null")) {
		o.Null = true
		return nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		o.Invalid = true
		return nil
	}

	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			o.Invalid = true
			return nil
		}
		o.Value = int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			o.Invalid = true
			return nil
		}
		o.Value = n
	default:
		o.Invalid = true
	}
	return nil
}

// Usable reports whether the field carries a parseable non-null value.
func (o OptionalInt) Usable() bool {
	return o.Present && !o.Null && !o.Invalid
}
