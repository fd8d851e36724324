package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexString is a text value that also accepts JSON numbers and booleans.
// Form posts send "40" while imports send 40; both are stored as "40".
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*f = FlexString(strconv.FormatBool(b))
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("unsupported value %s", data)
		}
		*f = FlexString(n.String())
	}
	return nil
}

// String returns the raw text.
func (f FlexString) String() string {
	return string(f)
}

// IsEmpty reports whether the value is blank after trimming.
func (f FlexString) IsEmpty() bool {
	return strings.TrimSpace(string(f)) == ""
}

// Int parses the value as an integer.
func (f FlexString) Int() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(string(f)))
	return n, err == nil
}

// Float parses the value as a float, ignoring thousands separators.
func (f FlexString) Float() (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(string(f)), ",", "")
	n, err := strconv.ParseFloat(s, 64)
	return n, err == nil
}

// Truthy reports "yes"/"true"/"1" style answers.
func (f FlexString) Truthy() bool {
	switch strings.ToLower(strings.TrimSpace(string(f))) {
	case "yes", "y", "true", "1":
		return true
	}
	return false
}
