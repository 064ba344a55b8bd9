package httpapi

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// OptionalNumber accepts a JSON number, a numeric string, an empty string,
// or null. Zero and empty collapse to absent, matching the original API's
// treatment of falsy values.
type OptionalNumber struct {
	value *float64
}

func (n *OptionalNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		n.value = nil
		return nil
	}
	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("invalid number: %s", raw)
		}
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			n.value = nil
			return nil
		}
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid number: %s", raw)
	}
	if parsed == 0 {
		n.value = nil
		return nil
	}
	n.value = &parsed
	return nil
}

func (n OptionalNumber) Float() *float64 {
	return n.value
}

// Int rejects fractional values rather than truncating them.
func (n OptionalNumber) Int() (*int, error) {
	if n.value == nil {
		return nil, nil
	}
	if *n.value != math.Trunc(*n.value) {
		return nil, fmt.Errorf("not a whole number: %v", *n.value)
	}
	v := int(*n.value)
	return &v, nil
}

// parseDate accepts RFC 3339 timestamps and bare YYYY-MM-DD dates.
func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		parsed = parsed.UTC()
		return &parsed, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %s", raw)
	}
	parsed = parsed.UTC()
	return &parsed, nil
}

func parseInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

// optionalString trims and nils out empty strings.
func optionalString(raw *string) *string {
	if raw == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
