package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ID is an integer identifier as delivered by the API. Null, missing or
// non-integral values decode to an invalid ID instead of failing the whole
// payload; callers skip invalid IDs when building lookups.
type ID struct {
	Value int64
	Valid bool
}

func NewID(v int64) ID { return ID{Value: v, Valid: true} }

// ParseID parses a decimal identifier such as a CLI argument or route var.
func ParseID(s string) (ID, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return ID{}, false
	}
	return NewID(n), true
}

func (id ID) String() string {
	if !id.Valid {
		return ""
	}
	return strconv.FormatInt(id.Value, 10)
}

func (id *ID) UnmarshalJSON(b []byte) error {
	*id = ID{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		if v == float64(int64(v)) {
			*id = NewID(int64(v))
		}
	case string:
		if parsed, ok := ParseID(v); ok {
			*id = parsed
		}
	}
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	if !id.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(id.Value, 10)), nil
}
