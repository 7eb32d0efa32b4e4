package models

import (
	"bytes"
	"encoding/json"
)

// OptionalString is a nullable field that also remembers whether it was
// present at all: absent keeps the current value, null clears it.
type OptionalString struct {
	Set   bool
	Value *string
}

// SetString returns a present, non-null value.
func SetString(s string) OptionalString {
	return OptionalString{Set: true, Value: &s}
}

// ClearedString returns a present null.
func ClearedString() OptionalString {
	return OptionalString{Set: true}
}

func (o *OptionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	o.Value = nil
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
