package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decodeList accepts either a bare JSON array or an object whose "results"
// field holds the array. Any other shape decodes to an empty list.
func decodeList[T any](raw []byte) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []T{}, nil
	}

	switch raw[0] {
	case '[':
		return decodeArray[T](raw)
	case '{':
		var env struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(raw, &env); err != nil {
			return []T{}, nil
		}
		results := bytes.TrimSpace(env.Results)
		if len(results) == 0 || results[0] != '[' {
			return []T{}, nil
		}
		return decodeArray[T](results)
	default:
		return []T{}, nil
	}
}

func decodeArray[T any](raw []byte) ([]T, error) {
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode list: %w", err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
