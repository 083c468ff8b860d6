package types

import (
	"fmt"
	"time"
)

// takeString pops a string value from m. A missing or nil value yields the
// empty string; a value of any other type is a validation error.
func takeString(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		delete(m, key)
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q must be a string", ErrValidation, key)
	}
	delete(m, key)
	return s, nil
}

// takeBool pops a boolean value from m, accepting bools and the integer
// forms SQLite hands back for boolean columns.
func takeBool(m map[string]any, key string) (bool, error) {
	v, ok := m[key]
	if !ok || v == nil {
		delete(m, key)
		return false, nil
	}
	delete(m, key)
	switch b := v.(type) {
	case bool:
		return b, nil
	case int64:
		return b != 0, nil
	case float64:
		return b != 0, nil
	default:
		return false, fmt.Errorf("%w: field %q must be a boolean", ErrValidation, key)
	}
}

// takeTime pops a timestamp from m, accepting time.Time or an RFC 3339
// string. A missing or nil value yields the zero time.
func takeTime(m map[string]any, key string) (time.Time, error) {
	v, ok := m[key]
	if !ok || v == nil {
		delete(m, key)
		return time.Time{}, nil
	}
	delete(m, key)
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: field %q: %v", ErrValidation, key, err)
		}
		return parsed, nil
	default:
		return time.Time{}, fmt.Errorf("%w: field %q must be a timestamp", ErrValidation, key)
	}
}

// takeLabels pops the "labels" key from m as a name→value map. Nil-valued
// entries are dropped here; they only carry meaning in update patches, where
// the store interprets them as label deletions.
func takeLabels(m map[string]any) (map[string]string, error) {
	v, ok := m["labels"]
	if !ok || v == nil {
		delete(m, "labels")
		return nil, nil
	}
	delete(m, "labels")
	switch lv := v.(type) {
	case map[string]string:
		out := make(map[string]string, len(lv))
		for k, s := range lv {
			out[k] = s
		}
		return out, nil
	case map[string]any:
		out := make(map[string]string, len(lv))
		for k, raw := range lv {
			if raw == nil {
				continue
			}
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("%w: label %q must be a string", ErrValidation, k)
			}
			out[k] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: labels must be a name/value map", ErrValidation)
	}
}
