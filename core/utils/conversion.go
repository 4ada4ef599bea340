package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToString converts various types to string. Nil becomes the empty string and
// whole floats (as produced by encoding/json) are printed without a fraction.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Lookup walks a decoded JSON object along a dot separated path ("name.first").
// It reports false when any segment is missing or an intermediate value is not an object.
func Lookup(data map[string]any, path string) (any, bool) {
	if data == nil {
		return nil, false
	}

	var current any = data
	for _, segment := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// StringAt returns the value at path as a string, or def when the path is absent
// or holds null. Objects and arrays are not strings and also yield def.
func StringAt(data map[string]any, path, def string) string {
	val, ok := Lookup(data, path)
	if !ok || val == nil {
		return def
	}
	switch val.(type) {
	case map[string]any, []any:
		return def
	}
	return ToString(val)
}
