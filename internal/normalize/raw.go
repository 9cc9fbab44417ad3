// Package normalize converts heterogeneous scraper output into the uniform
// Post schema. Upstream actors disagree on field names and timestamp
// formats, so every logical field is resolved through an ordered alias list
// with an explicit default.
package normalize

import (
	"fmt"
	"strconv"
)

// RawItem is one upstream record of unknown shape.
type RawItem map[string]any

// asRawItem validates that a decoded upstream value is a JSON object.
func asRawItem(v any) (RawItem, error) {
	switch item := v.(type) {
	case RawItem:
		return item, nil
	case map[string]any:
		return RawItem(item), nil
	default:
		return nil, fmt.Errorf("upstream item is not an object (got %T)", v)
	}
}

// stringField resolves the first alias present in the item to a string.
// Numeric values are stringified; absent fields yield "".
func stringField(item RawItem, aliases ...string) string {
	for _, key := range aliases {
		v, ok := item[key]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case string:
			if val != "" {
				return val
			}
		case float64:
			// JSON numbers decode to float64; post IDs are integral
			return strconv.FormatFloat(val, 'f', -1, 64)
		case int:
			return strconv.Itoa(val)
		case int64:
			return strconv.FormatInt(val, 10)
		}
	}
	return ""
}

// intField resolves the first alias present in the item to a non-negative
// integer count. Absent or unusable fields yield 0.
func intField(item RawItem, aliases ...string) int {
	for _, key := range aliases {
		v, ok := item[key]
		if !ok || v == nil {
			continue
		}
		var n int
		switch val := v.(type) {
		case float64:
			n = int(val)
		case int:
			n = val
		case int64:
			n = int(val)
		case string:
			parsed, err := strconv.Atoi(val)
			if err != nil {
				continue
			}
			n = parsed
		default:
			continue
		}
		if n < 0 {
			return 0
		}
		return n
	}
	return 0
}

// objectField resolves an alias to a nested JSON object, or nil.
func objectField(item RawItem, key string) RawItem {
	if v, ok := item[key]; ok {
		if obj, ok := v.(map[string]any); ok {
			return RawItem(obj)
		}
	}
	return nil
}

// listField resolves an alias to a JSON array, or nil.
func listField(item RawItem, key string) []any {
	if v, ok := item[key]; ok {
		if list, ok := v.([]any); ok {
			return list
		}
	}
	return nil
}
