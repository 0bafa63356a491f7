package ansi

import "strings"

var truthy = map[string]bool{
	"yes":  true,
	"on":   true,
	"1":    true,
	"true": true,
}

// ToBool coerces a loosely typed setting into a boolean.
//
// Strings are true when they match yes, on, 1 or true case-insensitively.
// Integers are true only when they equal 1; 0, 2 and -1 are all false.
// nil and every other type are false.
func ToBool(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return truthy[strings.ToLower(val)]
	case int:
		return val == 1
	case int8:
		return val == 1
	case int16:
		return val == 1
	case int32:
		return val == 1
	case int64:
		return val == 1
	case uint:
		return val == 1
	case uint8:
		return val == 1
	case uint16:
		return val == 1
	case uint32:
		return val == 1
	case uint64:
		return val == 1
	default:
		return false
	}
}
