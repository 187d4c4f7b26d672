// Package convert holds the value coercion helpers shared by
// transformations and loaders. Extractors produce loosely typed values
// (strings from CSV cells, []byte from SQL drivers, numbers from JSON);
// these helpers settle them into the type a mapping asks for.
package convert

import (
	"fmt"
	"strconv"
	"time"
)

// timeFormats are tried in order when parsing a datetime without an
// explicit format.
var timeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ToString renders any value as a string. Nil stays nil-like: it becomes
// the empty string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToInt coerces numeric and textual values to an int64.
func ToInt(val any) (int64, error) {
	switch v := val.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	case float32:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	case []byte:
		return strconv.ParseInt(string(v), 10, 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to int", val)
	}
}

// ToFloat coerces numeric and textual values to a float64.
func ToFloat(val any) (float64, error) {
	switch v := val.(type) {
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		return strconv.ParseFloat(v, 64)
	case []byte:
		return strconv.ParseFloat(string(v), 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to float", val)
	}
}

// ToTime parses a datetime value. When format is empty a list of common
// layouts is tried in order.
func ToTime(val any, format string) (time.Time, error) {
	switch v := val.(type) {
	case time.Time:
		return v, nil
	case []byte:
		return ToTime(string(v), format)
	case string:
		if format != "" {
			return time.Parse(format, v)
		}
		for _, layout := range timeFormats {
			if t, err := time.Parse(layout, v); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unable to parse datetime %q", v)
	default:
		return time.Time{}, fmt.Errorf("cannot convert %T to time", val)
	}
}
