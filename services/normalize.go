package services

import (
	"math"
	"strconv"
	"strings"
)

// NormalizeKey trims and lower-cases a key for case/whitespace-insensitive
// matching of dynamic-parameter keys, schema field names and building types.
// An empty result never matches anything.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ToNumber attempts to read v as a finite float64. Strings may carry
// whitespace, thousands separators and decimal commas ("1 250,50").
// The second return value is false when no finite number can be extracted;
// malformed input is treated as absent, never as an error.
func ToNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		cleaned := strings.Map(func(r rune) rune {
			switch r {
			case ' ', '\t', ' ', ' ':
				return -1
			}
			return r
		}, n)
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
		if cleaned == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		return finite(parsed)
	default:
		return 0, false
	}
}

// ToPositiveNumber is ToNumber restricted to values strictly greater than zero.
func ToPositiveNumber(v any) (float64, bool) {
	n, ok := ToNumber(v)
	if !ok || n <= 0 {
		return 0, false
	}
	return n, true
}

func finite(n float64) (float64, bool) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
