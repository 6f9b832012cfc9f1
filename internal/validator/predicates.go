package validator

import (
	"encoding/json"
	"math"
	"time"
)

// Required fails for absent fields. JSON null is treated as absent.
func Required(value any) bool {
	return value != nil
}

// IsString reports whether value is a string.
func IsString(value any) bool {
	_, ok := value.(string)
	return ok
}

// IsNumber reports whether value is a JSON number. Numeric strings are not numbers.
func IsNumber(value any) bool {
	_, ok := toFloat(value)
	return ok
}

// IsInteger reports whether value is a number without a fractional part.
func IsInteger(value any) bool {
	f, ok := toFloat(value)
	return ok && f == math.Trunc(f)
}

// NonNegative reports whether value is a number >= 0.
func NonNegative(value any) bool {
	f, ok := toFloat(value)
	return ok && f >= 0
}

// FitsInt32 reports whether value is a number within the range of a 32-bit integer column.
func FitsInt32(value any) bool {
	f, ok := toFloat(value)
	return ok && f >= math.MinInt32 && f <= math.MaxInt32
}

// Between returns a predicate accepting numbers in [min, max].
func Between(lo, hi float64) func(any) bool {
	return func(value any) bool {
		f, ok := toFloat(value)
		return ok && f >= lo && f <= hi
	}
}

// YearSince returns a predicate accepting years from first up to the current year.
// The current year is read at check time.
func YearSince(first int) func(any) bool {
	return func(value any) bool {
		f, ok := toFloat(value)
		return ok && f >= float64(first) && f <= float64(time.Now().Year())
	}
}

// NonEmptyString reports whether value is a string with at least one character.
func NonEmptyString(value any) bool {
	s, ok := value.(string)
	return ok && s != ""
}

// ISO4217 reports whether value is a string of exactly three uppercase ASCII
// letters. Only the syntax is checked, not membership in the ISO registry.
func ISO4217(value any) bool {
	s, ok := value.(string)
	if !ok || len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
