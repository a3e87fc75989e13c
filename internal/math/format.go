package math

import (
	"strconv"
	"strings"
)

// Format formats a float with 4 decimal digits.
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}

// FormatVector formats every element of the vector and joins them with a comma.
func FormatVector(v []float64) string {
	s := make([]string, len(v))
	for i, f := range v {
		s[i] = Format(f)
	}
	return strings.Join(s, ",")
}
