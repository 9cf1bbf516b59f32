package preview

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// IsNumeric reports whether s, once trimmed, is entirely a numeric literal
// the way a browser's Number() reads it: decimals with optional sign and
// exponent, Infinity, and 0x/0o/0b integers. NaN and digit separators are
// not numbers.
func IsNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, "_") {
		return false
	}
	switch s {
	case "Infinity", "+Infinity", "-Infinity":
		return true
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") {
		return false
	}
	if isPrefixedInt(lower) {
		_, err := strconv.ParseUint(lower, 0, 64)
		return err == nil || errors.Is(err, strconv.ErrRange)
	}
	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "+0x") || strings.HasPrefix(lower, "-0x") {
		return false // hex floats
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.Is(err, strconv.ErrRange)
	}
	return !math.IsNaN(f)
}

func isPrefixedInt(s string) bool {
	return len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'o' || s[1] == 'b')
}
