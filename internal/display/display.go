// Package display renders evaluation results for a fixed-width calculator
// display.
package display

import (
	"math"
	"strconv"
	"strings"
)

const (
	// maxFracDigits is how many fractional digits survive in fixed notation.
	maxFracDigits = 10
	// maxPlainLen is the longest fixed-notation rendering allowed before
	// falling back to scientific notation.
	maxPlainLen = 15
	// sciDigits is the number of significant digits in scientific notation.
	sciDigits = 10
)

// ErrorText is what the display shows when a calculation fails.
const ErrorText = "Error"

// Format renders a result for the display. Whole values collapse to integer
// text, fractional values keep at most maxFracDigits digits after the point
// with trailing zeros trimmed, and values too long for the display fall back
// to scientific notation. Non-finite values render as ErrorText.
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrorText
	}
	if v == math.Trunc(v) {
		s := strconv.FormatFloat(v, 'f', 0, 64)
		if len(s) > maxPlainLen {
			return scientific(v)
		}
		return s
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 && len(s)-i-1 > maxFracDigits {
		s = s[:i+1+maxFracDigits]
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if len(s) > maxPlainLen {
		return scientific(v)
	}
	return s
}

func scientific(v float64) string {
	return strconv.FormatFloat(v, 'e', sciDigits-1, 64)
}
