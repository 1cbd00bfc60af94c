// Package quantity parses the free-form dose strings users type into reminders,
// such as "2", "1.5" or "1/2".
package quantity

import (
	"strconv"
	"strings"
	"unicode"
)

// Parse returns the numeric value of a dose string. Simple fractions "a/b" are
// divided out. Anything else is read as a leading decimal number, so "2 tablets"
// is 2. Unparseable input yields 0.
func Parse(s string) float64 {
	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) == 2 {
			num, okNum := leadingFloat(parts[0])
			den, okDen := leadingFloat(parts[1])
			if okNum && okDen && den != 0 {
				return num / den
			}
		}
	}
	v, ok := leadingFloat(s)
	if !ok {
		return 0
	}
	return v
}

// leadingFloat reads the longest decimal prefix of s after leading whitespace.
func leadingFloat(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	// exponent, only if followed by at least one digit
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		if exp < len(s) && isDigit(s[exp]) {
			for exp < len(s) && isDigit(s[exp]) {
				exp++
			}
			end = exp
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
