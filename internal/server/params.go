package server

import (
	"math"
	"strings"
	"unicode"
)

// parseTaskID reads the leading integer of a path segment the way a lenient
// integer parse does: leading whitespace and a sign are skipped, a 0x prefix
// switches to hex, and parsing stops at the first non-digit. ok is false when
// no digits were found or the value does not fit in an int64.
func parseTaskID(raw string) (id int64, ok bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	base := int64(10)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	var n int64
	digits := 0
	for _, c := range s {
		d := digitValue(c)
		if d < 0 || d >= base {
			break
		}
		if n > (math.MaxInt64-d)/base {
			return 0, false
		}
		n = n*base + d
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if negative {
		n = -n
	}
	return n, true
}

func digitValue(c rune) int64 {
	switch {
	case c >= '0' && c <= '9':
		return int64(c - '0')
	case c >= 'a' && c <= 'f':
		return int64(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int64(c-'A') + 10
	default:
		return -1
	}
}
