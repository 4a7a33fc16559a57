package pidsuspend

import "math"

// ParsePID converts token the way atoi(3) does: leading whitespace and one
// sign are skipped, digits are read up to the first non-digit, and anything
// else yields 0. Values that do not fit a pid_t also yield 0.
//
// The caller cannot tell "abc" from "0"; both are rejected as invalid.
func ParsePID(token string) int {
	i := 0
	for i < len(token) && isSpace(token[i]) {
		i++
	}

	neg := false
	if i < len(token) && (token[i] == '+' || token[i] == '-') {
		neg = token[i] == '-'
		i++
	}

	var n int64
	for ; i < len(token) && token[i] >= '0' && token[i] <= '9'; i++ {
		n = n*10 + int64(token[i]-'0')
		if n > math.MaxInt32+1 {
			return 0
		}
	}
	if neg {
		n = -n
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0
	}
	return int(n)
}

// ValidatePID parses token and rejects non-positive identifiers.
func ValidatePID(token string) (int, error) {
	pid := ParsePID(token)
	if pid <= 0 {
		return 0, &InvalidPIDError{Token: token}
	}
	return pid, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
