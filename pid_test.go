package pidsuspend

import (
	"errors"
	"testing"
)

func TestParsePID(t *testing.T) {
	tests := map[string]int{
		"4321":        4321,
		"  7":         7,
		"\t+12":       12,
		"12abc":       12,
		"abc":         0,
		"":            0,
		"0":           0,
		"-5":          -5,
		"- 5":         0,
		"2147483647":  2147483647,
		"2147483648":  0,
		"99999999999": 0,
		"-2147483648": -2147483648,
		"1 2":         1,
	}
	for token, want := range tests {
		if got := ParsePID(token); got != want {
			t.Errorf("ParsePID(%q) = %d, want %d", token, got, want)
		}
	}
}

func TestValidatePID(t *testing.T) {
	for _, token := range []string{"abc", "0", "-1", "", "2147483648"} {
		_, err := ValidatePID(token)
		var invalid *InvalidPIDError
		if !errors.As(err, &invalid) || invalid.Token != token {
			t.Errorf("ValidatePID(%q) error = %v", token, err)
		}
	}

	pid, err := ValidatePID("99999999")
	if err != nil || pid != 99999999 {
		t.Errorf("ValidatePID(99999999) = %d, %v", pid, err)
	}
}
