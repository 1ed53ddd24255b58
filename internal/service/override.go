package service

import (
	"errors"
	"strconv"
	"strings"

	"github.com/blue-screen-of-app/internal/model"
)

const (
	minPercentage = 0
	maxPercentage = 100
)

// ApplyOverrides returns rec with the non-empty fields of o substituted in.
// It never fails: a malformed percentage degrades to 0 before clamping.
func ApplyOverrides(rec model.ErrorRecord, o model.Override) model.ErrorRecord {
	if o.Description != "" {
		rec.Description = o.Description
	}
	if o.TechnicalDetail != "" {
		rec.TechnicalDetail = o.TechnicalDetail
	}
	if o.Percentage != nil {
		rec.Percentage = ParsePercentage(*o.Percentage)
	}
	return rec
}

// ParsePercentage reads the leading integer of raw and clamps it to [0, 100].
// Leading whitespace and a sign are accepted, trailing garbage is ignored
// ("12abc" is 12, "3.9" is 3) and anything without leading digits is 0.
func ParsePercentage(raw string) int {
	s := strings.TrimLeft(raw, " \t\r\n")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return minPercentage
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			if s[0] == '-' {
				return minPercentage
			}
			return maxPercentage
		}
		return minPercentage
	}
	return clamp(n, minPercentage, maxPercentage)
}

func clamp(n, lo, hi int) int {
	return max(lo, min(hi, n))
}
