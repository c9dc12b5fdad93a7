package condition

import "strings"

var dayTokens = map[rune]bool{'월': true, '화': true, '수': true, '목': true, '금': true, '토': true, '일': true}

// DaySet expands a work-day value into individual day tokens. Both the
// comma-separated form ("월,화") and the contiguous form ("월화수") are
// accepted; anything that is not a weekday token is dropped. Duplicates
// collapse, first occurrence order is kept.
func DaySet(s string) []string {
	var out []string
	seen := make(map[string]bool, 7)
	for _, part := range strings.Split(s, ",") {
		for _, r := range strings.TrimSpace(part) {
			if !dayTokens[r] {
				continue
			}
			d := string(r)
			if !seen[d] {
				seen[d] = true
				out = append(out, d)
			}
		}
	}
	return out
}

// DaysOverlap reports whether any requested day is offered. The match is
// deliberately "any day", not "all days": a posting covering 월/수/금
// satisfies a request for 월화.
func DaysOverlap(requested, offered []string) bool {
	for _, r := range requested {
		for _, o := range offered {
			if r == o {
				return true
			}
		}
	}
	return false
}
