package condition

import (
	"regexp"
	"strings"
)

// Administrative suffix forms collapsed before prefix comparison. The same
// normalization is applied symmetrically to catalog locations at query time.
var regionReplacer = strings.NewReplacer(
	"특별자치도", "도",
	"특별자치시", "시",
	"특별시", "시",
	"광역시", "시",
)

// Longest leading run of tokens ending in 시/군/도 followed by a space or
// end of string. Captures city/county/province granularity and discards
// finer units such as districts and neighborhoods.
var regionBoundary = regexp.MustCompile(`^(.+[시군도])(\s|$)`)

// NormalizeRegion canonicalizes administrative suffixes. It is idempotent.
func NormalizeRegion(s string) string {
	return regionReplacer.Replace(strings.TrimSpace(s))
}

// RegionPrefix normalizes s and reduces it to the prefix used for
// left-anchored matching. Anything on 제주 collapses to the bare token since
// the island and its city are indistinguishable at this granularity;
// over-matching is the intended resolution.
func RegionPrefix(s string) string {
	norm := NormalizeRegion(s)
	if strings.HasPrefix(norm, "제주") {
		return "제주"
	}
	if m := regionBoundary.FindStringSubmatch(norm); m != nil {
		return m[1]
	}
	// glued input without token boundaries, e.g. 서울시강남구: cut after the
	// last administrative suffix rune
	if idx := strings.LastIndexAny(norm, "시군도"); idx >= 0 {
		return norm[:idx+len("시")]
	}
	return norm
}
