package condition

import (
	"strconv"
	"strings"

	"github.com/gigwork/jobchat/pkg/models"
)

// WageFloor parses a possibly decorated wage value ("20000 이상", "₩18,000")
// into an integer floor. Comparator words such as 이하/초과/미만 are accepted
// by the extraction schema but matching is uniformly "wage >= floor"; that is
// the authoritative behavior, not a gap. A value with no digits at all
// imposes no constraint. ok reports whether a floor was produced.
func WageFloor(v models.Flex) (floor int64, ok bool, err error) {
	if v.Empty() {
		return 0, false, nil
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, v.String())

	if digits == "" {
		return 0, false, nil
	}

	floor, perr := strconv.ParseInt(digits, 10, 64)
	if perr != nil {
		return 0, false, &ValidationError{Field: "hourly_wage", Reason: "not a usable amount: " + v.String()}
	}
	return floor, true, nil
}
