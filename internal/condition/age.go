package condition

import (
	"regexp"
	"strconv"

	"github.com/gigwork/jobchat/pkg/models"
)

var decadeRe = regexp.MustCompile(`^([0-9]+)대`)

// AgeBucket maps an age value to its decade bracket: 25 becomes "20대",
// "30대 초반" keeps its leading "30대", "40대" passes through. An empty value
// returns "", meaning no constraint.
func AgeBucket(v models.Flex) (string, error) {
	if v.Empty() {
		return "", nil
	}

	s := v.String()
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return "", &ValidationError{Field: "age", Reason: "negative age"}
		}
		return strconv.Itoa(n/10*10) + "대", nil
	}

	if m := decadeRe.FindStringSubmatch(s); m != nil {
		return m[1] + "대", nil
	}

	return "", &ValidationError{Field: "age", Reason: "not an age or bracket: " + s}
}
