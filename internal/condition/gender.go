package condition

import "github.com/gigwork/jobchat/pkg/models"

// Catalog gender eligibility vocabulary.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderAny    = "any"
)

var genderForms = map[string]string{
	"남":      GenderMale,
	"남자":     GenderMale,
	"남성":     GenderMale,
	"male":   GenderMale,
	"여":      GenderFemale,
	"여자":     GenderFemale,
	"여성":     GenderFemale,
	"female": GenderFemale,
	"any":    GenderAny,
	"무관":     GenderAny,
	"성별무관":   GenderAny,
}

// NormalizeGender maps the Korean surface forms the extractor may emit onto
// the catalog vocabulary. Unknown values pass through unchanged; they are
// bound as parameters either way.
func NormalizeGender(v models.Flex) string {
	if v.Empty() {
		return ""
	}
	if canonical, ok := genderForms[v.String()]; ok {
		return canonical
	}
	return v.String()
}
