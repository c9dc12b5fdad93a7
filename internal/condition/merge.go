package condition

import "github.com/gigwork/jobchat/pkg/models"

// Merge combines a prior condition with newly extracted fields. An extracted
// value wins only when non-empty; extraction staying silent on a field never
// drops the prior value. Both inputs are left untouched.
func Merge(prior, extracted models.Condition) models.Condition {
	merged := prior
	pick(&merged.Gender, extracted.Gender)
	pick(&merged.Age, extracted.Age)
	pick(&merged.Place, extracted.Place)
	pick(&merged.WorkDays, extracted.WorkDays)
	pick(&merged.StartTime, extracted.StartTime)
	pick(&merged.EndTime, extracted.EndTime)
	pick(&merged.HourlyWage, extracted.HourlyWage)
	pick(&merged.Category, extracted.Category)
	pick(&merged.Requirements, extracted.Requirements)
	return merged
}

func pick(dst *models.Flex, v models.Flex) {
	if !v.Empty() {
		*dst = v
	}
}
