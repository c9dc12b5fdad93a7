package condition_test

import (
	"testing"

	"github.com/gigwork/jobchat/internal/condition"
	"github.com/gigwork/jobchat/pkg/models"
)

func TestMerge_ExtractedWinsOnlyWhenNonEmpty(t *testing.T) {
	prior := models.Condition{
		Place:      "서울시",
		HourlyWage: "15000 이상",
		Category:   "서비스",
	}
	extracted := models.Condition{
		Place:    "경기도 수원시",
		WorkDays: "월화",
		// HourlyWage and Category intentionally silent
	}

	merged := condition.Merge(prior, extracted)

	if merged.Place != "경기도 수원시" {
		t.Errorf("Place = %q, want extracted value", merged.Place)
	}
	if merged.WorkDays != "월화" {
		t.Errorf("WorkDays = %q, want extracted value", merged.WorkDays)
	}
	if merged.HourlyWage != "15000 이상" {
		t.Errorf("HourlyWage = %q, silence must keep prior", merged.HourlyWage)
	}
	if merged.Category != "서비스" {
		t.Errorf("Category = %q, silence must keep prior", merged.Category)
	}
}

func TestMerge_EmptyExtractionKeepsPriorIntact(t *testing.T) {
	prior := models.Condition{
		Gender:     "male",
		Age:        "30대",
		Place:      "부산시",
		WorkDays:   "토일",
		StartTime:  "09:00",
		EndTime:    "18:00",
		HourlyWage: "12000",
		Category:   "서비스",
	}

	merged := condition.Merge(prior, models.Condition{})
	if merged != prior {
		t.Errorf("empty extraction changed condition: %+v", merged)
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	prior := models.Condition{Place: "서울시"}
	extracted := models.Condition{Place: "대전시"}

	_ = condition.Merge(prior, extracted)

	if prior.Place != "서울시" || extracted.Place != "대전시" {
		t.Error("Merge mutated its inputs")
	}
}

func TestMerge_WhitespaceCountsAsEmpty(t *testing.T) {
	prior := models.Condition{Place: "서울시"}
	merged := condition.Merge(prior, models.Condition{Place: "   "})
	if merged.Place != "서울시" {
		t.Errorf("whitespace-only extraction replaced prior value: %q", merged.Place)
	}
}
