package condition_test

import (
	"reflect"
	"testing"

	"github.com/gigwork/jobchat/internal/condition"
)

func TestDaySet(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"월화", []string{"월", "화"}},
		{"월,화,수", []string{"월", "화", "수"}},
		{"월, 화 , 수", []string{"월", "화", "수"}},
		{"월요일", []string{"월", "일"}}, // 일 is itself a day token
		{"월월화", []string{"월", "화"}},
		{"", nil},
		{"평일", nil}, // no recognizable tokens
	}
	for _, tt := range tests {
		if got := condition.DaySet(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("DaySet(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDaysOverlap(t *testing.T) {
	weekdays := []string{"월", "화", "수", "목", "금"}

	if !condition.DaysOverlap([]string{"월", "화"}, []string{"월", "수", "금"}) {
		t.Error("월화 vs 월수금 should overlap")
	}
	if condition.DaysOverlap([]string{"토", "일"}, weekdays) {
		t.Error("토일 vs weekdays should not overlap")
	}
	if condition.DaysOverlap(nil, weekdays) {
		t.Error("empty request never overlaps")
	}
	if condition.DaysOverlap([]string{"월"}, nil) {
		t.Error("empty offering never overlaps")
	}
}
