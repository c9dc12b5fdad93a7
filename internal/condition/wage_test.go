package condition_test

import (
	"errors"
	"testing"

	"github.com/gigwork/jobchat/internal/condition"
	"github.com/gigwork/jobchat/pkg/models"
)

func TestWageFloor(t *testing.T) {
	tests := []struct {
		in     models.Flex
		floor  int64
		ok     bool
		hasErr bool
	}{
		{"20000 이상", 20000, true, false},
		{"20000", 20000, true, false},
		{"₩18,000", 18000, true, false},
		{"시급 12000원", 12000, true, false},
		{"15000 이하", 15000, true, false}, // comparator accepted, matching stays >=
		{"", 0, false, false},
		{"이상", 0, false, false}, // no digits at all: no constraint
		{"999999999999999999999999", 0, false, true},
	}
	for _, tt := range tests {
		floor, ok, err := condition.WageFloor(tt.in)
		if (err != nil) != tt.hasErr {
			t.Errorf("WageFloor(%q) err = %v, want error %v", tt.in, err, tt.hasErr)
			continue
		}
		if err != nil {
			var verr *condition.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("WageFloor(%q) error is %T, want *ValidationError", tt.in, err)
			}
			continue
		}
		if floor != tt.floor || ok != tt.ok {
			t.Errorf("WageFloor(%q) = (%d, %v), want (%d, %v)", tt.in, floor, ok, tt.floor, tt.ok)
		}
	}
}
