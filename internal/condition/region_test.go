package condition_test

import (
	"testing"

	"github.com/gigwork/jobchat/internal/condition"
)

func TestNormalizeRegion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"서울특별시", "서울시"},
		{"부산광역시", "부산시"},
		{"강원특별자치도", "강원도"},
		{"세종특별자치시", "세종시"},
		{"제주특별자치도", "제주도"},
		{"경기도", "경기도"},
		{"  서울특별시  ", "서울시"},
	}
	for _, tt := range tests {
		if got := condition.NormalizeRegion(tt.in); got != tt.want {
			t.Errorf("NormalizeRegion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRegionPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"서울특별시 강남구", "서울시"},
		{"서울특별시강남구", "서울시"}, // glued, no token boundary
		{"경기도 수원시 권선구", "경기도 수원시"},
		{"경기도 수원시", "경기도 수원시"},
		{"부산광역시 해운대구", "부산시"},
		{"제주특별자치도 제주시", "제주"},
		{"제주시 애월읍", "제주"},
		{"강남구 역삼동", "강남구 역삼동"}, // no 시/군/도 anywhere, kept whole
	}
	for _, tt := range tests {
		if got := condition.RegionPrefix(tt.in); got != tt.want {
			t.Errorf("RegionPrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRegionPrefix_Idempotent(t *testing.T) {
	inputs := []string{
		"서울특별시 강남구",
		"경기도 수원시 권선구",
		"제주특별자치도 제주시",
		"부산광역시",
		"강남구 역삼동",
	}
	for _, in := range inputs {
		once := condition.RegionPrefix(in)
		twice := condition.RegionPrefix(once)
		if once != twice {
			t.Errorf("RegionPrefix(%q) not idempotent: %q -> %q", in, once, twice)
		}
	}
}
