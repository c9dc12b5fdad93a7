package models

import (
	"encoding/json"
	"testing"
)

func TestFlex_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Flex
	}{
		{`"서울시"`, "서울시"},
		{`"  서울시  "`, "서울시"},
		{`25`, "25"},
		{`12000.0`, "12000"},
		{`12.5`, "12.5"},
		{`["월","화"]`, "월,화"},
		{`["월", 2]`, "월,2"},
		{`[]`, ""},
		{`null`, ""},
	}
	for _, tt := range tests {
		var f Flex
		if err := json.Unmarshal([]byte(tt.in), &f); err != nil {
			t.Errorf("Unmarshal(%s): %v", tt.in, err)
			continue
		}
		if f != tt.want {
			t.Errorf("Unmarshal(%s) = %q, want %q", tt.in, f, tt.want)
		}
	}
}

func TestFlex_UnmarshalJSON_RejectsObjects(t *testing.T) {
	var f Flex
	if err := json.Unmarshal([]byte(`{"a":1}`), &f); err == nil {
		t.Error("object should not unmarshal into Flex")
	}
}

func TestFlex_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Flex(""))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "null" {
		t.Errorf("empty Flex marshals as %s, want null", b)
	}

	b, err = json.Marshal(Flex("월,화"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"월,화"` {
		t.Errorf("Flex marshals as %s", b)
	}
}

func TestCondition_JSONCarriesAllKeys(t *testing.T) {
	b, err := json.Marshal(Condition{Place: "서울시"})
	if err != nil {
		t.Fatal(err)
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	keys := []string{"gender", "age", "place", "work_days", "start_time", "end_time", "hourly_wage", "category", "requirements"}
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			t.Errorf("condition JSON is missing key %q", k)
		}
	}
	if len(m) != len(keys) {
		t.Errorf("condition JSON has %d keys, want %d", len(m), len(keys))
	}
}

func TestCondition_Empty(t *testing.T) {
	if !(Condition{}).Empty() {
		t.Error("zero condition should be empty")
	}
	if (Condition{Category: "서비스"}).Empty() {
		t.Error("condition with a field should not be empty")
	}
}
