package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Flex is a loosely typed condition value. Callers send strings, numbers or
// string arrays depending on the field; Flex normalizes all of them to a
// single string form once, at decode time. The empty value means "no
// constraint" and marshals back as JSON null.
type Flex string

func (f Flex) String() string { return string(f) }

// Empty reports whether the value imposes no constraint.
func (f Flex) Empty() bool { return strings.TrimSpace(string(f)) == "" }

func (f Flex) MarshalJSON() ([]byte, error) {
	if f.Empty() {
		return []byte("null"), nil
	}
	return json.Marshal(string(f))
}

func (f *Flex) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Flex(strings.TrimSpace(s))
		return nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		parts := make([]string, 0, len(items))
		for _, it := range items {
			var v Flex
			if err := v.UnmarshalJSON(it); err != nil {
				return err
			}
			if !v.Empty() {
				parts = append(parts, v.String())
			}
		}
		*f = Flex(strings.Join(parts, ","))
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("unsupported condition value %s", b)
		}
		// render integral floats without the fractional part
		if v, err := n.Float64(); err == nil && v == float64(int64(v)) {
			*f = Flex(strconv.FormatInt(int64(v), 10))
			return nil
		}
		*f = Flex(n.String())
		return nil
	}
}

// Condition is the structured job-search filter. Every field is optional;
// an empty Flex means the field does not narrow the search. The JSON form
// always carries all nine keys so callers can resend it verbatim.
type Condition struct {
	Gender       Flex `json:"gender"`
	Age          Flex `json:"age"`
	Place        Flex `json:"place"`
	WorkDays     Flex `json:"work_days"`
	StartTime    Flex `json:"start_time"`
	EndTime      Flex `json:"end_time"`
	HourlyWage   Flex `json:"hourly_wage"`
	Category     Flex `json:"category"`
	Requirements Flex `json:"requirements"`
}

// Empty reports whether no field is set.
func (c Condition) Empty() bool {
	return c.Gender.Empty() && c.Age.Empty() && c.Place.Empty() &&
		c.WorkDays.Empty() && c.StartTime.Empty() && c.EndTime.Empty() &&
		c.HourlyWage.Empty() && c.Category.Empty() && c.Requirements.Empty()
}

// JobPosting is a read-only catalog record. Similarity is populated only on
// rows returned by the ranking collaborator.
type JobPosting struct {
	ID          int64      `json:"id" db:"id"`
	Company     string     `json:"company" db:"company"`
	Title       string     `json:"title" db:"title"`
	Location    string     `json:"location" db:"location"`
	HourlyWage  int64      `json:"hourly_wage" db:"hourly_wage"`
	WorkDays    []string   `json:"work_days" db:"work_days"`
	StartTime   string     `json:"start_time" db:"start_time"`
	EndTime     string     `json:"end_time" db:"end_time"`
	Category    string     `json:"category" db:"category"`
	Gender      string     `json:"gender" db:"gender"`
	AgeGroups   []string   `json:"age_groups" db:"age_groups"`
	Description string     `json:"description" db:"description"`
	Deadline    *time.Time `json:"deadline,omitempty" db:"deadline"`
	Status      string     `json:"status" db:"status"`
	Created     time.Time  `json:"created_at" db:"created_at"`
	Similarity  *float64   `json:"similarity,omitempty" db:"-"`
}

// Turn is one chat request cycle. It is constructed per request and never
// persisted; the caller is the source of truth for the Condition across turns.
type Turn struct {
	UserID              string
	Text                string
	Condition           Condition
	Search              bool
	SearchInResults     bool
	RequesterID         string
	SimilarityThreshold float64
}

// Outcome is the terminal payload of one routed turn. It is always
// well-formed: collaborator failures surface as replies, never as errors.
type Outcome struct {
	JobRelated *bool        `json:"job_related,omitempty"`
	Condition  Condition    `json:"condition"`
	Result     []JobPosting `json:"result"`
	Reply      string       `json:"reply"`
}
