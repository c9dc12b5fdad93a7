// Package search turns a Condition into either a parameterized relational
// predicate set (filter search) or a natural-language query string for the
// ranking collaborator (hybrid search).
package search

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gigwork/jobchat/internal/condition"
	"github.com/gigwork/jobchat/pkg/models"
)

// MaxResults caps one filter-search result set.
const MaxResults = 50

// Catalog locations receive the same suffix normalization as the query
// prefix, so both sides of the LIKE compare at the same granularity.
const locationNormSQL = "replace(replace(replace(replace(location, '특별자치도', '도'), '특별자치시', '시'), '특별시', '시'), '광역시', '시')"

// CompiledQuery is an ordered list of predicate fragments plus the parallel
// list of bound values. Fragments carry ? markers; positional placeholders
// are rendered from list position so no counter threads through the
// compilation logic. User-influenced values are only ever bound, never
// spliced into fragment text.
type CompiledQuery struct {
	fragments []string
	args      []any
}

// Add appends one predicate fragment with its bound values.
func (q *CompiledQuery) Add(fragment string, args ...any) {
	q.fragments = append(q.fragments, fragment)
	q.args = append(q.args, args...)
}

// Empty reports whether no predicate narrows the result set.
func (q *CompiledQuery) Empty() bool { return len(q.fragments) == 0 }

// Args returns the bound values in placeholder order.
func (q *CompiledQuery) Args() []any { return q.args }

// Render joins the fragments conjunctively, rewriting ? markers to $n
// placeholders numbered from first. It fails when marker and parameter
// counts diverge, which would silently shift every later binding.
func (q *CompiledQuery) Render(first int) (string, error) {
	if n := strings.Count(strings.Join(q.fragments, " "), "?"); n != len(q.args) {
		return "", fmt.Errorf("compiled query out of sync: %d placeholders, %d parameters", n, len(q.args))
	}

	var sb strings.Builder
	next := first
	for i, frag := range q.fragments {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		for {
			idx := strings.IndexByte(frag, '?')
			if idx < 0 {
				sb.WriteString(frag)
				break
			}
			sb.WriteString(frag[:idx])
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(next))
			next++
			frag = frag[idx+1:]
		}
	}
	return sb.String(), nil
}

// Compile builds the eligibility predicate set for a condition. Absent
// fields impose no constraint; every supplied field narrows conjunctively.
// Malformed values surface as *condition.ValidationError.
func Compile(cond models.Condition) (*CompiledQuery, error) {
	q := &CompiledQuery{}

	if g := condition.NormalizeGender(cond.Gender); g != "" && g != condition.GenderAny {
		q.Add("(gender = ? OR gender = 'any')", g)
	}

	bucket, err := condition.AgeBucket(cond.Age)
	if err != nil {
		return nil, err
	}
	if bucket != "" {
		q.Add("(? = ANY(age_groups) OR 'any' = ANY(age_groups) OR age_groups IS NULL OR age_groups = '{}')", bucket)
	}

	if !cond.Place.Empty() {
		prefix := condition.RegionPrefix(cond.Place.String())
		q.Add(locationNormSQL+" LIKE ?", escapeLike(prefix)+"%")
	}

	if days := condition.DaySet(cond.WorkDays.String()); len(days) > 0 {
		q.Add("work_days && ?", days)
	}

	window, err := condition.TimeWindow(cond.StartTime, cond.EndTime)
	if err != nil {
		return nil, err
	}
	if window != nil {
		q.Add("(start_time BETWEEN ? AND ?)", window.StartLo, window.StartHi)
		q.Add("(end_time BETWEEN ? AND ?)", window.EndLo, window.EndHi)
	}

	floor, ok, err := condition.WageFloor(cond.HourlyWage)
	if err != nil {
		return nil, err
	}
	if ok {
		q.Add("hourly_wage >= ?", floor)
	}

	if !cond.Category.Empty() {
		q.Add("category = ?", cond.Category.String())
	}

	return q, nil
}

// escapeLike neutralizes LIKE metacharacters in a bound prefix.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
