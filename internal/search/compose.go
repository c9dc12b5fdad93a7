package search

import (
	"strings"

	"github.com/gigwork/jobchat/pkg/models"
)

// Compose renders a condition plus free text into one natural-language query
// for the ranking collaborator. Populated fields become labeled clauses in a
// fixed order; free text, when present, leads with a blank line before the
// clause summary. An empty return means there is not enough input to search.
func Compose(cond models.Condition, text string) string {
	text = strings.TrimSpace(text)

	var clauses []string
	add := func(label string, v models.Flex) {
		if !v.Empty() {
			clauses = append(clauses, label+"("+v.String()+")")
		}
	}

	add("지역", cond.Place)
	add("직종", cond.Category)
	add("근무일", cond.WorkDays)
	if !cond.HourlyWage.Empty() {
		clauses = append(clauses, "시급("+formatWage(cond.HourlyWage.String())+")")
	}
	if !cond.StartTime.Empty() && !cond.EndTime.Empty() {
		clauses = append(clauses, "시간("+cond.StartTime.String()+"~"+cond.EndTime.String()+")")
	}
	add("성별", cond.Gender)
	add("나이", cond.Age)
	add("기타", cond.Requirements)

	summary := ""
	if len(clauses) > 0 {
		summary = "일자리 조건: " + strings.Join(clauses, ", ")
	}

	switch {
	case text != "" && summary != "":
		return text + "\n\n" + summary
	case text != "":
		return text
	default:
		return summary
	}
}

// formatWage renders bare amounts as 12,000원; decorated values ("20000
// 이상") stay verbatim.
func formatWage(w string) string {
	for _, r := range w {
		if r < '0' || r > '9' {
			return w
		}
	}
	var sb strings.Builder
	for i, r := range w {
		if i > 0 && (len(w)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	sb.WriteString("원")
	return sb.String()
}
