package condition

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gigwork/jobchat/pkg/models"
)

// Tolerance applied to both ends of a requested time range. A posting
// qualifies when its own start and end each fall within this distance of the
// requested start and end. Fixed, not configurable per request.
const timeTolerance = 60 // minutes

const lastMinute = 23*60 + 59

// Window is a compiled time-range constraint. Bounds are zero-padded HH:MM
// strings so they compare correctly against the catalog's clock columns.
type Window struct {
	StartLo, StartHi string
	EndLo, EndHi     string
}

// TimeWindow validates and compiles the start/end pair of a condition.
// The bounds are both-or-neither: supplying exactly one is a validation
// failure, not a silent skip. A nil, nil return means no time constraint.
// The ±1h tolerance clamps to the day; it does not wrap across midnight.
func TimeWindow(start, end models.Flex) (*Window, error) {
	if start.Empty() && end.Empty() {
		return nil, nil
	}
	if start.Empty() || end.Empty() {
		return nil, &ValidationError{Field: "start_time/end_time", Reason: "both start and end are required"}
	}

	s, err := parseClock(start.String())
	if err != nil {
		return nil, &ValidationError{Field: "start_time", Reason: err.Error()}
	}
	e, err := parseClock(end.String())
	if err != nil {
		return nil, &ValidationError{Field: "end_time", Reason: err.Error()}
	}

	return &Window{
		StartLo: formatClock(clamp(s - timeTolerance)),
		StartHi: formatClock(clamp(s + timeTolerance)),
		EndLo:   formatClock(clamp(e - timeTolerance)),
		EndHi:   formatClock(clamp(e + timeTolerance)),
	}, nil
}

// Contains reports whether both clock values fall inside the window.
func (w *Window) Contains(start, end string) bool {
	s, err := parseClock(start)
	if err != nil {
		return false
	}
	e, err := parseClock(end)
	if err != nil {
		return false
	}
	return formatClock(s) >= w.StartLo && formatClock(s) <= w.StartHi &&
		formatClock(e) >= w.EndLo && formatClock(e) <= w.EndHi
}

func parseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("bad hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("bad minute in %q", s)
	}
	return h*60 + m, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func clamp(minutes int) int {
	if minutes < 0 {
		return 0
	}
	if minutes > lastMinute {
		return lastMinute
	}
	return minutes
}
