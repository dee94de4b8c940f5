package httpapi

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"timesheet/internal/domain"
)

// hoursPayload keeps the raw JSON of each day so non-integer values can be
// reported as invalid hours instead of a generic decode failure.
type hoursPayload []json.RawMessage

func (p hoursPayload) weekHours() (domain.WeekHours, error) {
	var hours domain.WeekHours
	if p == nil {
		return hours, nil
	}
	if len(p) != domain.DaysPerWeek {
		return hours, fmt.Errorf("expected %d hour values, got %d: %w", domain.DaysPerWeek, len(p), domain.ErrInvalidHours)
	}

	for idx, raw := range p {
		value, err := wholeHours(raw)
		if err != nil {
			return domain.WeekHours{}, fmt.Errorf("%s hours %s: %w", domain.DayColumns[idx], err.Error(), domain.ErrInvalidHours)
		}
		hours[idx] = value
	}
	return hours, nil
}

func wholeHours(raw json.RawMessage) (int, error) {
	text := strings.TrimSpace(string(raw))
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("must be a number, got %s", text)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return 0, fmt.Errorf("must be a whole number, got %s", text)
	}
	if value < math.MinInt32 || value > math.MaxInt32 {
		return 0, fmt.Errorf("out of range, got %s", text)
	}
	return int(value), nil
}
