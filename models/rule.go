package models

import (
	"fmt"
	"strconv"
	"strings"
)

// AvailabilityRule is one recurring weekly opening, expressed as wall-clock
// times in the deployment's reference timezone.
type AvailabilityRule struct {
	DayOfWeek int    `bson:"dayOfWeek" json:"dayOfWeek"` // 0 (Sunday) .. 6 (Saturday)
	Start     string `bson:"start" json:"start"`         // "HH:MM", e.g. "11:00"
	End       string `bson:"end" json:"end"`             // "HH:MM", exclusive
}

// Validate checks the rule invariants: a known weekday and Start strictly
// before End.
func (r AvailabilityRule) Validate() error {
	if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
		return fmt.Errorf("dayOfWeek %d out of range", r.DayOfWeek)
	}
	startH, err := ParseHour(r.Start)
	if err != nil {
		return fmt.Errorf("invalid start time %q: %w", r.Start, err)
	}
	endH, err := ParseHour(r.End)
	if err != nil {
		return fmt.Errorf("invalid end time %q: %w", r.End, err)
	}
	if startH >= endH {
		return fmt.Errorf("rule start %q must be before end %q", r.Start, r.End)
	}
	return nil
}

// ParseHour extracts the hour component of an "HH:MM" wall-clock string.
// Slot granularity is fixed at one hour, so minutes are carried for display
// but never enter interval arithmetic.
func ParseHour(hhmm string) (int, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed time %q", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed hour in %q", hhmm)
	}
	if h < 0 || h > 23 {
		return 0, fmt.Errorf("hour %d out of range", h)
	}
	return h, nil
}

// FormatHour renders an hour as the "HH:MM" wall-clock string used in all
// stored records.
func FormatHour(h int) string {
	return fmt.Sprintf("%02d:00", h)
}

// DefaultSchedule is the fallback weekly rule set used when the settings
// store is empty or unreachable. Times are reference-timezone wall clock.
var DefaultSchedule = []AvailabilityRule{
	{DayOfWeek: 1, Start: "11:00", End: "13:00"},
	{DayOfWeek: 2, Start: "11:00", End: "13:00"},
	{DayOfWeek: 2, Start: "14:00", End: "16:00"},
	{DayOfWeek: 3, Start: "11:00", End: "13:00"},
	{DayOfWeek: 3, Start: "14:00", End: "16:00"},
	{DayOfWeek: 4, Start: "11:00", End: "13:00"},
	{DayOfWeek: 4, Start: "14:00", End: "16:00"},
	{DayOfWeek: 5, Start: "11:00", End: "13:00"},
	{DayOfWeek: 5, Start: "14:00", End: "16:00"},
	{DayOfWeek: 6, Start: "11:00", End: "13:00"},
}
