package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Engine performs timezone-aware slot resolution. All rule and reservation
// wall-clock values are interpreted against the fixed reference location,
// never the process-local zone.
type Engine struct {
	refLoc      *time.Location
	HorizonDays int
}

// NewEngine builds an engine anchored to the named reference timezone.
// offsetMin is the zone's fixed UTC offset in minutes, used when the IANA
// database is not available on the host.
func NewEngine(referenceTZ string, offsetMin, horizonDays int) (*Engine, error) {
	if horizonDays <= 0 {
		return nil, fmt.Errorf("horizon must be positive, got %d", horizonDays)
	}
	loc, err := time.LoadLocation(referenceTZ)
	if err != nil {
		if referenceTZ == "" {
			return nil, fmt.Errorf("reference timezone not configured")
		}
		loc = time.FixedZone(referenceTZ, offsetMin*60)
	}
	return &Engine{refLoc: loc, HorizonDays: horizonDays}, nil
}

// LocalizedSlot is the display rendering of a reference instant in a
// viewer's timezone.
type LocalizedSlot struct {
	Time      string `json:"time"`      // 12-hour clock, e.g. "01:30 AM"
	DateLabel string `json:"dateLabel"` // e.g. "MON, JUN 10"
}

// Localize interprets refTime ("HH:MM") on dateKey ("YYYY-MM-DD") as
// reference-timezone wall clock and renders that instant in targetTZ.
// The only error path is an unrecognized target zone.
func (e *Engine) Localize(refTime, dateKey, targetTZ string) (LocalizedSlot, error) {
	loc, err := time.LoadLocation(targetTZ)
	if err != nil {
		return LocalizedSlot{}, fmt.Errorf("%w: %q", ErrInvalidTimezone, targetTZ)
	}

	day, err := time.ParseInLocation(dateLayout, dateKey, e.refLoc)
	if err != nil {
		return LocalizedSlot{}, fmt.Errorf("invalid date key %q: %w", dateKey, err)
	}
	h, m, err := splitClock(refTime)
	if err != nil {
		return LocalizedSlot{}, err
	}

	instant := time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, e.refLoc).In(loc)
	return LocalizedSlot{
		Time:      instant.Format("03:04 PM"),
		DateLabel: strings.ToUpper(instant.Format("Mon, Jan 2")),
	}, nil
}

// ReferenceInstant returns the absolute instant for a reference wall-clock
// time on the given date.
func (e *Engine) ReferenceInstant(refTime, dateKey string) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, dateKey, e.refLoc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", dateKey, err)
	}
	h, m, err := splitClock(refTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, e.refLoc), nil
}

func splitClock(hhmm string) (int, int, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed time %q", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, fmt.Errorf("malformed hour in %q", hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("malformed minute in %q", hhmm)
	}
	return h, m, nil
}
