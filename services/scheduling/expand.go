package scheduling

import (
	"fmt"
	"sort"
	"time"

	"slotwise/models"
)

// Expand enumerates every calendar date in the horizon starting at from
// (inclusive) and, for each rule matching the date's weekday, emits one
// one-hour candidate per hourly step from the rule's start up to but not
// including its end. Dates with no matching rule contribute nothing.
// Overlapping rules produce duplicate candidates; they are not deduplicated.
//
// Display fields are rendered in viewerTZ. Candidates within a date are
// ordered by start time ascending; dates keep horizon order. All candidates
// start out available — availability is assigned by Annotate.
func (e *Engine) Expand(rules []models.AvailabilityRule, horizonDays int, from time.Time, viewerTZ string) ([]models.CandidateSlot, error) {
	if horizonDays <= 0 {
		horizonDays = e.HorizonDays
	}
	start := from.In(e.refLoc)

	var out []models.CandidateSlot
	for i := 0; i < horizonDays; i++ {
		day := start.AddDate(0, 0, i)
		dateKey := day.Format(dateLayout)
		weekday := int(day.Weekday())

		var daySlots []models.CandidateSlot
		for _, rule := range rules {
			if rule.DayOfWeek != weekday {
				continue
			}
			startH, err := models.ParseHour(rule.Start)
			if err != nil {
				return nil, fmt.Errorf("bad rule start: %w", err)
			}
			endH, err := models.ParseHour(rule.End)
			if err != nil {
				return nil, fmt.Errorf("bad rule end: %w", err)
			}
			for h := startH; h < endH; h++ {
				refStart := models.FormatHour(h)
				localized, err := e.Localize(refStart, dateKey, viewerTZ)
				if err != nil {
					return nil, err
				}
				daySlots = append(daySlots, models.CandidateSlot{
					Date:        dateKey,
					Start:       refStart,
					Duration:    1,
					DisplayTime: localized.Time,
					DisplayDate: localized.DateLabel,
					Available:   true,
				})
			}
		}

		sort.SliceStable(daySlots, func(a, b int) bool {
			return daySlots[a].Start < daySlots[b].Start
		})
		out = append(out, daySlots...)
	}
	return out, nil
}
