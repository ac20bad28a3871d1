package scheduling

import "slotwise/models"

// Annotate marks each candidate available or taken against the committed
// reservation ledger. A candidate [S, S+d) collides with a reservation
// [S', S'+d') on the same date iff S < S'+d' and S+d > S': the intervals
// are half-open, so a reservation ending exactly at a candidate's start
// does not block it.
//
// Pure function of its inputs: the input slice is not mutated and the
// result is stable across repeated calls with unchanged arguments.
func Annotate(candidates []models.CandidateSlot, reservations []models.GlobalReservation) []models.CandidateSlot {
	out := make([]models.CandidateSlot, len(candidates))
	copy(out, candidates)

	for i := range out {
		startH, err := models.ParseHour(out[i].Start)
		if err != nil {
			out[i].Available = false
			continue
		}
		endH := startH + out[i].Duration
		out[i].Available = !overlapsAny(out[i].Date, startH, endH, reservations)
	}
	return out
}

func overlapsAny(date string, startH, endH int, reservations []models.GlobalReservation) bool {
	for _, r := range reservations {
		if r.Date != date {
			continue
		}
		resStart, err := models.ParseHour(r.StartTime)
		if err != nil {
			continue
		}
		resEnd := resStart + r.Duration
		if startH < resEnd && endH > resStart {
			return true
		}
	}
	return false
}
