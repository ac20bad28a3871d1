package models

// CandidateSlot is a derived, unpersisted one-hour booking opportunity.
// Start is reference-timezone wall clock; DisplayTime and DisplayDate are
// rendered in the viewer's timezone and exist for presentation only.
type CandidateSlot struct {
	Date        string `json:"date"`     // "YYYY-MM-DD"
	Start       string `json:"start"`    // "HH:MM" reference wall clock
	Duration    int    `json:"duration"` // duration units (hours), always >= 1
	DisplayTime string `json:"displayTime"`
	DisplayDate string `json:"displayDate"`
	Available   bool   `json:"available"`
}

// End returns the exclusive end hour of the candidate's reference interval.
func (s CandidateSlot) End() (int, error) {
	h, err := ParseHour(s.Start)
	if err != nil {
		return 0, err
	}
	return h + s.Duration, nil
}
