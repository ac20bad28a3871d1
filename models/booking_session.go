package models

// BookingStep is a state in the booking session flow.
type BookingStep string

const (
	StepSelectingDate        BookingStep = "selecting_date"
	StepSelectingSlot        BookingStep = "selecting_slot"
	StepSelectingSessionType BookingStep = "selecting_session_type"
	StepConfirmingPayment    BookingStep = "confirming_payment"
	StepCommitted            BookingStep = "committed"
)

// prev maps each non-initial, non-terminal step to its predecessor.
// Committed is terminal: once the commit protocol returns there is no way
// back.
var prev = map[BookingStep]BookingStep{
	StepSelectingSlot:        StepSelectingDate,
	StepSelectingSessionType: StepSelectingSlot,
	StepConfirmingPayment:    StepSelectingSessionType,
}

// BookingSession holds per-client state between availability display and
// final commit. It lives in the session cache with a TTL and is never
// persisted.
type BookingSession struct {
	SessionID    string         `json:"sessionId"`
	UserID       string         `json:"userId"`
	UserName     string         `json:"userName,omitempty"`
	Timezone     string         `json:"timezone"` // viewer zone, display only
	Step         BookingStep    `json:"step"`
	SelectedDate string         `json:"selectedDate,omitempty"`
	SelectedSlot *CandidateSlot `json:"selectedSlot,omitempty"`
	SessionType  string         `json:"sessionType,omitempty"`
	Candidates   []CandidateSlot `json:"candidates,omitempty"`
}

// Advance moves the session forward to the given step. Only the immediate
// successor of the current step is reachable.
func (s *BookingSession) Advance(to BookingStep) bool {
	if prev[to] == s.Step || (s.Step == StepConfirmingPayment && to == StepCommitted) {
		s.Step = to
		return true
	}
	return false
}

// Back moves the session to the predecessor step, clearing the selection
// made at the current step. It fails from the initial and terminal states.
func (s *BookingSession) Back() bool {
	p, ok := prev[s.Step]
	if !ok {
		return false
	}
	switch s.Step {
	case StepSelectingSlot:
		s.SelectedDate = ""
	case StepSelectingSessionType:
		s.SelectedSlot = nil
	case StepConfirmingPayment:
		s.SessionType = ""
	}
	s.Step = p
	return true
}
