package scheduling

import "errors"

// ErrInvalidTimezone is returned when a viewer-supplied zone identifier is
// not a recognized IANA timezone. It is surfaced to the caller and never
// retried.
var ErrInvalidTimezone = errors.New("unrecognized timezone identifier")
