package entities

import "errors"

// Lifecycle rule violations shared between the usecase layer and the
// entity guard helpers.
var (
	ErrPastAppointment       = errors.New("appointment datetime is already in the past")
	ErrRequestNotCancellable = errors.New("service request cannot be cancelled in its current status")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
)
