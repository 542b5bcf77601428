package domain

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrOccurrenceNotFound   = errors.New("occurrence not found")
	ErrAttendeeNotFound     = errors.New("attendee not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrPassNotFound         = errors.New("pass not found")
)

var (
	ErrCapacityExceeded   = errors.New("event capacity exceeded")
	ErrDuplicateStartTime = errors.New("duplicate occurrence start time")
	ErrAdmissionConflict  = errors.New("admission conflict, retry")

	// ErrDuplicateRegistration is internal: the admission service
	// absorbs it by returning the existing registration.
	ErrDuplicateRegistration = errors.New("attendee already registered for event")
	ErrAlreadyCancelled      = errors.New("registration is cancelled")
	ErrInvalidTransition     = errors.New("invalid status transition")
)

var (
	ErrValidation    = errors.New("validation error")
	ErrAmbiguousPass = errors.New("ambiguous pass query")
)
