package utils

import "errors"

// Sentinel errors grouped by kind. Services return these; the HTTP layer maps
// them to status codes and the console layer prints a generic failure line.

// Not found.
var (
	ErrMemberNotFound       = errors.New("member not found")
	ErrTrainerNotFound      = errors.New("trainer not found")
	ErrRoomNotFound         = errors.New("room not found")
	ErrClassNotFound        = errors.New("class not found")
	ErrScheduleNotFound     = errors.New("schedule not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrAvailabilityNotFound = errors.New("availability not found")
)

// Conflict.
var (
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrClassFull             = errors.New("class is at full capacity")
)

// Validation.
var (
	ErrInvalidTimeOfDay   = errors.New("invalid time of day")
	ErrInvalidTimeRange   = errors.New("start time must be before end time")
	ErrInvalidDayOfWeek   = errors.New("invalid day of week")
	ErrUnknownField       = errors.New("unknown profile field")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Unknown wrapped data-layer failure.
var ErrDatabaseError = errors.New("database error")

func IsNotFound(err error) bool {
	for _, e := range []error{
		ErrMemberNotFound, ErrTrainerNotFound, ErrRoomNotFound, ErrClassNotFound,
		ErrScheduleNotFound, ErrBookingNotFound, ErrAvailabilityNotFound,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrEmailAlreadyExists) ||
		errors.Is(err, ErrUsernameAlreadyExists) ||
		errors.Is(err, ErrClassFull)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidTimeOfDay) ||
		errors.Is(err, ErrInvalidTimeRange) ||
		errors.Is(err, ErrInvalidDayOfWeek) ||
		errors.Is(err, ErrUnknownField)
}
