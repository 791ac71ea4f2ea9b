package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidReference = errors.New("booking reference must be a positive integer")

	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")

	ErrArrivalInPast = errors.New("check-in date cannot be in the past")

	ErrCapacityExceeded = errors.New("number of guests exceeds room capacity")

	ErrRoomUnavailable = errors.New("room is no longer available for the requested dates")
)
