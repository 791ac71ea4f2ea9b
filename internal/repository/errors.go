package repository

import "errors"

var (
	ErrHotelNotFound = errors.New("hotel not found")

	ErrRoomNotFound = errors.New("room not found")

	ErrBookingNotFound = errors.New("booking not found")

	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate record")
)
