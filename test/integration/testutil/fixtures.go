package testutil

import (
	"fmt"
	"hotelbooking/pkg/model"
	"net/url"
	"time"
)

// BookingRequest mirrors the POST /api/v1/bookings body.
type BookingRequest struct {
	RoomID         int64  `json:"room_id"`
	CheckInDate    string `json:"check_in_date"`
	CheckOutDate   string `json:"check_out_date"`
	NumberOfGuests int    `json:"number_of_guests"`
}

type BookingCreated struct {
	BookingID int64 `json:"booking_id"`
}

// Day returns the date offset days from today, formatted for the API.
func Day(offset int) string {
	return time.Now().UTC().AddDate(0, 0, offset).Format(model.DateLayout)
}

func NewBookingRequest(roomID int64, checkIn, nights, guests int) BookingRequest {
	return BookingRequest{
		RoomID:         roomID,
		CheckInDate:    Day(checkIn),
		CheckOutDate:   Day(checkIn + nights),
		NumberOfGuests: guests,
	}
}

func AvailabilityPath(hotelID int64, checkIn, checkOut string, guests int) string {
	q := url.Values{}
	q.Set("check_in_date", checkIn)
	q.Set("check_out_date", checkOut)
	q.Set("number_of_guests", fmt.Sprint(guests))
	return fmt.Sprintf("/api/v1/hotels/%d/rooms?%s", hotelID, q.Encode())
}

func HotelSearchPath(name string) string {
	return "/api/v1/hotels?" + url.Values{"name": {name}}.Encode()
}
