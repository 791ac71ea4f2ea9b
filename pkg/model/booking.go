package model

import (
	"time"
)

type Booking struct {
	ID            int64     `json:"id" bson:"_id" db:"id" goqu:"skipinsert" gorm:"primaryKey;autoIncrement"`
	RoomID        int64     `json:"room_id" bson:"room_id" db:"room_id" gorm:"column:room_id;not null;index:idx_bookings_room_dates,priority:1"`
	ArrivalDate   time.Time `json:"arrival_date" bson:"arrival_date" db:"arrival_date" gorm:"column:arrival_date;type:date;not null;index:idx_bookings_room_dates,priority:2"`
	DepartureDate time.Time `json:"departure_date" bson:"departure_date" db:"departure_date" gorm:"column:departure_date;type:date;not null;index:idx_bookings_room_dates,priority:3"`
	Guests        int       `json:"guests" bson:"guests" db:"guests" gorm:"column:guests;not null"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at" db:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (b *Booking) Stay() DateRange {
	return NewDateRange(b.ArrivalDate, b.DepartureDate)
}

// BookingDetails is a booking joined with its room and hotel.
type BookingDetails struct {
	BookingReference int64  `json:"booking_reference"`
	HotelName        string `json:"hotel_name"`
	RoomNumber       int    `json:"room_number"`
	CheckInDate      string `json:"check_in_date"`
	CheckOutDate     string `json:"check_out_date"`
	NumberOfGuests   int    `json:"number_of_guests"`
}

func NewBookingDetails(b *Booking, room *Room, hotel *Hotel) *BookingDetails {
	return &BookingDetails{
		BookingReference: b.ID,
		HotelName:        hotel.Name,
		RoomNumber:       room.RoomNumber,
		CheckInDate:      FormatDate(b.ArrivalDate),
		CheckOutDate:     FormatDate(b.DepartureDate),
		NumberOfGuests:   b.Guests,
	}
}

// AvailabilityCriteria describes a room search for one hotel.
type AvailabilityCriteria struct {
	HotelID       int64     `json:"hotel_id" validate:"min=1"`
	ArrivalDate   time.Time `json:"check_in_date" validate:"required"`
	DepartureDate time.Time `json:"check_out_date" validate:"required"`
	Guests        int       `json:"number_of_guests" validate:"min=1,max_guests"`
}

func (c AvailabilityCriteria) Stay() DateRange {
	return NewDateRange(c.ArrivalDate, c.DepartureDate)
}

// CreateBookingInput is a booking request after decoding. Dates are
// truncated to UTC days by Normalize.
type CreateBookingInput struct {
	RoomID        int64     `json:"room_id" validate:"min=1"`
	ArrivalDate   time.Time `json:"check_in_date" validate:"required"`
	DepartureDate time.Time `json:"check_out_date" validate:"required"`
	Guests        int       `json:"number_of_guests" validate:"min=1,max_guests"`
}

func (in CreateBookingInput) Normalize() CreateBookingInput {
	in.ArrivalDate = DateOf(in.ArrivalDate)
	in.DepartureDate = DateOf(in.DepartureDate)
	return in
}

func (in CreateBookingInput) Stay() DateRange {
	return NewDateRange(in.ArrivalDate, in.DepartureDate)
}
