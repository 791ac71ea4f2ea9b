package model

import "fmt"

type RoomType string

const (
	RoomTypeSingle RoomType = "Single"
	RoomTypeDouble RoomType = "Double"
	RoomTypeDeluxe RoomType = "Deluxe"
)

var RoomTypes = []RoomType{RoomTypeSingle, RoomTypeDouble, RoomTypeDeluxe}

// Capacity is the number of guests a room of this type sleeps.
func (t RoomType) Capacity() int {
	switch t {
	case RoomTypeSingle:
		return 1
	case RoomTypeDouble:
		return 2
	case RoomTypeDeluxe:
		return 4
	default:
		return 0
	}
}

func (t RoomType) Valid() bool {
	return t.Capacity() > 0
}

func ParseRoomType(s string) (RoomType, error) {
	for _, t := range RoomTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown room type %q", s)
}

type Room struct {
	ID         int64    `json:"id" bson:"_id" db:"id" goqu:"skipinsert" gorm:"primaryKey;autoIncrement"`
	HotelID    int64    `json:"hotel_id" bson:"hotel_id" db:"hotel_id" gorm:"column:hotel_id;not null;uniqueIndex:idx_rooms_hotel_number,priority:1"`
	RoomNumber int      `json:"room_number" bson:"room_number" db:"room_number" gorm:"column:room_number;not null;uniqueIndex:idx_rooms_hotel_number,priority:2"`
	RoomType   RoomType `json:"room_type" bson:"room_type" db:"room_type" gorm:"column:room_type;type:varchar(20);not null"`
	Capacity   int      `json:"capacity" bson:"capacity" db:"capacity" gorm:"column:capacity;not null"`
}

// NewRoom builds a room whose capacity is derived from its type.
func NewRoom(number int, roomType RoomType) Room {
	return Room{
		RoomNumber: number,
		RoomType:   roomType,
		Capacity:   roomType.Capacity(),
	}
}

// AvailableRoom is the search result row for a free room.
type AvailableRoom struct {
	HotelID    int64    `json:"hotel_id"`
	RoomID     int64    `json:"room_id"`
	RoomNumber int      `json:"room_number"`
	RoomType   RoomType `json:"room_type"`
}

func (r *Room) Available() AvailableRoom {
	return AvailableRoom{
		HotelID:    r.HotelID,
		RoomID:     r.ID,
		RoomNumber: r.RoomNumber,
		RoomType:   r.RoomType,
	}
}

// TotalCapacity sums the capacity of rooms.
func TotalCapacity(rooms []*Room) int {
	total := 0
	for _, r := range rooms {
		total += r.Capacity
	}
	return total
}
