package model

type Hotel struct {
	ID    int64  `json:"id" bson:"_id" db:"id" goqu:"skipinsert" gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name" bson:"name" db:"name" gorm:"column:name;type:varchar(200);not null;index"`
	Rooms []Room `json:"rooms,omitempty" bson:"-" db:"-" gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE"`
}

// HotelSummary is the listing shape returned by hotel search.
type HotelSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (h *Hotel) Summary() HotelSummary {
	return HotelSummary{ID: h.ID, Name: h.Name}
}
