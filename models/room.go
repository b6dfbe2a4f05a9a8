package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Room types offered by the hotel.
const (
	RoomTypeSingle = "SINGLE"
	RoomTypeDouble = "DOUBLE"
	RoomTypeDeluxe = "DELUXE"
	RoomTypeSuite  = "SUITE"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomNumber  string          `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	RoomType    string          `json:"roomType" gorm:"column:room_type;type:varchar(20)"`
	Rate        decimal.Decimal `json:"rate" gorm:"type:decimal(10,2)"`
	IsAvailable bool            `json:"isAvailable" gorm:"column:is_available"`
	Description string          `json:"description" gorm:"type:text"`

	// LastUpdated is refreshed on every registry write and on the
	// availability flip at booking time.
	LastUpdated time.Time `json:"lastUpdated" gorm:"column:last_updated"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ValidRoomType reports whether t is one of the offered room types.
func ValidRoomType(t string) bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeDeluxe, RoomTypeSuite:
		return true
	}
	return false
}
