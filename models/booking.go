package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking is immutable once created. TotalAmount is fixed at creation time
// (nights x room rate) and never recomputed, even if the room rate changes.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReferenceCode string `gorm:"column:reference_code;size:64" json:"referenceCode"`
	RoomNumber    string `gorm:"column:room_number;index;type:varchar(50)" json:"roomNumber"`
	CustomerName  string `gorm:"column:customer_name;size:255" json:"customerName"`
	CustomerPhone string `gorm:"column:customer_phone;size:50" json:"customerPhone"`

	CheckInDate  time.Time `gorm:"column:check_in_date" json:"checkInDate"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"checkOutDate"`

	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2)" json:"totalAmount"`
	BookingDate time.Time       `gorm:"column:booking_date" json:"bookingDate"`
}

// Nights is the stay length in whole days.
func (b Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}
