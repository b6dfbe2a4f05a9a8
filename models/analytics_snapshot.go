package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// AnalyticsSnapshot is a persisted daily roll-up of booking metrics, with
// room-type and payment-method counts kept as JSON documents.
type AnalyticsSnapshot struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	Date time.Time `gorm:"index" json:"date"`

	TotalBookings       int             `gorm:"column:total_bookings" json:"totalBookings"`
	TotalRevenue        decimal.Decimal `gorm:"column:total_revenue;type:decimal(12,2)" json:"totalRevenue"`
	AverageBookingValue decimal.Decimal `gorm:"column:average_booking_value;type:decimal(12,2)" json:"averageBookingValue"`
	OccupancyRate       float64         `gorm:"column:occupancy_rate" json:"occupancyRate"`

	RoomTypeDistribution      datatypes.JSON `gorm:"column:room_type_distribution" json:"roomTypeDistribution"`
	PaymentMethodDistribution datatypes.JSON `gorm:"column:payment_method_distribution" json:"paymentMethodDistribution"`

	CreatedAt time.Time `json:"createdAt"`
}
