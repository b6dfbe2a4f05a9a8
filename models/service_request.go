package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const RequestStatusPending = "Pending"

type ServiceRequest struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	BookingID uint `gorm:"column:booking_id;index" json:"bookingId"`
	ServiceID uint `gorm:"column:service_id;index" json:"serviceId"`

	Quantity int `json:"quantity"`

	// TotalAmount is recomputed from the service's current price at submit
	// time, never trusted from a client-side preview.
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2)" json:"totalAmount"`

	RequestDate time.Time `gorm:"column:request_date" json:"requestDate"`
	Status      string    `gorm:"size:32" json:"status"`
	Notes       string    `gorm:"type:text" json:"notes"`

	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"booking,omitempty"`
	Service Service `gorm:"foreignKey:ServiceID;references:ID" json:"service,omitempty"`
}

// ServiceRequestRecord is the joined history view across booking, service and
// request.
type ServiceRequestRecord struct {
	RequestDate  time.Time       `json:"requestDate"`
	RoomNumber   string          `json:"roomNumber"`
	CustomerName string          `json:"customerName"`
	ServiceName  string          `json:"serviceName"`
	Quantity     int             `json:"quantity"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes"`
}
