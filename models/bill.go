package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill payment status. Bills are written once, at the moment payment is
// finalized, so "Paid" is the only status ever persisted.
const BillStatusPaid = "Paid"

type Bill struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	BookingID uint `gorm:"column:booking_id;uniqueIndex" json:"bookingId"`

	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	TaxAmount      decimal.Decimal `gorm:"column:tax_amount;type:decimal(10,2)" json:"taxAmount"`
	DiscountAmount decimal.Decimal `gorm:"column:discount_amount;type:decimal(10,2)" json:"discountAmount"`
	TotalAmount    decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2)" json:"totalAmount"`

	PaymentStatus string    `gorm:"column:payment_status;size:32" json:"paymentStatus"`
	PaymentMethod string    `gorm:"column:payment_method;size:64" json:"paymentMethod"`
	BillDate      time.Time `gorm:"column:bill_date" json:"billDate"`

	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"booking,omitempty"`
}
