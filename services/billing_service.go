package services

import (
	"fmt"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotelops/models"
	"hotelops/utils"
)

// taxRate is the fixed 10% applied to every bill.
var taxRate = decimal.NewFromFloat(0.10)

// BillingService derives and finalizes invoices from bookings.
type BillingService struct {
	DB *gorm.DB
}

func NewBillingService(db *gorm.DB) *BillingService {
	return &BillingService{DB: db}
}

type BillPreview struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// ListUnbilledBookings returns bookings with no bill row, most recent first.
// "Has no matching bill" is the billable set; it is what keeps a booking from
// being charged twice.
func (s *BillingService) ListUnbilledBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.
		Joins("LEFT JOIN bills ON bills.booking_id = bookings.id").
		Where("bills.id IS NULL").
		Order("bookings.booking_date DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, utils.Internal(pkgerrors.Wrap(err, "list unbilled bookings"))
	}
	return bookings, nil
}

// PreviewBill is a pure computation over the booking's fixed total. It may be
// recomputed any number of times and persists nothing.
func (s *BillingService) PreviewBill(bookingID uint, discount string) (BillPreview, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return BillPreview{}, utils.NotFound("booking")
		}
		return BillPreview{}, utils.Internal(pkgerrors.Wrap(err, "load booking"))
	}

	d, err := parseAmount(discount)
	if err != nil {
		return BillPreview{}, utils.Validation("invalid discount amount")
	}
	if d.IsNegative() {
		return BillPreview{}, utils.Validation("discount cannot be negative")
	}

	subtotal := booking.TotalAmount
	tax := subtotal.Mul(taxRate)
	return BillPreview{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: d,
		Total:    subtotal.Add(tax).Sub(d),
	}, nil
}

// FinalizeBill persists exactly one bill per booking, recomputing the amounts
// server-side so a stale preview cannot be replayed. A second call for the
// same booking fails regardless of arguments.
func (s *BillingService) FinalizeBill(bookingID uint, discount, paymentMethod string) (models.Bill, error) {
	preview, err := s.PreviewBill(bookingID, discount)
	if err != nil {
		return models.Bill{}, err
	}

	var bill models.Bill
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Bill
		err := tx.Where("booking_id = ?", bookingID).First(&existing).Error
		if err == nil {
			return utils.StateConflict("a bill already exists for this booking")
		}
		if !pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Internal(pkgerrors.Wrap(err, "check existing bill"))
		}

		bill = models.Bill{
			BookingID:      bookingID,
			Subtotal:       preview.Subtotal,
			TaxAmount:      preview.Tax,
			DiscountAmount: preview.Discount,
			TotalAmount:    preview.Total,
			PaymentStatus:  models.BillStatusPaid,
			PaymentMethod:  paymentMethod,
			BillDate:       time.Now().UTC(),
		}
		if err := tx.Create(&bill).Error; err != nil {
			if isDuplicateErr(err) {
				return utils.StateConflict("a bill already exists for this booking")
			}
			return utils.Internal(pkgerrors.Wrap(err, "create bill"))
		}
		return nil
	})
	if txErr != nil {
		return models.Bill{}, txErr
	}
	return bill, nil
}

// GetBillForBooking loads a finalized bill together with its booking.
func (s *BillingService) GetBillForBooking(bookingID uint) (models.Bill, error) {
	var bill models.Bill
	err := s.DB.Preload("Booking").Where("booking_id = ?", bookingID).First(&bill).Error
	if err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return models.Bill{}, utils.NotFound("bill")
		}
		return models.Bill{}, utils.Internal(pkgerrors.Wrap(err, "load bill"))
	}
	return bill, nil
}

// RenderInvoice is pure formatting; storing the result is the document
// writer's job.
func (s *BillingService) RenderInvoice(booking models.Booking, bill models.Bill) string {
	return fmt.Sprintf(`HOTEL MANAGEMENT SYSTEM
=====================
Invoice Date: %s

Booking Details:
---------------
Booking ID: %d
Room Number: %s
Customer Name: %s
Check-in Date: %s
Check-out Date: %s

Billing Details:
---------------
Subtotal: $%s
Tax (10%%): $%s
Discount: $%s

Total Amount: $%s

Payment Method: %s

Thank you for your business!
`,
		time.Now().UTC().Format("2006-01-02 15:04:05"),
		booking.ID,
		booking.RoomNumber,
		booking.CustomerName,
		booking.CheckInDate.Format(dateLayout),
		booking.CheckOutDate.Format(dateLayout),
		bill.Subtotal.StringFixed(2),
		bill.TaxAmount.StringFixed(2),
		bill.DiscountAmount.StringFixed(2),
		bill.TotalAmount.StringFixed(2),
		bill.PaymentMethod,
	)
}
