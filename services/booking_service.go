package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotelops/models"
	"hotelops/utils"
)

// BookingService owns guest bookings and is the only writer of the room
// availability flag after inventory creation.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// CreateBooking validates in order: dates parse, check-in precedes check-out,
// check-in is not in the past, room is still available. The booking insert
// and the availability flip run as one transaction; the flip is a conditional
// update that only succeeds while the flag is still true, so two racing
// callers cannot both book the same room.
func (s *BookingService) CreateBooking(roomNumber, customerName, phone, checkIn, checkOut string) (models.Booking, error) {
	checkInDate, err := parseDate(checkIn)
	if err != nil {
		return models.Booking{}, utils.Validation("invalid check-in date, expected YYYY-MM-DD")
	}
	checkOutDate, err := parseDate(checkOut)
	if err != nil {
		return models.Booking{}, utils.Validation("invalid check-out date, expected YYYY-MM-DD")
	}
	if !checkInDate.Before(checkOutDate) {
		return models.Booking{}, utils.Validation("check-out date must be after check-in date")
	}
	if checkInDate.Before(today()) {
		return models.Booking{}, utils.Validation("check-in date cannot be in the past")
	}

	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return models.Booking{}, utils.Validation("customer name is required")
	}

	var booking models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
			if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFound("room")
			}
			return utils.Internal(pkgerrors.Wrap(err, "load room"))
		}

		res := tx.Model(&models.Room{}).
			Where("room_number = ? AND is_available = ?", roomNumber, true).
			Updates(map[string]interface{}{
				"is_available": false,
				"last_updated": time.Now().UTC(),
			})
		if res.Error != nil {
			return utils.Internal(pkgerrors.Wrap(res.Error, "update room availability"))
		}
		if res.RowsAffected == 0 {
			return utils.StateConflict("room is not available for booking")
		}

		nights := int(checkOutDate.Sub(checkInDate).Hours() / 24)
		booking = models.Booking{
			ReferenceCode: uuid.NewString(),
			RoomNumber:    roomNumber,
			CustomerName:  customerName,
			CustomerPhone: strings.TrimSpace(phone),
			CheckInDate:   checkInDate,
			CheckOutDate:  checkOutDate,
			TotalAmount:   room.Rate.Mul(decimal.NewFromInt(int64(nights))),
			BookingDate:   time.Now().UTC(),
		}
		if err := tx.Create(&booking).Error; err != nil {
			return utils.Internal(pkgerrors.Wrap(err, "create booking"))
		}
		return nil
	})
	if txErr != nil {
		return models.Booking{}, txErr
	}
	return booking, nil
}

func (s *BookingService) GetBooking(id uint) (models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, utils.NotFound("booking")
		}
		return models.Booking{}, utils.Internal(pkgerrors.Wrap(err, "load booking"))
	}
	return booking, nil
}

func (s *BookingService) ListBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.Order("booking_date DESC").Find(&bookings).Error; err != nil {
		return nil, utils.Internal(pkgerrors.Wrap(err, "list bookings"))
	}
	return bookings, nil
}

// SearchByCustomer matches the customer name case-insensitively on a
// substring.
func (s *BookingService) SearchByCustomer(term string) ([]models.Booking, error) {
	var bookings []models.Booking
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	err := s.DB.
		Where("LOWER(customer_name) LIKE ?", pattern).
		Order("booking_date DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, utils.Internal(pkgerrors.Wrap(err, "search bookings"))
	}
	return bookings, nil
}

// ListActiveBookings returns bookings whose check-out date is today or later.
func (s *BookingService) ListActiveBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.
		Where("check_out_date >= ?", today()).
		Order("check_in_date DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, utils.Internal(pkgerrors.Wrap(err, "list active bookings"))
	}
	return bookings, nil
}
