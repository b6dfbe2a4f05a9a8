package services

import (
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotelops/models"
	"hotelops/utils"
)

// RequestService queues service requests against active bookings.
type RequestService struct {
	DB *gorm.DB
}

func NewRequestService(db *gorm.DB) *RequestService {
	return &RequestService{DB: db}
}

// PreviewRequestTotal computes price x quantity without persisting anything.
func (s *RequestService) PreviewRequestTotal(serviceID uint, quantity int) (decimal.Decimal, error) {
	if quantity < 1 {
		return decimal.Zero, utils.Validation("quantity must be at least 1")
	}

	var service models.Service
	if err := s.DB.First(&service, serviceID).Error; err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, utils.NotFound("service")
		}
		return decimal.Zero, utils.Internal(pkgerrors.Wrap(err, "load service"))
	}

	return service.Price.Mul(decimal.NewFromInt(int64(quantity))), nil
}

// SubmitRequest records a request against a booking that is still active
// (check-out today or later). The total is recomputed from the service's
// current price, not trusted from a preview.
func (s *RequestService) SubmitRequest(bookingID, serviceID uint, quantity int, notes string) (models.ServiceRequest, error) {
	if quantity < 1 {
		return models.ServiceRequest{}, utils.Validation("quantity must be at least 1")
	}

	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return models.ServiceRequest{}, utils.NotFound("booking")
		}
		return models.ServiceRequest{}, utils.Internal(pkgerrors.Wrap(err, "load booking"))
	}
	if booking.CheckOutDate.Before(today()) {
		return models.ServiceRequest{}, utils.StateConflict("booking is no longer active")
	}

	var service models.Service
	if err := s.DB.First(&service, serviceID).Error; err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return models.ServiceRequest{}, utils.NotFound("service")
		}
		return models.ServiceRequest{}, utils.Internal(pkgerrors.Wrap(err, "load service"))
	}
	if !service.IsActive {
		return models.ServiceRequest{}, utils.StateConflict("service is not active")
	}

	request := models.ServiceRequest{
		BookingID:   bookingID,
		ServiceID:   serviceID,
		Quantity:    quantity,
		TotalAmount: service.Price.Mul(decimal.NewFromInt(int64(quantity))),
		RequestDate: time.Now().UTC(),
		Status:      models.RequestStatusPending,
		Notes:       strings.TrimSpace(notes),
	}
	if err := s.DB.Create(&request).Error; err != nil {
		return models.ServiceRequest{}, utils.Internal(pkgerrors.Wrap(err, "create service request"))
	}
	return request, nil
}

// RequestHistory is the joined view across booking, service and request,
// most recent first.
func (s *RequestService) RequestHistory() ([]models.ServiceRequestRecord, error) {
	var records []models.ServiceRequestRecord
	err := s.DB.Model(&models.ServiceRequest{}).
		Select(`service_requests.request_date,
			bookings.room_number,
			bookings.customer_name,
			services.service_name,
			service_requests.quantity,
			service_requests.total_amount,
			service_requests.status,
			service_requests.notes`).
		Joins("JOIN bookings ON bookings.id = service_requests.booking_id").
		Joins("JOIN services ON services.id = service_requests.service_id").
		Order("service_requests.request_date DESC").
		Scan(&records).Error
	if err != nil {
		return nil, utils.Internal(pkgerrors.Wrap(err, "load request history"))
	}
	return records, nil
}
