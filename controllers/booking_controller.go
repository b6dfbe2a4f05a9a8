package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops/services"
	"hotelops/utils"
)

type BookingController struct {
	Service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{Service: service}
}

type createBookingRequest struct {
	RoomNumber    string `json:"roomNumber" binding:"required"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone"`
	CheckInDate   string `json:"checkInDate" binding:"required"`
	CheckOutDate  string `json:"checkOutDate" binding:"required"`
}

// CreateBooking handles POST /api/bookings
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	booking, err := bc.Service.CreateBooking(
		req.RoomNumber, req.CustomerName, req.CustomerPhone,
		req.CheckInDate, req.CheckOutDate,
	)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GetBookings handles GET /api/bookings, with ?customer= switching to the
// substring search.
func (bc *BookingController) GetBookings(c *gin.Context) {
	term := c.Query("customer")

	var err error
	var bookings interface{}
	if term != "" {
		bookings, err = bc.Service.SearchByCustomer(term)
	} else {
		bookings, err = bc.Service.ListBookings()
	}
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetBooking handles GET /api/bookings/:id
func (bc *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := bc.Service.GetBooking(id)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// GetActiveBookings handles GET /api/bookings/active
func (bc *BookingController) GetActiveBookings(c *gin.Context) {
	bookings, err := bc.Service.ListActiveBookings()
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}
