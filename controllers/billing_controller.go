package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelops/services"
	"hotelops/utils"
)

type BillingController struct {
	Service *services.BillingService
}

func NewBillingController(service *services.BillingService) *BillingController {
	return &BillingController{Service: service}
}

type previewBillRequest struct {
	BookingID uint   `json:"bookingId" binding:"required"`
	Discount  string `json:"discount"`
}

type finalizeBillRequest struct {
	BookingID     uint   `json:"bookingId" binding:"required"`
	Discount      string `json:"discount"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// GetUnbilledBookings handles GET /api/billing/unbilled
func (bc *BillingController) GetUnbilledBookings(c *gin.Context) {
	bookings, err := bc.Service.ListUnbilledBookings()
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// PreviewBill handles POST /api/billing/preview
func (bc *BillingController) PreviewBill(c *gin.Context) {
	var req previewBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.Discount == "" {
		req.Discount = "0"
	}

	preview, err := bc.Service.PreviewBill(req.BookingID, req.Discount)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, preview)
}

// FinalizeBill handles POST /api/billing/finalize
func (bc *BillingController) FinalizeBill(c *gin.Context) {
	var req finalizeBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.Discount == "" {
		req.Discount = "0"
	}

	bill, err := bc.Service.FinalizeBill(req.BookingID, req.Discount, req.PaymentMethod)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, bill)
}

// GetInvoice handles GET /api/billing/:bookingID/invoice. An optional
// ?destination= writes the rendered text through the document writer; no
// destination means render-only.
func (bc *BillingController) GetInvoice(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "bookingID")
	if !ok {
		return
	}

	bill, err := bc.Service.GetBillForBooking(bookingID)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}

	content := bc.Service.RenderInvoice(bill.Booking, bill)
	if err := utils.WriteDocument(c.Query("destination"), content); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to write invoice")
		return
	}
	c.String(http.StatusOK, content)
}

// GetPaymentCode handles GET /api/billing/:bookingID/payment-code and returns
// the bill total rendered as a scannable PNG.
func (bc *BillingController) GetPaymentCode(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "bookingID")
	if !ok {
		return
	}

	bill, err := bc.Service.GetBillForBooking(bookingID)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	if bill.PaymentMethod != "QR Code" {
		utils.JSONError(c, http.StatusUnprocessableEntity, "bill was not paid by QR code")
		return
	}

	png, err := utils.RenderPaymentCode(bill.TotalAmount)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to render payment code")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
