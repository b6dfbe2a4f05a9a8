package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops/services"
	"hotelops/utils"
)

// ServiceController covers both the catalog and the request queue.
type ServiceController struct {
	Catalog  *services.CatalogService
	Requests *services.RequestService
}

func NewServiceController(catalog *services.CatalogService, requests *services.RequestService) *ServiceController {
	return &ServiceController{Catalog: catalog, Requests: requests}
}

type serviceRequestBody struct {
	ServiceName string `json:"serviceName"`
	Category    string `json:"category"`
	Price       string `json:"price" binding:"required"`
	Description string `json:"description"`
}

type previewRequestBody struct {
	ServiceID uint `json:"serviceId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type submitRequestBody struct {
	BookingID uint   `json:"bookingId" binding:"required"`
	ServiceID uint   `json:"serviceId" binding:"required"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
}

// GetActiveServices handles GET /api/services/active
func (sc *ServiceController) GetActiveServices(c *gin.Context) {
	list, err := sc.Catalog.ListActiveServices()
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetAllServices handles GET /api/services
func (sc *ServiceController) GetAllServices(c *gin.Context) {
	list, err := sc.Catalog.ListAllServices()
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// CreateService handles POST /api/services
func (sc *ServiceController) CreateService(c *gin.Context) {
	var req serviceRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	service, err := sc.Catalog.AddService(req.ServiceName, req.Category, req.Price, req.Description)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, service)
}

// UpdateService handles PUT /api/services/:id
func (sc *ServiceController) UpdateService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req serviceRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	service, err := sc.Catalog.UpdateService(id, req.ServiceName, req.Category, req.Price, req.Description)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, service)
}

// ToggleService handles PATCH /api/services/:id/toggle
func (sc *ServiceController) ToggleService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	service, err := sc.Catalog.ToggleServiceActive(id)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, service)
}

// PreviewRequest handles POST /api/service-requests/preview
func (sc *ServiceController) PreviewRequest(c *gin.Context) {
	var req previewRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	total, err := sc.Requests.PreviewRequestTotal(req.ServiceID, req.Quantity)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"total": total})
}

// SubmitRequest handles POST /api/service-requests
func (sc *ServiceController) SubmitRequest(c *gin.Context) {
	var req submitRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	request, err := sc.Requests.SubmitRequest(req.BookingID, req.ServiceID, req.Quantity, req.Notes)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, request)
}

// GetRequestHistory handles GET /api/service-requests
func (sc *ServiceController) GetRequestHistory(c *gin.Context) {
	history, err := sc.Requests.RequestHistory()
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, history)
}
