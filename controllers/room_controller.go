package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops/services"
	"hotelops/utils"
)

type RoomController struct {
	Service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{Service: service}
}

type roomRequest struct {
	RoomNumber  string `json:"roomNumber"`
	RoomType    string `json:"roomType" binding:"required"`
	Rate        string `json:"rate" binding:"required"`
	Description string `json:"description"`
}

// GetRooms handles GET /api/rooms
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.Service.ListRooms()
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GetRoom handles GET /api/rooms/:number
func (rc *RoomController) GetRoom(c *gin.Context) {
	room, err := rc.Service.GetRoom(c.Param("number"))
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// CreateRoom handles POST /api/rooms
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	room, err := rc.Service.AddRoom(req.RoomNumber, req.RoomType, req.Rate, req.Description)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// UpdateRoom handles PUT /api/rooms/:number
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	room, err := rc.Service.UpdateRoom(c.Param("number"), req.RoomType, req.Rate, req.Description)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/rooms/:number
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	if err := rc.Service.RemoveRoom(c.Param("number")); err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room removed"})
}
