package services

import (
	"fmt"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"hotelops/models"
	"hotelops/utils"
)

// RoomService owns room inventory and the availability flag. The flag itself
// is only flipped by BookingService at booking time.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) AddRoom(number, roomType, rate, description string) (models.Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return models.Room{}, utils.Validation("room number is required")
	}
	if !models.ValidRoomType(roomType) {
		return models.Room{}, utils.Validationf("unknown room type %q", roomType)
	}

	parsedRate, err := parseAmount(rate)
	if err != nil || !parsedRate.IsPositive() {
		return models.Room{}, utils.Validation("rate must be a positive number")
	}

	room := models.Room{
		RoomNumber:  number,
		RoomType:    roomType,
		Rate:        parsedRate,
		IsAvailable: true,
		Description: strings.TrimSpace(description),
		LastUpdated: time.Now().UTC(),
	}
	if err := s.DB.Create(&room).Error; err != nil {
		if isDuplicateErr(err) {
			return models.Room{}, utils.Conflict(fmt.Sprintf("room number %q already exists", number))
		}
		return models.Room{}, utils.Internal(pkgerrors.Wrap(err, "create room"))
	}
	return room, nil
}

// UpdateRoom changes type, rate and description. The room number is fixed for
// the life of the room.
func (s *RoomService) UpdateRoom(number, roomType, rate, description string) (models.Room, error) {
	var room models.Room
	if err := s.DB.Where("room_number = ?", number).First(&room).Error; err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, utils.NotFound("room")
		}
		return models.Room{}, utils.Internal(pkgerrors.Wrap(err, "load room"))
	}

	if !models.ValidRoomType(roomType) {
		return models.Room{}, utils.Validationf("unknown room type %q", roomType)
	}
	parsedRate, err := parseAmount(rate)
	if err != nil || !parsedRate.IsPositive() {
		return models.Room{}, utils.Validation("rate must be a positive number")
	}

	updates := map[string]interface{}{
		"room_type":    roomType,
		"rate":         parsedRate,
		"description":  strings.TrimSpace(description),
		"last_updated": time.Now().UTC(),
	}
	if err := s.DB.Model(&room).Updates(updates).Error; err != nil {
		return models.Room{}, utils.Internal(pkgerrors.Wrap(err, "update room"))
	}
	return room, nil
}

// RemoveRoom deletes the inventory row. Outstanding bookings on the room are
// left untouched.
func (s *RoomService) RemoveRoom(number string) error {
	res := s.DB.Where("room_number = ?", number).Delete(&models.Room{})
	if res.Error != nil {
		return utils.Internal(pkgerrors.Wrap(res.Error, "delete room"))
	}
	if res.RowsAffected == 0 {
		return utils.NotFound("room")
	}
	return nil
}

func (s *RoomService) GetRoom(number string) (models.Room, error) {
	var room models.Room
	if err := s.DB.Where("room_number = ?", number).First(&room).Error; err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, utils.NotFound("room")
		}
		return models.Room{}, utils.Internal(pkgerrors.Wrap(err, "load room"))
	}
	return room, nil
}

func (s *RoomService) ListRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, utils.Internal(pkgerrors.Wrap(err, "list rooms"))
	}
	return rooms, nil
}
