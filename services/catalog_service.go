package services

import (
	"strings"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"hotelops/models"
	"hotelops/utils"
)

// CatalogService manages the catalog of purchasable extras.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

func (s *CatalogService) AddService(name, category, price, description string) (models.Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Service{}, utils.Validation("service name is required")
	}
	parsedPrice, err := parseAmount(price)
	if err != nil || !parsedPrice.IsPositive() {
		return models.Service{}, utils.Validation("price must be a positive number")
	}

	service := models.Service{
		ServiceName: name,
		Category:    strings.TrimSpace(category),
		Price:       parsedPrice,
		Description: strings.TrimSpace(description),
		IsActive:    true,
	}
	if err := s.DB.Create(&service).Error; err != nil {
		return models.Service{}, utils.Internal(pkgerrors.Wrap(err, "create service"))
	}
	return service, nil
}

func (s *CatalogService) UpdateService(id uint, name, category, price, description string) (models.Service, error) {
	service, err := s.getService(id)
	if err != nil {
		return models.Service{}, err
	}

	parsedPrice, err := parseAmount(price)
	if err != nil || !parsedPrice.IsPositive() {
		return models.Service{}, utils.Validation("price must be a positive number")
	}

	updates := map[string]interface{}{
		"service_name": strings.TrimSpace(name),
		"category":     strings.TrimSpace(category),
		"price":        parsedPrice,
		"description":  strings.TrimSpace(description),
	}
	if err := s.DB.Model(&service).Updates(updates).Error; err != nil {
		return models.Service{}, utils.Internal(pkgerrors.Wrap(err, "update service"))
	}
	return service, nil
}

// ToggleServiceActive flips the active flag. Deactivation hides the service
// from new requests only; request history is unaffected.
func (s *CatalogService) ToggleServiceActive(id uint) (models.Service, error) {
	service, err := s.getService(id)
	if err != nil {
		return models.Service{}, err
	}

	next := !service.IsActive
	if err := s.DB.Model(&service).Update("is_active", next).Error; err != nil {
		return models.Service{}, utils.Internal(pkgerrors.Wrap(err, "toggle service"))
	}
	service.IsActive = next
	return service, nil
}

func (s *CatalogService) ListActiveServices() ([]models.Service, error) {
	var services []models.Service
	err := s.DB.
		Where("is_active = ?", true).
		Order("category, service_name").
		Find(&services).Error
	if err != nil {
		return nil, utils.Internal(pkgerrors.Wrap(err, "list active services"))
	}
	return services, nil
}

func (s *CatalogService) ListAllServices() ([]models.Service, error) {
	var services []models.Service
	if err := s.DB.Order("id").Find(&services).Error; err != nil {
		return nil, utils.Internal(pkgerrors.Wrap(err, "list services"))
	}
	return services, nil
}

func (s *CatalogService) getService(id uint) (models.Service, error) {
	var service models.Service
	if err := s.DB.First(&service, id).Error; err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return models.Service{}, utils.NotFound("service")
		}
		return models.Service{}, utils.Internal(pkgerrors.Wrap(err, "load service"))
	}
	return service, nil
}
