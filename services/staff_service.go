package services

import (
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"hotelops/models"
	"hotelops/utils"
)

// StaffService owns employee records.
type StaffService struct {
	DB *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{DB: db}
}

type AddStaffInput struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	JoinDate   string `json:"joinDate"`
	BaseSalary string `json:"baseSalary"`
	Status     string `json:"status"`
}

func (s *StaffService) AddStaff(in AddStaffInput) (models.StaffMember, error) {
	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID == "" {
		return models.StaffMember{}, utils.Validation("employee id is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return models.StaffMember{}, utils.Validation("name is required")
	}

	joinDate, err := parseDate(in.JoinDate)
	if err != nil {
		return models.StaffMember{}, utils.Validation("invalid join date, expected YYYY-MM-DD")
	}
	baseSalary, err := parseAmount(in.BaseSalary)
	if err != nil {
		return models.StaffMember{}, utils.Validation("invalid base salary value")
	}

	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = models.StaffStatusActive
	}

	member := models.StaffMember{
		EmployeeID: employeeID,
		Name:       strings.TrimSpace(in.Name),
		Position:   strings.TrimSpace(in.Position),
		Phone:      strings.TrimSpace(in.Phone),
		Email:      strings.TrimSpace(in.Email),
		Address:    strings.TrimSpace(in.Address),
		JoinDate:   joinDate,
		BaseSalary: baseSalary,
		Status:     status,
	}
	if err := s.DB.Create(&member).Error; err != nil {
		if isDuplicateErr(err) {
			return models.StaffMember{}, utils.Conflict(fmt.Sprintf("employee id %q already exists", employeeID))
		}
		return models.StaffMember{}, utils.Internal(pkgerrors.Wrap(err, "create staff member"))
	}
	return member, nil
}

func (s *StaffService) GetStaff(employeeID string) (models.StaffMember, error) {
	var member models.StaffMember
	if err := s.DB.Where("employee_id = ?", employeeID).First(&member).Error; err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return models.StaffMember{}, utils.NotFound("staff member")
		}
		return models.StaffMember{}, utils.Internal(pkgerrors.Wrap(err, "load staff member"))
	}
	return member, nil
}

func (s *StaffService) ListStaff() ([]models.StaffMember, error) {
	var staff []models.StaffMember
	if err := s.DB.Order("name").Find(&staff).Error; err != nil {
		return nil, utils.Internal(pkgerrors.Wrap(err, "list staff"))
	}
	return staff, nil
}
