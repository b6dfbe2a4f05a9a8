package services

import (
	pkgerrors "github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotelops/models"
	"hotelops/utils"
)

// PayrollService appends to the salary-payment history. It shares the staff
// registry's records but never mutates them.
type PayrollService struct {
	DB    *gorm.DB
	Staff *StaffService
}

func NewPayrollService(db *gorm.DB, staff *StaffService) *PayrollService {
	return &PayrollService{DB: db, Staff: staff}
}

type SalaryBreakdown struct {
	BaseSalary decimal.Decimal `json:"baseSalary"`
	Bonus      decimal.Decimal `json:"bonus"`
	Deductions decimal.Decimal `json:"deductions"`
	NetSalary  decimal.Decimal `json:"netSalary"`
}

// PreviewSalary computes base + bonus - deductions. Negative bonus and
// deductions are permitted; only non-numeric input fails.
func (s *PayrollService) PreviewSalary(base, bonus, deductions string) (SalaryBreakdown, error) {
	b, err := parseAmount(base)
	if err != nil {
		return SalaryBreakdown{}, utils.Validation("invalid base salary value")
	}
	bo, err := parseAmount(bonus)
	if err != nil {
		return SalaryBreakdown{}, utils.Validation("invalid bonus value")
	}
	d, err := parseAmount(deductions)
	if err != nil {
		return SalaryBreakdown{}, utils.Validation("invalid deductions value")
	}

	return SalaryBreakdown{
		BaseSalary: b,
		Bonus:      bo,
		Deductions: d,
		NetSalary:  b.Add(bo).Sub(d),
	}, nil
}

// ProcessSalary always appends a new history row. Nothing prevents multiple
// payments on the same date for the same employee; payroll re-runs are
// allowed.
func (s *PayrollService) ProcessSalary(employeeID, base, bonus, deductions, paymentMethod, remarks string) (models.SalaryPayment, error) {
	if _, err := s.Staff.GetStaff(employeeID); err != nil {
		return models.SalaryPayment{}, err
	}

	breakdown, err := s.PreviewSalary(base, bonus, deductions)
	if err != nil {
		return models.SalaryPayment{}, err
	}

	payment := models.SalaryPayment{
		EmployeeID:    employeeID,
		PaymentDate:   today(),
		BaseSalary:    breakdown.BaseSalary,
		Bonus:         breakdown.Bonus,
		Deductions:    breakdown.Deductions,
		NetSalary:     breakdown.NetSalary,
		PaymentMethod: paymentMethod,
		Remarks:       remarks,
	}
	if err := s.DB.Create(&payment).Error; err != nil {
		return models.SalaryPayment{}, utils.Internal(pkgerrors.Wrap(err, "create salary payment"))
	}
	return payment, nil
}

func (s *PayrollService) SalaryHistory(employeeID string) ([]models.SalaryPayment, error) {
	if _, err := s.Staff.GetStaff(employeeID); err != nil {
		return nil, err
	}

	var payments []models.SalaryPayment
	err := s.DB.
		Where("employee_id = ?", employeeID).
		Order("payment_date DESC, id DESC").
		Find(&payments).Error
	if err != nil {
		return nil, utils.Internal(pkgerrors.Wrap(err, "load salary history"))
	}
	return payments, nil
}
