package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops/services"
	"hotelops/utils"
)

type StaffController struct {
	Staff   *services.StaffService
	Payroll *services.PayrollService
}

func NewStaffController(staff *services.StaffService, payroll *services.PayrollService) *StaffController {
	return &StaffController{Staff: staff, Payroll: payroll}
}

type previewSalaryRequest struct {
	BaseSalary string `json:"baseSalary" binding:"required"`
	Bonus      string `json:"bonus"`
	Deductions string `json:"deductions"`
}

type processSalaryRequest struct {
	BaseSalary    string `json:"baseSalary" binding:"required"`
	Bonus         string `json:"bonus"`
	Deductions    string `json:"deductions"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	Remarks       string `json:"remarks"`
}

// GetStaff handles GET /api/staff
func (sc *StaffController) GetStaff(c *gin.Context) {
	staff, err := sc.Staff.ListStaff()
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, staff)
}

// GetStaffMember handles GET /api/staff/:employeeID
func (sc *StaffController) GetStaffMember(c *gin.Context) {
	member, err := sc.Staff.GetStaff(c.Param("employeeID"))
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, member)
}

// CreateStaff handles POST /api/staff
func (sc *StaffController) CreateStaff(c *gin.Context) {
	var req services.AddStaffInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	member, err := sc.Staff.AddStaff(req)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, member)
}

// PreviewSalary handles POST /api/payroll/preview
func (sc *StaffController) PreviewSalary(c *gin.Context) {
	var req previewSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	req.Bonus = defaultAmount(req.Bonus)
	req.Deductions = defaultAmount(req.Deductions)

	breakdown, err := sc.Payroll.PreviewSalary(req.BaseSalary, req.Bonus, req.Deductions)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, breakdown)
}

// ProcessSalary handles POST /api/payroll/:employeeID
func (sc *StaffController) ProcessSalary(c *gin.Context) {
	var req processSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	req.Bonus = defaultAmount(req.Bonus)
	req.Deductions = defaultAmount(req.Deductions)

	payment, err := sc.Payroll.ProcessSalary(
		c.Param("employeeID"),
		req.BaseSalary, req.Bonus, req.Deductions,
		req.PaymentMethod, req.Remarks,
	)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, payment)
}

// GetSalaryHistory handles GET /api/payroll/:employeeID/history
func (sc *StaffController) GetSalaryHistory(c *gin.Context) {
	payments, err := sc.Payroll.SalaryHistory(c.Param("employeeID"))
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payments)
}

func defaultAmount(v string) string {
	if v == "" {
		return "0"
	}
	return v
}
