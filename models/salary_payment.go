package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryPayment is append-only history. Multiple payments on the same date
// for the same employee are allowed; payroll re-runs are legitimate.
type SalaryPayment struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	EmployeeID string `gorm:"column:employee_id;index;type:varchar(50)" json:"employeeId"`

	PaymentDate time.Time       `gorm:"column:payment_date" json:"paymentDate"`
	BaseSalary  decimal.Decimal `gorm:"column:base_salary;type:decimal(10,2)" json:"baseSalary"`
	Bonus       decimal.Decimal `gorm:"type:decimal(10,2)" json:"bonus"`
	Deductions  decimal.Decimal `gorm:"type:decimal(10,2)" json:"deductions"`
	NetSalary   decimal.Decimal `gorm:"column:net_salary;type:decimal(10,2)" json:"netSalary"`

	PaymentMethod string `gorm:"column:payment_method;size:64" json:"paymentMethod"`
	Remarks       string `gorm:"type:text" json:"remarks"`
}
