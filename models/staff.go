package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Staff employment status values.
const (
	StaffStatusActive     = "Active"
	StaffStatusOnLeave    = "On Leave"
	StaffStatusTerminated = "Terminated"
)

type StaffMember struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EmployeeID string `gorm:"column:employee_id;uniqueIndex;type:varchar(50)" json:"employeeId"`
	Name       string `gorm:"size:255" json:"name"`
	Position   string `gorm:"size:100" json:"position"`
	Phone      string `gorm:"size:50" json:"phone"`
	Email      string `gorm:"size:150" json:"email"`
	Address    string `gorm:"type:text" json:"address"`

	JoinDate   time.Time       `gorm:"column:join_date" json:"joinDate"`
	BaseSalary decimal.Decimal `gorm:"column:base_salary;type:decimal(10,2)" json:"baseSalary"`
	Status     string          `gorm:"size:32" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (StaffMember) TableName() string { return "staff" }
