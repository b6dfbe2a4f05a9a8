package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelops/models"
	"hotelops/utils"
)

func staffInput(employeeID, name string) AddStaffInput {
	return AddStaffInput{
		EmployeeID: employeeID,
		Name:       name,
		Position:   "Receptionist",
		Phone:      "555-0200",
		JoinDate:   "2024-03-01",
		BaseSalary: "3000.00",
	}
}

func TestAddStaff(t *testing.T) {
	db := newTestDB(t)

	member, err := NewStaffService(db).AddStaff(staffInput("EMP001", "Dana Reyes"))
	require.NoError(t, err)

	assert.Equal(t, "EMP001", member.EmployeeID)
	assert.Equal(t, models.StaffStatusActive, member.Status)
	assert.True(t, member.BaseSalary.Equal(dec("3000.00")))
	assert.Equal(t, "2024-03-01", member.JoinDate.Format(dateLayout))
}

func TestAddStaffDuplicateEmployeeID(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(db)

	_, err := svc.AddStaff(staffInput("EMP001", "Dana Reyes"))
	require.NoError(t, err)

	_, err = svc.AddStaff(staffInput("EMP001", "Other Person"))
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, utils.GetCode(err))
}

func TestAddStaffValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(db)

	cases := []struct {
		name   string
		mutate func(*AddStaffInput)
	}{
		{"missing employee id", func(in *AddStaffInput) { in.EmployeeID = "  " }},
		{"missing name", func(in *AddStaffInput) { in.Name = "" }},
		{"bad join date", func(in *AddStaffInput) { in.JoinDate = "01/03/2024" }},
		{"bad salary", func(in *AddStaffInput) { in.BaseSalary = "lots" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := staffInput("EMP010", "Valid Name")
			tc.mutate(&in)
			_, err := svc.AddStaff(in)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, utils.GetCode(err))
		})
	}

	var count int64
	db.Model(&models.StaffMember{}).Count(&count)
	assert.Zero(t, count)
}

func TestListStaffOrderedByName(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(db)

	for _, m := range []AddStaffInput{
		staffInput("EMP003", "Carol"),
		staffInput("EMP001", "Alice"),
		staffInput("EMP002", "Bob"),
	} {
		_, err := svc.AddStaff(m)
		require.NoError(t, err)
	}

	staff, err := svc.ListStaff()
	require.NoError(t, err)
	require.Len(t, staff, 3)
	assert.Equal(t, "Alice", staff[0].Name)
	assert.Equal(t, "Bob", staff[1].Name)
	assert.Equal(t, "Carol", staff[2].Name)
}

func TestPreviewSalary(t *testing.T) {
	db := newTestDB(t)
	svc := NewPayrollService(db, NewStaffService(db))

	breakdown, err := svc.PreviewSalary("3000", "500", "200")
	require.NoError(t, err)
	assert.True(t, breakdown.NetSalary.Equal(dec("3300")), "net %s", breakdown.NetSalary)

	// negative adjustments are legal payroll corrections
	breakdown, err = svc.PreviewSalary("3000", "-100", "-50")
	require.NoError(t, err)
	assert.True(t, breakdown.NetSalary.Equal(dec("2950")))

	_, err = svc.PreviewSalary("3000", "bonus", "0")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, utils.GetCode(err))
}

func TestProcessSalaryAppends(t *testing.T) {
	db := newTestDB(t)
	staff := NewStaffService(db)
	payroll := NewPayrollService(db, staff)

	_, err := staff.AddStaff(staffInput("EMP001", "Dana Reyes"))
	require.NoError(t, err)

	first, err := payroll.ProcessSalary("EMP001", "3000", "500", "200", "Bank Transfer", "March payroll")
	require.NoError(t, err)
	assert.True(t, first.NetSalary.Equal(dec("3300")))
	assert.True(t, first.PaymentDate.Equal(today()))

	// a second run on the same day is a new row, not an overwrite
	second, err := payroll.ProcessSalary("EMP001", "3000", "0", "0", "Cash", "correction")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	history, err := payroll.SalaryHistory("EMP001")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID, "latest payment first")
}

func TestProcessSalaryUnknownEmployee(t *testing.T) {
	db := newTestDB(t)
	payroll := NewPayrollService(db, NewStaffService(db))

	_, err := payroll.ProcessSalary("EMP404", "3000", "0", "0", "Cash", "")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, utils.GetCode(err))

	_, err = payroll.SalaryHistory("EMP404")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, utils.GetCode(err))
}
