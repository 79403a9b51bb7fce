package service

import (
	"testing"

	"staffdir/database/model"

	"github.com/stretchr/testify/assert"
)

func TestBuildChart(t *testing.T) {
	departments := []*model.Department{
		{Id: 1, Name: "Sales"},
		{Id: 2, Name: "IT"},
	}
	employees := []*model.Employee{
		{Name: "Ann", Department: "Sales"},
		{Name: "Bob", Department: "Sales"},
		{Name: "Cara", Department: "HR"},
	}

	chart := BuildChart(employees, departments)

	// Labels follow the departments' own order; unknown department
	// strings ("HR") never create buckets
	assert.Equal(t, []string{"Sales", "IT"}, chart.Labels)
	assert.Equal(t, []int64{2, 0}, chart.Data)
}

func TestBuildChartEmpty(t *testing.T) {
	chart := BuildChart(nil, nil)
	assert.Empty(t, chart.Labels)
	assert.Empty(t, chart.Data)
}

func TestDashboardSnapshot(t *testing.T) {
	setup()
	defer teardown()

	departmentService := DepartmentService{}
	employeeService := EmployeeService{}
	dashboardService := DashboardService{}

	assert.NoError(t, departmentService.SaveDepartment(&model.Department{Name: "Sales"}))
	assert.NoError(t, departmentService.SaveDepartment(&model.Department{Name: "IT"}))

	employees := []*model.Employee{
		{Name: "Ann", Department: "Sales", Designation: "Manager", Contact: "1234567890"},
		{Name: "Bob", Department: "Sales", Designation: "Rep", Contact: "1234567891"},
		{Name: "Cara", Department: "HR", Designation: "Clerk", Contact: "1234567892"},
	}
	for _, e := range employees {
		assert.NoError(t, employeeService.AddEmployee(e))
	}

	snapshot, err := dashboardService.Snapshot()
	assert.NoError(t, err)

	// The orphaned "HR" employee counts in the total but not the chart
	assert.Equal(t, int64(3), snapshot.TotalEmployees)
	assert.Equal(t, int64(2), snapshot.TotalDepartments)
	assert.Equal(t, []string{"Sales", "IT"}, snapshot.ChartData.Labels)
	assert.Equal(t, []int64{2, 0}, snapshot.ChartData.Data)
}
