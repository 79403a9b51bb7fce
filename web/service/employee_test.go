package service

import (
	"testing"

	"staffdir/database"
	"staffdir/database/model"

	"github.com/stretchr/testify/assert"
)

func TestEmployeeCRUD(t *testing.T) {
	setup()
	defer teardown()

	service := EmployeeService{}

	// Add assigns an id
	employee := &model.Employee{
		Name:        "Ann Smith",
		Department:  "Sales",
		Designation: "Manager",
		Contact:     "1234567890",
	}
	err := service.AddEmployee(employee)
	assert.NoError(t, err)
	assert.NotZero(t, employee.Id)

	// Round trip: all fields survive
	got, err := service.GetEmployee(employee.Id)
	assert.NoError(t, err)
	assert.Equal(t, employee.Name, got.Name)
	assert.Equal(t, employee.Department, got.Department)
	assert.Equal(t, employee.Designation, got.Designation)
	assert.Equal(t, employee.Contact, got.Contact)

	// Update
	got.Designation = "Director"
	err = service.UpdateEmployee(got)
	assert.NoError(t, err)
	updated, _ := service.GetEmployee(got.Id)
	assert.Equal(t, "Director", updated.Designation)

	// Delete
	err = service.DelEmployee(got.Id)
	assert.NoError(t, err)
	_, err = service.GetEmployee(got.Id)
	assert.True(t, database.IsNotFound(err))
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	setup()
	defer teardown()

	service := EmployeeService{}

	err := service.UpdateEmployee(&model.Employee{
		Id:          9999,
		Name:        "Ghost",
		Department:  "Sales",
		Designation: "Clerk",
		Contact:     "1234567890",
	})
	assert.True(t, database.IsNotFound(err))
}

func TestDeleteEmployeeIdempotent(t *testing.T) {
	setup()
	defer teardown()

	service := EmployeeService{}

	err := service.AddEmployee(&model.Employee{
		Name:        "Ann Smith",
		Department:  "Sales",
		Designation: "Manager",
		Contact:     "1234567890",
	})
	assert.NoError(t, err)

	// Deleting an id that never existed is a no-op
	err = service.DelEmployee(9999)
	assert.NoError(t, err)

	count, err := service.CountEmployees()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAddEmployeeValidation(t *testing.T) {
	setup()
	defer teardown()

	service := EmployeeService{}

	err := service.AddEmployee(&model.Employee{
		Name:        "A",
		Department:  "",
		Designation: "",
		Contact:     "12ab",
	})
	var verrs model.ValidationError
	assert.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 4)

	// Nothing was persisted
	count, _ := service.CountEmployees()
	assert.Zero(t, count)
}

func TestGetEmployeesByDepartment(t *testing.T) {
	setup()
	defer teardown()

	service := EmployeeService{}
	seedEmployees(t, &service)

	sales, err := service.GetEmployeesByDepartment("Sales")
	assert.NoError(t, err)
	assert.Len(t, sales, 2)
	for _, e := range sales {
		assert.Equal(t, "Sales", e.Department)
	}
}

func TestSearchEmployees(t *testing.T) {
	setup()
	defer teardown()

	service := EmployeeService{}
	seedEmployees(t, &service)

	// Substring of department, case-folded
	matched, err := service.SearchEmployees("sa")
	assert.NoError(t, err)
	assert.Len(t, matched, 2)
	assert.Equal(t, "Ann", matched[0].Name)
	assert.Equal(t, "Cara", matched[1].Name)

	// Substring of designation
	matched, err = service.SearchEmployees("ENGINEER")
	assert.NoError(t, err)
	assert.Len(t, matched, 1)
	assert.Equal(t, "Bob", matched[0].Name)

	// Blank query returns everything
	matched, err = service.SearchEmployees("   ")
	assert.NoError(t, err)
	assert.Len(t, matched, 3)
}

func TestFilterEmployeesOrder(t *testing.T) {
	employees := []*model.Employee{
		{Name: "Zed", Department: "Sales", Designation: "Rep"},
		{Name: "Ann", Department: "IT", Designation: "Engineer"},
		{Name: "Sam", Department: "HR", Designation: "Clerk"},
	}

	// Input order is preserved
	matched := FilterEmployees("s", employees)
	assert.Equal(t, []string{"Zed", "Sam"}, []string{matched[0].Name, matched[1].Name})

	matched = FilterEmployees("no-such-thing", employees)
	assert.Empty(t, matched)
}

func seedEmployees(t *testing.T, service *EmployeeService) {
	t.Helper()
	employees := []*model.Employee{
		{Name: "Ann", Department: "Sales", Designation: "Manager", Contact: "1234567890"},
		{Name: "Bob", Department: "IT", Designation: "Engineer", Contact: "1234567891"},
		{Name: "Cara", Department: "Sales", Designation: "Rep", Contact: "1234567892"},
	}
	for _, e := range employees {
		assert.NoError(t, service.AddEmployee(e))
	}
}
