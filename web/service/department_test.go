package service

import (
	"errors"
	"testing"

	"staffdir/database"
	"staffdir/database/model"

	"github.com/stretchr/testify/assert"
)

func TestDepartmentCRUD(t *testing.T) {
	setup()
	defer teardown()

	service := DepartmentService{}

	department := &model.Department{Name: "Sales"}
	err := service.SaveDepartment(department)
	assert.NoError(t, err)
	assert.NotZero(t, department.Id)

	got, err := service.GetDepartment(department.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Sales", got.Name)

	byName, err := service.GetDepartmentByName("Sales")
	assert.NoError(t, err)
	assert.Equal(t, department.Id, byName.Id)

	err = service.DelDepartment(department.Id)
	assert.NoError(t, err)
	_, err = service.GetDepartment(department.Id)
	assert.True(t, database.IsNotFound(err))
}

func TestSaveDepartmentDuplicateName(t *testing.T) {
	setup()
	defer teardown()

	service := DepartmentService{}

	err := service.SaveDepartment(&model.Department{Name: "Sales"})
	assert.NoError(t, err)

	// Second save of the same name fails and leaves the store unchanged
	err = service.SaveDepartment(&model.Department{Name: "Sales"})
	assert.ErrorIs(t, err, ErrDepartmentExists)

	count, err := service.CountDepartments()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSaveDepartmentRename(t *testing.T) {
	setup()
	defer teardown()

	service := DepartmentService{}

	department := &model.Department{Name: "Sales"}
	assert.NoError(t, service.SaveDepartment(department))

	// Resaving the same record under its own name is not a collision
	assert.NoError(t, service.SaveDepartment(department))

	// Renaming onto another department's name is
	other := &model.Department{Name: "IT"}
	assert.NoError(t, service.SaveDepartment(other))
	other.Name = "Sales"
	assert.ErrorIs(t, service.SaveDepartment(other), ErrDepartmentExists)
}

func TestIsDuplicateNameErr(t *testing.T) {
	// The error shape sqlite produces when a concurrent save loses the
	// race against the unique index
	err := errors.New("UNIQUE constraint failed: departments.name")
	assert.True(t, isDuplicateNameErr(err))

	assert.False(t, isDuplicateNameErr(nil))
	assert.False(t, isDuplicateNameErr(errors.New("database is locked")))
}

func TestSaveDepartmentValidation(t *testing.T) {
	setup()
	defer teardown()

	service := DepartmentService{}

	var verrs model.ValidationError
	err := service.SaveDepartment(&model.Department{Name: "X"})
	assert.ErrorAs(t, err, &verrs)

	err = service.SaveDepartment(&model.Department{Name: "  "})
	assert.ErrorAs(t, err, &verrs)

	count, _ := service.CountDepartments()
	assert.Zero(t, count)
}

func TestDeleteDepartmentKeepsEmployees(t *testing.T) {
	setup()
	defer teardown()

	departmentService := DepartmentService{}
	employeeService := EmployeeService{}

	department := &model.Department{Name: "Sales"}
	assert.NoError(t, departmentService.SaveDepartment(department))
	assert.NoError(t, employeeService.AddEmployee(&model.Employee{
		Name:        "Ann",
		Department:  "Sales",
		Designation: "Manager",
		Contact:     "1234567890",
	}))

	// Department is a free-text label on employees, no cascade
	assert.NoError(t, departmentService.DelDepartment(department.Id))
	employees, err := employeeService.GetEmployeesByDepartment("Sales")
	assert.NoError(t, err)
	assert.Len(t, employees, 1)
}
