package service

import (
	"strings"

	"staffdir/database"
	"staffdir/database/model"
)

type EmployeeService struct{}

func (s *EmployeeService) GetEmployees() ([]*model.Employee, error) {
	db := database.GetDB()
	var employees []*model.Employee
	err := db.Model(model.Employee{}).Order("id asc").Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *EmployeeService) GetEmployee(id int) (*model.Employee, error) {
	db := database.GetDB()
	employee := &model.Employee{}
	err := db.Model(model.Employee{}).First(employee, id).Error
	if err != nil {
		return nil, err
	}
	return employee, nil
}

// AddEmployee validates and inserts a new employee, assigning its id.
func (s *EmployeeService) AddEmployee(employee *model.Employee) error {
	if errs := employee.Validate(); len(errs) > 0 {
		return model.ValidationError(errs)
	}
	db := database.GetDB()
	return db.Create(employee).Error
}

// UpdateEmployee validates and overwrites the employee with the given
// id. Updating an id that does not exist fails with
// gorm.ErrRecordNotFound.
func (s *EmployeeService) UpdateEmployee(employee *model.Employee) error {
	if errs := employee.Validate(); len(errs) > 0 {
		return model.ValidationError(errs)
	}
	db := database.GetDB()
	err := db.Model(model.Employee{}).First(&model.Employee{}, employee.Id).Error
	if err != nil {
		return err
	}
	return db.Save(employee).Error
}

// DelEmployee removes the employee if present. Deleting an unknown id
// is a no-op, not an error.
func (s *EmployeeService) DelEmployee(id int) error {
	db := database.GetDB()
	return db.Delete(&model.Employee{}, id).Error
}

func (s *EmployeeService) GetEmployeesByDepartment(department string) ([]*model.Employee, error) {
	db := database.GetDB()
	var employees []*model.Employee
	err := db.Model(model.Employee{}).
		Where("department = ?", department).
		Order("id asc").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *EmployeeService) CountEmployees() (int64, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(model.Employee{}).Count(&count).Error
	return count, err
}

// SearchEmployees returns employees whose name, department or
// designation contains the query, case-insensitively. A blank query
// returns all employees.
func (s *EmployeeService) SearchEmployees(query string) ([]*model.Employee, error) {
	employees, err := s.GetEmployees()
	if err != nil {
		return nil, err
	}
	return FilterEmployees(query, employees), nil
}

// FilterEmployees filters the given employees by a case-insensitive
// substring match on name, department or designation, preserving the
// input order. A blank query matches everything.
func FilterEmployees(query string, employees []*model.Employee) []*model.Employee {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return employees
	}
	matched := make([]*model.Employee, 0, len(employees))
	for _, e := range employees {
		if strings.Contains(strings.ToLower(e.Name), query) ||
			strings.Contains(strings.ToLower(e.Department), query) ||
			strings.Contains(strings.ToLower(e.Designation), query) {
			matched = append(matched, e)
		}
	}
	return matched
}
