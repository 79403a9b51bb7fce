package service

import (
	"staffdir/database/model"
	"staffdir/web/entity"
)

type DashboardService struct {
	employeeService   EmployeeService
	departmentService DepartmentService
}

// Snapshot builds the dashboard totals and chart payload. Employees
// whose department string matches no known department count toward
// TotalEmployees but appear in no chart bucket.
func (s *DashboardService) Snapshot() (*entity.DashboardSnapshot, error) {
	employees, err := s.employeeService.GetEmployees()
	if err != nil {
		return nil, err
	}
	departments, err := s.departmentService.GetDepartments()
	if err != nil {
		return nil, err
	}

	return &entity.DashboardSnapshot{
		TotalEmployees:   int64(len(employees)),
		TotalDepartments: int64(len(departments)),
		ChartData:        BuildChart(employees, departments),
	}, nil
}

// BuildChart groups employees by department name and emits one label
// per known department, in the departments' own order, with its count
// or zero. Department strings not in the department list never create
// buckets.
func BuildChart(employees []*model.Employee, departments []*model.Department) entity.ChartData {
	counts := make(map[string]int64, len(departments))
	for _, e := range employees {
		counts[e.Department]++
	}

	chart := entity.ChartData{
		Labels: make([]string, 0, len(departments)),
		Data:   make([]int64, 0, len(departments)),
	}
	for _, d := range departments {
		chart.Labels = append(chart.Labels, d.Name)
		chart.Data = append(chart.Data, counts[d.Name])
	}
	return chart
}
