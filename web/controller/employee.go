package controller

import (
	"errors"
	"strconv"
	"strings"

	"staffdir/database"
	"staffdir/database/model"
	"staffdir/web/service"
	"staffdir/web/session"

	"github.com/gin-gonic/gin"
)

// EmployeeController handles the employee listing, forms and mutations.
type EmployeeController struct {
	BaseController

	employeeService   service.EmployeeService
	departmentService service.DepartmentService
}

func NewEmployeeController(g *gin.RouterGroup) *EmployeeController {
	a := &EmployeeController{}
	a.initRouter(g)
	return a
}

func (a *EmployeeController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/employees")
	g.Use(a.checkLogin)

	g.GET("", a.list)
	g.GET("/add", a.showAddForm)
	g.POST("/add", a.add)
	g.GET("/edit/:id", a.showEditForm)
	g.POST("/update/:id", a.update)
	g.GET("/delete/:id", a.del)
	g.GET("/view/:id", a.view)
	g.GET("/export", a.export)
}

// list renders the employee listing. A search query takes precedence
// over the department filter; with neither, all employees are shown.
func (a *EmployeeController) list(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))
	department := strings.TrimSpace(c.Query("department"))

	var employees []*model.Employee
	var err error
	switch {
	case search != "":
		employees, err = a.employeeService.SearchEmployees(search)
	case department != "":
		employees, err = a.employeeService.GetEmployeesByDepartment(department)
	default:
		employees, err = a.employeeService.GetEmployees()
	}
	if err != nil {
		a.renderList(c, nil, nil, search, department, "Failed to load employees")
		return
	}

	departments, err := a.departmentService.GetDepartments()
	if err != nil {
		a.renderList(c, employees, nil, search, department, "Failed to load departments")
		return
	}

	a.renderList(c, employees, departments, search, department, "")
}

func (a *EmployeeController) renderList(c *gin.Context, employees []*model.Employee, departments []*model.Department, search string, department string, errMsg string) {
	data := gin.H{
		"employees":          employees,
		"departments":        departments,
		"searchQuery":        search,
		"selectedDepartment": department,
	}
	if errMsg != "" {
		data["error"] = errMsg
	}
	html(c, "employees.html", "Employees", data)
}

func (a *EmployeeController) showAddForm(c *gin.Context) {
	a.renderForm(c, &model.Employee{}, nil, "")
}

func (a *EmployeeController) add(c *gin.Context) {
	employee := &model.Employee{}
	if err := c.ShouldBind(employee); err != nil {
		a.renderForm(c, employee, nil, "Invalid form data")
		return
	}
	employee.Id = 0

	if err := a.employeeService.AddEmployee(employee); err != nil {
		var verrs model.ValidationError
		if errors.As(err, &verrs) {
			a.renderForm(c, employee, verrs, "")
			return
		}
		a.renderForm(c, employee, nil, "Error adding employee: "+err.Error())
		return
	}

	session.SetFlash(c, "success", "Employee added successfully")
	redirect(c, "employees")
}

func (a *EmployeeController) showEditForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		session.SetFlash(c, "error", "Invalid employee ID")
		redirect(c, "employees")
		return
	}

	employee, err := a.employeeService.GetEmployee(id)
	if err != nil {
		session.SetFlash(c, "error", "Employee not found")
		redirect(c, "employees")
		return
	}
	a.renderForm(c, employee, nil, "")
}

func (a *EmployeeController) update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		session.SetFlash(c, "error", "Invalid employee ID")
		redirect(c, "employees")
		return
	}

	employee := &model.Employee{}
	if err := c.ShouldBind(employee); err != nil {
		a.renderForm(c, employee, nil, "Invalid form data")
		return
	}
	employee.Id = id

	if err := a.employeeService.UpdateEmployee(employee); err != nil {
		var verrs model.ValidationError
		switch {
		case errors.As(err, &verrs):
			a.renderForm(c, employee, verrs, "")
		case database.IsNotFound(err):
			session.SetFlash(c, "error", "Employee not found")
			redirect(c, "employees")
		default:
			a.renderForm(c, employee, nil, "Error updating employee: "+err.Error())
		}
		return
	}

	session.SetFlash(c, "success", "Employee updated successfully")
	redirect(c, "employees")
}

func (a *EmployeeController) del(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		session.SetFlash(c, "error", "Invalid employee ID")
		redirect(c, "employees")
		return
	}

	if err := a.employeeService.DelEmployee(id); err != nil {
		session.SetFlash(c, "error", "Error deleting employee: "+err.Error())
	} else {
		session.SetFlash(c, "success", "Employee deleted successfully")
	}
	redirect(c, "employees")
}

func (a *EmployeeController) view(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		session.SetFlash(c, "error", "Invalid employee ID")
		redirect(c, "employees")
		return
	}

	employee, err := a.employeeService.GetEmployee(id)
	if err != nil {
		session.SetFlash(c, "error", "Employee not found")
		redirect(c, "employees")
		return
	}
	html(c, "employee-details.html", "Employee Details", gin.H{"employee": employee})
}

// export is a stub kept from the system this panel replaces.
func (a *EmployeeController) export(c *gin.Context) {
	session.SetFlash(c, "success", "Export functionality coming soon!")
	redirect(c, "employees")
}

func (a *EmployeeController) renderForm(c *gin.Context, employee *model.Employee, fieldErrors model.ValidationError, errMsg string) {
	departments, err := a.departmentService.GetDepartments()
	if err != nil {
		session.SetFlash(c, "error", "Failed to load departments")
		redirect(c, "employees")
		return
	}

	data := gin.H{
		"employee":    employee,
		"departments": departments,
		"fieldErrors": fieldErrors,
	}
	if errMsg != "" {
		data["error"] = errMsg
	}
	html(c, "employee-form.html", "Employee Form", data)
}
