package controller

import (
	"errors"
	"strconv"
	"strings"

	"staffdir/database/model"
	"staffdir/web/service"
	"staffdir/web/session"

	"github.com/gin-gonic/gin"
)

// DepartmentController handles the department listing and mutations.
type DepartmentController struct {
	BaseController

	departmentService service.DepartmentService
}

func NewDepartmentController(g *gin.RouterGroup) *DepartmentController {
	a := &DepartmentController{}
	a.initRouter(g)
	return a
}

func (a *DepartmentController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/departments")
	g.Use(a.checkLogin)

	g.GET("", a.list)
	g.POST("/add", a.add)
	g.GET("/delete/:id", a.del)
}

func (a *DepartmentController) list(c *gin.Context) {
	departments, err := a.departmentService.GetDepartments()
	data := gin.H{"departments": departments}
	if err != nil {
		data["error"] = "Failed to load departments"
	}
	html(c, "departments.html", "Departments", data)
}

func (a *DepartmentController) add(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		session.SetFlash(c, "error", "Department name is required")
		redirect(c, "departments")
		return
	}

	department := &model.Department{Name: name}
	err := a.departmentService.SaveDepartment(department)
	var verrs model.ValidationError
	switch {
	case err == nil:
		session.SetFlash(c, "success", "Department added successfully")
	case errors.Is(err, service.ErrDepartmentExists):
		session.SetFlash(c, "error", "Department name already exists")
	case errors.As(err, &verrs):
		session.SetFlash(c, "error", verrs.Error())
	default:
		session.SetFlash(c, "error", "Error adding department: "+err.Error())
	}
	redirect(c, "departments")
}

func (a *DepartmentController) del(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		session.SetFlash(c, "error", "Invalid department ID")
		redirect(c, "departments")
		return
	}

	if err := a.departmentService.DelDepartment(id); err != nil {
		session.SetFlash(c, "error", "Error deleting department: "+err.Error())
	} else {
		session.SetFlash(c, "success", "Department deleted successfully")
	}
	redirect(c, "departments")
}
