package controller

import (
	"staffdir/web/entity"
	"staffdir/web/service"

	"github.com/gin-gonic/gin"
)

// DashboardController renders the dashboard totals and chart.
type DashboardController struct {
	BaseController

	dashboardService service.DashboardService
}

func NewDashboardController(g *gin.RouterGroup) *DashboardController {
	a := &DashboardController{}
	a.initRouter(g)
	return a
}

func (a *DashboardController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/dashboard")
	g.Use(a.checkLogin)

	g.GET("", a.dashboard)
	g.GET("/chart", a.chart)
}

func (a *DashboardController) dashboard(c *gin.Context) {
	snapshot, err := a.dashboardService.Snapshot()
	data := gin.H{}
	if err != nil {
		snapshot = &entity.DashboardSnapshot{}
		data["error"] = "Failed to load dashboard"
	}
	data["totalEmployees"] = snapshot.TotalEmployees
	data["totalDepartments"] = snapshot.TotalDepartments
	data["chartData"] = snapshot.ChartData
	html(c, "dashboard.html", "Dashboard", data)
}

// chart serves the chart payload as JSON for the dashboard script.
func (a *DashboardController) chart(c *gin.Context) {
	snapshot, err := a.dashboardService.Snapshot()
	if err != nil {
		jsonMsg(c, "Failed to load chart data", err)
		return
	}
	jsonObj(c, snapshot.ChartData, nil)
}
