package controller

import (
	"errors"
	"net/http"
	"strings"

	"staffdir/config"
	"staffdir/logger"
	"staffdir/web/service"
	"staffdir/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// IndexController handles the root, login and logout routes.
type IndexController struct {
	BaseController

	userService service.UserService
}

func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/login", a.showLogin)
	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
}

// index redirects logged-in operators to the dashboard, everyone else
// to the login page.
func (a *IndexController) index(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"dashboard")
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"login")
}

func (a *IndexController) showLogin(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"dashboard")
		return
	}
	html(c, "login.html", "Login", nil)
}

// login authenticates the operator and creates the session.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm

	if err := c.ShouldBind(&form); err != nil {
		session.SetFlash(c, "error", "Username and password are required")
		redirect(c, "login")
		return
	}
	if strings.TrimSpace(form.Username) == "" || strings.TrimSpace(form.Password) == "" {
		session.SetFlash(c, "error", "Username and password are required")
		redirect(c, "login")
		return
	}

	user, err := a.userService.CheckUser(form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			logger.Warningf("wrong credentials for %q, IP: %q", form.Username, getRemoteIp(c))
			session.SetFlash(c, "error", "Invalid username or password")
		} else {
			logger.Warning("login err:", err)
			session.SetFlash(c, "error", "Login failed, please try again later")
		}
		redirect(c, "login")
		return
	}

	if err := session.SetMaxAge(c, config.GetSessionMaxAge()*60); err != nil {
		logger.Warning("Unable to set session max age:", err)
	}
	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("Unable to save session:", err)
	}

	logger.Infof("%s logged in successfully, IP: %s", user.Username, getRemoteIp(c))
	redirect(c, "dashboard")
}

// logout discards the session and returns to the login page.
func (a *IndexController) logout(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out successfully", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("Unable to clear session:", err)
	}
	c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"login")
}
