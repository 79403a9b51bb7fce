// Package controller provides the HTTP request handlers for the
// staffdir web panel.
package controller

import (
	"net/http"

	"staffdir/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides common functionality for all controllers,
// including the session gate.
type BaseController struct{}

// checkLogin guards protected routes: anonymous requests are redirected
// to the login page, AJAX requests get a 401 instead.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		if isAjax(c) {
			pureJsonMsg(c, http.StatusUnauthorized, false, "Please log in again")
		} else {
			c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"login")
		}
		c.Abort()
	} else {
		c.Next()
	}
}
