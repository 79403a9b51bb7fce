package controller

import (
	"net"
	"net/http"
	"strings"

	"staffdir/config"
	"staffdir/logger"
	"staffdir/web/entity"
	"staffdir/web/session"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or
// remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

func jsonMsg(c *gin.Context, msg string, err error) {
	jsonMsgObj(c, msg, nil, err)
}

func jsonObj(c *gin.Context, obj any, err error) {
	jsonMsgObj(c, "", obj, err)
}

func jsonMsgObj(c *gin.Context, msg string, obj any, err error) {
	m := entity.Msg{
		Obj: obj,
	}
	if err == nil {
		m.Success = true
		if msg != "" {
			m.Msg = msg
		}
	} else {
		m.Success = false
		m.Msg = msg + " (" + err.Error() + ")"
		logger.Warning(msg+" failed: ", err)
	}
	c.JSON(http.StatusOK, m)
}

func pureJsonMsg(c *gin.Context, statusCode int, success bool, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: success,
		Msg:     msg,
	})
}

// html renders a template with the shared context: title, base path,
// logged-in username and any pending flash messages.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	data["base_path"] = c.GetString("base_path")
	data["cur_ver"] = config.GetVersion()

	if user := session.GetLoginUser(c); user != nil {
		data["username"] = user.Username
	}

	flashSuccess, flashError := session.PopFlashes(c)
	if _, ok := data["success"]; !ok && flashSuccess != "" {
		data["success"] = flashSuccess
	}
	if _, ok := data["error"]; !ok && flashError != "" {
		data["error"] = flashError
	}

	c.HTML(http.StatusOK, name, data)
}

// redirect sends the client back to a panel path below the base path,
// typically after a mutating request.
func redirect(c *gin.Context, path string) {
	c.Redirect(http.StatusFound, c.GetString("base_path")+path)
}

// isAjax checks if the request is an AJAX request.
func isAjax(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}
