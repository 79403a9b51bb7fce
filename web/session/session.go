package session

import (
	"encoding/gob"

	"staffdir/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	loginUser    = "LOGIN_USER"
	flashSuccess = "FLASH_SUCCESS"
	flashError   = "FLASH_ERROR"
)

func init() {
	gob.Register(model.User{})
}

func SetLoginUser(c *gin.Context, user *model.User) error {
	s := sessions.Default(c)
	s.Set(loginUser, *user)
	return s.Save()
}

func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	return s.Save()
}

func GetLoginUser(c *gin.Context) *model.User {
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if user, ok := obj.(model.User); ok {
			return &user
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}

// SetFlash stores a one-time status message shown on the next rendered
// page. kind is "success" or "error".
func SetFlash(c *gin.Context, kind string, msg string) error {
	s := sessions.Default(c)
	if kind == "success" {
		s.Set(flashSuccess, msg)
	} else {
		s.Set(flashError, msg)
	}
	return s.Save()
}

// PopFlashes returns and clears the pending flash messages.
func PopFlashes(c *gin.Context) (success string, errMsg string) {
	s := sessions.Default(c)
	if v, ok := s.Get(flashSuccess).(string); ok {
		success = v
	}
	if v, ok := s.Get(flashError).(string); ok {
		errMsg = v
	}
	if success != "" || errMsg != "" {
		s.Delete(flashSuccess)
		s.Delete(flashError)
		_ = s.Save()
	}
	return success, errMsg
}
