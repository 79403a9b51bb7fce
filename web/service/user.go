// Package service provides business logic for the staffdir panel:
// user authentication, employee and department management, and the
// dashboard aggregation.
package service

import (
	"staffdir/database"
	"staffdir/database/model"
	"staffdir/logger"
	"staffdir/util/common"

	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned when a login attempt does not match
// a stored user.
var ErrInvalidCredentials = common.NewErrorf("invalid username or password")

type UserService struct{}

// CheckUser authenticates a login attempt. Credentials are compared as
// plain text against the stored record, matching the system this panel
// replaces.
func (s *UserService) CheckUser(username string, password string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil, err
	}

	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) GetUserByUsername(username string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SaveUser(user *model.User) error {
	db := database.GetDB()
	return db.Save(user).Error
}
