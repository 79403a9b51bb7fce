package service

import (
	"strings"

	"staffdir/database"
	"staffdir/database/model"
	"staffdir/util/common"

	"gorm.io/gorm"
)

// ErrDepartmentExists is returned when saving a department whose name
// collides with a different existing department.
var ErrDepartmentExists = common.NewErrorf("department name already exists")

// isDuplicateNameErr reports whether err is the sqlite unique-index
// violation on the department name. Concurrent saves can race past the
// in-transaction check; the loser fails here instead.
func isDuplicateNameErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

type DepartmentService struct{}

func (s *DepartmentService) GetDepartments() ([]*model.Department, error) {
	db := database.GetDB()
	var departments []*model.Department
	err := db.Model(model.Department{}).Order("id asc").Find(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}

func (s *DepartmentService) GetDepartment(id int) (*model.Department, error) {
	db := database.GetDB()
	department := &model.Department{}
	err := db.Model(model.Department{}).First(department, id).Error
	if err != nil {
		return nil, err
	}
	return department, nil
}

func (s *DepartmentService) GetDepartmentByName(name string) (*model.Department, error) {
	db := database.GetDB()
	department := &model.Department{}
	err := db.Model(model.Department{}).Where("name = ?", name).First(department).Error
	if err != nil {
		return nil, err
	}
	return department, nil
}

// SaveDepartment validates and persists a department. The name
// uniqueness check runs inside a transaction so that two concurrent
// saves of the same name cannot both succeed; the unique index on the
// name column backs it at the storage level.
func (s *DepartmentService) SaveDepartment(department *model.Department) error {
	if errs := department.Validate(); len(errs) > 0 {
		return model.ValidationError(errs)
	}
	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		existing := &model.Department{}
		err := tx.Model(model.Department{}).
			Where("name = ?", department.Name).
			First(existing).
			Error
		if err == nil && existing.Id != department.Id {
			return ErrDepartmentExists
		}
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}
		if err := tx.Save(department).Error; err != nil {
			if isDuplicateNameErr(err) {
				return ErrDepartmentExists
			}
			return err
		}
		return nil
	})
}

// DelDepartment removes the department if present; unknown ids are a
// no-op. Employees carrying the department's name are not touched.
func (s *DepartmentService) DelDepartment(id int) error {
	db := database.GetDB()
	return db.Delete(&model.Department{}, id).Error
}

func (s *DepartmentService) CountDepartments() (int64, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(model.Department{}).Count(&count).Error
	return count, err
}
