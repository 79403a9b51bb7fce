package model

type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"password"`
}

type Department struct {
	Id   int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" form:"name" gorm:"unique;not null"`
}

// Employee records a staff member. Department is a denormalized label,
// not a foreign key: deleting a Department leaves employees carrying
// its name untouched.
type Employee struct {
	Id          int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" form:"name" gorm:"not null"`
	Department  string `json:"department" form:"department" gorm:"not null"`
	Designation string `json:"designation" form:"designation" gorm:"not null"`
	Contact     string `json:"contact" form:"contact" gorm:"not null"`
}
