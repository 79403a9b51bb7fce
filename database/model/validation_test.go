package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validEmployee() Employee {
	return Employee{
		Name:        "Ann Smith",
		Department:  "Sales",
		Designation: "Manager",
		Contact:     "1234567890",
	}
}

func TestEmployeeValidate(t *testing.T) {
	e := validEmployee()
	assert.Empty(t, e.Validate())

	e = validEmployee()
	e.Name = "A"
	errs := e.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)

	e = validEmployee()
	e.Name = "   "
	errs = e.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "Name is required", errs[0].Message)

	e = validEmployee()
	e.Department = ""
	e.Designation = " "
	errs = e.Validate()
	assert.Len(t, errs, 2)
}

func TestValidateCountsCharactersNotBytes(t *testing.T) {
	// A one-character multibyte name is below the min bound even though
	// it is several bytes long
	e := validEmployee()
	e.Name = "李"
	errs := e.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)

	// 60 CJK characters are within the 100-character max bound despite
	// exceeding 100 bytes
	e = validEmployee()
	e.Name = strings.Repeat("李", 60)
	assert.Empty(t, e.Validate())

	e = validEmployee()
	e.Name = strings.Repeat("李", 101)
	assert.Len(t, e.Validate(), 1)

	d := Department{Name: "研"}
	assert.Len(t, d.Validate(), 1)
	d.Name = strings.Repeat("研", 60)
	assert.Empty(t, d.Validate())
}

func TestEmployeeValidateContact(t *testing.T) {
	cases := []struct {
		contact string
		valid   bool
	}{
		{"1234567890", true},
		{"123456789012345", true},
		{"123456789", false},
		{"1234567890123456", false},
		{"12345abcde", false},
		{"+1234567890", false},
		{"", false},
	}
	for _, tc := range cases {
		e := validEmployee()
		e.Contact = tc.contact
		errs := e.Validate()
		if tc.valid {
			assert.Empty(t, errs, "contact %q", tc.contact)
		} else {
			assert.NotEmpty(t, errs, "contact %q", tc.contact)
		}
	}
}

func TestDepartmentValidate(t *testing.T) {
	d := Department{Name: "Sales"}
	assert.Empty(t, d.Validate())

	d.Name = "S"
	assert.Len(t, d.Validate(), 1)

	d.Name = ""
	errs := d.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "Department name is required", errs[0].Message)
}

func TestValidationErrorMessage(t *testing.T) {
	verrs := ValidationError{
		{Field: "name", Message: "Name is required"},
		{Field: "contact", Message: "Contact must be 10-15 digits"},
	}
	assert.Equal(t, "Name is required; Contact must be 10-15 digits", verrs.Error())
}
