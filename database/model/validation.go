package model

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// FieldError describes a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full set of field violations for an
// entity that failed validation.
type ValidationError []FieldError

func (v ValidationError) Error() string {
	var b strings.Builder
	for i, fe := range v {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fe.Message)
	}
	return b.String()
}

var contactPattern = regexp.MustCompile(`^[0-9]{10,15}$`)

// Validate checks the employee's field constraints and returns one
// error per violated field. An empty slice means the employee is valid.
func (e *Employee) Validate() []FieldError {
	var errs []FieldError

	name := strings.TrimSpace(e.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	} else if n := utf8.RuneCountInString(name); n < 2 || n > 100 {
		errs = append(errs, FieldError{Field: "name", Message: "Name must be between 2 and 100 characters"})
	}

	if strings.TrimSpace(e.Department) == "" {
		errs = append(errs, FieldError{Field: "department", Message: "Department is required"})
	}

	if strings.TrimSpace(e.Designation) == "" {
		errs = append(errs, FieldError{Field: "designation", Message: "Designation is required"})
	}

	if strings.TrimSpace(e.Contact) == "" {
		errs = append(errs, FieldError{Field: "contact", Message: "Contact is required"})
	} else if !contactPattern.MatchString(e.Contact) {
		errs = append(errs, FieldError{Field: "contact", Message: "Contact must be 10-15 digits"})
	}

	return errs
}

// Validate checks the department's field constraints.
func (d *Department) Validate() []FieldError {
	var errs []FieldError

	name := strings.TrimSpace(d.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Department name is required"})
	} else if n := utf8.RuneCountInString(name); n < 2 || n > 100 {
		errs = append(errs, FieldError{Field: "name", Message: "Department name must be between 2 and 100 characters"})
	}

	return errs
}
