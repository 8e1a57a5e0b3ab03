package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered in this tenant")
	ErrNameRequired     = errors.New("employee name is required")
)
