package catalog

import "errors"

var (
	ErrServiceNotFound   = errors.New("service not found")
	ErrServiceNameExists = errors.New("service with this name already exists")
	ErrServiceInactive   = errors.New("service is not active")
)
