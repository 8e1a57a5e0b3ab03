package tenant

import "errors"

var (
	ErrTenantNotFound     = errors.New("tenant not found")
	ErrTenantNameRequired = errors.New("tenant name is required")
	ErrUsernameExists     = errors.New("tenant username already taken")
)
