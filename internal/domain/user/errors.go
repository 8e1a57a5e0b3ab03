package user

import "errors"

var (
	ErrInvalidToken            = errors.New("invalid or missing access token")
	ErrOwnerAccessRequired     = errors.New("owner access required")
	ErrManagerAccessRequired   = errors.New("manager access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrTenantIDRequired        = errors.New("tenant ID is required")
)
