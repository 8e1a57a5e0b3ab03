package client

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrNameRequired   = errors.New("client name is required")
	ErrEmailExists    = errors.New("email already registered in this tenant")
)
