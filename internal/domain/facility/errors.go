package facility

import "errors"

var (
	ErrFacilityNotFound   = errors.New("facility not found")
	ErrFacilityNameExists = errors.New("facility with this name already exists")
)
