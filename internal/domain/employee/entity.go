package employee

import "time"

type Employee struct {
	ID                    string
	TenantID              string
	FacilityID            *string
	FullName              string
	Email                 *string
	PhoneNumber           *string
	AvatarURL             *string
	Color                 *string // calendar column color
	IncludeInAppointments bool
	HireDate              *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             *time.Time
}
