package tenant

import "time"

type Tenant struct {
	ID        string
	Name      string
	Username  string
	Timezone  string
	LogoURL   *string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
