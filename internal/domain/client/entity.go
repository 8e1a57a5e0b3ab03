package client

import "time"

type Client struct {
	ID          string
	TenantID    string
	FullName    string
	Email       *string
	PhoneNumber *string
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
