package client

import "context"

type ClientRepository interface {
	Create(ctx context.Context, c Client) (Client, error)
	GetByID(ctx context.Context, id, tenantID string) (Client, error)
	GetByTenantID(ctx context.Context, tenantID string, filter ClientFilter) ([]Client, int64, error)
	Update(ctx context.Context, req UpdateClientRequest) (Client, error)
	SoftDelete(ctx context.Context, id, tenantID string) error
}

type ClientService interface {
	Create(ctx context.Context, req CreateClientRequest) (ClientResponse, error)
	Get(ctx context.Context, id string) (ClientResponse, error)
	List(ctx context.Context, filter ClientFilter) ([]ClientResponse, int64, error)
	Update(ctx context.Context, req UpdateClientRequest) (ClientResponse, error)
	Delete(ctx context.Context, id string) error
}
