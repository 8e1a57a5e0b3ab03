package catalog

import "context"

type ServiceRepository interface {
	Create(ctx context.Context, s Service) (Service, error)
	GetByID(ctx context.Context, id, tenantID string) (Service, error)
	GetByTenantID(ctx context.Context, tenantID string, filter ServiceFilter) ([]Service, int64, error)
	Update(ctx context.Context, req UpdateServiceRequest) (Service, error)
	SoftDelete(ctx context.Context, id, tenantID string) error
}
