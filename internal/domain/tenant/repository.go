package tenant

import "context"

type TenantRepository interface {
	Create(ctx context.Context, t Tenant) (Tenant, error)
	GetByID(ctx context.Context, id string) (Tenant, error)
	List(ctx context.Context) ([]Tenant, error)
	Update(ctx context.Context, req UpdateTenantRequest) (Tenant, error)
	SoftDelete(ctx context.Context, id string) error
}

type TenantService interface {
	Create(ctx context.Context, req CreateTenantRequest) (TenantResponse, error)
	Get(ctx context.Context, id string) (TenantResponse, error)
	List(ctx context.Context) ([]TenantResponse, error)
	Update(ctx context.Context, req UpdateTenantRequest) (TenantResponse, error)
	Delete(ctx context.Context, id string) error
}
