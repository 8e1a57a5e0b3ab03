package facility

import "context"

type FacilityRepository interface {
	Create(ctx context.Context, f Facility) (Facility, error)
	GetByID(ctx context.Context, id, tenantID string) (Facility, error)
	GetByTenantID(ctx context.Context, tenantID string) ([]Facility, error)
	Update(ctx context.Context, req UpdateFacilityRequest) (Facility, error)
	SoftDelete(ctx context.Context, id, tenantID string) error
}
