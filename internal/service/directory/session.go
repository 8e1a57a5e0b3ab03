package directory

import (
	"context"

	"github.com/glowlabs/salon-backend-go/internal/domain/catalog"
	"github.com/glowlabs/salon-backend-go/internal/domain/employee"
	"github.com/glowlabs/salon-backend-go/internal/domain/facility"
	"github.com/glowlabs/salon-backend-go/internal/pkg/cache"
)

// Session is a request-scoped read-through view over the directory data an
// operation touches repeatedly: employees, services and facilities. Each
// session owns its caches; nothing is shared across requests and there is no
// ambient global state. Directory mutations happen in other requests, so a
// session never has to invalidate what it cached.
type Session struct {
	tenantID string

	employeeRepo employee.EmployeeRepository
	serviceRepo  catalog.ServiceRepository
	facilityRepo facility.FacilityRepository

	employees  *cache.Cache[string, employee.Employee]
	services   *cache.Cache[string, catalog.Service]
	facilities *cache.Cache[string, facility.Facility]
}

func NewSession(
	tenantID string,
	employeeRepo employee.EmployeeRepository,
	serviceRepo catalog.ServiceRepository,
	facilityRepo facility.FacilityRepository,
) *Session {
	return &Session{
		tenantID:     tenantID,
		employeeRepo: employeeRepo,
		serviceRepo:  serviceRepo,
		facilityRepo: facilityRepo,
		employees:    cache.New[string, employee.Employee](),
		services:     cache.New[string, catalog.Service](),
		facilities:   cache.New[string, facility.Facility](),
	}
}

func (s *Session) Employee(ctx context.Context, id string) (employee.Employee, error) {
	return s.employees.GetOrFetch(ctx, id, func(ctx context.Context, id string) (employee.Employee, error) {
		return s.employeeRepo.GetByID(ctx, id, s.tenantID)
	})
}

func (s *Session) Service(ctx context.Context, id string) (catalog.Service, error) {
	return s.services.GetOrFetch(ctx, id, func(ctx context.Context, id string) (catalog.Service, error) {
		return s.serviceRepo.GetByID(ctx, id, s.tenantID)
	})
}

func (s *Session) Facility(ctx context.Context, id string) (facility.Facility, error) {
	return s.facilities.GetOrFetch(ctx, id, func(ctx context.Context, id string) (facility.Facility, error) {
		return s.facilityRepo.GetByID(ctx, id, s.tenantID)
	})
}
