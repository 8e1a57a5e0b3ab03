package master

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glowlabs/salon-backend-go/internal/domain/catalog"
	"github.com/glowlabs/salon-backend-go/internal/domain/facility"
	"github.com/glowlabs/salon-backend-go/internal/pkg/timepoint"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MasterService groups the reference data behind scheduling: the service
// catalog and the facilities appointments happen in.
type MasterService interface {
	// Catalog operations
	CreateService(ctx context.Context, req catalog.CreateServiceRequest) (catalog.ServiceResponse, error)
	GetService(ctx context.Context, id string) (catalog.ServiceResponse, error)
	ListServices(ctx context.Context, filter catalog.ServiceFilter) ([]catalog.ServiceResponse, int64, error)
	UpdateService(ctx context.Context, req catalog.UpdateServiceRequest) (catalog.ServiceResponse, error)
	DeleteService(ctx context.Context, id string) error

	// Facility operations
	CreateFacility(ctx context.Context, req facility.CreateFacilityRequest) (facility.FacilityResponse, error)
	GetFacility(ctx context.Context, id string) (facility.FacilityResponse, error)
	ListFacilities(ctx context.Context) ([]facility.FacilityResponse, error)
	UpdateFacility(ctx context.Context, req facility.UpdateFacilityRequest) (facility.FacilityResponse, error)
	DeleteFacility(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	serviceRepo  catalog.ServiceRepository
	facilityRepo facility.FacilityRepository
}

func NewMasterService(
	serviceRepo catalog.ServiceRepository,
	facilityRepo facility.FacilityRepository,
) MasterService {
	return &masterServiceImpl{
		serviceRepo:  serviceRepo,
		facilityRepo: facilityRepo,
	}
}

func tenantIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	tenantID, ok := claims["tenant_id"].(string)
	if !ok || tenantID == "" {
		return "", fmt.Errorf("tenant_id claim is missing or invalid")
	}
	return tenantID, nil
}

// ==================== CATALOG OPERATIONS ====================

func (s *masterServiceImpl) CreateService(ctx context.Context, req catalog.CreateServiceRequest) (catalog.ServiceResponse, error) {
	if err := req.Validate(); err != nil {
		return catalog.ServiceResponse{}, err
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return catalog.ServiceResponse{}, err
	}

	entity := catalog.Service{
		TenantID:        tenantID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: *req.DurationMinutes,
		Currency:        req.Currency,
		IsActive:        true,
	}
	if req.Price != nil {
		entity.Price = *req.Price
	}
	if entity.Currency == "" {
		entity.Currency = "USD"
	}

	created, err := s.serviceRepo.Create(ctx, entity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return catalog.ServiceResponse{}, catalog.ErrServiceNameExists
		}
		return catalog.ServiceResponse{}, fmt.Errorf("failed to create service: %w", err)
	}

	return mapServiceToResponse(created), nil
}

func (s *masterServiceImpl) GetService(ctx context.Context, id string) (catalog.ServiceResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return catalog.ServiceResponse{}, err
	}

	entity, err := s.serviceRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.ServiceResponse{}, catalog.ErrServiceNotFound
		}
		return catalog.ServiceResponse{}, fmt.Errorf("failed to get service: %w", err)
	}
	return mapServiceToResponse(entity), nil
}

func (s *masterServiceImpl) ListServices(ctx context.Context, filter catalog.ServiceFilter) ([]catalog.ServiceResponse, int64, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	services, total, err := s.serviceRepo.GetByTenantID(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list services: %w", err)
	}

	responses := make([]catalog.ServiceResponse, 0, len(services))
	for _, entity := range services {
		responses = append(responses, mapServiceToResponse(entity))
	}
	return responses, total, nil
}

func (s *masterServiceImpl) UpdateService(ctx context.Context, req catalog.UpdateServiceRequest) (catalog.ServiceResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return catalog.ServiceResponse{}, err
	}
	req.TenantID = tenantID

	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		return catalog.ServiceResponse{}, fmt.Errorf("duration_minutes must be a positive number")
	}

	updated, err := s.serviceRepo.Update(ctx, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.ServiceResponse{}, catalog.ErrServiceNotFound
		}
		return catalog.ServiceResponse{}, fmt.Errorf("failed to update service: %w", err)
	}
	return mapServiceToResponse(updated), nil
}

func (s *masterServiceImpl) DeleteService(ctx context.Context, id string) error {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.serviceRepo.SoftDelete(ctx, id, tenantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.ErrServiceNotFound
		}
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

// ==================== FACILITY OPERATIONS ====================

func (s *masterServiceImpl) CreateFacility(ctx context.Context, req facility.CreateFacilityRequest) (facility.FacilityResponse, error) {
	if err := req.Validate(); err != nil {
		return facility.FacilityResponse{}, err
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return facility.FacilityResponse{}, err
	}

	opening, _ := timepoint.Parse(req.OpeningHour)
	closing, _ := timepoint.Parse(req.ClosingHour)

	created, err := s.facilityRepo.Create(ctx, facility.Facility{
		TenantID:    tenantID,
		Name:        req.Name,
		Address:     req.Address,
		OpeningHour: opening,
		ClosingHour: closing,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return facility.FacilityResponse{}, facility.ErrFacilityNameExists
		}
		return facility.FacilityResponse{}, fmt.Errorf("failed to create facility: %w", err)
	}

	return mapFacilityToResponse(created), nil
}

func (s *masterServiceImpl) GetFacility(ctx context.Context, id string) (facility.FacilityResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return facility.FacilityResponse{}, err
	}

	entity, err := s.facilityRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return facility.FacilityResponse{}, facility.ErrFacilityNotFound
		}
		return facility.FacilityResponse{}, fmt.Errorf("failed to get facility: %w", err)
	}
	return mapFacilityToResponse(entity), nil
}

func (s *masterServiceImpl) ListFacilities(ctx context.Context) ([]facility.FacilityResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	facilities, err := s.facilityRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list facilities: %w", err)
	}

	responses := make([]facility.FacilityResponse, 0, len(facilities))
	for _, entity := range facilities {
		responses = append(responses, mapFacilityToResponse(entity))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateFacility(ctx context.Context, req facility.UpdateFacilityRequest) (facility.FacilityResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return facility.FacilityResponse{}, err
	}
	req.TenantID = tenantID

	if req.OpeningHour != nil {
		if _, parseErr := timepoint.Parse(*req.OpeningHour); parseErr != nil {
			return facility.FacilityResponse{}, parseErr
		}
	}
	if req.ClosingHour != nil {
		if _, parseErr := timepoint.Parse(*req.ClosingHour); parseErr != nil {
			return facility.FacilityResponse{}, parseErr
		}
	}

	updated, err := s.facilityRepo.Update(ctx, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return facility.FacilityResponse{}, facility.ErrFacilityNotFound
		}
		return facility.FacilityResponse{}, fmt.Errorf("failed to update facility: %w", err)
	}
	return mapFacilityToResponse(updated), nil
}

func (s *masterServiceImpl) DeleteFacility(ctx context.Context, id string) error {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.facilityRepo.SoftDelete(ctx, id, tenantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return facility.ErrFacilityNotFound
		}
		return fmt.Errorf("failed to delete facility: %w", err)
	}
	return nil
}

func mapServiceToResponse(entity catalog.Service) catalog.ServiceResponse {
	return catalog.ServiceResponse{
		ID:              entity.ID,
		TenantID:        entity.TenantID,
		Name:            entity.Name,
		Description:     entity.Description,
		DurationMinutes: entity.DurationMinutes,
		Price:           entity.Price,
		Currency:        entity.Currency,
		IsActive:        entity.IsActive,
		CreatedAt:       entity.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       entity.UpdatedAt.Format(time.RFC3339),
	}
}

func mapFacilityToResponse(entity facility.Facility) facility.FacilityResponse {
	return facility.FacilityResponse{
		ID:          entity.ID,
		TenantID:    entity.TenantID,
		Name:        entity.Name,
		Address:     entity.Address,
		OpeningHour: entity.OpeningHour.Format(),
		ClosingHour: entity.ClosingHour.Format(),
		CreatedAt:   entity.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   entity.UpdatedAt.Format(time.RFC3339),
	}
}
