package tenant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glowlabs/salon-backend-go/internal/domain/tenant"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type tenantServiceImpl struct {
	tenantRepo tenant.TenantRepository
}

func NewTenantService(tenantRepo tenant.TenantRepository) tenant.TenantService {
	return &tenantServiceImpl{tenantRepo: tenantRepo}
}

func (s *tenantServiceImpl) Create(ctx context.Context, req tenant.CreateTenantRequest) (tenant.TenantResponse, error) {
	if err := req.Validate(); err != nil {
		return tenant.TenantResponse{}, err
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	created, err := s.tenantRepo.Create(ctx, tenant.Tenant{
		Name:     req.Name,
		Username: req.Username,
		Timezone: timezone,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return tenant.TenantResponse{}, tenant.ErrUsernameExists
		}
		return tenant.TenantResponse{}, fmt.Errorf("failed to create tenant: %w", err)
	}

	return mapTenantToResponse(created), nil
}

func (s *tenantServiceImpl) Get(ctx context.Context, id string) (tenant.TenantResponse, error) {
	t, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tenant.TenantResponse{}, tenant.ErrTenantNotFound
		}
		return tenant.TenantResponse{}, fmt.Errorf("failed to get tenant: %w", err)
	}
	return mapTenantToResponse(t), nil
}

func (s *tenantServiceImpl) List(ctx context.Context) ([]tenant.TenantResponse, error) {
	tenants, err := s.tenantRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	responses := make([]tenant.TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		responses = append(responses, mapTenantToResponse(t))
	}
	return responses, nil
}

func (s *tenantServiceImpl) Update(ctx context.Context, req tenant.UpdateTenantRequest) (tenant.TenantResponse, error) {
	updated, err := s.tenantRepo.Update(ctx, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tenant.TenantResponse{}, tenant.ErrTenantNotFound
		}
		return tenant.TenantResponse{}, fmt.Errorf("failed to update tenant: %w", err)
	}
	return mapTenantToResponse(updated), nil
}

func (s *tenantServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.tenantRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tenant.ErrTenantNotFound
		}
		return fmt.Errorf("failed to delete tenant: %w", err)
	}
	return nil
}

func mapTenantToResponse(t tenant.Tenant) tenant.TenantResponse {
	return tenant.TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Username:  t.Username,
		Timezone:  t.Timezone,
		LogoURL:   t.LogoURL,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}
