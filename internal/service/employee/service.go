package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glowlabs/salon-backend-go/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &employeeServiceImpl{employeeRepo: employeeRepo}
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

func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	entity := employee.Employee{
		TenantID:              tenantID,
		FacilityID:            req.FacilityID,
		FullName:              req.FullName,
		Email:                 req.Email,
		PhoneNumber:           req.PhoneNumber,
		Color:                 req.Color,
		IncludeInAppointments: true,
	}
	if req.IncludeInAppointments != nil {
		entity.IncludeInAppointments = *req.IncludeInAppointments
	}
	if req.HireDate != nil {
		hireDate, parseErr := time.Parse("2006-01-02", *req.HireDate)
		if parseErr == nil {
			entity.HireDate = &hireDate
		}
	}

	created, err := s.employeeRepo.Create(ctx, entity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

func (s *employeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return mapEmployeeToResponse(e), nil
}

func (s *employeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, int64, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	employees, total, err := s.employeeRepo.GetByTenantID(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, mapEmployeeToResponse(e))
	}
	return responses, total, nil
}

func (s *employeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	req.TenantID = tenantID

	updated, err := s.employeeRepo.Update(ctx, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return mapEmployeeToResponse(updated), nil
}

func (s *employeeServiceImpl) Delete(ctx context.Context, id string) error {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.employeeRepo.SoftDelete(ctx, id, tenantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func mapEmployeeToResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                    e.ID,
		TenantID:              e.TenantID,
		FacilityID:            e.FacilityID,
		FullName:              e.FullName,
		Email:                 e.Email,
		PhoneNumber:           e.PhoneNumber,
		Color:                 e.Color,
		IncludeInAppointments: e.IncludeInAppointments,
		CreatedAt:             e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             e.UpdatedAt.Format(time.RFC3339),
	}
}
