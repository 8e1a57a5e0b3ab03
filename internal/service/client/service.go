package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glowlabs/salon-backend-go/internal/domain/client"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type clientServiceImpl struct {
	clientRepo client.ClientRepository
}

func NewClientService(clientRepo client.ClientRepository) client.ClientService {
	return &clientServiceImpl{clientRepo: clientRepo}
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

func (s *clientServiceImpl) Create(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return client.ClientResponse{}, err
	}

	created, err := s.clientRepo.Create(ctx, client.Client{
		TenantID:    tenantID,
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Notes:       req.Notes,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return client.ClientResponse{}, client.ErrEmailExists
		}
		return client.ClientResponse{}, fmt.Errorf("failed to create client: %w", err)
	}

	return mapClientToResponse(created), nil
}

func (s *clientServiceImpl) Get(ctx context.Context, id string) (client.ClientResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return client.ClientResponse{}, err
	}

	c, err := s.clientRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.ClientResponse{}, client.ErrClientNotFound
		}
		return client.ClientResponse{}, fmt.Errorf("failed to get client: %w", err)
	}
	return mapClientToResponse(c), nil
}

func (s *clientServiceImpl) List(ctx context.Context, filter client.ClientFilter) ([]client.ClientResponse, int64, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	clients, total, err := s.clientRepo.GetByTenantID(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	responses := make([]client.ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, mapClientToResponse(c))
	}
	return responses, total, nil
}

func (s *clientServiceImpl) Update(ctx context.Context, req client.UpdateClientRequest) (client.ClientResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return client.ClientResponse{}, err
	}
	req.TenantID = tenantID

	updated, err := s.clientRepo.Update(ctx, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.ClientResponse{}, client.ErrClientNotFound
		}
		return client.ClientResponse{}, fmt.Errorf("failed to update client: %w", err)
	}
	return mapClientToResponse(updated), nil
}

func (s *clientServiceImpl) Delete(ctx context.Context, id string) error {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.clientRepo.SoftDelete(ctx, id, tenantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.ErrClientNotFound
		}
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

func mapClientToResponse(c client.Client) client.ClientResponse {
	return client.ClientResponse{
		ID:          c.ID,
		TenantID:    c.TenantID,
		FullName:    c.FullName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}
