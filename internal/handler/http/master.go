package http

import (
	"encoding/json"
	"net/http"

	"github.com/glowlabs/salon-backend-go/internal/domain/catalog"
	"github.com/glowlabs/salon-backend-go/internal/domain/facility"
	"github.com/glowlabs/salon-backend-go/internal/handler/http/response"
	"github.com/glowlabs/salon-backend-go/internal/service/master"
	"github.com/go-chi/chi/v5"
)

type MasterHandler interface {
	// Catalog services
	CreateService(w http.ResponseWriter, r *http.Request)
	GetService(w http.ResponseWriter, r *http.Request)
	ListServices(w http.ResponseWriter, r *http.Request)
	UpdateService(w http.ResponseWriter, r *http.Request)
	DeleteService(w http.ResponseWriter, r *http.Request)

	// Facilities
	CreateFacility(w http.ResponseWriter, r *http.Request)
	GetFacility(w http.ResponseWriter, r *http.Request)
	ListFacilities(w http.ResponseWriter, r *http.Request)
	UpdateFacility(w http.ResponseWriter, r *http.Request)
	DeleteFacility(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{masterService: masterService}
}

// ==================== CATALOG OPERATIONS ====================

func (h *masterHandlerImpl) CreateService(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateService(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Service created successfully", result)
}

func (h *masterHandlerImpl) GetService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.masterService.GetService(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListServices(w http.ResponseWriter, r *http.Request) {
	filter := catalog.ServiceFilter{
		ActiveOnly: r.URL.Query().Get("active_only") == "true",
		Page:       getIntQueryParam(r, "page", 1),
		Limit:      getIntQueryParam(r, "limit", 50),
	}

	results, total, err := h.masterService.ListServices(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

func (h *masterHandlerImpl) UpdateService(w http.ResponseWriter, r *http.Request) {
	var req catalog.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.masterService.UpdateService(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Service updated successfully", result)
}

func (h *masterHandlerImpl) DeleteService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteService(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Service deleted successfully", nil)
}

// ==================== FACILITY OPERATIONS ====================

func (h *masterHandlerImpl) CreateFacility(w http.ResponseWriter, r *http.Request) {
	var req facility.CreateFacilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateFacility(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Facility created successfully", result)
}

func (h *masterHandlerImpl) GetFacility(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.masterService.GetFacility(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListFacilities(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListFacilities(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateFacility(w http.ResponseWriter, r *http.Request) {
	var req facility.UpdateFacilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.masterService.UpdateFacility(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Facility updated successfully", result)
}

func (h *masterHandlerImpl) DeleteFacility(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteFacility(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Facility deleted successfully", nil)
}
