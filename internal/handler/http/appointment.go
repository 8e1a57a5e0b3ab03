package http

import (
	"encoding/json"
	"net/http"

	"github.com/glowlabs/salon-backend-go/internal/domain/appointment"
	"github.com/glowlabs/salon-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AppointmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Reschedule(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	BulkGenerate(w http.ResponseWriter, r *http.Request)
	BulkSubmit(w http.ResponseWriter, r *http.Request)
	Schedule(w http.ResponseWriter, r *http.Request)
}

type appointmentHandlerImpl struct {
	appointmentService appointment.AppointmentService
}

func NewAppointmentHandler(appointmentService appointment.AppointmentService) AppointmentHandler {
	return &appointmentHandlerImpl{appointmentService: appointmentService}
}

func (h *appointmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req appointment.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.appointmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Appointment created successfully", result)
}

func (h *appointmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.appointmentService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *appointmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := appointment.AppointmentFilter{
		Page:  getIntQueryParam(r, "page", 1),
		Limit: getIntQueryParam(r, "limit", 50),
	}
	if v := r.URL.Query().Get("facility_id"); v != "" {
		filter.FacilityID = &v
	}
	if v := r.URL.Query().Get("client_id"); v != "" {
		filter.ClientID = &v
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("date"); v != "" {
		filter.Date = &v
	}

	results, total, err := h.appointmentService.List(r.Context(), filter)
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

func (h *appointmentHandlerImpl) Reschedule(w http.ResponseWriter, r *http.Request) {
	var req appointment.RescheduleAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.appointmentService.Reschedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Appointment rescheduled successfully", result)
}

func (h *appointmentHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.appointmentService.Cancel(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Appointment cancelled", nil)
}

func (h *appointmentHandlerImpl) BulkGenerate(w http.ResponseWriter, r *http.Request) {
	var req appointment.BulkGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.appointmentService.BulkGenerate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *appointmentHandlerImpl) BulkSubmit(w http.ResponseWriter, r *http.Request) {
	var req appointment.BulkSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	results, err := h.appointmentService.BulkSubmit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Appointments created successfully", results)
}

func (h *appointmentHandlerImpl) Schedule(w http.ResponseWriter, r *http.Request) {
	facilityID := chi.URLParam(r, "facilityID")
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date query parameter is required", nil)
		return
	}

	result, err := h.appointmentService.BuildSchedule(r.Context(), facilityID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
