package http

import (
	"encoding/json"
	"net/http"

	"github.com/glowlabs/salon-backend-go/internal/domain/waitlist"
	"github.com/glowlabs/salon-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type WaitlistHandler interface {
	Join(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
	Claim(w http.ResponseWriter, r *http.Request)
}

type waitlistHandlerImpl struct {
	waitlistService waitlist.WaitlistService
}

func NewWaitlistHandler(waitlistService waitlist.WaitlistService) WaitlistHandler {
	return &waitlistHandlerImpl{waitlistService: waitlistService}
}

// getClientIDFromContext extracts client_id from JWT context. Empty for
// staff tokens.
func getClientIDFromContext(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	if clientID, ok := claims["client_id"].(string); ok {
		return clientID
	}
	return ""
}

func (h *waitlistHandlerImpl) Join(w http.ResponseWriter, r *http.Request) {
	var req waitlist.JoinWaitlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	// Clients can only join on their own behalf.
	if clientID := getClientIDFromContext(r); clientID != "" {
		req.ClientID = clientID
	}

	result, err := h.waitlistService.Join(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Joined waitlist", result)
}

func (h *waitlistHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := waitlist.EntryFilter{
		Page:  getIntQueryParam(r, "page", 1),
		Limit: getIntQueryParam(r, "limit", 50),
	}
	if clientID := getClientIDFromContext(r); clientID != "" {
		filter.ClientID = &clientID
	} else if v := r.URL.Query().Get("client_id"); v != "" {
		filter.ClientID = &v
	}
	if v := r.URL.Query().Get("facility_id"); v != "" {
		filter.FacilityID = &v
	}
	if v := r.URL.Query().Get("date"); v != "" {
		filter.Date = &v
	}

	results, total, err := h.waitlistService.List(r.Context(), filter)
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

func (h *waitlistHandlerImpl) Remove(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "id")
	clientID := getClientIDFromContext(r)
	if clientID == "" {
		clientID = r.URL.Query().Get("client_id")
	}

	if err := h.waitlistService.Remove(r.Context(), entryID, clientID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Removed from waitlist", nil)
}

func (h *waitlistHandlerImpl) Claim(w http.ResponseWriter, r *http.Request) {
	var req waitlist.ClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if clientID := getClientIDFromContext(r); clientID != "" {
		req.ClientID = clientID
	}

	result, err := h.waitlistService.Claim(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Slot claimed successfully", result)
}
