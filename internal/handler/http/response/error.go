package response

import (
	"errors"
	"net/http"

	"github.com/glowlabs/salon-backend-go/internal/domain/appointment"
	"github.com/glowlabs/salon-backend-go/internal/domain/catalog"
	"github.com/glowlabs/salon-backend-go/internal/domain/client"
	"github.com/glowlabs/salon-backend-go/internal/domain/employee"
	"github.com/glowlabs/salon-backend-go/internal/domain/facility"
	"github.com/glowlabs/salon-backend-go/internal/domain/notification"
	"github.com/glowlabs/salon-backend-go/internal/domain/shift"
	"github.com/glowlabs/salon-backend-go/internal/domain/tenant"
	"github.com/glowlabs/salon-backend-go/internal/domain/user"
	"github.com/glowlabs/salon-backend-go/internal/domain/waitlist"
	"github.com/glowlabs/salon-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Access errors
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, user.ErrTenantIDRequired):
		Unauthorized(w, "Tenant context required")
	case errors.Is(err, user.ErrOwnerAccessRequired),
		errors.Is(err, user.ErrManagerAccessRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Tenant domain errors
	case errors.Is(err, tenant.ErrTenantNotFound):
		NotFound(w, "Tenant not found")
	case errors.Is(err, tenant.ErrUsernameExists):
		Conflict(w, "Tenant username already taken")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this tenant")

	// Client domain errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrEmailExists):
		Conflict(w, "Email already registered in this tenant")

	// Catalog domain errors
	case errors.Is(err, catalog.ErrServiceNotFound):
		NotFound(w, "Service not found")
	case errors.Is(err, catalog.ErrServiceNameExists):
		Conflict(w, "Service with this name already exists")
	case errors.Is(err, catalog.ErrServiceInactive):
		BadRequest(w, "Service is not active", nil)

	// Facility domain errors
	case errors.Is(err, facility.ErrFacilityNotFound):
		NotFound(w, "Facility not found")
	case errors.Is(err, facility.ErrFacilityNameExists):
		Conflict(w, "Facility with this name already exists")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftExists):
		Conflict(w, "Employee already has a shift for this date and facility")
	case errors.Is(err, shift.ErrInvalidShiftSpan):
		BadRequest(w, "Shift start and end must differ", nil)

	// Appointment domain errors
	case errors.Is(err, appointment.ErrAppointmentNotFound):
		NotFound(w, "Appointment not found")
	case errors.Is(err, appointment.ErrAppointmentCancelled):
		Conflict(w, "Appointment is already cancelled")
	case errors.Is(err, appointment.ErrSlotTaken):
		Conflict(w, "The requested slot overlaps an existing appointment")
	case errors.Is(err, appointment.ErrNoShift):
		BadRequest(w, "Employee has no shift on the requested date", nil)
	case errors.Is(err, appointment.ErrOutsideShift):
		BadRequest(w, "The requested slot falls outside the employee's shift", nil)
	case errors.Is(err, appointment.ErrInvalidRange):
		BadRequest(w, "End hour must be after start hour", nil)
	case errors.Is(err, appointment.ErrSlotConfiguration):
		BadRequest(w, "Slot generation parameters are invalid", nil)
	case errors.Is(err, appointment.ErrInvalidRequestData):
		BadRequest(w, "Request data is invalid", nil)

	// Waitlist domain errors
	case errors.Is(err, waitlist.ErrEntryNotFound):
		NotFound(w, "Waitlist entry not found")
	case errors.Is(err, waitlist.ErrInvalidToken):
		NotFound(w, "Claim token is not recognized")
	case errors.Is(err, waitlist.ErrTokenExpired):
		Gone(w, "Claim token has expired")
	case errors.Is(err, waitlist.ErrSlotAlreadyTaken):
		Conflict(w, "The slot has already been claimed")
	case errors.Is(err, waitlist.ErrNotOwner):
		Forbidden(w, "Waitlist entry belongs to another client")
	case errors.Is(err, waitlist.ErrDuplicateEntry):
		Conflict(w, "Client is already waiting for this slot")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
