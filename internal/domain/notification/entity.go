package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeWaitlistSlotFreed     NotificationType = "waitlist_slot_freed"
	TypeWaitlistClaimWon      NotificationType = "waitlist_claim_won"
	TypeAppointmentCancelled  NotificationType = "appointment_cancelled"
	TypeAppointmentRebooked   NotificationType = "appointment_rebooked"
	TypeAppointmentReminder   NotificationType = "appointment_reminder"
	TypeScheduleShiftAssigned NotificationType = "schedule_shift_assigned"
)

// Notification represents a notification entity
type Notification struct {
	ID          string
	TenantID    string
	RecipientID string // client or employee id
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
