package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service is one bookable treatment on a salon's price list.
type Service struct {
	ID              uuid.UUID       `json:"id"`
	SalonID         string          `json:"salon_id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int32           `json:"duration_minutes"`
	Image           string          `json:"image,omitempty"`
}

type Staff struct {
	ID      uuid.UUID `json:"id"`
	SalonID string    `json:"salon_id"`
	Name    string    `json:"name"`
	Role    string    `json:"role"`
}

type Client struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

type Appointment struct {
	ID        uuid.UUID         `json:"id"`
	ClientID  uuid.UUID         `json:"client_id"`
	StaffID   uuid.UUID         `json:"staff_id"`
	ServiceID uuid.UUID         `json:"service_id"`
	StartsAt  time.Time         `json:"starts_at"`
	Status    AppointmentStatus `json:"status"`
}
