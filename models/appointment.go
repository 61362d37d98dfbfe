package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Appointment is one booked slot for one barber. Cancelled rows keep their
// slot values but no longer occupy the slot: the unique index below skips
// them, so the same (barber, date, time) can be booked again.
type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	BarberID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_barber_slot,priority:1" json:"barberId"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`

	// ISO calendar date ("2006-01-02") and slot-aligned time of day ("15:04").
	AppointmentDate string `gorm:"type:varchar(10);not null;uniqueIndex:idx_barber_slot,priority:2" json:"appointmentDate"`
	AppointmentTime string `gorm:"type:varchar(5);not null;uniqueIndex:idx_barber_slot,priority:3,where:status <> 'cancelled'" json:"appointmentTime"`

	Status string `gorm:"type:varchar(20);default:'confirmed';index" json:"status"`
	Notes  string `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// Occupies reports whether the appointment holds its slot against new bookings.
func (a *Appointment) Occupies() bool {
	return a.Status != StatusCancelled
}

// BookingAppointment is the denormalized view the dashboard and reservation
// lists render: the appointment row joined with its barber, service and
// customer profile. Built by an explicit join in the store layer, never by
// loading relations ad hoc.
type BookingAppointment struct {
	Appointment

	BarberName      string  `json:"barberName"`
	BarberAvatarURL string  `json:"barberAvatarUrl"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	DurationMinutes int     `json:"durationMinutes"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
}
