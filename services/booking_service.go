// services/booking_service.go
package services

import (
	"context"
	"fmt"
	"mestar-backend/models"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire and storage format for appointment dates.
const DateLayout = "2006-01-02"

// BookingService arbitrates slot availability and write-time conflicts.
// Availability is a pull contract: the event hub only tells subscribers that
// something changed, never what is free now.
type BookingService struct {
	store ScheduleStore
	hub   *EventHub
}

func NewBookingService(store ScheduleStore, hub *EventHub) *BookingService {
	return &BookingService{store: store, hub: hub}
}

// BookingInput is one booking submission, customer self-service or staff
// walk-in entry alike.
type BookingInput struct {
	CustomerID uuid.UUID
	ServiceID  uuid.UUID
	BarberID   uuid.UUID
	Date       time.Time
	Time       string
	Notes      string
}

// AvailableSlots returns the free subset of the day's slots for one barber,
// in chronological order. Closed days come back empty no matter what is
// stored.
func (s *BookingService) AvailableSlots(ctx context.Context, barberID uuid.UUID, date time.Time) ([]string, error) {
	all := GenerateSlots(HoursFor(date))
	if len(all) == 0 {
		return []string{}, nil
	}

	booked, err := s.store.BookedTimes(ctx, barberID, date.Format(DateLayout), uuid.Nil)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	free := make([]string, 0, len(all))
	for _, slot := range all {
		if _, ok := taken[slot]; !ok {
			free = append(free, slot)
		}
	}
	return free, nil
}

// Book validates the submission, re-checks the slot right before the insert
// and persists a confirmed appointment. The gap between rendering
// availability and submitting is expected; a slot grabbed in between
// surfaces as ErrSlotTaken, never as a silently different slot.
func (s *BookingService) Book(ctx context.Context, in BookingInput) (*models.Appointment, error) {
	if in.CustomerID == uuid.Nil || in.ServiceID == uuid.Nil || in.BarberID == uuid.Nil {
		return nil, fmt.Errorf("%w: customer, service and barber are required", ErrValidation)
	}
	if err := s.validateSlot(in.Date, in.Time); err != nil {
		return nil, err
	}

	if err := s.checkSlotFree(ctx, in.BarberID, in.Date, in.Time, uuid.Nil); err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		UserID:          in.CustomerID,
		BarberID:        in.BarberID,
		ServiceID:       in.ServiceID,
		AppointmentDate: in.Date.Format(DateLayout),
		AppointmentTime: in.Time,
		Status:          models.StatusConfirmed,
		Notes:           in.Notes,
	}
	if err := s.store.CreateAppointment(ctx, appt); err != nil {
		return nil, err
	}

	s.publish(EventCreated, appt)
	return appt, nil
}

// Reschedule moves an appointment to a new (barber, date, time) triple. The
// conflict check skips the appointment's own row, so moving it onto the slot
// it already holds succeeds.
func (s *BookingService) Reschedule(ctx context.Context, apptID uuid.UUID, barberID uuid.UUID, date time.Time, slot string) (*models.Appointment, error) {
	appt, err := s.store.GetAppointment(ctx, apptID)
	if err != nil {
		return nil, err
	}
	if appt.Status == models.StatusCancelled || appt.Status == models.StatusCompleted {
		return nil, fmt.Errorf("%w: appointment is already finalized", ErrNotFound)
	}

	if barberID == uuid.Nil {
		return nil, fmt.Errorf("%w: barber is required", ErrValidation)
	}
	if err := s.validateSlot(date, slot); err != nil {
		return nil, err
	}
	if err := s.checkSlotFree(ctx, barberID, date, slot, appt.ID); err != nil {
		return nil, err
	}

	appt.BarberID = barberID
	appt.AppointmentDate = date.Format(DateLayout)
	appt.AppointmentTime = slot
	if err := s.store.SaveAppointment(ctx, appt); err != nil {
		return nil, err
	}

	s.publish(EventUpdated, appt)
	return appt, nil
}

// Cancel transitions an appointment to cancelled, freeing its slot.
// Cancelling a cancelled appointment is a no-op success.
func (s *BookingService) Cancel(ctx context.Context, apptID uuid.UUID) (*models.Appointment, error) {
	appt, err := s.store.GetAppointment(ctx, apptID)
	if err != nil {
		return nil, err
	}
	if appt.Status == models.StatusCancelled {
		return appt, nil
	}
	if appt.Status == models.StatusCompleted {
		return nil, fmt.Errorf("%w: appointment is already completed", ErrNotFound)
	}

	appt.Status = models.StatusCancelled
	if err := s.store.SaveAppointment(ctx, appt); err != nil {
		return nil, err
	}

	s.publish(EventUpdated, appt)
	return appt, nil
}

// Complete marks a confirmed appointment as done. Terminal.
func (s *BookingService) Complete(ctx context.Context, apptID uuid.UUID) (*models.Appointment, error) {
	appt, err := s.store.GetAppointment(ctx, apptID)
	if err != nil {
		return nil, err
	}
	switch appt.Status {
	case models.StatusConfirmed:
	case models.StatusCancelled, models.StatusCompleted:
		return nil, fmt.Errorf("%w: appointment is already finalized", ErrNotFound)
	default:
		return nil, fmt.Errorf("%w: only confirmed appointments can be completed", ErrValidation)
	}

	appt.Status = models.StatusCompleted
	if err := s.store.SaveAppointment(ctx, appt); err != nil {
		return nil, err
	}

	s.publish(EventUpdated, appt)
	return appt, nil
}

func (s *BookingService) Get(ctx context.Context, apptID uuid.UUID) (*models.Appointment, error) {
	return s.store.GetAppointment(ctx, apptID)
}

func (s *BookingService) DailySchedule(ctx context.Context, date time.Time) ([]models.BookingAppointment, error) {
	return s.store.DailySchedule(ctx, date.Format(DateLayout))
}

func (s *BookingService) UserAppointments(ctx context.Context, userID uuid.UUID) ([]models.BookingAppointment, error) {
	return s.store.UserAppointments(ctx, userID)
}

// validateSlot rejects times a stale client may still be offering, e.g. a
// slot rendered before the day rolled over to a closed date.
func (s *BookingService) validateSlot(date time.Time, slot string) error {
	if date.IsZero() || slot == "" {
		return fmt.Errorf("%w: date and time are required", ErrValidation)
	}
	for _, t := range GenerateSlots(HoursFor(date)) {
		if t == slot {
			return nil
		}
	}
	return fmt.Errorf("%w: %s is outside business hours on %s", ErrValidation, slot, date.Format(DateLayout))
}

func (s *BookingService) checkSlotFree(ctx context.Context, barberID uuid.UUID, date time.Time, slot string, excludeID uuid.UUID) error {
	booked, err := s.store.BookedTimes(ctx, barberID, date.Format(DateLayout), excludeID)
	if err != nil {
		return err
	}
	for _, t := range booked {
		if t == slot {
			return ErrSlotTaken
		}
	}
	return nil
}

func (s *BookingService) publish(eventType string, appt *models.Appointment) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(AppointmentEvent{Type: eventType, Appointment: appt})
}
