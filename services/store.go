package services

import (
	"context"
	"errors"
	"fmt"
	"mestar-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleStore is the persistence boundary of the booking core. The gorm
// implementation below is the real one; tests substitute mocks.
type ScheduleStore interface {
	// BookedTimes returns the slot times of every non-cancelled appointment
	// for the barber on the given date. excludeID (uuid.Nil for none) drops
	// one appointment from the result so a reschedule never conflicts with
	// the record being moved.
	BookedTimes(ctx context.Context, barberID uuid.UUID, date string, excludeID uuid.UUID) ([]string, error)

	GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, appt *models.Appointment) error
	SaveAppointment(ctx context.Context, appt *models.Appointment) error

	// DailySchedule returns the denormalized, time-ordered schedule for one
	// date across all barbers, cancelled rows excluded.
	DailySchedule(ctx context.Context, date string) ([]models.BookingAppointment, error)

	// UserAppointments returns every appointment of one customer, newest
	// first, cancelled rows included.
	UserAppointments(ctx context.Context, userID uuid.UUID) ([]models.BookingAppointment, error)
}

type gormScheduleStore struct {
	db *gorm.DB
}

func NewScheduleStore(db *gorm.DB) ScheduleStore {
	return &gormScheduleStore{db: db}
}

func (s *gormScheduleStore) BookedTimes(ctx context.Context, barberID uuid.UUID, date string, excludeID uuid.UUID) ([]string, error) {
	query := s.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("barber_id = ? AND appointment_date = ? AND status <> ?", barberID, date, models.StatusCancelled)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var times []string
	if err := query.Pluck("appointment_time", &times).Error; err != nil {
		return nil, fmt.Errorf("load booked times: %w", err)
	}
	return times, nil
}

func (s *gormScheduleStore) GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	var appt models.Appointment
	if err := s.db.WithContext(ctx).First(&appt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load appointment: %w", err)
	}
	return &appt, nil
}

func (s *gormScheduleStore) CreateAppointment(ctx context.Context, appt *models.Appointment) error {
	if err := s.db.WithContext(ctx).Create(appt).Error; err != nil {
		// The partial unique index on (barber, date, time) is the
		// authoritative conflict signal when two submissions race past
		// the availability pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSlotTaken
		}
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (s *gormScheduleStore) SaveAppointment(ctx context.Context, appt *models.Appointment) error {
	if err := s.db.WithContext(ctx).Save(appt).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSlotTaken
		}
		return fmt.Errorf("save appointment: %w", err)
	}
	return nil
}

// Denormalized select shared by the list queries. LEFT JOIN on profiles so
// accounts without one (walk-ins entered by staff) still show up.
const bookingSelect = `appointments.*,
	barbers.name AS barber_name,
	barbers.avatar_url AS barber_avatar_url,
	services.name AS service_name,
	services.price AS service_price,
	services.duration_minutes AS duration_minutes,
	profiles.full_name AS customer_name,
	profiles.phone AS customer_phone`

func (s *gormScheduleStore) bookingQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Model(&models.Appointment{}).
		Select(bookingSelect).
		Joins("JOIN barbers ON barbers.id = appointments.barber_id").
		Joins("JOIN services ON services.id = appointments.service_id").
		Joins("LEFT JOIN profiles ON profiles.user_id = appointments.user_id")
}

func (s *gormScheduleStore) DailySchedule(ctx context.Context, date string) ([]models.BookingAppointment, error) {
	var rows []models.BookingAppointment
	err := s.bookingQuery(ctx).
		Where("appointments.appointment_date = ? AND appointments.status <> ?", date, models.StatusCancelled).
		Order("appointments.appointment_time").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load daily schedule: %w", err)
	}
	return rows, nil
}

func (s *gormScheduleStore) UserAppointments(ctx context.Context, userID uuid.UUID) ([]models.BookingAppointment, error) {
	var rows []models.BookingAppointment
	err := s.bookingQuery(ctx).
		Where("appointments.user_id = ?", userID).
		Order("appointments.appointment_date DESC").
		Order("appointments.appointment_time DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load user appointments: %w", err)
	}
	return rows, nil
}
