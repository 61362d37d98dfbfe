// controllers/appointment.go
package controllers

import (
	"errors"
	"mestar-backend/models"
	"mestar-backend/services"
	"mestar-backend/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AppointmentController owns the booking endpoints. The booking service and
// notifier are injected so handler tests can run against a mocked store.
type AppointmentController struct {
	Booking  *services.BookingService
	Notifier *services.Notifier
	Hub      *services.EventHub
}

type BookAppointmentInput struct {
	ServiceID string `json:"serviceId" binding:"required"`
	BarberID  string `json:"barberId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

type WalkInInput struct {
	ServiceID    string `json:"serviceId" binding:"required"`
	BarberID     string `json:"barberId" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	CustomerName string `json:"customerName"`
}

type RescheduleInput struct {
	BarberID string `json:"barberId" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
}

// GetAvailability reports the free slots for one barber and date.
// GET /api/availability?barberId=...&date=2006-01-02
func (ac *AppointmentController) GetAvailability(c *gin.Context) {
	barberUUID, err := uuid.Parse(c.Query("barberId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
		return
	}
	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	slots, err := ac.Booking.AvailableSlots(c.Request.Context(), barberUUID, date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barberId": barberUUID,
		"date":     date.Format(services.DateLayout),
		"slots":    slots,
	})
}

// BookAppointment handles customer self-booking
func (ac *AppointmentController) BookAppointment(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	bookingInput, err := ac.parseBooking(userUUID, input.ServiceID, input.BarberID, input.Date, input.Time, input.Notes)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	appt, err := ac.Booking.Book(c.Request.Context(), bookingInput)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	ac.notifyConfirmation(c, appt)
	c.JSON(http.StatusCreated, appt)
}

// AddWalkIn lets staff enter an appointment for a walk-in customer. The row
// is attributed to the acting staff account; the customer's name goes into
// the notes.
func (ac *AppointmentController) AddWalkIn(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input WalkInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	notes := "Walk-in"
	if input.CustomerName != "" {
		notes = "Walk-in: " + input.CustomerName
	}

	bookingInput, err := ac.parseBooking(userUUID, input.ServiceID, input.BarberID, input.Date, input.Time, notes)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	appt, err := ac.Booking.Book(c.Request.Context(), bookingInput)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appt)
}

// GetMyAppointments lists the caller's reservations, newest first.
func (ac *AppointmentController) GetMyAppointments(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	appts, err := ac.Booking.UserAppointments(c.Request.Context(), userUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appts)
}

// CancelAppointment cancels an appointment. Customers may cancel their own;
// staff may cancel any. Cancelling twice is a no-op success.
func (ac *AppointmentController) CancelAppointment(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}
	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	appt, err := ac.Booking.Get(c.Request.Context(), apptUUID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	if appt.UserID != userUUID && !hasRole(userUUID, models.RoleBarber, models.RoleAdmin) {
		utils.RespondWithError(c, http.StatusForbidden, "Not your appointment")
		return
	}

	cancelled, err := ac.Booking.Cancel(c.Request.Context(), apptUUID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, cancelled)
}

// RescheduleAppointment moves an appointment to a new barber/date/time.
// Staff only.
func (ac *AppointmentController) RescheduleAppointment(c *gin.Context) {
	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input RescheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	barberUUID, err := uuid.Parse(input.BarberID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
		return
	}
	date, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	appt, err := ac.Booking.Reschedule(c.Request.Context(), apptUUID, barberUUID, date, input.Time)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

// CompleteAppointment marks a confirmed appointment as done. Staff only.
func (ac *AppointmentController) CompleteAppointment(c *gin.Context) {
	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	appt, err := ac.Booking.Complete(c.Request.Context(), apptUUID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

func (ac *AppointmentController) parseBooking(customerID uuid.UUID, serviceID, barberID, date, slot, notes string) (services.BookingInput, error) {
	serviceUUID, err := uuid.Parse(serviceID)
	if err != nil {
		return services.BookingInput{}, errors.New("Invalid service ID format")
	}
	barberUUID, err := uuid.Parse(barberID)
	if err != nil {
		return services.BookingInput{}, errors.New("Invalid barber ID format")
	}
	day, err := utils.ParseDate(date)
	if err != nil {
		return services.BookingInput{}, errors.New("Invalid date, expected YYYY-MM-DD")
	}
	return services.BookingInput{
		CustomerID: customerID,
		ServiceID:  serviceUUID,
		BarberID:   barberUUID,
		Date:       day,
		Time:       slot,
		Notes:      notes,
	}, nil
}

// notifyConfirmation sends the booking SMS without blocking the response.
func (ac *AppointmentController) notifyConfirmation(c *gin.Context, appt *models.Appointment) {
	if ac.Notifier == nil {
		return
	}
	date, err := utils.ParseDate(appt.AppointmentDate)
	if err != nil {
		return
	}
	schedule, err := ac.Booking.DailySchedule(c.Request.Context(), date)
	if err != nil {
		return
	}
	for _, row := range schedule {
		if row.ID == appt.ID {
			go ac.Notifier.SendConfirmation(row)
			return
		}
	}
}

// respondBookingError maps booking-core errors to HTTP statuses. Conflicts
// tell the client to re-fetch availability; nothing is retried here.
func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrSlotTaken):
		utils.RespondWithError(c, http.StatusConflict, "Slot no longer available, please pick another time")
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Something went wrong, please try again")
	}
}
