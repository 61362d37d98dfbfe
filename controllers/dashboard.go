package controllers

import (
	"mestar-backend/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetDailySchedule returns the denormalized schedule for one date (today by
// default) plus the headline stats the dashboard renders. Staff only.
func (ac *AppointmentController) GetDailySchedule(c *gin.Context) {
	date := utils.BeginningOfDay(time.Now())
	if raw := c.Query("date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	schedule, err := ac.Booking.DailySchedule(c.Request.Context(), date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load schedule")
		return
	}

	// Expected Revenue and Unique Clients
	var expectedRevenue float64
	customers := make(map[uuid.UUID]bool)
	for _, appt := range schedule {
		expectedRevenue += appt.ServicePrice
		customers[appt.UserID] = true
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         date.Format("2006-01-02"),
		"appointments": schedule,
		"stats": gin.H{
			"totalAppointments": len(schedule),
			"expectedRevenue":   expectedRevenue,
			"uniqueCustomers":   len(customers),
		},
	})
}
