package routes

import (
	"mestar-backend/config"
	"mestar-backend/controllers"
	"mestar-backend/models"
	"mestar-backend/services"
	"mestar-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(booking *services.BookingService, notifier *services.Notifier, hub *services.EventHub) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://mestar-barbershop.netlify.app",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	appointmentController := &controllers.AppointmentController{
		Booking:  booking,
		Notifier: notifier,
		Hub:      hub,
	}

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
		auth.PUT("/profile", controllers.UpdateProfile)
	}

	api := r.Group("/api")
	{
		// Public catalog and availability, the booking flow browses these
		// before the customer signs in
		api.GET("/services", controllers.GetServices)
		api.GET("/services/:id", controllers.GetService)
		api.GET("/barbers", controllers.GetBarbers)
		api.GET("/barbers/:id", controllers.GetBarber)
		api.GET("/availability", appointmentController.GetAvailability)

		authed := api.Group("")
		authed.Use(utils.AuthMiddleware())
		{
			appointments := authed.Group("/appointments")
			{
				appointments.POST("", appointmentController.BookAppointment)
				appointments.GET("", appointmentController.GetMyAppointments)
				appointments.PUT("/:id/cancel", appointmentController.CancelAppointment)
			}

			// Staff dashboard routes
			staff := authed.Group("")
			staff.Use(controllers.RequireRole(models.RoleBarber, models.RoleAdmin))
			{
				staff.GET("/schedule", appointmentController.GetDailySchedule)
				staff.GET("/schedule/stream", appointmentController.StreamSchedule)
				staff.POST("/appointments/walk-in", appointmentController.AddWalkIn)
				staff.PUT("/appointments/:id/reschedule", appointmentController.RescheduleAppointment)
				staff.PUT("/appointments/:id/complete", appointmentController.CompleteAppointment)
			}

			// Catalog management
			admin := authed.Group("")
			admin.Use(controllers.RequireRole(models.RoleAdmin))
			{
				admin.POST("/services", controllers.CreateService)
				admin.PUT("/services/:id", controllers.UpdateService)
				admin.DELETE("/services/:id", controllers.DeleteService)

				admin.POST("/barbers", controllers.CreateBarber)
				admin.PUT("/barbers/:id", controllers.UpdateBarber)
				admin.DELETE("/barbers/:id", controllers.DeleteBarber)
			}
		}
	}

	return r
}
