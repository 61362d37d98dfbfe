package main

import (
	"fmt"
	"log"
	"mestar-backend/config"
	"mestar-backend/models"
	"mestar-backend/routes"
	"mestar-backend/services"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.UserRole{},
		&models.Barber{},
		&models.Service{},
		&models.Appointment{},
		&models.NotificationLog{},
	)

	seedCatalog()
}

func main() {
	store := services.NewScheduleStore(config.DB)
	hub := services.NewEventHub()
	booking := services.NewBookingService(store, hub)

	notifier := services.NewNotifier(config.DB, store)
	notifier.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(booking, notifier, hub)
	printRoutes(r)
	r.Run(":" + port)
}

// seedCatalog inserts the default services and barbers on an empty database
// so a fresh install has something to book.
func seedCatalog() {
	var serviceCount int64
	config.DB.Model(&models.Service{}).Count(&serviceCount)
	if serviceCount == 0 {
		defaults := []models.Service{
			{Name: "Klasično Šišanje", Description: "Šišanje škarama i mašinicom", Price: 15, DurationMinutes: 30},
			{Name: "Fade Šišanje", Description: "Moderni fade sa prelazom", Price: 18, DurationMinutes: 30},
			{Name: "Brijanje Brade", Description: "Klasično brijanje toplim ručnikom", Price: 12, DurationMinutes: 30},
			{Name: "Šišanje + Brada", Description: "Kompletan tretman", Price: 25, DurationMinutes: 30},
		}
		for i := range defaults {
			defaults[i].IsActive = true
			if err := config.DB.Create(&defaults[i]).Error; err != nil {
				log.Printf("Failed to seed service %s: %v", defaults[i].Name, err)
			}
		}
	}

	var barberCount int64
	config.DB.Model(&models.Barber{}).Count(&barberCount)
	if barberCount == 0 {
		defaults := []models.Barber{
			{Name: "Emir", Bio: "15 godina iskustva", Specialties: models.StringList{"Fade", "Klasično šišanje"}},
			{Name: "Adnan", Bio: "Majstor za bradu", Specialties: models.StringList{"Brada", "Brijanje"}},
		}
		for i := range defaults {
			defaults[i].IsActive = true
			if err := config.DB.Create(&defaults[i]).Error; err != nil {
				log.Printf("Failed to seed barber %s: %v", defaults[i].Name, err)
			}
		}
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
