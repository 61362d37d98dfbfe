// services/reminder_service.go
package services

import (
	"context"
	"fmt"
	"log"
	"mestar-backend/models"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// Notifier sends booking confirmations and day-before reminders over Twilio
// and records every attempt in notification_logs.
type Notifier struct {
	db     *gorm.DB
	store  ScheduleStore
	client *twilio.RestClient
}

func NewNotifier(db *gorm.DB, store ScheduleStore) *Notifier {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &Notifier{
		db:    db,
		store: store,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler wires the daily reminder job. Runs every day at 9 AM.
func (n *Notifier) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 9 * * *", func() {
		n.SendDailyReminders()
	})

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendDailyReminders messages every customer with a confirmed appointment
// tomorrow. One failed send does not stop the rest.
func (n *Notifier) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	tomorrow := time.Now().AddDate(0, 0, 1)
	schedule, err := n.store.DailySchedule(context.Background(), tomorrow.Format(DateLayout))
	if err != nil {
		log.Printf("Failed to fetch tomorrow's schedule: %v", err)
		return
	}

	for _, appt := range schedule {
		if appt.Status != models.StatusConfirmed {
			continue
		}
		message := fmt.Sprintf(
			"Podsjetnik: vaš termin (%s) kod %s je sutra u %s. Vidimo se!",
			appt.ServiceName, appt.BarberName, appt.AppointmentTime,
		)
		n.send(appt, "reminder", message)
	}

	log.Println("Daily reminder processing completed")
}

// SendConfirmation messages the customer right after a successful booking.
func (n *Notifier) SendConfirmation(appt models.BookingAppointment) {
	message := fmt.Sprintf(
		"Rezervacija potvrđena! Vaš termin (%s) kod %s je zakazan za %s u %s.",
		appt.ServiceName, appt.BarberName, appt.AppointmentDate, appt.AppointmentTime,
	)
	n.send(appt, "confirmation", message)
}

func (n *Notifier) send(appt models.BookingAppointment, notifType, message string) {
	if appt.CustomerPhone == "" {
		log.Printf("Appointment %s: no phone on file, skipping %s", appt.ID, notifType)
		return
	}

	// Determine channel (WhatsApp if available, else SMS)
	channel := "sms"
	to := appt.CustomerPhone

	// Use WhatsApp if phone is in E.164 format and starts with '+'
	if strings.HasPrefix(appt.CustomerPhone, "+") {
		to = "whatsapp:" + appt.CustomerPhone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := n.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send %s to %s: %v", notifType, appt.CustomerPhone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("%s sent to %s, SID: %s", notifType, appt.CustomerPhone, *resp.Sid)
	} else {
		log.Printf("%s sent to %s, but no SID returned", notifType, appt.CustomerPhone)
	}

	// Log the notification
	notifLog := models.NotificationLog{
		AppointmentID: appt.ID,
		UserID:        appt.UserID,
		Type:          notifType,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		Channel:       channel,
		SentAt:        time.Now(),
	}

	if err := n.db.Create(&notifLog).Error; err != nil {
		log.Printf("Failed to log %s for appointment %s: %v", notifType, appt.ID, err)
	}
}
