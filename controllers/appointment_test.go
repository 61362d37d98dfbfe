package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mestar-backend/models"
	"mestar-backend/services"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Mock store for handler tests, one overridable func per call
type mockStore struct {
	bookedTimesFunc func(ctx context.Context, barberID uuid.UUID, date string, excludeID uuid.UUID) ([]string, error)
	getFunc         func(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	createFunc      func(ctx context.Context, appt *models.Appointment) error
	saveFunc        func(ctx context.Context, appt *models.Appointment) error
}

func (m *mockStore) BookedTimes(ctx context.Context, barberID uuid.UUID, date string, excludeID uuid.UUID) ([]string, error) {
	if m.bookedTimesFunc != nil {
		return m.bookedTimesFunc(ctx, barberID, date, excludeID)
	}
	return nil, nil
}

func (m *mockStore) GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, services.ErrNotFound
}

func (m *mockStore) CreateAppointment(ctx context.Context, appt *models.Appointment) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, appt)
	}
	appt.ID = uuid.New()
	return nil
}

func (m *mockStore) SaveAppointment(ctx context.Context, appt *models.Appointment) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, appt)
	}
	return nil
}

func (m *mockStore) DailySchedule(ctx context.Context, date string) ([]models.BookingAppointment, error) {
	return nil, nil
}

func (m *mockStore) UserAppointments(ctx context.Context, userID uuid.UUID) ([]models.BookingAppointment, error) {
	return nil, nil
}

func testRouter(store services.ScheduleStore, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)

	controller := &AppointmentController{
		Booking: services.NewBookingService(store, nil),
	}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", userID.String())
	})
	r.GET("/api/availability", controller.GetAvailability)
	r.POST("/api/appointments", controller.BookAppointment)
	r.PUT("/api/appointments/:id/cancel", controller.CancelAppointment)
	r.PUT("/api/appointments/:id/reschedule", controller.RescheduleAppointment)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetAvailability(t *testing.T) {
	store := &mockStore{
		bookedTimesFunc: func(context.Context, uuid.UUID, string, uuid.UUID) ([]string, error) {
			return []string{"08:30"}, nil
		},
	}
	r := testRouter(store, uuid.New())

	w := doJSON(t, r, http.MethodGet,
		"/api/availability?barberId="+uuid.New().String()+"&date=2024-06-10", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Slots []string `json:"slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Slots) != 19 {
		t.Fatalf("expected 19 free slots, got %d", len(resp.Slots))
	}
	if resp.Slots[0] != "09:00" {
		t.Fatalf("expected first free slot 09:00, got %s", resp.Slots[0])
	}
}

func TestGetAvailability_BadDate(t *testing.T) {
	r := testRouter(&mockStore{}, uuid.New())

	w := doJSON(t, r, http.MethodGet,
		"/api/availability?barberId="+uuid.New().String()+"&date=10.06.2024", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestBookAppointment_Created(t *testing.T) {
	r := testRouter(&mockStore{}, uuid.New())

	w := doJSON(t, r, http.MethodPost, "/api/appointments", gin.H{
		"serviceId": uuid.New().String(),
		"barberId":  uuid.New().String(),
		"date":      "2024-06-10",
		"time":      "10:00",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var appt models.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &appt); err != nil {
		t.Fatal(err)
	}
	if appt.Status != models.StatusConfirmed {
		t.Fatalf("expected confirmed, got %s", appt.Status)
	}
}

func TestBookAppointment_Conflict(t *testing.T) {
	store := &mockStore{
		bookedTimesFunc: func(context.Context, uuid.UUID, string, uuid.UUID) ([]string, error) {
			return []string{"10:00"}, nil
		},
	}
	r := testRouter(store, uuid.New())

	w := doJSON(t, r, http.MethodPost, "/api/appointments", gin.H{
		"serviceId": uuid.New().String(),
		"barberId":  uuid.New().String(),
		"date":      "2024-06-10",
		"time":      "10:00",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBookAppointment_OutsideHours(t *testing.T) {
	r := testRouter(&mockStore{}, uuid.New())

	w := doJSON(t, r, http.MethodPost, "/api/appointments", gin.H{
		"serviceId": uuid.New().String(),
		"barberId":  uuid.New().String(),
		"date":      "2024-06-09", // Sunday
		"time":      "10:00",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a closed day, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCancelAppointment_Own(t *testing.T) {
	userID := uuid.New()
	apptID := uuid.New()
	store := &mockStore{
		getFunc: func(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
			return &models.Appointment{ID: apptID, UserID: userID, Status: models.StatusConfirmed}, nil
		},
	}
	r := testRouter(store, userID)

	w := doJSON(t, r, http.MethodPut, "/api/appointments/"+apptID.String()+"/cancel", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var appt models.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &appt); err != nil {
		t.Fatal(err)
	}
	if appt.Status != models.StatusCancelled {
		t.Fatalf("expected cancelled, got %s", appt.Status)
	}
}

func TestRescheduleAppointment_NotFound(t *testing.T) {
	r := testRouter(&mockStore{}, uuid.New())

	w := doJSON(t, r, http.MethodPut, "/api/appointments/"+uuid.New().String()+"/reschedule", gin.H{
		"barberId": uuid.New().String(),
		"date":     "2024-06-10",
		"time":     "10:00",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
