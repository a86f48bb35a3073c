package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital_records/internal/middleware"
	"hospital_records/internal/model"
	"hospital_records/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecordsService struct {
	staff        []model.Staff
	patients     []model.Patient
	appointments []model.Appointment
}

func (s *stubRecordsService) CreateStaff(_ context.Context, createdBy string, req model.CreateStaffRequest) (*model.Staff, error) {
	return &model.Staff{ID: "staff-1", Name: req.Name, Email: req.Email, Role: req.Role, CreatedBy: createdBy}, nil
}

func (s *stubRecordsService) ListStaff(context.Context) ([]model.Staff, error) {
	return s.staff, nil
}

func (s *stubRecordsService) CreatePatient(_ context.Context, createdBy string, req model.CreatePatientRequest) (*model.Patient, error) {
	return &model.Patient{ID: "patient-1", Name: req.Name, CreatedBy: createdBy}, nil
}

func (s *stubRecordsService) ListPatients(context.Context) ([]model.Patient, error) {
	return s.patients, nil
}

func (s *stubRecordsService) CreateAppointment(_ context.Context, createdBy string, req model.CreateAppointmentRequest) (*model.Appointment, error) {
	return &model.Appointment{ID: "appt-1", PatientID: req.PatientID, DoctorID: req.DoctorID, Status: model.AppointmentStatusScheduled, CreatedBy: createdBy}, nil
}

func (s *stubRecordsService) ListAppointments(context.Context) ([]model.Appointment, error) {
	return s.appointments, nil
}

func (s *stubRecordsService) DoctorSchedule(_ context.Context, doctorID string) ([]model.Appointment, error) {
	var matched []model.Appointment
	for _, a := range s.appointments {
		if a.DoctorID == doctorID {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (s *stubRecordsService) ReportSummary(context.Context) (*model.ReportSummary, error) {
	return &model.ReportSummary{
		Patients:     int64(len(s.patients)),
		Staff:        int64(len(s.staff)),
		Appointments: int64(len(s.appointments)),
		GeneratedAt:  time.Now().UTC(),
	}, nil
}

// newRecordsRouter wires the real middleware pair in front of the
// record routes so the tests exercise the same enforcement path as
// production.
func newRecordsRouter(authSvc service.AuthService, recordsSvc service.RecordsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewRecordsHandler(recordsSvc)
	h.RegisterRecordRoutes(router.Group("/api/v1"), middleware.AuthMiddleware(authSvc))
	return router
}

func getWithToken(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer some-token")
	router.ServeHTTP(w, req)
	return w
}

func TestRecordRoutes_ForbiddenIsNotUnauthorized(t *testing.T) {
	// An authenticated doctor hitting an admin-only route gets 403,
	// never 401.
	authSvc := &stubAuthService{
		resolveUser: &model.AuthUser{ID: "doctor-1", Role: model.RoleDoctor, IsActive: true},
	}
	router := newRecordsRouter(authSvc, &stubRecordsService{})

	w := getWithToken(router, "/api/v1/admin/reports/summary")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRecordRoutes_UnresolvedTokenIsUnauthorized(t *testing.T) {
	authSvc := &stubAuthService{resolveErr: service.ErrInvalidToken}
	router := newRecordsRouter(authSvc, &stubRecordsService{})

	w := getWithToken(router, "/api/v1/admin/reports/summary")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecordRoutes_RolePolicy(t *testing.T) {
	cases := []struct {
		role     string
		path     string
		wantCode int
	}{
		{model.RoleAdmin, "/api/v1/admin/staff", http.StatusOK},
		{model.RoleReceptionist, "/api/v1/admin/staff", http.StatusForbidden},
		{model.RoleDoctor, "/api/v1/admin/staff", http.StatusForbidden},

		{model.RoleAdmin, "/api/v1/admin/patients", http.StatusOK},
		{model.RoleReceptionist, "/api/v1/admin/patients", http.StatusOK},
		{model.RoleDoctor, "/api/v1/admin/patients", http.StatusOK},
		{model.RolePatient, "/api/v1/admin/patients", http.StatusForbidden},

		{model.RoleAdmin, "/api/v1/admin/appointments", http.StatusOK},
		{model.RoleReceptionist, "/api/v1/admin/appointments", http.StatusOK},
		{model.RoleDoctor, "/api/v1/admin/appointments", http.StatusOK},
		{model.RolePatient, "/api/v1/admin/appointments", http.StatusForbidden},

		{model.RoleDoctor, "/api/v1/doctor/schedule", http.StatusOK},
		{model.RoleAdmin, "/api/v1/doctor/schedule", http.StatusForbidden},

		{model.RoleAdmin, "/api/v1/admin/reports/summary", http.StatusOK},
		{model.RoleReceptionist, "/api/v1/admin/reports/summary", http.StatusForbidden},
	}

	for _, tc := range cases {
		authSvc := &stubAuthService{
			resolveUser: &model.AuthUser{ID: "user-1", Role: tc.role, IsActive: true},
		}
		router := newRecordsRouter(authSvc, &stubRecordsService{})

		w := getWithToken(router, tc.path)
		assert.Equal(t, tc.wantCode, w.Code, "%s on %s", tc.role, tc.path)
	}
}

func TestCreatePatient_AsReceptionist(t *testing.T) {
	authSvc := &stubAuthService{
		resolveUser: &model.AuthUser{ID: "recep-1", Role: model.RoleReceptionist, IsActive: true},
	}
	router := newRecordsRouter(authSvc, &stubRecordsService{})

	payload, err := json.Marshal(gin.H{"name": "John Doe"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/patients", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer some-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "patient-1", resp["id"])
	assert.Equal(t, "Patient created", resp["message"])
}

func TestDoctorSchedule_ScopedToCaller(t *testing.T) {
	authSvc := &stubAuthService{
		resolveUser: &model.AuthUser{ID: "doctor-1", Role: model.RoleDoctor, IsActive: true},
	}
	recordsSvc := &stubRecordsService{
		appointments: []model.Appointment{
			{ID: "appt-1", DoctorID: "doctor-1"},
			{ID: "appt-2", DoctorID: "doctor-2"},
			{ID: "appt-3", DoctorID: "doctor-1"},
		},
	}
	router := newRecordsRouter(authSvc, recordsSvc)

	w := getWithToken(router, "/api/v1/doctor/schedule")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []model.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	for _, a := range resp {
		assert.Equal(t, "doctor-1", a.DoctorID)
	}
}
