package handler

import (
	"errors"
	"log"
	"net/http"

	"hospital_records/internal/middleware"
	"hospital_records/internal/model"
	"hospital_records/internal/service"

	"github.com/gin-gonic/gin"
)

// RecordsHandler handles staff, patient and appointment requests
type RecordsHandler struct {
	service service.RecordsService
}

// NewRecordsHandler creates a new RecordsHandler
func NewRecordsHandler(s service.RecordsService) *RecordsHandler {
	return &RecordsHandler{service: s}
}

// Helper to get the authenticated user from context
func getAuthUser(c *gin.Context) (*model.AuthUser, error) {
	userVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return nil, errors.New("user not found in context")
	}
	user, ok := userVal.(*model.AuthUser)
	if !ok {
		return nil, errors.New("invalid user type in context")
	}
	return user, nil
}

func (h *RecordsHandler) CreateStaff(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	staff, err := h.service.CreateStaff(c.Request.Context(), user.ID, req)
	if err != nil {
		log.Printf("Error creating staff record: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create staff record"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": staff.ID, "message": "Staff created"})
}

func (h *RecordsHandler) ListStaff(c *gin.Context) {
	records, err := h.service.ListStaff(c.Request.Context())
	if err != nil {
		log.Printf("Error listing staff records: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve staff records"})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *RecordsHandler) CreatePatient(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	patient, err := h.service.CreatePatient(c.Request.Context(), user.ID, req)
	if err != nil {
		log.Printf("Error creating patient record: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create patient record"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": patient.ID, "message": "Patient created"})
}

func (h *RecordsHandler) ListPatients(c *gin.Context) {
	records, err := h.service.ListPatients(c.Request.Context())
	if err != nil {
		log.Printf("Error listing patient records: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve patient records"})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *RecordsHandler) CreateAppointment(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appointment, err := h.service.CreateAppointment(c.Request.Context(), user.ID, req)
	if err != nil {
		log.Printf("Error creating appointment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": appointment.ID, "message": "Appointment created"})
}

func (h *RecordsHandler) ListAppointments(c *gin.Context) {
	records, err := h.service.ListAppointments(c.Request.Context())
	if err != nil {
		log.Printf("Error listing appointments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointments"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// DoctorSchedule returns the appointments assigned to the calling doctor
func (h *RecordsHandler) DoctorSchedule(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	records, err := h.service.DoctorSchedule(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("Error loading doctor schedule: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve schedule"})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *RecordsHandler) ReportSummary(c *gin.Context) {
	summary, err := h.service.ReportSummary(c.Request.Context())
	if err != nil {
		log.Printf("Error building report summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// RegisterRecordRoutes registers the protected record routes. Each
// route declares its allowed role set here; the middleware pair is the
// only authorization logic in front of the handlers.
func (h *RecordsHandler) RegisterRecordRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	adminRoutes := rg.Group("/admin")
	adminRoutes.Use(authMW)
	{
		adminRoutes.POST("/staff", middleware.RoleMiddleware(model.RoleAdmin), h.CreateStaff)
		adminRoutes.GET("/staff", middleware.RoleMiddleware(model.RoleAdmin), h.ListStaff)
		adminRoutes.POST("/patients", middleware.RoleMiddleware(model.RoleAdmin, model.RoleReceptionist), h.CreatePatient)
		adminRoutes.GET("/patients", middleware.RoleMiddleware(model.RoleAdmin, model.RoleReceptionist, model.RoleDoctor), h.ListPatients)
		adminRoutes.POST("/appointments", middleware.RoleMiddleware(model.RoleAdmin, model.RoleReceptionist), h.CreateAppointment)
		adminRoutes.GET("/appointments", middleware.RoleMiddleware(model.RoleAdmin, model.RoleReceptionist, model.RoleDoctor), h.ListAppointments)
		adminRoutes.GET("/reports/summary", middleware.RoleMiddleware(model.RoleAdmin), h.ReportSummary)
	}

	doctorRoutes := rg.Group("/doctor")
	doctorRoutes.Use(authMW)
	{
		doctorRoutes.GET("/schedule", middleware.RoleMiddleware(model.RoleDoctor), h.DoctorSchedule)
	}
}
