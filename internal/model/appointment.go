package model

import "time"

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// Appointment represents a scheduled visit between a patient and a doctor
type Appointment struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	DoctorID    string    `json:"doctor_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Reason      *string   `json:"reason,omitempty"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateAppointmentRequest is used for creating a new appointment
type CreateAppointmentRequest struct {
	PatientID   string    `json:"patient_id" binding:"required"`
	DoctorID    string    `json:"doctor_id" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Reason      *string   `json:"reason"`
}

// ReportSummary aggregates record counts for the admin report endpoint
type ReportSummary struct {
	Patients     int64     `json:"patients"`
	Staff        int64     `json:"staff"`
	Appointments int64     `json:"appointments"`
	GeneratedAt  time.Time `json:"generated_at"`
}
