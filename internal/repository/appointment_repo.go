package repository

import (
	"context"
	"fmt"

	"hospital_records/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AppointmentRepository defines operations for appointment data
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	FindAll(ctx context.Context, limit int) ([]model.Appointment, error)
	FindByDoctor(ctx context.Context, doctorID string, limit int) ([]model.Appointment, error)
	Count(ctx context.Context) (int64, error)
}

type appointmentRepository struct {
	db DB
}

// NewAppointmentRepository creates a new AppointmentRepository
func NewAppointmentRepository(db DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

// Create inserts a new appointment into the database
func (r *appointmentRepository) Create(ctx context.Context, a *model.Appointment) error {
	a.ID = uuid.NewString()
	sql := `INSERT INTO appointments (id, patient_id, doctor_id, scheduled_at, reason, status, created_by, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, sql, a.ID, a.PatientID, a.DoctorID, a.ScheduledAt, a.Reason, a.Status, a.CreatedBy, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// FindAll retrieves appointments up to the given limit
func (r *appointmentRepository) FindAll(ctx context.Context, limit int) ([]model.Appointment, error) {
	sql := `SELECT id, patient_id, doctor_id, scheduled_at, reason, status, created_by, created_at, updated_at
            FROM appointments ORDER BY scheduled_at DESC LIMIT $1`
	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()
	return scanAppointments(rows)
}

// FindByDoctor retrieves appointments assigned to one doctor
func (r *appointmentRepository) FindByDoctor(ctx context.Context, doctorID string, limit int) ([]model.Appointment, error) {
	sql := `SELECT id, patient_id, doctor_id, scheduled_at, reason, status, created_by, created_at, updated_at
            FROM appointments WHERE doctor_id = $1 ORDER BY scheduled_at DESC LIMIT $2`
	rows, err := r.db.Query(ctx, sql, doctorID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments by doctor: %w", err)
	}
	defer rows.Close()
	return scanAppointments(rows)
}

// Count returns the number of appointments
func (r *appointmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM appointments`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return count, nil
}

func scanAppointments(rows pgx.Rows) ([]model.Appointment, error) {
	var records []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.ScheduledAt, &a.Reason, &a.Status, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan appointment row: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointment rows: %w", err)
	}
	return records, nil
}
