package repository

import (
	"context"
	"fmt"

	"hospital_records/internal/model"

	"github.com/google/uuid"
)

// PatientRepository defines operations for patient record data
type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	FindAll(ctx context.Context, limit int) ([]model.Patient, error)
	Count(ctx context.Context) (int64, error)
}

type patientRepository struct {
	db DB
}

// NewPatientRepository creates a new PatientRepository
func NewPatientRepository(db DB) PatientRepository {
	return &patientRepository{db: db}
}

// Create inserts a new patient record into the database
func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	patient.ID = uuid.NewString()
	sql := `INSERT INTO patients (id, name, email, phone, address, date_of_birth, created_by, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, sql, patient.ID, patient.Name, patient.Email, patient.Phone, patient.Address, patient.DateOfBirth, patient.CreatedBy, patient.CreatedAt, patient.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create patient record: %w", err)
	}
	return nil
}

// FindAll retrieves patient records up to the given limit
func (r *patientRepository) FindAll(ctx context.Context, limit int) ([]model.Patient, error) {
	sql := `SELECT id, name, email, phone, address, date_of_birth, created_by, created_at, updated_at
            FROM patients ORDER BY created_at DESC LIMIT $1`
	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query patient records: %w", err)
	}
	defer rows.Close()

	var records []model.Patient
	for rows.Next() {
		var p model.Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Address, &p.DateOfBirth, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan patient row: %w", err)
		}
		records = append(records, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating patient rows: %w", err)
	}
	return records, nil
}

// Count returns the number of patient records
func (r *patientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM patients`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count patient records: %w", err)
	}
	return count, nil
}
