package repository

import (
	"context"
	"fmt"

	"hospital_records/internal/model"

	"github.com/google/uuid"
)

// StaffRepository defines operations for staff record data
type StaffRepository interface {
	Create(ctx context.Context, staff *model.Staff) error
	FindAll(ctx context.Context, limit int) ([]model.Staff, error)
	Count(ctx context.Context) (int64, error)
}

type staffRepository struct {
	db DB
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db DB) StaffRepository {
	return &staffRepository{db: db}
}

// Create inserts a new staff record into the database
func (r *staffRepository) Create(ctx context.Context, staff *model.Staff) error {
	staff.ID = uuid.NewString()
	sql := `INSERT INTO staff (id, name, email, role, department, phone, is_active, created_by, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, sql, staff.ID, staff.Name, staff.Email, staff.Role, staff.Department, staff.Phone, staff.IsActive, staff.CreatedBy, staff.CreatedAt, staff.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create staff record: %w", err)
	}
	return nil
}

// FindAll retrieves staff records up to the given limit
func (r *staffRepository) FindAll(ctx context.Context, limit int) ([]model.Staff, error) {
	sql := `SELECT id, name, email, role, department, phone, is_active, created_by, created_at, updated_at
            FROM staff ORDER BY created_at DESC LIMIT $1`
	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff records: %w", err)
	}
	defer rows.Close()

	var records []model.Staff
	for rows.Next() {
		var s model.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Role, &s.Department, &s.Phone, &s.IsActive, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		records = append(records, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff rows: %w", err)
	}
	return records, nil
}

// Count returns the number of staff records
func (r *staffRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM staff`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count staff records: %w", err)
	}
	return count, nil
}
