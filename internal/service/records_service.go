package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hospital_records/internal/model"
	"hospital_records/internal/repository"
)

const (
	staffListLimit       = 100
	patientListLimit     = 200
	appointmentListLimit = 200
)

// RecordsService defines operations for staff, patient and appointment records
type RecordsService interface {
	CreateStaff(ctx context.Context, createdBy string, req model.CreateStaffRequest) (*model.Staff, error)
	ListStaff(ctx context.Context) ([]model.Staff, error)

	CreatePatient(ctx context.Context, createdBy string, req model.CreatePatientRequest) (*model.Patient, error)
	ListPatients(ctx context.Context) ([]model.Patient, error)

	CreateAppointment(ctx context.Context, createdBy string, req model.CreateAppointmentRequest) (*model.Appointment, error)
	ListAppointments(ctx context.Context) ([]model.Appointment, error)
	DoctorSchedule(ctx context.Context, doctorID string) ([]model.Appointment, error)

	ReportSummary(ctx context.Context) (*model.ReportSummary, error)
}

type recordsService struct {
	staffRepo       repository.StaffRepository
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
}

// NewRecordsService creates a new RecordsService
func NewRecordsService(staffRepo repository.StaffRepository, patientRepo repository.PatientRepository, appointmentRepo repository.AppointmentRepository) RecordsService {
	return &recordsService{
		staffRepo:       staffRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (s *recordsService) CreateStaff(ctx context.Context, createdBy string, req model.CreateStaffRequest) (*model.Staff, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now().UTC()
	staff := &model.Staff{
		Name:       req.Name,
		Email:      strings.ToLower(req.Email),
		Role:       req.Role,
		Department: req.Department,
		Phone:      req.Phone,
		IsActive:   isActive,
		CreatedBy:  createdBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, fmt.Errorf("failed to create staff record in repo: %w", err)
	}
	return staff, nil
}

func (s *recordsService) ListStaff(ctx context.Context) ([]model.Staff, error) {
	records, err := s.staffRepo.FindAll(ctx, staffListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff records from repo: %w", err)
	}
	return records, nil
}

func (s *recordsService) CreatePatient(ctx context.Context, createdBy string, req model.CreatePatientRequest) (*model.Patient, error) {
	now := time.Now().UTC()
	patient := &model.Patient{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		DateOfBirth: req.DateOfBirth,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient record in repo: %w", err)
	}
	return patient, nil
}

func (s *recordsService) ListPatients(ctx context.Context) ([]model.Patient, error) {
	records, err := s.patientRepo.FindAll(ctx, patientListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list patient records from repo: %w", err)
	}
	return records, nil
}

func (s *recordsService) CreateAppointment(ctx context.Context, createdBy string, req model.CreateAppointmentRequest) (*model.Appointment, error) {
	now := time.Now().UTC()
	appointment := &model.Appointment{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		ScheduledAt: req.ScheduledAt,
		Reason:      req.Reason,
		Status:      model.AppointmentStatusScheduled,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment in repo: %w", err)
	}
	return appointment, nil
}

func (s *recordsService) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	records, err := s.appointmentRepo.FindAll(ctx, appointmentListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments from repo: %w", err)
	}
	return records, nil
}

func (s *recordsService) DoctorSchedule(ctx context.Context, doctorID string) ([]model.Appointment, error) {
	records, err := s.appointmentRepo.FindByDoctor(ctx, doctorID, appointmentListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load doctor schedule from repo: %w", err)
	}
	return records, nil
}

func (s *recordsService) ReportSummary(ctx context.Context) (*model.ReportSummary, error) {
	patients, err := s.patientRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}
	staff, err := s.staffRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count staff: %w", err)
	}
	appointments, err := s.appointmentRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count appointments: %w", err)
	}

	return &model.ReportSummary{
		Patients:     patients,
		Staff:        staff,
		Appointments: appointments,
		GeneratedAt:  time.Now().UTC(),
	}, nil
}
