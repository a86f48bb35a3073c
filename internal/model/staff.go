package model

import "time"

// Staff represents an employment record managed by admins
type Staff struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department *string   `json:"department,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateStaffRequest is used for creating a new staff record
type CreateStaffRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Role       string  `json:"role" binding:"required,oneof=doctor nurse admin receptionist"`
	Department *string `json:"department"`
	Phone      *string `json:"phone"`
	IsActive   *bool   `json:"is_active"`
}
