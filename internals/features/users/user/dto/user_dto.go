package dto

import (
	"strings"

	"github.com/google/uuid"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest — admin-driven account provisioning. There is no amount
// or credential material here beyond the initial password; everything else
// the flow derives server-side.
type CreateUserRequest struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8"`
	FullName string  `json:"full_name" validate:"required,min=3,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	City     *string `json:"city,omitempty" validate:"omitempty,max=100"`

	Role     string     `json:"role" validate:"required,oneof=admin branch_admin teacher sales support student"`
	BranchID *uuid.UUID `json:"branch_id,omitempty"`

	// Employee-only extras, stored verbatim on the employees row.
	Department  *string  `json:"department,omitempty" validate:"omitempty,max=100"`
	Designation *string  `json:"designation,omitempty" validate:"omitempty,max=100"`
	Salary      *float64 `json:"salary,omitempty" validate:"omitempty,gte=0"`
}

// Normalize trims and lower-cases what the identity store treats as citext.
func (r *CreateUserRequest) Normalize() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.FullName = strings.TrimSpace(r.FullName)
	r.Role = strings.TrimSpace(strings.ToLower(r.Role))
	if r.Phone != nil {
		v := strings.TrimSpace(*r.Phone)
		r.Phone = &v
	}
	if r.City != nil {
		v := strings.TrimSpace(*r.City)
		r.City = &v
	}
}

// CreateUserResponse carries the new identity id back to the dashboard.
type CreateUserResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

// UserListItem is the admin list projection (no credential fields).
type UserListItem struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
