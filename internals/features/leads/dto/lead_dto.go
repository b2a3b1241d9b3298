package dto

import "github.com/google/uuid"

// CreateLeadRequest is the public enquiry form payload.
type CreateLeadRequest struct {
	Name     string     `json:"name" validate:"required,min=2,max=100"`
	Phone    string     `json:"phone" validate:"required,min=6,max=20"`
	Email    *string    `json:"email,omitempty" validate:"omitempty,email"`
	CourseID *uuid.UUID `json:"course_id,omitempty"`
	BranchID *uuid.UUID `json:"branch_id,omitempty"`
	Source   string     `json:"source" validate:"omitempty,oneof=website walk_in phone referral social"`
}

type UpdateLeadStatusRequest struct {
	Status string  `json:"status" validate:"required,oneof=new contacted follow_up converted lost"`
	Note   *string `json:"note,omitempty" validate:"omitempty,max=1000"`
}
