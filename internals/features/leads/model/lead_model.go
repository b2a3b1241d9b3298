package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusFollowUp  = "follow_up"
	LeadStatusConverted = "converted"
	LeadStatusLost      = "lost"
)

// LeadModel is a sales enquiry from the public site or walk-in.
type LeadModel struct {
	ID       uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string     `gorm:"size:100;not null" json:"name"`
	Phone    string     `gorm:"size:20;not null" json:"phone"`
	Email    *string    `gorm:"size:255" json:"email,omitempty"`
	CourseID *uuid.UUID `gorm:"type:uuid;index" json:"course_id,omitempty"`
	BranchID *uuid.UUID `gorm:"type:uuid;index" json:"branch_id,omitempty"`
	Source   string     `gorm:"size:50;not null;default:'website'" json:"source"`

	Status     string     `gorm:"type:varchar(20);not null;default:'new';index" json:"status"`
	AssignedTo *uuid.UUID `gorm:"type:uuid;index" json:"assigned_to,omitempty"`

	// Free-form follow-up trail: [{"at": ..., "by": ..., "note": ...}, ...]
	Notes datatypes.JSON `gorm:"type:jsonb" json:"notes,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (LeadModel) TableName() string {
	return "leads"
}

func IsValidLeadStatus(s string) bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusFollowUp, LeadStatusConverted, LeadStatusLost:
		return true
	}
	return false
}
