package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel is the role-specific record for the student role.
type StudentModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentCode string     `gorm:"size:30;unique;not null" json:"student_code"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;unique" json:"user_id"`
	BranchID    *uuid.UUID `gorm:"type:uuid;index" json:"branch_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}
