package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// BatchModel is a scheduled offering of a course. Fees is the authoritative
// price; checkout re-reads it and never trusts client-supplied amounts.
type BatchModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	BranchID uuid.UUID `gorm:"type:uuid;not null;index" json:"branch_id"`

	Name         string         `gorm:"size:150;not null" json:"name"`
	Fees         float64        `gorm:"type:numeric(12,2);not null;check:fees >= 0" json:"fees"`
	IsActive     bool           `gorm:"not null;default:true" json:"is_active"`
	StartDate    *time.Time     `json:"start_date,omitempty"`
	EndDate      *time.Time     `json:"end_date,omitempty"`
	ScheduleDays pq.StringArray `gorm:"type:text[]" json:"schedule_days,omitempty"`
	StartTime    *string        `gorm:"size:8" json:"start_time,omitempty"`
	EndTime      *string        `gorm:"size:8" json:"end_time,omitempty"`
	Capacity     int            `gorm:"not null;default:0" json:"capacity"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (BatchModel) TableName() string {
	return "batches"
}
