package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateBatchRequest struct {
	CourseID     uuid.UUID  `json:"course_id" validate:"required"`
	BranchID     uuid.UUID  `json:"branch_id" validate:"required"`
	Name         string     `json:"name" validate:"required,min=2,max=150"`
	Fees         float64    `json:"fees" validate:"gte=0"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	ScheduleDays []string   `json:"schedule_days,omitempty" validate:"omitempty,dive,oneof=mon tue wed thu fri sat sun"`
	StartTime    *string    `json:"start_time,omitempty" validate:"omitempty,len=5"`
	EndTime      *string    `json:"end_time,omitempty" validate:"omitempty,len=5"`
	Capacity     int        `json:"capacity" validate:"gte=0"`
}

type UpdateBatchRequest struct {
	Name         *string    `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	Fees         *float64   `json:"fees,omitempty" validate:"omitempty,gte=0"`
	IsActive     *bool      `json:"is_active,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	ScheduleDays []string   `json:"schedule_days,omitempty" validate:"omitempty,dive,oneof=mon tue wed thu fri sat sun"`
	StartTime    *string    `json:"start_time,omitempty" validate:"omitempty,len=5"`
	EndTime      *string    `json:"end_time,omitempty" validate:"omitempty,len=5"`
	Capacity     *int       `json:"capacity,omitempty" validate:"omitempty,gte=0"`
}

// PublicBatchItem is the open-enrollment listing shape for the public site.
type PublicBatchItem struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Fees         float64        `json:"fees"`
	CourseName   string         `json:"course_name"`
	BranchName   string         `json:"branch_name"`
	BranchCity   string         `json:"branch_city"`
	StartDate    *time.Time     `json:"start_date,omitempty"`
	ScheduleDays pq.StringArray `gorm:"type:text[]" json:"schedule_days,omitempty"`
	StartTime    *string        `json:"start_time,omitempty"`
	EndTime      *string        `json:"end_time,omitempty"`
}
