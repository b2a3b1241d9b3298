package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseModel is a program the institute offers; batches are scheduled
// offerings of a course.
type CourseModel struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string    `gorm:"size:150;not null" json:"name"`
	Slug          string    `gorm:"size:160;unique;not null" json:"slug"`
	Description   *string   `gorm:"type:text" json:"description,omitempty"`
	DurationWeeks int       `gorm:"not null;default:0" json:"duration_weeks"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (CourseModel) TableName() string {
	return "courses"
}
