package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	EnrollmentStatusActive    = "active"
	EnrollmentStatusCompleted = "completed"
	EnrollmentStatusDropped   = "dropped"
)

// EnrollmentModel ties a paying student to a batch. Rows are created by the
// payment webhook when a checkout session settles.
type EnrollmentModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_enrollments_user_batch,unique" json:"user_id"`
	BatchID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_enrollments_user_batch,unique" json:"batch_id"`
	PaymentID *uuid.UUID `gorm:"type:uuid" json:"payment_id,omitempty"`
	Status    string     `gorm:"type:varchar(20);not null;default:'active'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}
