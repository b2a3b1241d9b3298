package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfileModel is 1:1 with users; created right after the identity by
// the provisioning flow.
type UserProfileModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;unique" json:"user_id"`
	FullName string    `gorm:"size:100;not null" json:"full_name"`
	Phone    *string   `gorm:"size:20" json:"phone,omitempty"`
	City     *string   `gorm:"size:100" json:"city,omitempty"`
	Address  *string   `gorm:"type:text" json:"address,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserProfileModel) TableName() string {
	return "user_profiles"
}
