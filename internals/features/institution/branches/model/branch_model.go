package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BranchModel is a physical centre of the institute.
type BranchModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string    `gorm:"size:100;not null" json:"name"`
	Code     string    `gorm:"size:20;unique;not null" json:"code"`
	City     string    `gorm:"size:100;not null" json:"city"`
	Address  *string   `gorm:"type:text" json:"address,omitempty"`
	Phone    *string   `gorm:"size:20" json:"phone,omitempty"`
	IsActive bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (BranchModel) TableName() string {
	return "branches"
}
