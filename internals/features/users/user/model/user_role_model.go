package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRoleModel binds an identity to one of the fixed roles. Provisioning
// inserts exactly one row; nothing in the schema forbids more.
type UserRoleModel struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Role   string    `gorm:"type:varchar(20);not null" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (UserRoleModel) TableName() string {
	return "user_roles"
}
