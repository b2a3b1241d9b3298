package model

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeModel is the role-specific record for staff roles
// (branch_admin, teacher, sales, support).
type EmployeeModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EmployeeCode string    `gorm:"size:30;unique;not null" json:"employee_code"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;unique" json:"user_id"`
	BranchID     uuid.UUID `gorm:"type:uuid;not null;index" json:"branch_id"`
	Department   *string   `gorm:"size:100" json:"department,omitempty"`
	Designation  *string   `gorm:"size:100" json:"designation,omitempty"`
	Salary       *float64  `gorm:"type:numeric(12,2)" json:"salary,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}
