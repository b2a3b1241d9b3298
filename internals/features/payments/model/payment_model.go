package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusExpired  = "expired"
	PaymentStatusCanceled = "canceled"
	PaymentStatusFailed   = "failed"
)

// PaymentModel is one hosted-checkout session. Amount is stored in the
// smallest currency unit, frozen from the batch fees at session creation.
type PaymentModel struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID string    `gorm:"size:100;unique;not null" json:"order_id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	BatchID uuid.UUID `gorm:"type:uuid;not null;index" json:"batch_id"`

	Amount  int64  `gorm:"not null;check:amount > 0" json:"amount"`
	Status  string `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Gateway string `gorm:"size:50;not null;default:'midtrans'" json:"gateway"`

	SnapToken   string  `gorm:"type:text" json:"-"`
	RedirectURL string  `gorm:"type:text" json:"redirect_url"`
	Method      *string `gorm:"size:50" json:"method,omitempty"`

	// Reconciliation tags mirrored into the gateway session metadata.
	Metadata datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`

	PaidAt    *time.Time     `json:"paid_at,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
