package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	batchModel "coachdesk_backend/internals/features/academics/batches/model"
	enrollmentModel "coachdesk_backend/internals/features/academics/enrollments/model"
	paymentModel "coachdesk_backend/internals/features/payments/model"
)

// GormCheckoutStore backs the checkout/webhook store interfaces with the
// shared Postgres.
type GormCheckoutStore struct {
	DB *gorm.DB
}

func NewGormCheckoutStore(db *gorm.DB) *GormCheckoutStore {
	return &GormCheckoutStore{DB: db}
}

func (s *GormCheckoutStore) FindBatchByID(ctx context.Context, id uuid.UUID) (*batchModel.BatchModel, error) {
	var b batchModel.BatchModel
	if err := s.DB.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *GormCheckoutStore) CreatePayment(ctx context.Context, p *paymentModel.PaymentModel) error {
	return s.DB.WithContext(ctx).Create(p).Error
}

func (s *GormCheckoutStore) SavePayment(ctx context.Context, p *paymentModel.PaymentModel) error {
	return s.DB.WithContext(ctx).Save(p).Error
}

func (s *GormCheckoutStore) FindPaymentByOrderID(ctx context.Context, orderID string) (*paymentModel.PaymentModel, error) {
	var p paymentModel.PaymentModel
	if err := s.DB.WithContext(ctx).First(&p, "order_id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GormCheckoutStore) HasEnrollment(ctx context.Context, userID, batchID uuid.UUID) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&enrollmentModel.EnrollmentModel{}).
		Where("user_id = ? AND batch_id = ?", userID, batchID).
		Count(&count).Error
	return count > 0, err
}

func (s *GormCheckoutStore) CreateEnrollment(ctx context.Context, e *enrollmentModel.EnrollmentModel) error {
	return s.DB.WithContext(ctx).Create(e).Error
}
