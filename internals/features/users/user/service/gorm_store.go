package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	employeeModel "coachdesk_backend/internals/features/institution/employees/model"
	studentModel "coachdesk_backend/internals/features/institution/students/model"
	userModel "coachdesk_backend/internals/features/users/user/model"
)

// GormProvisionStore backs ProvisionStore with the shared Postgres.
type GormProvisionStore struct {
	DB *gorm.DB
}

func NewGormProvisionStore(db *gorm.DB) *GormProvisionStore {
	return &GormProvisionStore{DB: db}
}

func (s *GormProvisionStore) CreateIdentity(ctx context.Context, u *userModel.UserModel) error {
	return s.DB.WithContext(ctx).Create(u).Error
}

func (s *GormProvisionStore) DeleteIdentity(ctx context.Context, userID uuid.UUID) error {
	// Hard delete: a compensating delete must actually remove the row, not
	// soft-hide it, or the unique email stays burned.
	return s.DB.WithContext(ctx).Unscoped().Delete(&userModel.UserModel{}, "id = ?", userID).Error
}

func (s *GormProvisionStore) CreateProfile(ctx context.Context, p *userModel.UserProfileModel) error {
	return s.DB.WithContext(ctx).Create(p).Error
}

func (s *GormProvisionStore) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	return s.DB.WithContext(ctx).Delete(&userModel.UserProfileModel{}, "user_id = ?", userID).Error
}

func (s *GormProvisionStore) AssignRole(ctx context.Context, r *userModel.UserRoleModel) error {
	return s.DB.WithContext(ctx).Create(r).Error
}

func (s *GormProvisionStore) CreateEmployee(ctx context.Context, e *employeeModel.EmployeeModel) error {
	return s.DB.WithContext(ctx).Create(e).Error
}

func (s *GormProvisionStore) CreateStudent(ctx context.Context, st *studentModel.StudentModel) error {
	return s.DB.WithContext(ctx).Create(st).Error
}
