package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"coachdesk_backend/internals/constants"
	employeeModel "coachdesk_backend/internals/features/institution/employees/model"
	studentModel "coachdesk_backend/internals/features/institution/students/model"
	authService "coachdesk_backend/internals/features/users/auth/service"
	"coachdesk_backend/internals/features/users/user/dto"
	userModel "coachdesk_backend/internals/features/users/user/model"
	helper "coachdesk_backend/internals/helpers"
)

// ProvisionStore is the narrow write surface the provisioning sequence
// needs. The delete methods exist for compensation only.
type ProvisionStore interface {
	CreateIdentity(ctx context.Context, u *userModel.UserModel) error
	DeleteIdentity(ctx context.Context, userID uuid.UUID) error

	CreateProfile(ctx context.Context, p *userModel.UserProfileModel) error
	DeleteProfile(ctx context.Context, userID uuid.UUID) error

	AssignRole(ctx context.Context, r *userModel.UserRoleModel) error

	CreateEmployee(ctx context.Context, e *employeeModel.EmployeeModel) error
	CreateStudent(ctx context.Context, s *studentModel.StudentModel) error
}

type ProvisionService struct {
	store ProvisionStore
}

func NewProvisionService(store ProvisionStore) *ProvisionService {
	return &ProvisionService{store: store}
}

// ProvisionUser runs the dependent-create sequence:
//
//	identity -> profile -> role -> employee/student record
//
// The identity store exposes no multi-table transaction here, so a failure
// in a structural step (profile, role) reverses everything created so far
// with explicit compensating deletes, in reverse order. A failure in the
// auxiliary step (employee/student row) is logged and swallowed: the
// account stays usable without it and the record can be backfilled.
//
// Input is assumed validated (required fields, role enum, branch_id present
// for employee roles) by the caller.
func (s *ProvisionService) ProvisionUser(ctx context.Context, in dto.CreateUserRequest) (uuid.UUID, error) {
	hashed, err := authService.HashPassword(in.Password)
	if err != nil {
		return uuid.Nil, fmt.Errorf("hash password: %w", err)
	}

	// Step 1: identity. Nothing to clean up on failure.
	identity := &userModel.UserModel{
		ID:       uuid.New(),
		Email:    in.Email,
		Password: hashed,
		FullName: in.FullName,
		IsActive: true,
	}
	if err := s.store.CreateIdentity(ctx, identity); err != nil {
		log.Printf("[ERROR] provision: create identity failed: %v", err)
		return uuid.Nil, fmt.Errorf("create identity: %w", err)
	}

	// Step 2: profile. On failure, undo step 1.
	profile := &userModel.UserProfileModel{
		UserID:   identity.ID,
		FullName: in.FullName,
		Phone:    in.Phone,
		City:     in.City,
	}
	if err := s.store.CreateProfile(ctx, profile); err != nil {
		log.Printf("[ERROR] provision: create profile failed: %v", err)
		s.compensate(ctx, identity.ID, false)
		return uuid.Nil, fmt.Errorf("create profile: %w", err)
	}

	// Step 3: role assignment. On failure, undo steps 2 then 1.
	role := &userModel.UserRoleModel{
		UserID: identity.ID,
		Role:   in.Role,
	}
	if err := s.store.AssignRole(ctx, role); err != nil {
		log.Printf("[ERROR] provision: assign role failed: %v", err)
		s.compensate(ctx, identity.ID, true)
		return uuid.Nil, fmt.Errorf("assign role: %w", err)
	}

	// Steps 4/5: role-specific record, best effort. An under-provisioned
	// account beats a deleted identity mid-workflow.
	switch {
	case constants.IsEmployeeRole(in.Role):
		emp := &employeeModel.EmployeeModel{
			EmployeeCode: helper.GenerateEmployeeCode(),
			UserID:       identity.ID,
			BranchID:     *in.BranchID,
			Department:   in.Department,
			Designation:  in.Designation,
			Salary:       in.Salary,
		}
		if err := s.store.CreateEmployee(ctx, emp); err != nil {
			log.Printf("[ERROR] provision: create employee record failed (user %s kept): %v", identity.ID, err)
		}
	case in.Role == constants.RoleStudent:
		stu := &studentModel.StudentModel{
			StudentCode: helper.GenerateStudentCode(),
			UserID:      identity.ID,
			BranchID:    in.BranchID,
		}
		if err := s.store.CreateStudent(ctx, stu); err != nil {
			log.Printf("[ERROR] provision: create student record failed (user %s kept): %v", identity.ID, err)
		}
	}

	log.Printf("[SUCCESS] provisioned user %s role=%s", identity.ID, in.Role)
	return identity.ID, nil
}

// compensate deletes in reverse creation order. Cleanup failures are logged
// and not retried; the next admin attempt will hit the unique email and
// surface the leftover.
func (s *ProvisionService) compensate(ctx context.Context, userID uuid.UUID, withProfile bool) {
	if withProfile {
		if err := s.store.DeleteProfile(ctx, userID); err != nil {
			log.Printf("[ERROR] provision rollback: delete profile failed for %s: %v", userID, err)
		}
	}
	if err := s.store.DeleteIdentity(ctx, userID); err != nil {
		log.Printf("[ERROR] provision rollback: delete identity failed for %s: %v", userID, err)
	}
}
