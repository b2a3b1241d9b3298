package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachdesk_backend/internals/constants"
	employeeModel "coachdesk_backend/internals/features/institution/employees/model"
	studentModel "coachdesk_backend/internals/features/institution/students/model"
	"coachdesk_backend/internals/features/users/user/dto"
	userModel "coachdesk_backend/internals/features/users/user/model"
)

// fakeStore records creates/deletes in memory and lets a test fail a step.
type fakeStore struct {
	identities map[uuid.UUID]*userModel.UserModel
	profiles   map[uuid.UUID]*userModel.UserProfileModel
	roles      map[uuid.UUID]*userModel.UserRoleModel
	employees  []*employeeModel.EmployeeModel
	students   []*studentModel.StudentModel

	failProfile  bool
	failRole     bool
	failEmployee bool
	failStudent  bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		identities: map[uuid.UUID]*userModel.UserModel{},
		profiles:   map[uuid.UUID]*userModel.UserProfileModel{},
		roles:      map[uuid.UUID]*userModel.UserRoleModel{},
	}
}

func (f *fakeStore) CreateIdentity(_ context.Context, u *userModel.UserModel) error {
	for _, ex := range f.identities {
		if ex.Email == u.Email {
			return errors.New("duplicate email")
		}
	}
	f.identities[u.ID] = u
	return nil
}

func (f *fakeStore) DeleteIdentity(_ context.Context, id uuid.UUID) error {
	delete(f.identities, id)
	return nil
}

func (f *fakeStore) CreateProfile(_ context.Context, p *userModel.UserProfileModel) error {
	if f.failProfile {
		return errors.New("profile insert failed")
	}
	f.profiles[p.UserID] = p
	return nil
}

func (f *fakeStore) DeleteProfile(_ context.Context, userID uuid.UUID) error {
	delete(f.profiles, userID)
	return nil
}

func (f *fakeStore) AssignRole(_ context.Context, r *userModel.UserRoleModel) error {
	if f.failRole {
		return errors.New("role insert failed")
	}
	f.roles[r.UserID] = r
	return nil
}

func (f *fakeStore) CreateEmployee(_ context.Context, e *employeeModel.EmployeeModel) error {
	if f.failEmployee {
		return errors.New("employee insert failed")
	}
	f.employees = append(f.employees, e)
	return nil
}

func (f *fakeStore) CreateStudent(_ context.Context, s *studentModel.StudentModel) error {
	if f.failStudent {
		return errors.New("student insert failed")
	}
	f.students = append(f.students, s)
	return nil
}

func strPtr(s string) *string { return &s }

func studentRequest() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Email:    "student@example.com",
		Password: "s3cret-pass",
		FullName: "Asha Student",
		Phone:    strPtr("+628123456789"),
		Role:     constants.RoleStudent,
	}
}

func employeeRequest(branchID uuid.UUID) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Email:       "sales@example.com",
		Password:    "s3cret-pass",
		FullName:    "Budi Sales",
		Role:        constants.RoleSales,
		BranchID:    &branchID,
		Department:  strPtr("Admissions"),
		Designation: strPtr("Counselor"),
	}
}

func TestProvisionStudentSuccess(t *testing.T) {
	store := newFakeStore()
	svc := NewProvisionService(store)

	id, err := svc.ProvisionUser(context.Background(), studentRequest())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	require.Contains(t, store.identities, id)
	assert.NotEqual(t, "s3cret-pass", store.identities[id].Password, "password must be hashed")
	require.Contains(t, store.profiles, id)
	require.Contains(t, store.roles, id)
	assert.Equal(t, constants.RoleStudent, store.roles[id].Role)

	require.Len(t, store.students, 1)
	assert.Regexp(t, regexp.MustCompile(`^STU-[A-Z0-9]+$`), store.students[0].StudentCode)
	assert.Nil(t, store.students[0].BranchID)
	assert.Empty(t, store.employees)
}

func TestProvisionEmployeeSuccess(t *testing.T) {
	store := newFakeStore()
	svc := NewProvisionService(store)
	branchID := uuid.New()

	id, err := svc.ProvisionUser(context.Background(), employeeRequest(branchID))
	require.NoError(t, err)

	require.Len(t, store.employees, 1)
	emp := store.employees[0]
	assert.Regexp(t, regexp.MustCompile(`^EMP-[A-Z0-9]+$`), emp.EmployeeCode)
	assert.Equal(t, branchID, emp.BranchID)
	assert.Equal(t, id, emp.UserID)
	assert.Empty(t, store.students)
}

func TestProvisionProfileFailureDeletesIdentity(t *testing.T) {
	store := newFakeStore()
	store.failProfile = true
	svc := NewProvisionService(store)

	_, err := svc.ProvisionUser(context.Background(), studentRequest())
	require.Error(t, err)

	assert.Empty(t, store.identities, "identity must be removed after profile failure")
	assert.Empty(t, store.profiles)
	assert.Empty(t, store.roles)
	assert.Empty(t, store.students)
}

func TestProvisionRoleFailureDeletesProfileAndIdentity(t *testing.T) {
	store := newFakeStore()
	store.failRole = true
	svc := NewProvisionService(store)

	_, err := svc.ProvisionUser(context.Background(), studentRequest())
	require.Error(t, err)

	assert.Empty(t, store.identities)
	assert.Empty(t, store.profiles)
	assert.Empty(t, store.roles)
}

func TestProvisionStudentRecordFailureIsBestEffort(t *testing.T) {
	store := newFakeStore()
	store.failStudent = true
	svc := NewProvisionService(store)

	id, err := svc.ProvisionUser(context.Background(), studentRequest())
	require.NoError(t, err, "auxiliary failure must not fail the request")

	assert.Contains(t, store.identities, id)
	assert.Contains(t, store.profiles, id)
	assert.Contains(t, store.roles, id)
	assert.Empty(t, store.students)
}

func TestProvisionEmployeeRecordFailureIsBestEffort(t *testing.T) {
	store := newFakeStore()
	store.failEmployee = true
	svc := NewProvisionService(store)

	id, err := svc.ProvisionUser(context.Background(), employeeRequest(uuid.New()))
	require.NoError(t, err)

	assert.Contains(t, store.identities, id)
	assert.Contains(t, store.roles, id)
	assert.Empty(t, store.employees)
}

func TestProvisionDuplicateEmailSurfacesGenericError(t *testing.T) {
	store := newFakeStore()
	svc := NewProvisionService(store)

	_, err := svc.ProvisionUser(context.Background(), studentRequest())
	require.NoError(t, err)

	_, err = svc.ProvisionUser(context.Background(), studentRequest())
	require.Error(t, err)
	assert.Len(t, store.identities, 1)
}
