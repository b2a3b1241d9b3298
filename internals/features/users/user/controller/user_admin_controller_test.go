package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachdesk_backend/internals/constants"
	employeeModel "coachdesk_backend/internals/features/institution/employees/model"
	studentModel "coachdesk_backend/internals/features/institution/students/model"
	userModel "coachdesk_backend/internals/features/users/user/model"
	"coachdesk_backend/internals/features/users/user/service"
	helper "coachdesk_backend/internals/helpers"
	authmw "coachdesk_backend/internals/middlewares/auth"
)

// fakeStore is an in-memory ProvisionStore for handler tests.
type fakeStore struct {
	identities map[uuid.UUID]*userModel.UserModel
	profiles   map[uuid.UUID]*userModel.UserProfileModel
	roles      map[uuid.UUID]*userModel.UserRoleModel
	employees  []*employeeModel.EmployeeModel
	students   []*studentModel.StudentModel
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		identities: map[uuid.UUID]*userModel.UserModel{},
		profiles:   map[uuid.UUID]*userModel.UserProfileModel{},
		roles:      map[uuid.UUID]*userModel.UserRoleModel{},
	}
}

func (f *fakeStore) CreateIdentity(_ context.Context, u *userModel.UserModel) error {
	f.identities[u.ID] = u
	return nil
}

func (f *fakeStore) DeleteIdentity(_ context.Context, id uuid.UUID) error {
	delete(f.identities, id)
	return nil
}

func (f *fakeStore) CreateProfile(_ context.Context, p *userModel.UserProfileModel) error {
	f.profiles[p.UserID] = p
	return nil
}

func (f *fakeStore) DeleteProfile(_ context.Context, userID uuid.UUID) error {
	delete(f.profiles, userID)
	return nil
}

func (f *fakeStore) AssignRole(_ context.Context, r *userModel.UserRoleModel) error {
	f.roles[r.UserID] = r
	return nil
}

func (f *fakeStore) CreateEmployee(_ context.Context, e *employeeModel.EmployeeModel) error {
	f.employees = append(f.employees, e)
	return nil
}

func (f *fakeStore) CreateStudent(_ context.Context, st *studentModel.StudentModel) error {
	f.students = append(f.students, st)
	return nil
}

// provisionApp wires the create-user route behind a stubbed auth context, so
// the role gate and the handler run exactly as mounted in production.
func provisionApp(store service.ProvisionStore, callerRole string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocUserID, "6f1a2b3c-0000-0000-0000-000000000001")
		if callerRole != "" {
			c.Locals(helper.LocUserRole, callerRole)
		}
		return c.Next()
	})

	ctl := NewUserAdminController(nil, service.NewProvisionService(store))
	admin := app.Group("/api/a", authmw.OnlyRoles("Only admins may manage users", constants.RoleAdmin))
	admin.Post("/users", ctl.CreateUser)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body map[string]interface{}) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func validStudentBody() map[string]interface{} {
	return map[string]interface{}{
		"email":     "new.student@example.com",
		"password":  "super-secret",
		"full_name": "New Student",
		"role":      "student",
	}
}

func TestCreateUserForbiddenForNonAdmin(t *testing.T) {
	store := newFakeStore()
	app := provisionApp(store, constants.RoleSales)

	resp := postJSON(t, app, "/api/a/users", validStudentBody())
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Empty(t, store.identities, "no rows may be created for a forbidden call")
}

func TestCreateUserUnauthorizedWithoutRole(t *testing.T) {
	store := newFakeStore()
	app := provisionApp(store, "")

	resp := postJSON(t, app, "/api/a/users", validStudentBody())
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, store.identities)
}

func TestCreateUserMissingRequiredFields(t *testing.T) {
	required := []string{"email", "password", "full_name", "role"}
	for _, field := range required {
		t.Run(field, func(t *testing.T) {
			store := newFakeStore()
			app := provisionApp(store, constants.RoleAdmin)

			body := validStudentBody()
			delete(body, field)
			resp := postJSON(t, app, "/api/a/users", body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Empty(t, store.identities)
		})
	}
}

func TestCreateUserEmployeeRoleRequiresBranch(t *testing.T) {
	store := newFakeStore()
	app := provisionApp(store, constants.RoleAdmin)

	body := validStudentBody()
	body["role"] = "sales"
	resp := postJSON(t, app, "/api/a/users", body)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, store.identities, "branch validation must run before any create")
}

func TestCreateUserStudentSuccess(t *testing.T) {
	store := newFakeStore()
	app := provisionApp(store, constants.RoleAdmin)

	resp := postJSON(t, app, "/api/a/users", validStudentBody())
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["user_id"])

	require.Len(t, store.students, 1)
	assert.Regexp(t, `^STU-[A-Z0-9]+$`, store.students[0].StudentCode)
}

func TestCreateUserInvalidRoleRejected(t *testing.T) {
	store := newFakeStore()
	app := provisionApp(store, constants.RoleAdmin)

	body := validStudentBody()
	body["role"] = "superuser"
	resp := postJSON(t, app, "/api/a/users", body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, store.identities)
}
