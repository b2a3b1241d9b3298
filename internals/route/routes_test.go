package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachdesk_backend/internals/constants"
	helper "coachdesk_backend/internals/helpers"
	"coachdesk_backend/internals/middlewares"
	authmw "coachdesk_backend/internals/middlewares/auth"
)

// staffApp mounts the staff routes the way SetupRoutes does, with the JWT
// middleware replaced by a stub that injects the given role. The nil DB
// makes any handler that gets past the gates panic, which the recovery
// middleware turns into a 500 — so a non-401/403 status proves the gates
// let the request through.
func staffApp(role string) *fiber.App {
	app := fiber.New()
	app.Use(middlewares.RecoveryMiddleware())

	staff := app.Group("/api/a",
		func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals(helper.LocUserID, uuid.NewString())
				c.Locals(helper.LocUserRole, role)
			}
			return c.Next()
		},
		authmw.OnlyRoles("Access restricted to institute staff", constants.StaffRoles...),
	)
	mountStaffRoutes(staff, nil)
	return app
}

func staffRequest(t *testing.T, role, method, path string) int {
	t.Helper()
	app := staffApp(role)
	req := httptest.NewRequest(method, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestStaffRoutes_StaffRolesReachSharedRoutes(t *testing.T) {
	rosterPath := "/api/a/batches/" + uuid.NewString() + "/enrollments"

	cases := []struct {
		name   string
		role   string
		method string
		path   string
	}{
		{"sales lists leads", constants.RoleSales, http.MethodGet, "/api/a/leads"},
		{"teacher views employee directory", constants.RoleTeacher, http.MethodGet, "/api/a/employees"},
		{"support views student directory", constants.RoleSupport, http.MethodGet, "/api/a/students"},
		{"teacher views batch roster", constants.RoleTeacher, http.MethodGet, rosterPath},
		{"branch admin works leads", constants.RoleBranchAdmin, http.MethodGet, "/api/a/leads"},
		{"admin provisions users", constants.RoleAdmin, http.MethodPost, "/api/a/users"},
		{"admin lists batches", constants.RoleAdmin, http.MethodGet, "/api/a/batches"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code := staffRequest(t, tc.role, tc.method, tc.path)
			assert.NotEqual(t, http.StatusUnauthorized, code)
			assert.NotEqual(t, http.StatusForbidden, code)
		})
	}
}

func TestStaffRoutes_RestrictedRoutesStayGated(t *testing.T) {
	cases := []struct {
		name   string
		role   string
		method string
		path   string
	}{
		{"sales cannot provision users", constants.RoleSales, http.MethodPost, "/api/a/users"},
		{"teacher cannot manage branches", constants.RoleTeacher, http.MethodPost, "/api/a/branches"},
		{"support cannot manage courses", constants.RoleSupport, http.MethodGet, "/api/a/courses"},
		{"sales cannot manage batches", constants.RoleSales, http.MethodGet, "/api/a/batches"},
		{"teacher cannot work leads", constants.RoleTeacher, http.MethodGet, "/api/a/leads"},
		{"support cannot work leads", constants.RoleSupport, http.MethodGet, "/api/a/leads"},
		{"student is not staff", constants.RoleStudent, http.MethodGet, "/api/a/employees"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code := staffRequest(t, tc.role, tc.method, tc.path)
			assert.Equal(t, http.StatusForbidden, code)
		})
	}
}

func TestStaffRoutes_MissingRoleIsUnauthorized(t *testing.T) {
	code := staffRequest(t, "", http.MethodGet, "/api/a/leads")
	assert.Equal(t, http.StatusUnauthorized, code)
}
