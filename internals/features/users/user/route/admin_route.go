package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coachdesk_backend/internals/constants"
	"coachdesk_backend/internals/features/users/user/controller"
	"coachdesk_backend/internals/features/users/user/service"
	authmw "coachdesk_backend/internals/middlewares/auth"
)

// UserAdminRoutes mounts account provisioning under the staff group.
// Provisioning is admin-only, so the sub-group carries its own gate.
func UserAdminRoutes(staff fiber.Router, db *gorm.DB) {
	provision := service.NewProvisionService(service.NewGormProvisionStore(db))
	ctl := controller.NewUserAdminController(db, provision)

	users := staff.Group("/users",
		authmw.OnlyRoles("Only admins may manage users", constants.RoleAdmin))
	users.Post("/", ctl.CreateUser)
	users.Get("/", ctl.GetUsers)
}
