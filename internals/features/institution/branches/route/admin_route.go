package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coachdesk_backend/internals/constants"
	"coachdesk_backend/internals/features/institution/branches/controller"
	authmw "coachdesk_backend/internals/middlewares/auth"
)

// BranchAdminRoutes mounts branch CRUD under the staff group, gated to admins.
func BranchAdminRoutes(staff fiber.Router, db *gorm.DB) {
	ctl := controller.NewBranchController(db)

	branches := staff.Group("/branches",
		authmw.OnlyRoles("Only admins may manage branches", constants.RoleAdmin))
	branches.Post("/", ctl.CreateBranch)
	branches.Get("/", ctl.GetBranches)
	branches.Get("/:id", ctl.GetBranchByID)
	branches.Put("/:id", ctl.UpdateBranch)
	branches.Delete("/:id", ctl.DeleteBranch)
}
