package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coachdesk_backend/internals/constants"
	"coachdesk_backend/internals/features/academics/batches/controller"
	authmw "coachdesk_backend/internals/middlewares/auth"
)

// BatchAdminRoutes mounts batch CRUD under the staff group. The gate is
// attached per route: a group-level gate on /batches would also cover the
// staff-wide roster route nested under /batches/:id.
func BatchAdminRoutes(staff fiber.Router, db *gorm.DB) {
	ctl := controller.NewBatchController(db)
	adminOnly := authmw.OnlyRoles("Only admins may manage batches", constants.RoleAdmin)

	batches := staff.Group("/batches")
	batches.Post("/", adminOnly, ctl.CreateBatch)
	batches.Get("/", adminOnly, ctl.GetBatches)
	batches.Get("/:id", adminOnly, ctl.GetBatchByID)
	batches.Put("/:id", adminOnly, ctl.UpdateBatch)
	batches.Delete("/:id", adminOnly, ctl.DeleteBatch)
}

// BatchPublicRoutes exposes the open-enrollment listing without auth.
func BatchPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := controller.NewBatchController(db)
	public.Get("/batches", ctl.GetOpenBatches)
}
