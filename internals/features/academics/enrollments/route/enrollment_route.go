package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coachdesk_backend/internals/features/academics/enrollments/controller"
)

// EnrollmentUserRoutes mounts the student's own enrollment listing.
func EnrollmentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewEnrollmentController(db)
	user.Get("/enrollments", ctl.GetMyEnrollments)
}

// EnrollmentAdminRoutes mounts the staff roster view.
func EnrollmentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewEnrollmentController(db)
	admin.Get("/batches/:id/enrollments", ctl.GetBatchRoster)
}
