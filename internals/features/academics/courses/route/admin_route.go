package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coachdesk_backend/internals/constants"
	"coachdesk_backend/internals/features/academics/courses/controller"
	authmw "coachdesk_backend/internals/middlewares/auth"
)

// CourseAdminRoutes mounts course CRUD under the staff group, gated to admins.
func CourseAdminRoutes(staff fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseController(db)

	courses := staff.Group("/courses",
		authmw.OnlyRoles("Only admins may manage courses", constants.RoleAdmin))
	courses.Post("/", ctl.CreateCourse)
	courses.Get("/", ctl.GetCourses)
	courses.Get("/:id", ctl.GetCourseByID)
	courses.Put("/:id", ctl.UpdateCourse)
	courses.Delete("/:id", ctl.DeleteCourse)
}
