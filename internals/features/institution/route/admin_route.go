package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	employeeController "coachdesk_backend/internals/features/institution/employees/controller"
	studentController "coachdesk_backend/internals/features/institution/students/controller"
)

// DirectoryAdminRoutes mounts the staff and student directories.
func DirectoryAdminRoutes(admin fiber.Router, db *gorm.DB) {
	employees := employeeController.NewEmployeeController(db)
	students := studentController.NewStudentController(db)

	admin.Get("/employees", employees.GetEmployees)
	admin.Get("/students", students.GetStudents)
}
