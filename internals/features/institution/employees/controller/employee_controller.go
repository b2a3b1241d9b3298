package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "coachdesk_backend/internals/helpers"
)

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

type employeeItem struct {
	ID           uuid.UUID `json:"id"`
	EmployeeCode string    `json:"employee_code"`
	UserID       uuid.UUID `json:"user_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	BranchName   string    `json:"branch_name"`
	Department   *string   `json:"department,omitempty"`
	Designation  *string   `json:"designation,omitempty"`
}

// employeeDirectoryQuery joins each employee to their user, branch and
// earliest role row. The lateral subquery keeps the join 1:1 even when a
// user carries more than one role, mirroring FindRoleByUserID.
func employeeDirectoryQuery(db *gorm.DB) *gorm.DB {
	return db.Table("employees").
		Select(`employees.id, employees.employee_code, employees.user_id,
			employees.department, employees.designation,
			users.full_name, users.email, COALESCE(user_roles.role, '') AS role,
			branches.name AS branch_name`).
		Joins("JOIN users ON users.id = employees.user_id AND users.deleted_at IS NULL").
		Joins(`LEFT JOIN LATERAL (
			SELECT role FROM user_roles
			WHERE user_roles.user_id = employees.user_id
			ORDER BY created_at ASC LIMIT 1
		) user_roles ON true`).
		Joins("JOIN branches ON branches.id = employees.branch_id")
}

// GET /api/a/employees — staff directory; optional ?branch_id= filter.
func (ctl *EmployeeController) GetEmployees(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := employeeDirectoryQuery(ctl.DB)

	if raw := c.Query("branch_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid branch_id format")
		}
		q = q.Where("employees.branch_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] GetEmployees count:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve employees")
	}

	var items []employeeItem
	if err := q.Order("employees.created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Scan(&items).Error; err != nil {
		log.Println("[ERROR] GetEmployees:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve employees")
	}

	return helper.Success(c, "Employees fetched successfully", fiber.Map{
		"employees":  items,
		"pagination": helper.BuildPagination(paging, total, len(items)),
	})
}
