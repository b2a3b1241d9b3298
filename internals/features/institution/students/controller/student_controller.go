package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "coachdesk_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

type studentItem struct {
	ID          uuid.UUID `json:"id"`
	StudentCode string    `json:"student_code"`
	UserID      uuid.UUID `json:"user_id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	BranchName  *string   `json:"branch_name,omitempty"`
}

// GET /api/a/students — student directory with the branch, if assigned.
func (ctl *StudentController) GetStudents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Table("students").
		Select(`students.id, students.student_code, students.user_id,
			users.full_name, users.email, branches.name AS branch_name`).
		Joins("JOIN users ON users.id = students.user_id AND users.deleted_at IS NULL").
		Joins("LEFT JOIN branches ON branches.id = students.branch_id")

	if search := c.Query("q"); search != "" {
		q = q.Where("users.full_name ILIKE ? OR users.email ILIKE ? OR students.student_code ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] GetStudents count:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve students")
	}

	var items []studentItem
	if err := q.Order("students.created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Scan(&items).Error; err != nil {
		log.Println("[ERROR] GetStudents:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve students")
	}

	return helper.Success(c, "Students fetched successfully", fiber.Map{
		"students":   items,
		"pagination": helper.BuildPagination(paging, total, len(items)),
	})
}
