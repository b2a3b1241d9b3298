package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "coachdesk_backend/internals/helpers"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

type enrollmentItem struct {
	ID         uuid.UUID  `json:"id"`
	BatchID    uuid.UUID  `json:"batch_id"`
	BatchName  string     `json:"batch_name"`
	CourseName string     `json:"course_name"`
	Status     string     `json:"status"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	EnrolledAt time.Time  `json:"enrolled_at"`
}

// GET /api/u/enrollments — the calling student's own enrollments.
func (ctl *EnrollmentController) GetMyEnrollments(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var items []enrollmentItem
	err = ctl.DB.Table("enrollments").
		Select(`enrollments.id, enrollments.batch_id, enrollments.status,
			enrollments.created_at AS enrolled_at,
			batches.name AS batch_name, batches.start_date, courses.name AS course_name`).
		Joins("JOIN batches ON batches.id = enrollments.batch_id").
		Joins("JOIN courses ON courses.id = batches.course_id").
		Where("enrollments.user_id = ?", userID).
		Order("enrollments.created_at DESC").
		Scan(&items).Error
	if err != nil {
		log.Println("[ERROR] GetMyEnrollments:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve enrollments")
	}
	return helper.Success(c, "Enrollments fetched successfully", items)
}

// GET /api/a/batches/:id/enrollments — roster for staff.
func (ctl *EnrollmentController) GetBatchRoster(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid batch ID format")
	}

	type rosterItem struct {
		ID         uuid.UUID `json:"id"`
		UserID     uuid.UUID `json:"user_id"`
		FullName   string    `json:"full_name"`
		Email      string    `json:"email"`
		Status     string    `json:"status"`
		EnrolledAt time.Time `json:"enrolled_at"`
	}

	var items []rosterItem
	err = ctl.DB.Table("enrollments").
		Select(`enrollments.id, enrollments.user_id, enrollments.status,
			enrollments.created_at AS enrolled_at, users.full_name, users.email`).
		Joins("JOIN users ON users.id = enrollments.user_id").
		Where("enrollments.batch_id = ?", batchID).
		Order("users.full_name ASC").
		Scan(&items).Error
	if err != nil {
		log.Println("[ERROR] GetBatchRoster:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve roster")
	}
	return helper.Success(c, "Roster fetched successfully", items)
}
