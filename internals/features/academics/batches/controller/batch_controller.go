package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"coachdesk_backend/internals/features/academics/batches/dto"
	"coachdesk_backend/internals/features/academics/batches/model"
	helper "coachdesk_backend/internals/helpers"
)

var validate = validator.New()

type BatchController struct {
	DB *gorm.DB
}

func NewBatchController(db *gorm.DB) *BatchController {
	return &BatchController{DB: db}
}

// POST /api/a/batches
func (ctl *BatchController) CreateBatch(c *fiber.Ctx) error {
	var req dto.CreateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// The parent rows must exist; a batch priced against a ghost course is
	// unsellable.
	var n int64
	if err := ctl.DB.Table("courses").Where("id = ? AND deleted_at IS NULL", req.CourseID).Count(&n).Error; err != nil || n == 0 {
		if err != nil {
			log.Println("[ERROR] CreateBatch course check:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create batch")
		}
		return helper.Error(c, fiber.StatusBadRequest, "course_id does not refer to an existing course")
	}
	if err := ctl.DB.Table("branches").Where("id = ? AND deleted_at IS NULL", req.BranchID).Count(&n).Error; err != nil || n == 0 {
		if err != nil {
			log.Println("[ERROR] CreateBatch branch check:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create batch")
		}
		return helper.Error(c, fiber.StatusBadRequest, "branch_id does not refer to an existing branch")
	}

	batch := model.BatchModel{
		CourseID:     req.CourseID,
		BranchID:     req.BranchID,
		Name:         strings.TrimSpace(req.Name),
		Fees:         req.Fees,
		IsActive:     true,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		ScheduleDays: pq.StringArray(req.ScheduleDays),
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Capacity:     req.Capacity,
	}
	if err := ctl.DB.Create(&batch).Error; err != nil {
		log.Println("[ERROR] CreateBatch:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create batch")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Batch created successfully", batch)
}

// GET /api/a/batches — optional ?branch_id= / ?course_id= filters.
func (ctl *BatchController) GetBatches(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.BatchModel{})
	if raw := c.Query("branch_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid branch_id format")
		}
		q = q.Where("branch_id = ?", id)
	}
	if raw := c.Query("course_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid course_id format")
		}
		q = q.Where("course_id = ?", id)
	}

	var batches []model.BatchModel
	if err := q.Order("created_at DESC").Find(&batches).Error; err != nil {
		log.Println("[ERROR] GetBatches:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve batches")
	}
	return helper.Success(c, "Batches fetched successfully", batches)
}

// GET /api/a/batches/:id
func (ctl *BatchController) GetBatchByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid batch ID format")
	}

	var batch model.BatchModel
	if err := ctl.DB.First(&batch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Batch not found")
		}
		log.Println("[ERROR] GetBatchByID:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve batch")
	}
	return helper.Success(c, "Batch fetched successfully", batch)
}

// PUT /api/a/batches/:id
func (ctl *BatchController) UpdateBatch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid batch ID format")
	}

	var req dto.UpdateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var batch model.BatchModel
	if err := ctl.DB.First(&batch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Batch not found")
		}
		log.Println("[ERROR] UpdateBatch lookup:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update batch")
	}

	if req.Name != nil {
		batch.Name = strings.TrimSpace(*req.Name)
	}
	if req.Fees != nil {
		batch.Fees = *req.Fees
	}
	if req.IsActive != nil {
		batch.IsActive = *req.IsActive
	}
	if req.StartDate != nil {
		batch.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		batch.EndDate = req.EndDate
	}
	if req.ScheduleDays != nil {
		batch.ScheduleDays = pq.StringArray(req.ScheduleDays)
	}
	if req.StartTime != nil {
		batch.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		batch.EndTime = req.EndTime
	}
	if req.Capacity != nil {
		batch.Capacity = *req.Capacity
	}

	if err := ctl.DB.Save(&batch).Error; err != nil {
		log.Println("[ERROR] UpdateBatch save:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update batch")
	}
	return helper.Success(c, "Batch updated successfully", batch)
}

// DELETE /api/a/batches/:id — soft delete.
func (ctl *BatchController) DeleteBatch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid batch ID format")
	}

	res := ctl.DB.Delete(&model.BatchModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] DeleteBatch:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete batch")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Batch not found")
	}
	return helper.Success(c, "Batch deleted successfully", nil)
}

// GetOpenBatches is the public open-enrollment listing backing the site's
// course pages. Only active batches of active courses are shown.
//
// GET /api/public/batches
func (ctl *BatchController) GetOpenBatches(c *fiber.Ctx) error {
	var items []dto.PublicBatchItem
	err := ctl.DB.Table("batches").
		Select(`batches.id, batches.name, batches.fees, batches.start_date,
			batches.schedule_days, batches.start_time, batches.end_time,
			courses.name AS course_name, branches.name AS branch_name, branches.city AS branch_city`).
		Joins("JOIN courses ON courses.id = batches.course_id AND courses.deleted_at IS NULL AND courses.is_active").
		Joins("JOIN branches ON branches.id = batches.branch_id AND branches.deleted_at IS NULL").
		Where("batches.deleted_at IS NULL AND batches.is_active").
		Order("batches.start_date ASC NULLS LAST").
		Scan(&items).Error
	if err != nil {
		log.Println("[ERROR] GetOpenBatches:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve batches")
	}
	return helper.Success(c, "Open batches fetched successfully", items)
}
