package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"coachdesk_backend/internals/features/academics/courses/dto"
	"coachdesk_backend/internals/features/academics/courses/model"
	helper "coachdesk_backend/internals/helpers"
)

var validate = validator.New()

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// POST /api/a/courses
func (ctl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	name := strings.TrimSpace(req.Name)
	slug, err := helper.GenerateUniqueSlug(ctl.DB, "courses", "slug", helper.GenerateSlug(name))
	if err != nil {
		log.Println("[ERROR] CreateCourse slug:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create course")
	}

	course := model.CourseModel{
		Name:          name,
		Slug:          slug,
		Description:   req.Description,
		DurationWeeks: req.DurationWeeks,
		IsActive:      true,
	}
	if err := ctl.DB.Create(&course).Error; err != nil {
		log.Println("[ERROR] CreateCourse:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course created successfully", course)
}

// GET /api/a/courses
func (ctl *CourseController) GetCourses(c *fiber.Ctx) error {
	var courses []model.CourseModel
	if err := ctl.DB.Order("created_at ASC").Find(&courses).Error; err != nil {
		log.Println("[ERROR] GetCourses:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve courses")
	}
	return helper.Success(c, "Courses fetched successfully", courses)
}

// GET /api/a/courses/:id
func (ctl *CourseController) GetCourseByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID format")
	}

	var course model.CourseModel
	if err := ctl.DB.First(&course, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		log.Println("[ERROR] GetCourseByID:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve course")
	}
	return helper.Success(c, "Course fetched successfully", course)
}

// PUT /api/a/courses/:id
func (ctl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID format")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course model.CourseModel
	if err := ctl.DB.First(&course, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		log.Println("[ERROR] UpdateCourse lookup:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update course")
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != course.Name {
		course.Name = strings.TrimSpace(*req.Name)
		slug, err := helper.GenerateUniqueSlug(ctl.DB, "courses", "slug", helper.GenerateSlug(course.Name))
		if err != nil {
			log.Println("[ERROR] UpdateCourse slug:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to update course")
		}
		course.Slug = slug
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.DurationWeeks != nil {
		course.DurationWeeks = *req.DurationWeeks
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}

	if err := ctl.DB.Save(&course).Error; err != nil {
		log.Println("[ERROR] UpdateCourse save:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return helper.Success(c, "Course updated successfully", course)
}

// DELETE /api/a/courses/:id — soft delete.
func (ctl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID format")
	}

	res := ctl.DB.Delete(&model.CourseModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] DeleteCourse:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.Success(c, "Course deleted successfully", nil)
}
