package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"coachdesk_backend/internals/features/institution/branches/dto"
	"coachdesk_backend/internals/features/institution/branches/model"
	helper "coachdesk_backend/internals/helpers"
)

var validate = validator.New()

type BranchController struct {
	DB *gorm.DB
}

func NewBranchController(db *gorm.DB) *BranchController {
	return &BranchController{DB: db}
}

// POST /api/a/branches
func (ctl *BranchController) CreateBranch(c *fiber.Ctx) error {
	var req dto.CreateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	branch := model.BranchModel{
		Name:     strings.TrimSpace(req.Name),
		Code:     req.Code,
		City:     strings.TrimSpace(req.City),
		Address:  req.Address,
		Phone:    req.Phone,
		IsActive: true,
	}
	if err := ctl.DB.Create(&branch).Error; err != nil {
		log.Println("[ERROR] CreateBranch:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create branch")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Branch created successfully", branch)
}

// GET /api/a/branches
func (ctl *BranchController) GetBranches(c *fiber.Ctx) error {
	var branches []model.BranchModel
	if err := ctl.DB.Order("created_at ASC").Find(&branches).Error; err != nil {
		log.Println("[ERROR] GetBranches:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve branches")
	}
	return helper.Success(c, "Branches fetched successfully", branches)
}

// GET /api/a/branches/:id
func (ctl *BranchController) GetBranchByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid branch ID format")
	}

	var branch model.BranchModel
	if err := ctl.DB.First(&branch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Branch not found")
		}
		log.Println("[ERROR] GetBranchByID:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve branch")
	}
	return helper.Success(c, "Branch fetched successfully", branch)
}

// PUT /api/a/branches/:id
func (ctl *BranchController) UpdateBranch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid branch ID format")
	}

	var req dto.UpdateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var branch model.BranchModel
	if err := ctl.DB.First(&branch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Branch not found")
		}
		log.Println("[ERROR] UpdateBranch lookup:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update branch")
	}

	if req.Name != nil {
		branch.Name = strings.TrimSpace(*req.Name)
	}
	if req.City != nil {
		branch.City = strings.TrimSpace(*req.City)
	}
	if req.Address != nil {
		branch.Address = req.Address
	}
	if req.Phone != nil {
		branch.Phone = req.Phone
	}
	if req.IsActive != nil {
		branch.IsActive = *req.IsActive
	}

	if err := ctl.DB.Save(&branch).Error; err != nil {
		log.Println("[ERROR] UpdateBranch save:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update branch")
	}
	return helper.Success(c, "Branch updated successfully", branch)
}

// DELETE /api/a/branches/:id — soft delete.
func (ctl *BranchController) DeleteBranch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid branch ID format")
	}

	res := ctl.DB.Delete(&model.BranchModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] DeleteBranch:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete branch")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Branch not found")
	}
	return helper.Success(c, "Branch deleted successfully", nil)
}
