package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coachdesk_backend/internals/constants"
	"coachdesk_backend/internals/features/users/user/dto"
	"coachdesk_backend/internals/features/users/user/service"
	helper "coachdesk_backend/internals/helpers"
)

var validate = validator.New()

type UserAdminController struct {
	DB        *gorm.DB
	Provision *service.ProvisionService
}

func NewUserAdminController(db *gorm.DB, provision *service.ProvisionService) *UserAdminController {
	return &UserAdminController{DB: db, Provision: provision}
}

// POST /api/a/users — provision a login identity + profile + role (+ the
// role-specific employee/student record). Admin group only.
func (ctl *UserAdminController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Employee roles are branch-scoped; refuse before creating anything.
	if constants.IsEmployeeRole(req.Role) && req.BranchID == nil {
		return helper.Error(c, fiber.StatusBadRequest, "branch_id is required for employee roles")
	}

	userID, err := ctl.Provision.ProvisionUser(c.UserContext(), req)
	if err != nil {
		// Raw store/provider errors stay in the server log; the client
		// gets the mapped message only.
		log.Printf("[ERROR] CreateUser: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.Success(c, "User created successfully", dto.CreateUserResponse{UserID: userID})
}

// GET /api/a/users — paged identity list with role for the admin dashboard.
func (ctl *UserAdminController) GetUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Table("users").Where("deleted_at IS NULL").Count(&total).Error; err != nil {
		log.Println("[ERROR] GetUsers count:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	var items []dto.UserListItem
	err := ctl.DB.Table("users").
		Select("users.id, users.email, users.full_name, users.is_active, COALESCE(user_roles.role, '') AS role").
		Joins("LEFT JOIN user_roles ON user_roles.user_id = users.id").
		Where("users.deleted_at IS NULL").
		Order("users.created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Scan(&items).Error
	if err != nil {
		log.Println("[ERROR] GetUsers scan:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	return helper.Success(c, "Users fetched successfully", fiber.Map{
		"users":      items,
		"pagination": helper.BuildPagination(paging, total, len(items)),
	})
}
