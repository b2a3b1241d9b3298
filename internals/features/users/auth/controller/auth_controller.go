package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"coachdesk_backend/internals/configs"
	"coachdesk_backend/internals/constants"
	authDTO "coachdesk_backend/internals/features/users/auth/dto"
	authModel "coachdesk_backend/internals/features/users/auth/model"
	authRepo "coachdesk_backend/internals/features/users/auth/repository"
	authService "coachdesk_backend/internals/features/users/auth/service"
	userDTO "coachdesk_backend/internals/features/users/user/dto"
	userModel "coachdesk_backend/internals/features/users/user/model"
	userService "coachdesk_backend/internals/features/users/user/service"
	helper "coachdesk_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB        *gorm.DB
	Provision *userService.ProvisionService
}

func NewAuthController(db *gorm.DB, provision *userService.ProvisionService) *AuthController {
	return &AuthController{DB: db, Provision: provision}
}

// POST /api/auth/register — public student self-signup. Reuses the same
// provisioning sequence the admin flow uses, with role pinned to student.
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	in := userDTO.CreateUserRequest{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		City:     req.City,
		Role:     constants.RoleStudent,
	}
	in.Normalize()

	userID, err := ctl.Provision.ProvisionUser(c.UserContext(), in)
	if err != nil {
		log.Printf("[ERROR] Register: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Registration failed")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Account created successfully", fiber.Map{
		"user_id": userID,
	})
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	user, err := authRepo.FindUserByEmail(ctl.DB, email)
	if err != nil {
		// Same message for unknown email and bad password.
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Your account has been deactivated")
	}
	if !authService.CheckPassword(user.Password, req.Password) {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	return ctl.issueTokenPair(c, user)
}

// POST /api/auth/login-google — sign in with a Google ID token. First-time
// callers get a student account provisioned with a random credential.
func (ctl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req authDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		log.Println("[ERROR] LoginGoogle: token verification failed:", err)
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google token")
	}
	claims, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	user, err := authRepo.FindUserByGoogleID(ctl.DB, claims.Sub)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		email := strings.TrimSpace(strings.ToLower(claims.Email))
		user, err = authRepo.FindUserByEmail(ctl.DB, email)
		switch {
		case err == nil:
			if attachErr := authRepo.AttachGoogleID(ctl.DB, user.ID, claims.Sub); attachErr != nil {
				log.Println("[ERROR] LoginGoogle: attach google_id failed:", attachErr)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			in := userDTO.CreateUserRequest{
				Email:    email,
				Password: uuid.NewString() + uuid.NewString(),
				FullName: claims.Name,
				Role:     constants.RoleStudent,
			}
			in.Normalize()
			userID, provErr := ctl.Provision.ProvisionUser(c.UserContext(), in)
			if provErr != nil {
				log.Printf("[ERROR] LoginGoogle: provisioning failed: %v", provErr)
				return helper.Error(c, fiber.StatusInternalServerError, "Sign-in failed")
			}
			if attachErr := authRepo.AttachGoogleID(ctl.DB, userID, claims.Sub); attachErr != nil {
				log.Println("[ERROR] LoginGoogle: attach google_id failed:", attachErr)
			}
			user, err = authRepo.FindUserByID(ctl.DB, userID)
			if err != nil {
				return helper.Error(c, fiber.StatusInternalServerError, "Sign-in failed")
			}
		default:
			log.Println("[ERROR] LoginGoogle: lookup failed:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Sign-in failed")
		}
	} else if err != nil {
		log.Println("[ERROR] LoginGoogle: lookup failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Sign-in failed")
	}

	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Your account has been deactivated")
	}
	return ctl.issueTokenPair(c, user)
}

// POST /api/auth/refresh-token
func (ctl *AuthController) RefreshToken(c *fiber.Ctx) error {
	var req authDTO.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.RefreshToken == "" {
		req.RefreshToken = helper.GetRefreshTokenFromCookie(c)
	}
	if req.RefreshToken == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Missing refresh token")
	}

	userID, err := authService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	hash, err := authService.RefreshHash(req.RefreshToken)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if _, err := authRepo.FindRefreshTokenByHash(ctl.DB, hash); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token revoked or unknown")
	}

	// Rotate: drop the old token before issuing a new pair.
	if err := authRepo.DeleteRefreshTokenByHash(ctl.DB, hash); err != nil {
		log.Println("[ERROR] RefreshToken: rotation delete failed:", err)
	}

	user, err := authRepo.FindUserByID(ctl.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Your account has been deactivated")
	}
	return ctl.issueTokenPair(c, user)
}

// POST /api/auth/logout — blacklists the current access token until it
// would have expired anyway.
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if err := authRepo.BlacklistToken(ctl.DB, raw, authService.AccessTTLDefault); err != nil {
		log.Println("[ERROR] Logout: blacklist failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Logout failed")
	}
	if rt := helper.GetRefreshTokenFromCookie(c); rt != "" {
		if hash, err := authService.RefreshHash(rt); err == nil {
			_ = authRepo.DeleteRefreshTokenByHash(ctl.DB, hash)
		}
	}
	return helper.Success(c, "Logged out", nil)
}

// GET /api/auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	user, err := authRepo.FindUserByID(ctl.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	role, _ := authRepo.FindRoleByUserID(ctl.DB, user.ID)

	var profile userModel.UserProfileModel
	_ = ctl.DB.Where("user_id = ?", user.ID).First(&profile).Error

	return helper.Success(c, "Profile fetched successfully", fiber.Map{
		"user":    user,
		"role":    role,
		"profile": profile,
	})
}

func (ctl *AuthController) issueTokenPair(c *fiber.Ctx, user *userModel.UserModel) error {
	role, err := authRepo.FindRoleByUserID(ctl.DB, user.ID)
	if err != nil {
		log.Println("[ERROR] issueTokenPair: role lookup failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Login failed")
	}

	access, err := authService.SignAccessToken(user.ID, user.Email, user.FullName, role, authService.AccessTTLDefault)
	if err != nil {
		log.Println("[ERROR] issueTokenPair: sign access failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Login failed")
	}
	refresh, err := authService.SignRefreshToken(user.ID, authService.RefreshTTLDefault)
	if err != nil {
		log.Println("[ERROR] issueTokenPair: sign refresh failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Login failed")
	}

	hash, err := authService.RefreshHash(refresh)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Login failed")
	}
	rt := &authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     hash,
		ExpiresAt: time.Now().UTC().Add(authService.RefreshTTLDefault),
	}
	if err := authRepo.CreateRefreshToken(ctl.DB, rt); err != nil {
		log.Println("[ERROR] issueTokenPair: persist refresh failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Login failed")
	}

	return helper.Success(c, "Login successful", authDTO.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Role:         role,
	})
}
