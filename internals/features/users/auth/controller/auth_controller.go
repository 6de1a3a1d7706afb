package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"alisto_backend/internals/configs"
	authDTO "alisto_backend/internals/features/users/auth/dto"
	authModel "alisto_backend/internals/features/users/auth/model"
	authService "alisto_backend/internals/features/users/auth/service"
	userController "alisto_backend/internals/features/users/user/controller"
	uDTO "alisto_backend/internals/features/users/user/dto"
	uModel "alisto_backend/internals/features/users/user/model"
	helper "alisto_backend/internals/helpers"
	"alisto_backend/internals/helpers/dbtime"
	authMw "alisto_backend/internals/middlewares/auth"
)

// AuthController is a session stub: credentials are not verified, but
// sessions, refresh rotation and signed access tokens are real.
type AuthController struct {
	DB  *gorm.DB
	Cfg configs.AuthConfig
}

func NewAuthController(db *gorm.DB, cfg configs.AuthConfig) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

var validateAuth = helper.NewValidator()

func clientIP(c *fiber.Ctx) *string {
	ip := c.IP()
	if ip == "" {
		return nil
	}
	if len(ip) > 45 {
		ip = ip[:45]
	}
	return &ip
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := helper.ParseAndValidate(c, validateAuth, &req); err != nil {
		return err
	}

	db := ac.DB.WithContext(c.UserContext())
	now := dbtime.NowUTC()

	var user uModel.UserModel
	if err := db.Where("LOWER(email) = ? AND is_active = ?", req.Email, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Unauthorized("Invalid email or password")
		}
		return err
	}

	var issued *authService.IssuedSession
	err := db.Transaction(func(tx *gorm.DB) error {
		user.LastLoginAt = &now
		if err := tx.Model(&user).Update("last_login_at", now).Error; err != nil {
			return err
		}
		var err error
		issued, err = authService.CreateSession(tx, ac.Cfg, user.ID, req.DeviceInfo, clientIP(c), now)
		return err
	})
	if err != nil {
		return err
	}

	log.Info().Str("user_id", user.ID.String()).Str("session_id", issued.Session.ID.String()).Msg("login")
	return helper.JsonOK(c, "Login successful", authDTO.ToAuthResponse(issued, &user))
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := helper.ParseAndValidate(c, validateAuth, &req); err != nil {
		return err
	}

	now := dbtime.NowUTC()
	var (
		user   *uModel.UserModel
		issued *authService.IssuedSession
	)
	err := ac.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = userController.CreateLocalUser(tx, &req.CreateUserRequest)
		if err != nil {
			return err
		}
		user.LastLoginAt = &now
		if err := tx.Model(user).Update("last_login_at", now).Error; err != nil {
			return err
		}
		issued, err = authService.CreateSession(tx, ac.Cfg, user.ID, req.DeviceInfo, clientIP(c), now)
		return err
	})
	if err != nil {
		return err
	}

	return helper.JsonCreated(c, "/api/users/"+user.ID.String(), "Registration successful", authDTO.ToAuthResponse(issued, user))
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	var req authDTO.LogoutRequest
	if err := helper.ParseAndValidate(c, validateAuth, &req); err != nil {
		return err
	}

	res := ac.DB.WithContext(c.UserContext()).
		Model(&authModel.UserSessionModel{}).
		Where("id = ? AND is_active = ?", req.SessionID, true).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helper.BadRequest("Invalid session")
	}
	return helper.JsonOK(c, "Logout successful", nil)
}

// POST /api/auth/refresh
func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	var req authDTO.RefreshRequest
	if err := helper.ParseAndValidate(c, validateAuth, &req); err != nil {
		return err
	}

	db := ac.DB.WithContext(c.UserContext())
	now := dbtime.NowUTC()

	var session authModel.UserSessionModel
	if err := db.Where("id = ? AND is_active = ?", req.SessionID, true).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Unauthorized("Invalid session")
		}
		return err
	}
	if !session.ExpiresAt.After(now) || !authService.RefreshTokenMatches(session.RefreshTokenHash, req.RefreshToken) {
		return helper.Unauthorized("Invalid session")
	}

	var user uModel.UserModel
	if err := db.Where("id = ? AND is_active = ?", session.UserID, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Unauthorized("Invalid session")
		}
		return err
	}

	var issued *authService.IssuedSession
	err := db.Transaction(func(tx *gorm.DB) error {
		user.LastLoginAt = &now
		if err := tx.Model(&user).Update("last_login_at", now).Error; err != nil {
			return err
		}
		var err error
		issued, err = authService.RotateSession(tx, ac.Cfg, &session, now)
		return err
	})
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Token refreshed successfully", authDTO.ToAuthResponse(issued, &user))
}

// GET /api/auth/me (behind AuthMiddleware)
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := authMw.UserIDFromLocals(c)
	if !ok {
		return helper.Unauthorized("Unauthorized")
	}
	var user uModel.UserModel
	if err := ac.DB.WithContext(c.UserContext()).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Unauthorized("Unauthorized")
		}
		return err
	}
	return helper.JsonOK(c, "Current user retrieved successfully", uDTO.ToUserDTO(&user))
}
