package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	uDTO "alisto_backend/internals/features/users/user/dto"
	uModel "alisto_backend/internals/features/users/user/model"
	uService "alisto_backend/internals/features/users/user/service"
	helper "alisto_backend/internals/helpers"
	"alisto_backend/internals/helpers/dbtime"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validateUser = helper.NewValidator()

const msgUserNotFound = "User not found"

func (uc *UserController) db(c *fiber.Ctx) *gorm.DB {
	return uc.DB.WithContext(c.UserContext())
}

func (uc *UserController) findUser(c *fiber.Ctx) (*uModel.UserModel, error) {
	id, err := helper.ParamUUID(c, "id", msgUserNotFound)
	if err != nil {
		return nil, err
	}
	var user uModel.UserModel
	if err := uc.db(c).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound(msgUserNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// GET /api/users?page=&pageSize=&isActive=&search=
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)

	isActive, err := helper.QueryBool(c, "isActive")
	if err != nil {
		return err
	}

	q := uc.db(c).Model(&uModel.UserModel{})
	if isActive != nil {
		q = q.Where("is_active = ?", *isActive)
	}
	if s := strings.ToLower(strings.TrimSpace(c.Query("search"))); s != "" {
		like := "%" + s + "%"
		q = q.Where("LOWER(email) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	var users []uModel.UserModel
	if err := q.Order("created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&users).Error; err != nil {
		return err
	}

	return helper.JsonList(c, fmt.Sprintf("Retrieved %d users successfully", len(users)),
		uDTO.ToUserDTOs(users), helper.BuildMeta(total, p))
}

// GET /api/users/:id
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	user, err := uc.findUser(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "User retrieved successfully", uDTO.ToUserDTO(user))
}

// GET /api/users/by-external/:provider/:externalId
func (uc *UserController) GetUserByExternalIdentity(c *fiber.Ctx) error {
	user, err := uService.FindByExternalIdentity(uc.db(c), c.Params("externalId"), c.Params("provider"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(msgUserNotFound)
		}
		return err
	}
	return helper.JsonOK(c, "User retrieved successfully", uDTO.ToUserDTO(user))
}

// POST /api/users
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var req uDTO.CreateUserRequest
	if err := helper.ParseAndValidate(c, validateUser, &req); err != nil {
		return err
	}

	user, err := CreateLocalUser(uc.db(c), &req)
	if err != nil {
		return err
	}

	log.Info().Str("user_id", user.ID.String()).Msg("user created")
	return helper.JsonCreated(c, "/api/users/"+user.ID.String(), "User created successfully", uDTO.ToUserDTO(user))
}

// CreateLocalUser inserts a user after the duplicate-email check. Shared with
// registration.
func CreateLocalUser(db *gorm.DB, req *uDTO.CreateUserRequest) (*uModel.UserModel, error) {
	var count int64
	if err := db.Model(&uModel.UserModel{}).Where("LOWER(email) = ?", req.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, helper.BadRequest("User with this email already exists")
	}
	user := req.ToModel()
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// PUT /api/users/:id (partial)
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	user, err := uc.findUser(c)
	if err != nil {
		return err
	}

	var req uDTO.UpdateUserRequest
	if err := helper.ParseAndValidate(c, validateUser, &req); err != nil {
		return err
	}

	req.ApplyTo(user)
	if err := uc.db(c).Save(user).Error; err != nil {
		return err
	}
	return helper.JsonUpdated(c, "User updated successfully", uDTO.ToUserDTO(user))
}

// DELETE /api/users/:id -> soft delete
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	user, err := uc.findUser(c)
	if err != nil {
		return err
	}
	user.IsActive = false
	if err := uc.db(c).Model(user).Update("is_active", false).Error; err != nil {
		return err
	}
	log.Info().Str("user_id", user.ID.String()).Msg("user deactivated")
	return helper.JsonDeleted(c, "User deleted successfully")
}

// PATCH /api/users/:id/activate
func (uc *UserController) ActivateUser(c *fiber.Ctx) error {
	user, err := uc.findUser(c)
	if err != nil {
		return err
	}
	user.IsActive = true
	if err := uc.db(c).Model(user).Update("is_active", true).Error; err != nil {
		return err
	}
	return helper.JsonOK(c, "User activated successfully", uDTO.ToUserDTO(user))
}

// POST /api/users/from-auth
func (uc *UserController) CreateOrGetFromAuth(c *fiber.Ctx) error {
	var req uDTO.SyncUserFromAuthRequest
	if err := helper.ParseAndValidate(c, validateUser, &req); err != nil {
		return err
	}

	user, created, err := uService.ReconcileFromAuth(uc.db(c), &req, dbtime.NowUTC())
	if err != nil {
		return err
	}
	if created {
		log.Info().Str("user_id", user.ID.String()).Str("provider", req.AuthProvider).Msg("user created from external identity")
		return helper.JsonCreated(c, "/api/users/"+user.ID.String(), "User created successfully", uDTO.ToUserDTO(user))
	}
	return helper.JsonOK(c, "User retrieved successfully", uDTO.ToUserDTO(user))
}

// PUT /api/users/sync-from-auth
func (uc *UserController) SyncFromAuth(c *fiber.Ctx) error {
	var req uDTO.SyncUserFromAuthRequest
	if err := helper.ParseAndValidate(c, validateUser, &req); err != nil {
		return err
	}

	user, err := uService.SyncFromAuth(uc.db(c), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(msgUserNotFound)
		}
		return err
	}
	return helper.JsonUpdated(c, "User synchronized successfully", uDTO.ToUserDTO(user))
}
