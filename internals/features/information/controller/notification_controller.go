package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	infoDTO "alisto_backend/internals/features/information/dto"
	infoModel "alisto_backend/internals/features/information/model"
	helper "alisto_backend/internals/helpers"
	"alisto_backend/internals/helpers/dbtime"
	authMw "alisto_backend/internals/middlewares/auth"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

const msgNotificationNotFound = "Notification not found"

// recipient is the signed-in user, or the userId query for unauthenticated callers.
func recipient(c *fiber.Ctx) (uuid.UUID, error) {
	if uid, ok := authMw.UserIDFromLocals(c); ok {
		return uid, nil
	}
	id, err := helper.QueryUUID(c, "userId")
	if err != nil {
		return uuid.Nil, err
	}
	if id == nil {
		return uuid.Nil, helper.BadRequest("userId is required")
	}
	return *id, nil
}

func (h *NotificationController) inbox(c *fiber.Ctx, userID uuid.UUID) *gorm.DB {
	return h.DB.WithContext(c.UserContext()).
		Model(&infoModel.NotificationModel{}).
		Where("user_id = ?", userID).
		Where("expires_at IS NULL OR expires_at > ?", dbtime.NowUTC())
}

// GET /api/notifications?isRead=
func (h *NotificationController) GetNotifications(c *fiber.Ctx) error {
	userID, err := recipient(c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)
	isRead, err := helper.QueryBool(c, "isRead")
	if err != nil {
		return err
	}

	q := h.inbox(c, userID)
	if isRead != nil {
		q = q.Where("is_read = ?", *isRead)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}
	var rows []infoModel.NotificationModel
	if err := q.Order("created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return err
	}
	return helper.JsonList(c, fmt.Sprintf("Retrieved %d notifications successfully", len(rows)),
		infoDTO.ToNotificationDTOs(rows), helper.BuildMeta(total, p))
}

// GET /api/notifications/unread-count
func (h *NotificationController) GetUnreadCount(c *fiber.Ctx) error {
	userID, err := recipient(c)
	if err != nil {
		return err
	}
	var n int64
	if err := h.inbox(c, userID).Where("is_read = ?", false).Count(&n).Error; err != nil {
		return err
	}
	return helper.JsonOK(c, "Unread notifications counted successfully", fiber.Map{"unread": n})
}

// PATCH /api/notifications/:id/read
func (h *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	userID, err := recipient(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUUID(c, "id", msgNotificationNotFound)
	if err != nil {
		return err
	}

	var n infoModel.NotificationModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&n, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(msgNotificationNotFound)
		}
		return err
	}
	if !n.IsRead {
		now := dbtime.NowUTC()
		if err := h.DB.WithContext(c.UserContext()).Model(&n).
			Updates(map[string]any{"is_read": true, "read_at": now}).Error; err != nil {
			return err
		}
		n.IsRead = true
		n.ReadAt = &now
	}
	return helper.JsonUpdated(c, "Notification marked as read", infoDTO.ToNotificationDTO(&n))
}

// PATCH /api/notifications/read-all
func (h *NotificationController) MarkAllAsRead(c *fiber.Ctx) error {
	userID, err := recipient(c)
	if err != nil {
		return err
	}
	res := h.DB.WithContext(c.UserContext()).
		Model(&infoModel.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]any{"is_read": true, "read_at": dbtime.NowUTC()})
	if res.Error != nil {
		return res.Error
	}
	return helper.JsonUpdated(c, fmt.Sprintf("Marked %d notifications as read", res.RowsAffected),
		fiber.Map{"updated": res.RowsAffected})
}
