package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	infoModel "alisto_backend/internals/features/information/model"
)

/* =======================================================
   EMERGENCY HOTLINES / CONFIGURATION / ANNOUNCEMENTS
   ======================================================= */

type EmergencyHotlineDTO struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	PhoneNumber    string  `json:"phoneNumber"`
	Description    string  `json:"description"`
	IsEmergency    bool    `json:"isEmergency"`
	Department     *string `json:"department"`
	OperatingHours *string `json:"operatingHours"`
}

func ToEmergencyHotlineDTOs(rows []infoModel.EmergencyHotlineModel) []EmergencyHotlineDTO {
	out := make([]EmergencyHotlineDTO, 0, len(rows))
	for _, h := range rows {
		out = append(out, EmergencyHotlineDTO{
			ID:             h.ID,
			Title:          h.Title,
			PhoneNumber:    h.PhoneNumber,
			Description:    h.Description,
			IsEmergency:    h.IsEmergency,
			Department:     h.Department,
			OperatingHours: h.OperatingHours,
		})
	}
	return out
}

// PublicConfigDTO exposes a configuration value decoded per its data type.
type PublicConfigDTO struct {
	Key         string                   `json:"key"`
	Value       any                      `json:"value"`
	DataType    infoModel.ConfigDataType `json:"dataType"`
	Description *string                  `json:"description"`
}

func ToPublicConfigDTOs(rows []infoModel.SystemConfigurationModel) []PublicConfigDTO {
	out := make([]PublicConfigDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, PublicConfigDTO{
			Key:         r.Key,
			Value:       decodeConfigValue(r.DataType, r.Value),
			DataType:    r.DataType,
			Description: r.Description,
		})
	}
	return out
}

// decodeConfigValue falls back to the raw string when the stored value does
// not parse as its declared type.
func decodeConfigValue(t infoModel.ConfigDataType, raw string) any {
	switch t {
	case infoModel.ConfigNumber:
		if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			return n
		}
	case infoModel.ConfigBoolean:
		if b, err := strconv.ParseBool(strings.TrimSpace(raw)); err == nil {
			return b
		}
	case infoModel.ConfigJSON:
		var v any
		if err := sonic.UnmarshalString(raw, &v); err == nil {
			return v
		}
	}
	return raw
}

type AnnouncementDTO struct {
	ID             int                        `json:"id"`
	Title          string                     `json:"title"`
	Message        string                     `json:"message"`
	Type           infoModel.AnnouncementType `json:"type"`
	Priority       string                     `json:"priority"`
	StartDate      time.Time                  `json:"startDate"`
	EndDate        *time.Time                 `json:"endDate"`
	TargetAudience *string                    `json:"targetAudience"`
}

func ToAnnouncementDTOs(rows []infoModel.AnnouncementModel) []AnnouncementDTO {
	out := make([]AnnouncementDTO, 0, len(rows))
	for _, a := range rows {
		out = append(out, AnnouncementDTO{
			ID:             a.ID,
			Title:          a.Title,
			Message:        a.Message,
			Type:           a.Type,
			Priority:       a.Priority,
			StartDate:      a.StartDate,
			EndDate:        a.EndDate,
			TargetAudience: a.TargetAudience,
		})
	}
	return out
}

/* =======================================================
   NOTIFICATIONS
   ======================================================= */

type NotificationDTO struct {
	ID        uuid.UUID                  `json:"id"`
	Title     string                     `json:"title"`
	Message   string                     `json:"message"`
	Type      infoModel.NotificationType `json:"type"`
	IsRead    bool                       `json:"isRead"`
	ActionURL *string                    `json:"actionUrl"`
	CreatedAt time.Time                  `json:"createdAt"`
	ExpiresAt *time.Time                 `json:"expiresAt"`
	ReadAt    *time.Time                 `json:"readAt,omitempty"`
}

func ToNotificationDTO(n *infoModel.NotificationModel) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		IsRead:    n.IsRead,
		ActionURL: n.ActionURL,
		CreatedAt: n.CreatedAt,
		ExpiresAt: n.ExpiresAt,
		ReadAt:    n.ReadAt,
	}
}

func ToNotificationDTOs(rows []infoModel.NotificationModel) []NotificationDTO {
	out := make([]NotificationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToNotificationDTO(&rows[i]))
	}
	return out
}

/* =======================================================
   FEEDBACK
   ======================================================= */

type CreateServiceFeedbackRequest struct {
	AppointmentID uuid.UUID `json:"appointmentId" validate:"required"`
	Rating        int       `json:"rating" validate:"required,min=1,max=5"`
	Comment       *string   `json:"comment" validate:"omitempty,max=2000"`
	IsAnonymous   bool      `json:"isAnonymous"`
	IsPublic      *bool     `json:"isPublic"`
}

type CreateAppFeedbackRequest struct {
	UserID       *uuid.UUID             `json:"userId"`
	Type         infoModel.FeedbackType `json:"type" validate:"required,enum"`
	Subject      string                 `json:"subject" validate:"required,max=200"`
	Message      string                 `json:"message" validate:"required"`
	Rating       *int                   `json:"rating" validate:"omitempty,min=1,max=5"`
	ContactEmail *string                `json:"contactEmail" validate:"omitempty,email,max=255"`
}

func (r *CreateAppFeedbackRequest) Normalize() {
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
	if r.ContactEmail != nil {
		v := strings.ToLower(strings.TrimSpace(*r.ContactEmail))
		if v == "" {
			r.ContactEmail = nil
		} else {
			r.ContactEmail = &v
		}
	}
}

func (r *CreateAppFeedbackRequest) ToModel() *infoModel.AppFeedbackModel {
	return &infoModel.AppFeedbackModel{
		UserID:       r.UserID,
		Type:         r.Type,
		Subject:      r.Subject,
		Message:      r.Message,
		Rating:       r.Rating,
		ContactEmail: r.ContactEmail,
		Status:       infoModel.FeedbackNew,
	}
}

/* =======================================================
   DASHBOARD
   ======================================================= */

// DashboardDTO is a live snapshot computed from the operational tables.
type DashboardDTO struct {
	ActiveUsers          int64            `json:"activeUsers"`
	AppointmentsByStatus map[string]int64 `json:"appointmentsByStatus"`
	IssuesByStatus       map[string]int64 `json:"issuesByStatus"`
	PublishedNews        int64            `json:"publishedNews"`
	ActiveTouristSpots   int64            `json:"activeTouristSpots"`
	ProjectsByStatus     map[string]int64 `json:"projectsByStatus"`
	AverageServiceRating *float64         `json:"averageServiceRating"`
	GeneratedAt          time.Time        `json:"generatedAt"`
}
