package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	uModel "alisto_backend/internals/features/users/user/model"
)

// UserSessionModel is a login session. Only the bcrypt hash of the refresh
// token is stored.
type UserSessionModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`

	RefreshTokenHash string    `gorm:"size:100;not null" json:"-"`
	ExpiresAt        time.Time `gorm:"not null" json:"expiresAt"`

	DeviceInfo *string `gorm:"size:500" json:"deviceInfo,omitempty"`
	IPAddress  *string `gorm:"size:45" json:"ipAddress,omitempty"`
	IsActive   bool    `gorm:"not null;index" json:"isActive"`

	LastActivityAt *time.Time `json:"lastActivityAt,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	User *uModel.UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserSessionModel) TableName() string {
	return "user_sessions"
}

func (s *UserSessionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
