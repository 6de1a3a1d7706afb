package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the users table. Users are never hard-deleted; an
// inactive user keeps its row.
type UserModel struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// third-party identity; unique together when both are set
	ExternalID   *string `gorm:"size:255;uniqueIndex:uq_users_external_identity" json:"externalId,omitempty"`
	AuthProvider *string `gorm:"size:100;uniqueIndex:uq_users_external_identity" json:"authProvider,omitempty"`

	Email       string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	FirstName   string     `gorm:"size:100;not null" json:"firstName"`
	LastName    string     `gorm:"size:100;not null" json:"lastName"`
	MiddleName  *string    `gorm:"size:100" json:"middleName,omitempty"`
	PhoneNumber string     `gorm:"size:20;not null;index" json:"phoneNumber"`
	Address     string     `gorm:"size:500;not null" json:"address"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	IsActive    bool       `gorm:"not null" json:"isActive"`

	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`

	ProfileImageURL        *string `gorm:"size:500" json:"profileImageUrl,omitempty"`
	EmergencyContactName   *string `gorm:"size:100" json:"emergencyContactName,omitempty"`
	EmergencyContactNumber *string `gorm:"size:20" json:"emergencyContactNumber,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// FullName joins first, middle and last name.
func (u *UserModel) FullName() string {
	name := u.FirstName
	if u.MiddleName != nil && *u.MiddleName != "" {
		name += " " + *u.MiddleName
	}
	return name + " " + u.LastName
}
