package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	uModel "alisto_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest is shared by POST /users and POST /auth/register.
type CreateUserRequest struct {
	Email       string     `json:"email" validate:"required,email,max=255"`
	Password    string     `json:"password" validate:"omitempty,min=6"`
	FirstName   string     `json:"firstName" validate:"required,max=100"`
	LastName    string     `json:"lastName" validate:"required,max=100"`
	MiddleName  *string    `json:"middleName" validate:"omitempty,max=100"`
	PhoneNumber string     `json:"phoneNumber" validate:"required,phone"`
	Address     string     `json:"address" validate:"required,max=500"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
}

func (r *CreateUserRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	r.Address = strings.TrimSpace(r.Address)
	r.MiddleName = trimPtr(r.MiddleName)
}

func (r *CreateUserRequest) ToModel() *uModel.UserModel {
	return &uModel.UserModel{
		Email:       r.Email,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		MiddleName:  r.MiddleName,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		DateOfBirth: r.DateOfBirth,
		IsActive:    true,
	}
}

// UpdateUserRequest is a partial update: nil fields keep their current value.
type UpdateUserRequest struct {
	FirstName              *string    `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName               *string    `json:"lastName" validate:"omitempty,min=1,max=100"`
	MiddleName             *string    `json:"middleName" validate:"omitempty,max=100"`
	PhoneNumber            *string    `json:"phoneNumber" validate:"omitempty,phone"`
	Address                *string    `json:"address" validate:"omitempty,max=500"`
	DateOfBirth            *time.Time `json:"dateOfBirth"`
	EmergencyContactName   *string    `json:"emergencyContactName" validate:"omitempty,max=100"`
	EmergencyContactNumber *string    `json:"emergencyContactNumber" validate:"omitempty,max=20"`
	ProfileImageURL        *string    `json:"profileImageUrl" validate:"omitempty,max=500"`
}

func (r *UpdateUserRequest) ApplyTo(m *uModel.UserModel) {
	if r.FirstName != nil {
		m.FirstName = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		m.LastName = strings.TrimSpace(*r.LastName)
	}
	if r.MiddleName != nil {
		m.MiddleName = trimPtr(r.MiddleName)
	}
	if r.PhoneNumber != nil {
		m.PhoneNumber = strings.TrimSpace(*r.PhoneNumber)
	}
	if r.Address != nil {
		m.Address = strings.TrimSpace(*r.Address)
	}
	if r.DateOfBirth != nil {
		m.DateOfBirth = r.DateOfBirth
	}
	if r.EmergencyContactName != nil {
		m.EmergencyContactName = trimPtr(r.EmergencyContactName)
	}
	if r.EmergencyContactNumber != nil {
		m.EmergencyContactNumber = trimPtr(r.EmergencyContactNumber)
	}
	if r.ProfileImageURL != nil {
		m.ProfileImageURL = trimPtr(r.ProfileImageURL)
	}
}

// SyncUserFromAuthRequest carries the claims of an upstream identity provider.
type SyncUserFromAuthRequest struct {
	ExternalID             string     `json:"externalId" validate:"required,max=255"`
	AuthProvider           string     `json:"authProvider" validate:"required,max=100"`
	Email                  string     `json:"email" validate:"required,email,max=255"`
	FirstName              string     `json:"firstName" validate:"required,max=100"`
	LastName               string     `json:"lastName" validate:"required,max=100"`
	MiddleName             *string    `json:"middleName" validate:"omitempty,max=100"`
	PhoneNumber            *string    `json:"phoneNumber" validate:"omitempty,phone"`
	Address                *string    `json:"address" validate:"omitempty,max=500"`
	DateOfBirth            *time.Time `json:"dateOfBirth"`
	ProfileImageURL        *string    `json:"profileImageUrl" validate:"omitempty,max=500"`
	EmergencyContactName   *string    `json:"emergencyContactName" validate:"omitempty,max=100"`
	EmergencyContactNumber *string    `json:"emergencyContactNumber" validate:"omitempty,max=20"`
}

func (r *SyncUserFromAuthRequest) Normalize() {
	r.ExternalID = strings.TrimSpace(r.ExternalID)
	r.AuthProvider = strings.TrimSpace(r.AuthProvider)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
}

/* =======================================================
   RESPONSE DTO
   ======================================================= */

type UserDTO struct {
	ID                     uuid.UUID  `json:"id"`
	Email                  string     `json:"email"`
	FirstName              string     `json:"firstName"`
	LastName               string     `json:"lastName"`
	MiddleName             *string    `json:"middleName"`
	PhoneNumber            string     `json:"phoneNumber"`
	Address                string     `json:"address"`
	DateOfBirth            *time.Time `json:"dateOfBirth"`
	IsActive               bool       `json:"isActive"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
	LastLoginAt            *time.Time `json:"lastLoginAt"`
	ProfileImageURL        *string    `json:"profileImageUrl"`
	EmergencyContactName   *string    `json:"emergencyContactName"`
	EmergencyContactNumber *string    `json:"emergencyContactNumber"`
	ExternalID             *string    `json:"externalId"`
	AuthProvider           *string    `json:"authProvider"`
}

func ToUserDTO(m *uModel.UserModel) UserDTO {
	return UserDTO{
		ID:                     m.ID,
		Email:                  m.Email,
		FirstName:              m.FirstName,
		LastName:               m.LastName,
		MiddleName:             m.MiddleName,
		PhoneNumber:            m.PhoneNumber,
		Address:                m.Address,
		DateOfBirth:            m.DateOfBirth,
		IsActive:               m.IsActive,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
		LastLoginAt:            m.LastLoginAt,
		ProfileImageURL:        m.ProfileImageURL,
		EmergencyContactName:   m.EmergencyContactName,
		EmergencyContactNumber: m.EmergencyContactNumber,
		ExternalID:             m.ExternalID,
		AuthProvider:           m.AuthProvider,
	}
}

func ToUserDTOs(rows []uModel.UserModel) []UserDTO {
	out := make([]UserDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToUserDTO(&rows[i]))
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
