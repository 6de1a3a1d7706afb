package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	authService "alisto_backend/internals/features/users/auth/service"
	uDTO "alisto_backend/internals/features/users/user/dto"
	uModel "alisto_backend/internals/features/users/user/model"
)

type LoginRequest struct {
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=6"`
	DeviceInfo *string `json:"deviceInfo" validate:"omitempty,max=500"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// RegisterRequest requires a password even though the stub never stores it.
type RegisterRequest struct {
	uDTO.CreateUserRequest
	Password   string  `json:"password" validate:"required,min=6"`
	DeviceInfo *string `json:"deviceInfo" validate:"omitempty,max=500"`
}

type LogoutRequest struct {
	SessionID uuid.UUID `json:"sessionId" validate:"required"`
}

type RefreshRequest struct {
	SessionID    uuid.UUID `json:"sessionId" validate:"required"`
	RefreshToken string    `json:"refreshToken" validate:"required"`
}

type AuthResponse struct {
	SessionID            uuid.UUID    `json:"sessionId"`
	AccessToken          string       `json:"accessToken"`
	AccessTokenExpiresAt time.Time    `json:"accessTokenExpiresAt"`
	RefreshToken         string       `json:"refreshToken"`
	ExpiresAt            time.Time    `json:"expiresAt"`
	User                 uDTO.UserDTO `json:"user"`
}

func ToAuthResponse(s *authService.IssuedSession, u *uModel.UserModel) AuthResponse {
	return AuthResponse{
		SessionID:            s.Session.ID,
		AccessToken:          s.AccessToken,
		AccessTokenExpiresAt: s.AccessTokenExpiresAt,
		RefreshToken:         s.RefreshToken,
		ExpiresAt:            s.Session.ExpiresAt,
		User:                 uDTO.ToUserDTO(u),
	}
}
