package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "alisto_backend/internals/features/users/auth/model"
	"alisto_backend/internals/configs"
)

// IssuedSession is a freshly created (or rotated) session with its plaintext
// tokens. The refresh token is only ever visible here.
type IssuedSession struct {
	Session              *authModel.UserSessionModel
	AccessToken          string
	AccessTokenExpiresAt time.Time
	RefreshToken         string
}

// CreateSession stores a new active session for userID and signs its tokens.
func CreateSession(db *gorm.DB, cfg configs.AuthConfig, userID uuid.UUID, deviceInfo, ip *string, now time.Time) (*IssuedSession, error) {
	refresh, hash, err := NewRefreshToken()
	if err != nil {
		return nil, err
	}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}

	session := &authModel.UserSessionModel{
		UserID:           userID,
		RefreshTokenHash: hash,
		ExpiresAt:        now.Add(ttl),
		DeviceInfo:       deviceInfo,
		IPAddress:        ip,
		IsActive:         true,
		LastActivityAt:   &now,
	}
	if err := db.Create(session).Error; err != nil {
		return nil, err
	}

	access, exp, err := IssueAccessToken(cfg.JWTSecret, userID, session.ID, now, cfg.AccessTTL)
	if err != nil {
		return nil, err
	}
	return &IssuedSession{Session: session, AccessToken: access, AccessTokenExpiresAt: exp, RefreshToken: refresh}, nil
}

// RotateSession replaces the refresh token of an active session and signs a
// new access token.
func RotateSession(db *gorm.DB, cfg configs.AuthConfig, session *authModel.UserSessionModel, now time.Time) (*IssuedSession, error) {
	refresh, hash, err := NewRefreshToken()
	if err != nil {
		return nil, err
	}
	session.RefreshTokenHash = hash
	session.LastActivityAt = &now
	if err := db.Model(session).Updates(map[string]any{
		"refresh_token_hash": hash,
		"last_activity_at":   now,
	}).Error; err != nil {
		return nil, err
	}

	access, exp, err := IssueAccessToken(cfg.JWTSecret, session.UserID, session.ID, now, cfg.AccessTTL)
	if err != nil {
		return nil, err
	}
	return &IssuedSession{Session: session, AccessToken: access, AccessTokenExpiresAt: exp, RefreshToken: refresh}, nil
}
