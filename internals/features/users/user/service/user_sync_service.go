package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	uDTO "alisto_backend/internals/features/users/user/dto"
	uModel "alisto_backend/internals/features/users/user/model"
)

// FindByExternalIdentity looks a user up by the (externalId, authProvider) pair.
func FindByExternalIdentity(db *gorm.DB, externalID, provider string) (*uModel.UserModel, error) {
	var u uModel.UserModel
	err := db.Where("external_id = ? AND auth_provider = ?", externalID, provider).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ReconcileFromAuth matches an identity-provider assertion against the local
// users, in order: by external identity, then by email (linking the identity
// onto that row), otherwise a new user is created. created reports the last case.
func ReconcileFromAuth(db *gorm.DB, req *uDTO.SyncUserFromAuthRequest, now time.Time) (user *uModel.UserModel, created bool, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		// 1) known identity
		u, err := FindByExternalIdentity(tx, req.ExternalID, req.AuthProvider)
		if err == nil {
			u.LastLoginAt = &now
			user = u
			return tx.Model(u).Update("last_login_at", now).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// 2) same email, link identity
		var byEmail uModel.UserModel
		err = tx.Where("LOWER(email) = ?", req.Email).First(&byEmail).Error
		if err == nil {
			byEmail.ExternalID = &req.ExternalID
			byEmail.AuthProvider = &req.AuthProvider
			applyProfileClaims(&byEmail, req)
			byEmail.LastLoginAt = &now
			user = &byEmail
			return tx.Save(&byEmail).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// 3) new user
		u = &uModel.UserModel{
			ExternalID:             &req.ExternalID,
			AuthProvider:           &req.AuthProvider,
			Email:                  req.Email,
			FirstName:              req.FirstName,
			LastName:               req.LastName,
			MiddleName:             nonEmpty(req.MiddleName),
			PhoneNumber:            valueOrEmpty(req.PhoneNumber),
			Address:                valueOrEmpty(req.Address),
			DateOfBirth:            req.DateOfBirth,
			IsActive:               true,
			LastLoginAt:            &now,
			ProfileImageURL:        nonEmpty(req.ProfileImageURL),
			EmergencyContactName:   nonEmpty(req.EmergencyContactName),
			EmergencyContactNumber: nonEmpty(req.EmergencyContactNumber),
		}
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		user, created = u, true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return user, created, nil
}

// SyncFromAuth overwrites email and names of an already linked user, plus any
// contact field present in the request. gorm.ErrRecordNotFound when the
// identity is unknown.
func SyncFromAuth(db *gorm.DB, req *uDTO.SyncUserFromAuthRequest) (*uModel.UserModel, error) {
	u, err := FindByExternalIdentity(db, req.ExternalID, req.AuthProvider)
	if err != nil {
		return nil, err
	}
	u.Email = req.Email
	u.FirstName = req.FirstName
	u.LastName = req.LastName
	applyContactClaims(u, req)
	if err := db.Save(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func applyProfileClaims(u *uModel.UserModel, req *uDTO.SyncUserFromAuthRequest) {
	if req.FirstName != "" {
		u.FirstName = req.FirstName
	}
	if req.LastName != "" {
		u.LastName = req.LastName
	}
	applyContactClaims(u, req)
}

func applyContactClaims(u *uModel.UserModel, req *uDTO.SyncUserFromAuthRequest) {
	if v := nonEmpty(req.MiddleName); v != nil {
		u.MiddleName = v
	}
	if v := nonEmpty(req.PhoneNumber); v != nil {
		u.PhoneNumber = *v
	}
	if v := nonEmpty(req.Address); v != nil {
		u.Address = *v
	}
	if req.DateOfBirth != nil {
		u.DateOfBirth = req.DateOfBirth
	}
	if v := nonEmpty(req.ProfileImageURL); v != nil {
		u.ProfileImageURL = v
	}
	if v := nonEmpty(req.EmergencyContactName); v != nil {
		u.EmergencyContactName = v
	}
	if v := nonEmpty(req.EmergencyContactNumber); v != nil {
		u.EmergencyContactNumber = v
	}
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func valueOrEmpty(s *string) string {
	if v := nonEmpty(s); v != nil {
		return *v
	}
	return ""
}
