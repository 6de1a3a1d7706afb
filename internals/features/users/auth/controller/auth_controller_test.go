package controller_test

import (
	"net/http"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gofiber/fiber/v2"

	authDTO "alisto_backend/internals/features/users/auth/dto"
	uDTO "alisto_backend/internals/features/users/user/dto"
	"alisto_backend/internals/testutil"
)

func register(c *qt.C, app *fiber.App, email string) authDTO.AuthResponse {
	c.Helper()
	res := testutil.JSON(c, app, http.MethodPost, "/api/auth/register", map[string]any{
		"email":       email,
		"password":    "secret123",
		"firstName":   "Lea",
		"lastName":    "Cruz",
		"phoneNumber": "09181234567",
		"address":     "Zone 3",
	})
	c.Assert(res.Status, qt.Equals, http.StatusCreated, qt.Commentf("%s", res.Raw))
	var out authDTO.AuthResponse
	res.Body.Decode(c, &out)
	return out
}

func TestRegisterLoginAndMe(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)

	reg := register(c, app, "lea@example.com")
	c.Assert(reg.AccessToken, qt.Not(qt.Equals), "")
	c.Assert(reg.RefreshToken, qt.Not(qt.Equals), "")
	c.Assert(reg.User.Email, qt.Equals, "lea@example.com")

	res := testutil.JSON(c, app, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "LEA@example.com",
		"password": "whatever1",
	})
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	var login authDTO.AuthResponse
	res.Body.Decode(c, &login)
	c.Assert(login.SessionID, qt.Not(qt.Equals), reg.SessionID)

	res = testutil.Do(c, app, testutil.Request{Method: http.MethodGet, Path: "/api/auth/me", Token: login.AccessToken})
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	var me uDTO.UserDTO
	res.Body.Decode(c, &me)
	c.Assert(me.ID, qt.Equals, reg.User.ID)
	c.Assert(me.LastLoginAt, qt.IsNotNil)
}

func TestLoginRejectsUnknownOrInactive(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)

	u := testutil.CreateUser(c, db)
	c.Assert(db.Model(u).Update("is_active", false).Error, qt.IsNil)

	for _, email := range []string{"ghost@example.com", u.Email} {
		res := testutil.JSON(c, app, http.MethodPost, "/api/auth/login", map[string]any{
			"email":    email,
			"password": "secret123",
		})
		c.Assert(res.Status, qt.Equals, http.StatusUnauthorized)
		c.Assert(res.Body.Message, qt.Equals, "Invalid email or password")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)

	register(c, app, "dup@example.com")
	res := testutil.JSON(c, app, http.MethodPost, "/api/auth/register", map[string]any{
		"email":       "dup@example.com",
		"password":    "secret123",
		"firstName":   "Dup",
		"lastName":    "Licate",
		"phoneNumber": "09181234567",
		"address":     "Zone 3",
	})
	c.Assert(res.Status, qt.Equals, http.StatusBadRequest)
	c.Assert(res.Body.Message, qt.Equals, "User with this email already exists")
}

func TestRefreshRotatesAndLogoutRevokes(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)
	reg := register(c, app, "rot@example.com")

	res := testutil.JSON(c, app, http.MethodPost, "/api/auth/refresh", map[string]any{
		"sessionId":    reg.SessionID,
		"refreshToken": reg.RefreshToken,
	})
	c.Assert(res.Status, qt.Equals, http.StatusOK)
	var rotated authDTO.AuthResponse
	res.Body.Decode(c, &rotated)
	c.Assert(rotated.SessionID, qt.Equals, reg.SessionID)
	c.Assert(rotated.RefreshToken, qt.Not(qt.Equals), reg.RefreshToken)

	// the old refresh token is spent
	res = testutil.JSON(c, app, http.MethodPost, "/api/auth/refresh", map[string]any{
		"sessionId":    reg.SessionID,
		"refreshToken": reg.RefreshToken,
	})
	c.Assert(res.Status, qt.Equals, http.StatusUnauthorized)

	res = testutil.JSON(c, app, http.MethodPost, "/api/auth/logout", map[string]any{"sessionId": reg.SessionID})
	c.Assert(res.Status, qt.Equals, http.StatusOK)

	res = testutil.Do(c, app, testutil.Request{Method: http.MethodGet, Path: "/api/auth/me", Token: rotated.AccessToken})
	c.Assert(res.Status, qt.Equals, http.StatusUnauthorized)
	c.Assert(res.Body.Message, qt.Equals, "Session is no longer active")

	res = testutil.JSON(c, app, http.MethodPost, "/api/auth/logout", map[string]any{"sessionId": reg.SessionID})
	c.Assert(res.Status, qt.Equals, http.StatusBadRequest)
}

func TestMeRequiresBearerToken(t *testing.T) {
	c := qt.New(t)
	db := testutil.NewDB(c)
	app := testutil.NewApp(c, db, nil)

	res := testutil.Get(c, app, "/api/auth/me")
	c.Assert(res.Status, qt.Equals, http.StatusUnauthorized)

	res = testutil.Do(c, app, testutil.Request{Method: http.MethodGet, Path: "/api/auth/me", Token: "garbage"})
	c.Assert(res.Status, qt.Equals, http.StatusUnauthorized)
	c.Assert(res.Body.Message, qt.Equals, "Invalid or expired access token")
}
