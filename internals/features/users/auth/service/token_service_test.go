package service

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/google/uuid"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	c := qt.New(t)
	userID, sessionID := uuid.New(), uuid.New()
	now := time.Now().UTC().Truncate(time.Second)

	tok, exp, err := IssueAccessToken("s3cret", userID, sessionID, now, 15*time.Minute)
	c.Assert(err, qt.IsNil)
	c.Assert(exp, qt.Equals, now.Add(15*time.Minute))

	claims, err := ParseAccessToken("s3cret", tok)
	c.Assert(err, qt.IsNil)
	c.Assert(claims.UserID, qt.Equals, userID)
	c.Assert(claims.SessionID, qt.Equals, sessionID)
	c.Assert(claims.ExpiresAt.Equal(exp), qt.IsTrue)

	_, err = ParseAccessToken("other", tok)
	c.Assert(err, qt.Equals, ErrInvalidToken)
}

func TestAccessTokenExpiry(t *testing.T) {
	c := qt.New(t)
	tok, _, err := IssueAccessToken("s3cret", uuid.New(), uuid.New(), time.Now().Add(-2*time.Hour), time.Hour)
	c.Assert(err, qt.IsNil)
	_, err = ParseAccessToken("s3cret", tok)
	c.Assert(err, qt.Equals, ErrInvalidToken)
}

func TestIssueAccessTokenNeedsSecret(t *testing.T) {
	c := qt.New(t)
	_, _, err := IssueAccessToken("", uuid.New(), uuid.New(), time.Now(), time.Hour)
	c.Assert(err, qt.ErrorMatches, "jwt secret is empty")
}

func TestRefreshTokenHash(t *testing.T) {
	c := qt.New(t)
	tok, hash, err := NewRefreshToken()
	c.Assert(err, qt.IsNil)
	c.Assert(tok, qt.HasLen, 43)
	c.Assert(RefreshTokenMatches(hash, tok), qt.IsTrue)
	c.Assert(RefreshTokenMatches(hash, tok+"x"), qt.IsFalse)
}
