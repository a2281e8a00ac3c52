package client

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenSession derives the user identity from the configured access
// token. The subject claim is read without signature verification; the
// server verifies the signature on every request, the client only needs
// the id for local bookkeeping.
type TokenSession struct {
	userID string
}

// NewTokenSession parses the token's subject claim. An empty or
// unparseable token yields a signed-out session.
func NewTokenSession(token string) *TokenSession {
	s := &TokenSession{}
	if token == "" {
		return s
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return s
	}

	if sub, err := claims.GetSubject(); err == nil {
		s.userID = sub
	}
	return s
}

// UserID returns the authenticated user id, or "" when signed out.
func (s *TokenSession) UserID() string {
	return s.userID
}
