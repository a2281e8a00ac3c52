package auth

import (
	"tempo/internal/domain/models"
)

// JWTVerifier validates bearer tokens and extracts their claims.
type JWTVerifier interface {
	VerifyToken(tokenString string) (*models.Claims, error)
	Close() error
}
