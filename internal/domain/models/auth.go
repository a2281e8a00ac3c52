package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the JWT claims the server cares about. Subject carries the
// user id that scopes every row.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}
