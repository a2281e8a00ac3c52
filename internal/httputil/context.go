package httputil

import (
	"context"
	"net/http"
)

// Unexported key type so context values set here cannot collide with
// values from other packages.
type contextKey string

const (
	userIDKey contextKey = "userID"
)

// WithUserID returns a request whose context carries the authenticated
// user's id. The auth middleware is the only writer.
func WithUserID(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), userIDKey, userID)
	return r.WithContext(ctx)
}

// GetUserID returns the user id stashed by the auth middleware, or ""
// for a request that never went through it.
func GetUserID(r *http.Request) string {
	userID, _ := r.Context().Value(userIDKey).(string)
	return userID
}
