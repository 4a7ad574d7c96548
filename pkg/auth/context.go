package auth

import (
	"context"

	"github.com/google/uuid"
)

// UserFromContext extracts the authenticated identity placed by
// AuthMiddleware. ok is false on routes mounted without it.
func UserFromContext(ctx context.Context) (userID uuid.UUID, role string, ok bool) {
	userID, ok = ctx.Value(UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}
	role, _ = ctx.Value(RoleKey).(string)
	return userID, role, true
}
