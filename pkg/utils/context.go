package utils

import (
	"context"

	"business-portal/internal/entities"
	"business-portal/pkg/contextkeys"
)

func ContextWithSession(ctx context.Context, sessionID, token string, identity *entities.Identity) context.Context {
	ctx = context.WithValue(ctx, contextkeys.SessionIDKey, sessionID)
	ctx = context.WithValue(ctx, contextkeys.TokenKey, token)
	ctx = context.WithValue(ctx, contextkeys.IdentityKey, identity)
	return ctx
}

// IdentityFromContext достаёт учётную запись текущей сессии.
// nil означает неаутентифицированный запрос.
func IdentityFromContext(ctx context.Context) *entities.Identity {
	if ident, ok := ctx.Value(contextkeys.IdentityKey).(*entities.Identity); ok {
		return ident
	}
	return nil
}

func TokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(contextkeys.TokenKey).(string); ok {
		return token
	}
	return ""
}

func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextkeys.SessionIDKey).(string); ok {
		return id
	}
	return ""
}
