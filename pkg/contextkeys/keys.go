package contextkeys

type contextKey string

const (
	IdentityKey  contextKey = "Identity"
	TokenKey     contextKey = "BackendToken"
	SessionIDKey contextKey = "SessionID"
)
