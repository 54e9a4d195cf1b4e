package middleware

import "context"

// contextKey defines a custom type for context keys to avoid collisions.
type contextKey string

const (
	userContextKey   = contextKey("user")
	mobileContextKey = contextKey("mobile")
)

// UserInfo describes who is making the request.
type UserInfo struct {
	Subject string // operator email, or the anonymous role
	Name    string
	Role    string
}

// IsOperator reports whether the request comes from a logged-in operator.
func (u *UserInfo) IsOperator() bool {
	return u.Role == "operator"
}

// GetUserInfo retrieves the user information from the request context.
func GetUserInfo(ctx context.Context) *UserInfo {
	if userInfo, ok := ctx.Value(userContextKey).(*UserInfo); ok {
		return userInfo
	}
	// Return an anonymous user if no user info is found in the context.
	return &UserInfo{Subject: "anonymous", Role: "anonymous"}
}

// SetUserInfo adds the user information to the request context.
func SetUserInfo(ctx context.Context, userInfo *UserInfo) context.Context {
	return context.WithValue(ctx, userContextKey, userInfo)
}
