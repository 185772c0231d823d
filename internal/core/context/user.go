// Package context provides request-scoped values extraction.
package context

import (
	"context"
)

// UserContext contains the authenticated ERP operator.
type UserContext struct {
	UserCode string // erp_user.code
	Name     string // erp_user.name_1
	WHCode   string // operator's default warehouse (erp_user.ic_wht)
	Shelf    string // operator's default shelf (erp_user.ic_shelf)
}

type userContextKey struct{}

// WithUser adds UserContext to context.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns UserContext from context.
func GetUser(ctx context.Context) *UserContext {
	if v, ok := ctx.Value(userContextKey{}).(*UserContext); ok {
		return v
	}
	return nil
}

// GetUserCode returns operator code from context or empty string.
func GetUserCode(ctx context.Context) string {
	if u := GetUser(ctx); u != nil {
		return u.UserCode
	}
	return ""
}
