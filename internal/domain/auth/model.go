// Package auth authenticates POS operators against the ERP's erp_user table
// and issues JWT access tokens.
package auth

import (
	"context"

	"odgpos/internal/core/apperror"
)

// User is the operator profile returned on login. ic_wht and ic_shelf are
// the operator's home warehouse and shelf in the ERP schema.
type User struct {
	Code   string `db:"code"`
	Name   string `db:"name_1"`
	WHCode string `db:"ic_wht"`
	Shelf  string `db:"ic_shelf"`
}

// Credentials is one login attempt.
type Credentials struct {
	Code     string
	Password string
}

// Validate checks presence of both fields.
func (c *Credentials) Validate(ctx context.Context) error {
	if c.Code == "" {
		return apperror.NewValidation("code is required").WithDetail("field", "code")
	}
	if c.Password == "" {
		return apperror.NewValidation("password is required").WithDetail("field", "password")
	}
	return nil
}

// Record is the stored erp_user row including the password column.
// Never leaves this package.
type Record struct {
	User
	Password string `db:"password"`
}

// Session is a successful login: the profile plus a signed access token.
type Session struct {
	User  User
	Token string
}
