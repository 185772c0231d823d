package dto

import (
	"odgpos/internal/domain/auth"
)

type LoginRequest struct {
	Code     string `json:"code" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ToModel converts the wire request to domain credentials.
func (r *LoginRequest) ToModel() *auth.Credentials {
	return &auth.Credentials{Code: r.Code, Password: r.Password}
}

type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

type UserResponse struct {
	Code   string `json:"code"`
	Name   string `json:"name_1"`
	WHCode string `json:"ic_wht"`
	Shelf  string `json:"ic_shelf"`
}

// NewLoginResponse converts a session to the wire response.
func NewLoginResponse(sess *auth.Session) LoginResponse {
	return LoginResponse{
		Success: true,
		Message: "Login successful",
		User: UserResponse{
			Code:   sess.User.Code,
			Name:   sess.User.Name,
			WHCode: sess.User.WHCode,
			Shelf:  sess.User.Shelf,
		},
		Token: sess.Token,
	}
}
