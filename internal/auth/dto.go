package auth

import (
	"github.com/angelmondragon/healthtrack-backend/internal/users"
)

// SignupRequest captures the registration payload.
type SignupRequest struct {
	UserName string `json:"username" validate:"required,max=100"`
	PhoneNo  string `json:"phoneno" validate:"required,max=32"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest captures the credentials sent to the login endpoint.
type LoginRequest struct {
	Mobile   string `json:"mobile" validate:"required,max=32"`
	Password string `json:"password" validate:"required"`
}

// SignupResponse is returned after a successful registration.
type SignupResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    *users.UserDTO `json:"user"`
}

// LoginResponse contains the fresh token and the user it belongs to.
type LoginResponse struct {
	Token string         `json:"token"`
	User  *users.UserDTO `json:"user"`
}

// ProfileResponse echoes the authenticated user and the token presented.
type ProfileResponse struct {
	User  *users.UserDTO `json:"user"`
	Token string         `json:"token"`
}

// Identity is the verified caller attached to each authenticated request.
type Identity struct {
	UserID  uint
	PhoneNo string
	Token   string
}
