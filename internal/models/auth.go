package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims carries the identity encoded in an access token.
type JWTClaims struct {
	UserID string   `json:"uid"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest is the credentials payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserInfo is the public subset of a user returned after login.
type UserInfo struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	Role     UserRole `json:"role"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
	User        UserInfo  `json:"user"`
}
