// Package dto defines Data Transfer Objects for authentication.
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginRequest represents the JSON request body for the login endpoint.
//
// @Description Request to authenticate a user
// @Example {"username": "ramesh", "password": "password123"}
type LoginRequest struct {
	// Username is the user's unique username.
	Username string `json:"username" binding:"required" example:"ramesh"`
	// Password is the user's password.
	Password string `json:"password" binding:"required,min=6" example:"password123"`
} // @name LoginRequest

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return &ValidationError{Field: "username", Message: "is required"}
	}
	if len(r.Password) < 6 {
		return &ValidationError{Field: "password", Message: "must be at least 6 characters"}
	}
	return nil
}

// RegisterRequest represents the JSON request body for the register endpoint.
//
// @Description Request to register a new user
// @Example {"username": "ramesh", "email": "ramesh@example.com", "password": "password123", "full_name": "Ramesh Patil"}
type RegisterRequest struct {
	// Username is the user's unique username.
	Username string `json:"username" binding:"required,min=3,max=30" example:"ramesh"`
	// Email is the user's email address.
	Email string `json:"email" binding:"required,email" example:"ramesh@example.com"`
	// Password is the user's password (minimum 6 characters).
	Password string `json:"password" binding:"required,min=6" example:"password123"`
	// FullName is the user's full name (optional).
	FullName string `json:"full_name,omitempty" example:"Ramesh Patil"`
} // @name RegisterRequest

// Validate performs custom validation on the register request.
func (r *RegisterRequest) Validate() error {
	if len(r.Username) < 3 {
		return &ValidationError{Field: "username", Message: "must be at least 3 characters"}
	}
	if len(r.Username) > 30 {
		return &ValidationError{Field: "username", Message: "must be at most 30 characters"}
	}
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	if len(r.Password) < 6 {
		return &ValidationError{Field: "password", Message: "must be at least 6 characters"}
	}
	return nil
}

// TokenResponse represents the JSON response body for login.
//
// @Description Successful authentication response with a JWT access token
type TokenResponse struct {
	// Token is the JWT access token.
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"1800"`
	// User contains the authenticated user information.
	User UserResponse `json:"user"`
} // @name TokenResponse

// UserResponse represents user information in API responses.
type UserResponse struct {
	// Username is the user's unique username.
	Username string `json:"username" example:"ramesh"`
	// Email is the user's email address.
	Email string `json:"email" example:"ramesh@example.com"`
	// FullName is the user's full name.
	FullName string `json:"full_name,omitempty" example:"Ramesh Patil"`
} // @name UserResponse

// Claims represents the JWT claims carried by an access token.
type Claims struct {
	UserID   primitive.ObjectID `json:"user_id"`
	Username string             `json:"username"`
	Email    string             `json:"email"`
}
