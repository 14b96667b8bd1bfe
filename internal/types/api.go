// Package types provides type definitions for structured data used throughout the alumni-connect system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateUserRequest represents the request to register a new user with password authentication.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=student alumni"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdatePasswordRequest represents a password update request.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// UpdateProfileRequest represents a partial profile update. Nil fields are
// left unchanged; pointers distinguish "absent" from "set to empty".
type UpdateProfileRequest struct {
	Name            *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Course          *string   `json:"course,omitempty"`
	GraduationYear  *int      `json:"graduation_year,omitempty" validate:"omitempty,gte=1950,lte=2100"`
	CurrentPosition *string   `json:"current_position,omitempty"`
	Company         *string   `json:"company,omitempty"`
	Skills          *[]string `json:"skills,omitempty"`
	Interests       *[]string `json:"interests,omitempty"`
	Location        *string   `json:"location,omitempty"`
	City            *string   `json:"city,omitempty"`
	Country         *string   `json:"country,omitempty"`
	Latitude        *float64  `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude       *float64  `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Bio             *string   `json:"bio,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	LinkedIn        *string   `json:"linkedin,omitempty"`
	GitHub          *string   `json:"github,omitempty"`
	AvatarURL       *string   `json:"avatar_url,omitempty"`
}

// User represents a user profile for API responses (avoids import cycle with db package).
type User struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	Course          string    `json:"course,omitempty"`
	GraduationYear  int       `json:"graduation_year,omitempty"`
	CurrentPosition string    `json:"current_position,omitempty"`
	Company         string    `json:"company,omitempty"`
	Skills          []string  `json:"skills,omitempty"`
	Interests       []string  `json:"interests,omitempty"`
	Location        string    `json:"location,omitempty"`
	City            string    `json:"city,omitempty"`
	Country         string    `json:"country,omitempty"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	LinkedIn        string    `json:"linkedin,omitempty"`
	GitHub          string    `json:"github,omitempty"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	IsFeatured      bool      `json:"is_featured"`
	Achievements    []string  `json:"achievements,omitempty"`
	PasswordSet     bool      `json:"password_set"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// LoginResponse represents the login/register response with user data and authentication token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Validate validates the CreateUserRequest using the validator.
func (r *CreateUserRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdatePasswordRequest using the validator.
func (r *UpdatePasswordRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateProfileRequest using the validator.
func (r *UpdateProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
