package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Roles a user account can hold.
const (
	RoleStudent = "student"
	RoleAlumni  = "alumni"
)

// User represents a user account with its alumni-network profile.
// ProfileEmbedding is a derived cache written only by the recommendation
// engine; every other field is owned by the profile CRUD layer.
type User struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	PasswordHash    string      `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet     bool        `json:"password_set" db:"password_set"`
	Role            string      `json:"role"`
	Course          string      `json:"course,omitempty"`
	GraduationYear  int         `json:"graduation_year,omitempty"`
	CurrentPosition string      `json:"current_position,omitempty"`
	Company         string      `json:"company,omitempty"`
	Skills          StringArray `json:"skills"`    // JSONB array
	Interests       StringArray `json:"interests"` // JSONB array
	Location        string      `json:"location,omitempty"`
	City            string      `json:"city,omitempty"`
	Country         string      `json:"country,omitempty"`
	Latitude        *float64    `json:"latitude,omitempty"`
	Longitude       *float64    `json:"longitude,omitempty"`
	Bio             string      `json:"bio,omitempty"`
	Phone           string      `json:"phone,omitempty"`
	LinkedIn        string      `json:"linkedin,omitempty"`
	GitHub          string      `json:"github,omitempty"`
	AvatarURL       string      `json:"avatar_url,omitempty"`
	IsFeatured      bool        `json:"is_featured"`
	Achievements    StringArray `json:"achievements,omitempty"` // JSONB array

	// ProfileEmbedding is the cached embedding vector for this profile,
	// nil until the engine has computed one.
	ProfileEmbedding Vector `json:"-" db:"profile_embedding"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AlumniLocation is the lightweight map view of an alumni profile.
type AlumniLocation struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	CurrentPosition string    `json:"current_position,omitempty"`
	Company         string    `json:"company,omitempty"`
	Location        string    `json:"location,omitempty"`
	City            string    `json:"city,omitempty"`
	Country         string    `json:"country,omitempty"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// Vector handles JSONB float arrays used for cached profile embeddings
type Vector []float64

// Scan implements the Scanner interface for Vector
func (v *Vector) Scan(src interface{}) error {
	if src == nil {
		*v = nil
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, v)
}

// Value implements the Valuer interface for Vector
func (v Vector) Value() (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}
