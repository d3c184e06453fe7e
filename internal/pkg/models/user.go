package models

import (
	"time"

	"github.com/google/uuid"
)

// Role determines which lifecycle operations a user may perform
type Role string

const (
	RoleCustomer Role = "customer"
	RoleMechanic Role = "mechanic"
)

// Valid reports whether the role is one of the closed set
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleMechanic
}

// User represents a user in the system (either customer or mechanic)
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	FullName     string    `json:"fullname" db:"fullname"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	IsAvailable  bool      `json:"is_available" db:"is_available"`
	Latitude     *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude    *float64  `json:"longitude,omitempty" db:"longitude"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// HasLocation reports whether the user has reported a location at least once.
// Latitude and longitude are only ever written together, but both are checked
// so a half-written row can never pass as located.
func (u *User) HasLocation() bool {
	return u.Latitude != nil && u.Longitude != nil
}

// Location returns the user's last reported location. Only meaningful when
// HasLocation is true.
func (u *User) Location() Location {
	loc := Location{}
	if u.Latitude != nil {
		loc.Latitude = *u.Latitude
	}
	if u.Longitude != nil {
		loc.Longitude = *u.Longitude
	}
	return loc
}

// Location represents a geographical location with latitude and longitude
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// UserInfo is the contact summary embedded in request detail responses
type UserInfo struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullname"`
	Phone    string    `json:"phone"`
}

// Info returns the contact summary for this user
func (u *User) Info() *UserInfo {
	return &UserInfo{
		ID:       u.ID,
		FullName: u.FullName,
		Phone:    u.Phone,
	}
}
