package entity

import (
	"strings"
	"time"
)

// User represents a registered account in the system
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         UserRole  `bson:"role" json:"role"`
	Enabled      bool      `bson:"enabled" json:"enabled"`
	Locked       bool      `bson:"locked" json:"locked"`
	FirstName    *string   `bson:"firstname,omitempty" json:"firstname,omitempty"`
	LastName     *string   `bson:"lastname,omitempty" json:"lastname,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleUser      UserRole = "USER"
	UserRoleModerator UserRole = "MODERATOR"
	UserRoleAdmin     UserRole = "ADMIN"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// ParseUserRole accepts any casing of the three known roles.
func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(strings.ToUpper(strings.TrimSpace(s))) {
	case UserRoleUser:
		return UserRoleUser, true
	case UserRoleModerator:
		return UserRoleModerator, true
	case UserRoleAdmin:
		return UserRoleAdmin, true
	}
	return "", false
}

// IsStaff reports whether the role may act on accounts other than its own.
func (r UserRole) IsStaff() bool {
	switch r {
	case UserRoleAdmin, UserRoleModerator:
		return true
	case UserRoleUser:
		return false
	}
	return false
}

func (u *User) IsAdmin() bool { return u.Role == UserRoleAdmin }

// IsSameUser compares account identity, not field equality.
func (u *User) IsSameUser(other *User) bool {
	if u == nil || other == nil || u.ID == "" {
		return false
	}
	return u.ID == other.ID
}

// Profile is the redacted projection of a User. It never carries password material.
type Profile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	FirstName *string   `json:"firstname,omitempty"`
	LastName  *string   `json:"lastname,omitempty"`
	Enabled   bool      `json:"enabled"`
	Locked    bool      `json:"locked"`
	CreatedAt time.Time `json:"created_at"`
}

// ToProfile returns the redacted view of u.
func (u *User) ToProfile() Profile {
	return Profile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Enabled:   u.Enabled,
		Locked:    u.Locked,
		CreatedAt: u.CreatedAt,
	}
}
