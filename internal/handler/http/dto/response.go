package dto

import (
	"time"

	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/entity"
)

// UserResponse is the DTO for a user. It never carries password material.
type UserResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	FirstName *string `json:"firstname"`
	LastName  *string `json:"lastname"`
	Enabled   bool    `json:"enabled"`
	Locked    bool    `json:"locked"`
	CreatedAt string  `json:"created_at"`
}

// LoginResponse is the DTO for a successful login.
type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   string       `json:"expires_at"`
}

// ToUserResponse converts a redacted profile to its wire form.
func ToUserResponse(p entity.Profile) UserResponse {
	return UserResponse{
		ID:        p.ID,
		Username:  p.Username,
		Email:     p.Email,
		Role:      string(p.Role),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Enabled:   p.Enabled,
		Locked:    p.Locked,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponses(profiles []entity.Profile) []UserResponse {
	out := make([]UserResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, ToUserResponse(p))
	}
	return out
}

func ToLoginResponse(res *entity.LoginResult) LoginResponse {
	return LoginResponse{
		User:        ToUserResponse(res.Profile),
		AccessToken: res.Token.AccessToken,
		TokenType:   res.Token.TokenType,
		ExpiresAt:   res.Token.ExpiresAt.Format(time.RFC3339),
	}
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
