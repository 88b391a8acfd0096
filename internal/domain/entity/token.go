package entity

import (
	"strings"
	"time"
)

// Claims is the identity recovered from a verified access token.
type Claims struct {
	TokenID   string
	UserID    string
	Username  string
	Role      UserRole
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// AuthToken is the ephemeral result of a successful authentication.
type AuthToken struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// LoginResult pairs the issued token with the caller's public profile.
type LoginResult struct {
	Token   AuthToken `json:"token"`
	Profile Profile   `json:"user"`
}

// ControlAction is the enable/disable verb accepted by the ban endpoint.
type ControlAction string

const (
	ActionEnable  ControlAction = "ENABLE"
	ActionDisable ControlAction = "DISABLE"
)

// ParseControlAction is case-insensitive and ignores surrounding whitespace.
func ParseControlAction(s string) (ControlAction, bool) {
	switch ControlAction(strings.ToUpper(strings.TrimSpace(s))) {
	case ActionEnable:
		return ActionEnable, true
	case ActionDisable:
		return ActionDisable, true
	}
	return "", false
}
