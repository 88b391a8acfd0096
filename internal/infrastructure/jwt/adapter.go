package jwt

import (
	"errors"

	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/apperror"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/entity"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/usecase"
)

const tokenTypeBearer = "Bearer"

// JWTServiceAdapter adapts JWTManager to the usecase.JWTService interface.
type JWTServiceAdapter struct {
	mgr *JWTManager
}

// NewJWTService creates a new usecase.JWTService from JWTManager
func NewJWTService(mgr *JWTManager) usecase.JWTService {
	return &JWTServiceAdapter{mgr: mgr}
}

// Issue signs an access token for user.
func (a *JWTServiceAdapter) Issue(user *entity.User) (entity.AuthToken, error) {
	signed, claims, err := a.mgr.GenerateAccessToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return entity.AuthToken{}, err
	}
	return entity.AuthToken{
		AccessToken: signed,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// Verify validates an access token and returns its claims. Failures are
// reported as InvalidCredentials so the HTTP layer answers 401.
func (a *JWTServiceAdapter) Verify(tokenStr string) (*entity.Claims, error) {
	c, err := a.mgr.VerifyToken(tokenStr)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return nil, apperror.New(apperror.KindInvalidCredentials, "token has expired")
		}
		return nil, apperror.New(apperror.KindInvalidCredentials, "invalid token")
	}
	role, ok := entity.ParseUserRole(c.Role)
	if !ok {
		return nil, apperror.New(apperror.KindInvalidCredentials, "invalid token")
	}
	claims := &entity.Claims{
		TokenID:   c.ID,
		UserID:    c.Subject,
		Username:  c.Username,
		Role:      role,
		ExpiresAt: c.ExpiresAt.Time,
	}
	if c.IssuedAt != nil {
		claims.IssuedAt = c.IssuedAt.Time
	}
	return claims, nil
}
