package usecase

import (
	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/entity"
)

// JWTService issues and verifies access tokens.
type JWTService interface {
	Issue(user *entity.User) (entity.AuthToken, error)
	Verify(token string) (*entity.Claims, error)
}
