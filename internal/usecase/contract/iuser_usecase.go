package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/entity"
)

// RegisterInput carries raw registration data. Optional names are nil when omitted.
type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	FirstName *string
	LastName  *string
}

// ProfilePatch lists the profile fields a caller may overwrite; nil means unchanged.
type ProfilePatch struct {
	FirstName *string
	LastName  *string
}

// IUserUseCase defines the account operations. caller is always the
// authenticated actor performing the request.
type IUserUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*entity.User, error)
	Login(ctx context.Context, usernameOrEmail, password string) (*entity.LoginResult, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	Logout(ctx context.Context, accessToken string) error
	GetByID(ctx context.Context, targetID string, caller *entity.User) (entity.Profile, error)
	ListAll(ctx context.Context, caller *entity.User) ([]entity.Profile, error)
	DeleteByID(ctx context.Context, targetID string, caller *entity.User) error
	SetEnabled(ctx context.Context, targetID string, caller *entity.User, action string) (entity.Profile, error)
	UpdateProfile(ctx context.Context, targetID string, caller *entity.User, patch ProfilePatch) (entity.Profile, error)
}
