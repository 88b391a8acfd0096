package mocks

import (
	"context"
	"time"

	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/apperror"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/PetSymptomTracker/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the IUserUseCase interface.
// A ShouldFail flag makes the matching method return its Err value.
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister     bool
	ShouldFailLogin        bool
	ShouldFailAuthenticate bool
	ShouldFailLogout       bool
	ShouldFailGetByID      bool
	ShouldFailListAll      bool
	ShouldFailDelete       bool
	ShouldFailSetEnabled   bool
	ShouldFailUpdate       bool

	// Err is returned by any failing method. It defaults per method when nil.
	Err error

	// Return values
	MockUser        entity.User
	MockAccessToken string

	// Recorded arguments
	LastRegisterInput usecasecontract.RegisterInput
	LastAction        string
	LastPatch         usecasecontract.ProfilePatch
	LastTargetID      string
	LoggedOutToken    string
}

// Ensure MockUserUsecase implements the correct interface for the handlers
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:        "mock-user-id",
			Username:  "testuser",
			Email:     "test@example.com",
			Role:      entity.UserRoleUser,
			Enabled:   true,
			CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		MockAccessToken: "mock_access_token",
	}
}

func (m *MockUserUsecase) fail(fallback error) error {
	if m.Err != nil {
		return m.Err
	}
	return fallback
}

func (m *MockUserUsecase) Register(ctx context.Context, in usecasecontract.RegisterInput) (*entity.User, error) {
	m.LastRegisterInput = in
	if m.ShouldFailRegister {
		return nil, m.fail(apperror.ErrDuplicateUsername)
	}
	u := m.MockUser
	u.Username = in.Username
	u.Email = in.Email
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	return &u, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, usernameOrEmail, password string) (*entity.LoginResult, error) {
	if m.ShouldFailLogin {
		return nil, m.fail(apperror.ErrInvalidCredentials)
	}
	return &entity.LoginResult{
		Token: entity.AuthToken{
			AccessToken: m.MockAccessToken,
			TokenType:   "Bearer",
			ExpiresAt:   time.Now().Add(time.Hour),
		},
		Profile: m.MockUser.ToProfile(),
	}, nil
}

// Authenticate accepts only MockAccessToken.
func (m *MockUserUsecase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if m.ShouldFailAuthenticate {
		return nil, m.fail(apperror.ErrAccountDisabled)
	}
	if token != m.MockAccessToken {
		return nil, apperror.New(apperror.KindInvalidCredentials, "invalid token")
	}
	u := m.MockUser
	return &u, nil
}

func (m *MockUserUsecase) Logout(ctx context.Context, token string) error {
	m.LoggedOutToken = token
	if m.ShouldFailLogout {
		return m.fail(apperror.ErrInternal)
	}
	return nil
}

func (m *MockUserUsecase) GetByID(ctx context.Context, targetID string, caller *entity.User) (entity.Profile, error) {
	m.LastTargetID = targetID
	if m.ShouldFailGetByID {
		return entity.Profile{}, m.fail(apperror.ErrNotFound)
	}
	p := m.MockUser.ToProfile()
	p.ID = targetID
	return p, nil
}

func (m *MockUserUsecase) ListAll(ctx context.Context, caller *entity.User) ([]entity.Profile, error) {
	if m.ShouldFailListAll {
		return nil, m.fail(apperror.ErrForbidden)
	}
	return []entity.Profile{m.MockUser.ToProfile()}, nil
}

func (m *MockUserUsecase) DeleteByID(ctx context.Context, targetID string, caller *entity.User) error {
	m.LastTargetID = targetID
	if m.ShouldFailDelete {
		return m.fail(apperror.ErrNotFound)
	}
	return nil
}

func (m *MockUserUsecase) SetEnabled(ctx context.Context, targetID string, caller *entity.User, action string) (entity.Profile, error) {
	m.LastTargetID = targetID
	m.LastAction = action
	if m.ShouldFailSetEnabled {
		return entity.Profile{}, m.fail(apperror.ErrBadAction)
	}
	p := m.MockUser.ToProfile()
	p.ID = targetID
	p.Enabled = action == string(entity.ActionEnable)
	return p, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, targetID string, caller *entity.User, patch usecasecontract.ProfilePatch) (entity.Profile, error) {
	m.LastTargetID = targetID
	m.LastPatch = patch
	if m.ShouldFailUpdate {
		return entity.Profile{}, m.fail(apperror.ErrForbidden)
	}
	p := m.MockUser.ToProfile()
	p.ID = targetID
	if patch.FirstName != nil {
		p.FirstName = patch.FirstName
	}
	if patch.LastName != nil {
		p.LastName = patch.LastName
	}
	return p, nil
}
