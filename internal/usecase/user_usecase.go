package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/apperror"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/contract"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/PetSymptomTracker/internal/usecase/contract"
)

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo      contract.IUserRepository
	revocations   contract.ITokenRevocationStore
	hasher        contract.IHasher
	jwtService    JWTService
	logger        usecasecontract.IAppLogger
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
	now           func() time.Time
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:      userRepo,
		hasher:        hasher,
		jwtService:    jwtService,
		logger:        logger,
		validator:     validator,
		uuidGenerator: uuidGenerator,
		now:           time.Now,
	}
}

// SetRevocationStore enables token revocation on logout. Without it Logout is a no-op.
func (uc *UserUsecase) SetRevocationStore(store contract.ITokenRevocationStore) {
	uc.revocations = store
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register creates a USER account. Checks run in a fixed order so that the
// reported error is deterministic: blank username, username and email
// uniqueness, password strength, email shape, then name blankness.
func (uc *UserUsecase) Register(ctx context.Context, in usecasecontract.RegisterInput) (*entity.User, error) {
	if strings.TrimSpace(in.Username) == "" {
		return nil, apperror.New(apperror.KindBlankField, "username can not be blank")
	}

	existing, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil && !errors.Is(err, contract.ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by username: %v", err)
		return nil, apperror.ErrInternal
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateUsername
	}

	existing, err = uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, contract.ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, apperror.ErrInternal
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateEmail
	}

	if !uc.validator.IsValidPasswordPattern(in.Password) {
		return nil, apperror.New(apperror.KindWeakPassword, uc.validator.PasswordRequirements())
	}
	if !uc.validator.IsValidEmailPattern(in.Email) {
		return nil, apperror.ErrInvalidEmail
	}
	if isBlank(in.FirstName) {
		return nil, apperror.New(apperror.KindBlankField, "firstname may be omitted, but can not be blank")
	}
	if isBlank(in.LastName) {
		return nil, apperror.New(apperror.KindBlankField, "lastname may be omitted, but can not be blank")
	}

	hashedPassword, err := uc.hasher.HashPassword(in.Password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, apperror.ErrInternal
	}

	now := uc.now()
	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hashedPassword,
		Role:         entity.DefaultRole(),
		Enabled:      true,
		Locked:       false,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := uc.userRepo.Save(ctx, user)
	if err != nil {
		// the unique constraints are the authority when two registrations race
		switch {
		case errors.Is(err, contract.ErrDuplicateUsername):
			return nil, apperror.ErrDuplicateUsername
		case errors.Is(err, contract.ErrDuplicateEmail):
			return nil, apperror.ErrDuplicateEmail
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, apperror.ErrInternal
	}

	uc.logger.Infof("registered user %s", saved.ID)
	return saved, nil
}

// Login verifies the credentials and issues a token. The identifier is
// treated as an email when it has the shape of one.
func (uc *UserUsecase) Login(ctx context.Context, usernameOrEmail, password string) (*entity.LoginResult, error) {
	var (
		user *entity.User
		err  error
	)
	if uc.validator.IsValidEmailPattern(usernameOrEmail) {
		user, err = uc.userRepo.FindByEmail(ctx, usernameOrEmail)
	} else {
		user, err = uc.userRepo.FindByUsername(ctx, usernameOrEmail)
	}
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, apperror.ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, apperror.ErrInternal
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}
	if !user.Enabled {
		return nil, apperror.ErrAccountDisabled
	}
	if user.Locked {
		return nil, apperror.ErrAccountLocked
	}

	token, err := uc.jwtService.Issue(user)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, apperror.ErrInternal
	}

	return &entity.LoginResult{Token: token, Profile: user.ToProfile()}, nil
}

// Authenticate resolves an access token to the current state of its user.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.Verify(accessToken)
	if err != nil {
		return nil, err
	}

	if uc.revocations != nil {
		revoked, err := uc.revocations.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			uc.logger.Errorf("failed to check token revocation: %v", err)
			return nil, apperror.ErrInternal
		}
		if revoked {
			return nil, apperror.New(apperror.KindInvalidCredentials, "token has been revoked")
		}
	}

	user, err := uc.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, apperror.ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to retrieve user during authentication: %v", err)
		return nil, apperror.ErrInternal
	}
	if !user.Enabled {
		return nil, apperror.ErrAccountDisabled
	}
	if user.Locked {
		return nil, apperror.ErrAccountLocked
	}
	return user, nil
}

// Logout revokes the token until it expires.
func (uc *UserUsecase) Logout(ctx context.Context, accessToken string) error {
	claims, err := uc.jwtService.Verify(accessToken)
	if err != nil {
		uc.logger.Warnf("failed to parse token on logout, assuming it's already invalid: %v", err)
		return nil
	}
	if uc.revocations == nil {
		return nil
	}
	if err := uc.revocations.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		uc.logger.Errorf("failed to revoke token for user %s: %v", claims.UserID, err)
		return apperror.ErrInternal
	}
	return nil
}

// GetByID is allowed for the account owner and for staff.
func (uc *UserUsecase) GetByID(ctx context.Context, targetID string, caller *entity.User) (entity.Profile, error) {
	target, err := uc.findTarget(ctx, targetID)
	if err != nil {
		return entity.Profile{}, err
	}

	if !caller.IsSameUser(target) && !caller.Role.IsStaff() {
		return entity.Profile{}, apperror.ErrForbidden
	}
	return target.ToProfile(), nil
}

// ListAll is restricted to staff.
func (uc *UserUsecase) ListAll(ctx context.Context, caller *entity.User) ([]entity.Profile, error) {
	if !caller.Role.IsStaff() {
		return nil, apperror.ErrForbidden
	}

	users, err := uc.userRepo.FindAll(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list users: %v", err)
		return nil, apperror.ErrInternal
	}

	profiles := make([]entity.Profile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.ToProfile())
	}
	return profiles, nil
}

// DeleteByID permanently removes an account. Only admins and the owner may do this.
func (uc *UserUsecase) DeleteByID(ctx context.Context, targetID string, caller *entity.User) error {
	target, err := uc.findTarget(ctx, targetID)
	if err != nil {
		return err
	}

	if !canDelete(caller, target) {
		return apperror.ErrForbidden
	}

	if err := uc.userRepo.DeleteByID(ctx, target.ID); err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return apperror.ErrNotFound
		}
		uc.logger.Errorf("failed to delete user %s: %v", target.ID, err)
		return apperror.ErrInternal
	}
	uc.logger.Infof("user %s deleted by %s", target.ID, caller.ID)
	return nil
}

// SetEnabled bans or unbans an account. Only staff may do this.
func (uc *UserUsecase) SetEnabled(ctx context.Context, targetID string, caller *entity.User, action string) (entity.Profile, error) {
	target, err := uc.findTarget(ctx, targetID)
	if err != nil {
		return entity.Profile{}, err
	}

	if !caller.Role.IsStaff() {
		return entity.Profile{}, apperror.New(apperror.KindForbidden, "Only an admin or Moderator is allowed to do this")
	}

	if strings.TrimSpace(action) == "" {
		return entity.Profile{}, apperror.New(apperror.KindBadAction, "Action must be provided")
	}
	parsed, ok := entity.ParseControlAction(action)
	if !ok {
		return entity.Profile{}, apperror.ErrBadAction
	}

	switch parsed {
	case entity.ActionEnable:
		target.Enabled = true
	case entity.ActionDisable:
		target.Enabled = false
	}
	target.UpdatedAt = uc.now()

	saved, err := uc.userRepo.Save(ctx, target)
	if err != nil {
		uc.logger.Errorf("failed to %s user %s: %v", strings.ToLower(string(parsed)), target.ID, err)
		return entity.Profile{}, apperror.ErrInternal
	}
	return saved.ToProfile(), nil
}

// UpdateProfile overwrites the provided name fields. The owner or an admin may do this.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, targetID string, caller *entity.User, patch usecasecontract.ProfilePatch) (entity.Profile, error) {
	target, err := uc.findTarget(ctx, targetID)
	if err != nil {
		return entity.Profile{}, err
	}

	if !caller.IsSameUser(target) && !caller.IsAdmin() {
		return entity.Profile{}, apperror.ErrForbidden
	}

	if patch.FirstName != nil {
		target.FirstName = patch.FirstName
	}
	if patch.LastName != nil {
		target.LastName = patch.LastName
	}
	target.UpdatedAt = uc.now()

	saved, err := uc.userRepo.Save(ctx, target)
	if err != nil {
		uc.logger.Errorf("failed to update profile for user %s: %v", target.ID, err)
		return entity.Profile{}, apperror.ErrInternal
	}
	return saved.ToProfile(), nil
}

func (uc *UserUsecase) findTarget(ctx context.Context, targetID string) (*entity.User, error) {
	user, err := uc.userRepo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, apperror.ErrNotFound
		}
		uc.logger.Errorf("failed to retrieve user by ID: %v", err)
		return nil, apperror.ErrInternal
	}
	return user, nil
}

func canDelete(caller, target *entity.User) bool {
	switch caller.Role {
	case entity.UserRoleAdmin:
		return true
	case entity.UserRoleModerator, entity.UserRoleUser:
		return caller.IsSameUser(target)
	}
	return false
}

func isBlank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) == ""
}
