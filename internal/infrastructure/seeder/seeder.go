package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/contract"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/entity"
	appLogger "github.com/mikiasgoitom/PetSymptomTracker/internal/infrastructure/logger"
	usecasecontract "github.com/mikiasgoitom/PetSymptomTracker/internal/usecase/contract"
)

// DefaultPassword is shared by every seeded account.
const DefaultPassword = "Password123!"

type account struct {
	username string
	email    string
	role     entity.UserRole
}

var defaultAccounts = []account{
	{"admin", "admin@pets.local", entity.UserRoleAdmin},
	{"moderator", "moderator@pets.local", entity.UserRoleModerator},
	{"user", "user@pets.local", entity.UserRoleUser},
}

// Seeder creates one account per role for local development.
type Seeder struct {
	repo   contract.IUserRepository
	hasher contract.IHasher
	uuids  contract.IUUIDGenerator
	logger usecasecontract.IAppLogger
}

func NewSeeder(repo contract.IUserRepository, hasher contract.IHasher, uuids contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *Seeder {
	return &Seeder{repo: repo, hasher: hasher, uuids: uuids, logger: logger}
}

// Run inserts the default accounts, skipping any whose username or email is
// already taken. It returns how many were created.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	hashed, err := s.hasher.HashPassword(DefaultPassword)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}

	created := 0
	for _, a := range defaultAccounts {
		exists, err := s.exists(ctx, a)
		if err != nil {
			return created, fmt.Errorf("seed %s: %w", a.username, err)
		}
		if exists {
			s.logger.Debugf("seed: %s (%s) already present", a.username, appLogger.MaskEmail(a.email))
			continue
		}

		now := time.Now()
		_, err = s.repo.Save(ctx, &entity.User{
			ID:           s.uuids.NewUUID(),
			Username:     a.username,
			Email:        a.email,
			PasswordHash: hashed,
			Role:         a.role,
			Enabled:      true,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return created, fmt.Errorf("seed %s: %w", a.username, err)
		}
		s.logger.Infof("seed: created %s account %s", a.role, appLogger.MaskEmail(a.email))
		created++
	}
	s.logger.Infof("seed: created %d accounts", created)
	return created, nil
}

func (s *Seeder) exists(ctx context.Context, a account) (bool, error) {
	if _, err := s.repo.FindByUsername(ctx, a.username); err == nil {
		return true, nil
	} else if !errors.Is(err, contract.ErrUserNotFound) {
		return false, err
	}
	if _, err := s.repo.FindByEmail(ctx, a.email); err == nil {
		return true, nil
	} else if !errors.Is(err, contract.ErrUserNotFound) {
		return false, err
	}
	return false, nil
}
