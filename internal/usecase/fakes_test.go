package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/apperror"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/contract"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/entity"
)

// memUserRepo is an in-memory IUserRepository with case-insensitive lookups.
type memUserRepo struct {
	mu      sync.Mutex
	users   map[string]*entity.User
	saves   int
	failAll error
}

func newMemUserRepo(users ...*entity.User) *memUserRepo {
	r := &memUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		cp := *u
		r.users[u.ID] = &cp
	}
	return r
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return nil, r.failAll
	}
	u, ok := r.users[id]
	if !ok {
		return nil, contract.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.findBy(func(u *entity.User) bool { return strings.EqualFold(u.Username, username) })
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.findBy(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *memUserRepo) findBy(match func(*entity.User) bool) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return nil, r.failAll
	}
	for _, u := range r.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, contract.ErrUserNotFound
}

func (r *memUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return nil, r.failAll
	}
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *memUserRepo) Save(_ context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return nil, r.failAll
	}
	for id, u := range r.users {
		if id == user.ID {
			continue
		}
		if strings.EqualFold(u.Username, user.Username) {
			return nil, contract.ErrDuplicateUsername
		}
		if strings.EqualFold(u.Email, user.Email) {
			return nil, contract.ErrDuplicateEmail
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	r.saves++
	return user, nil
}

func (r *memUserRepo) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return contract.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) ComparePasswordHash(password, hashed string) error {
	if hashed != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeJWT encodes the user id and a serial into the token string.
type fakeJWT struct {
	mu     sync.Mutex
	serial int
	issued map[string]*entity.Claims
}

func newFakeJWT() *fakeJWT {
	return &fakeJWT{issued: make(map[string]*entity.Claims)}
}

func (j *fakeJWT) Issue(user *entity.User) (entity.AuthToken, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.serial++
	token := fmt.Sprintf("token-%s-%d", user.ID, j.serial)
	exp := time.Now().Add(time.Hour)
	j.issued[token] = &entity.Claims{
		TokenID:   fmt.Sprintf("jti-%d", j.serial),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: exp,
	}
	return entity.AuthToken{AccessToken: token, TokenType: "Bearer", ExpiresAt: exp}, nil
}

func (j *fakeJWT) Verify(token string) (*entity.Claims, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	c, ok := j.issued[token]
	if !ok {
		return nil, apperror.New(apperror.KindInvalidCredentials, "invalid token")
	}
	return c, nil
}

type memRevocations struct {
	revoked map[string]time.Time
}

func (m *memRevocations) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	m.revoked[tokenID] = expiresAt
	return nil
}

func (m *memRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := m.revoked[tokenID]
	return ok, nil
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

type seqUUID struct {
	n int
}

func (g *seqUUID) NewUUID() string {
	g.n++
	return fmt.Sprintf("id-%03d", g.n)
}
