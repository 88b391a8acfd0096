package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/contract"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/entity"
)

var userColumns = []string{"id", "username", "email", "password_hash", "role", "enabled", "locked", "first_name", "last_name", "created_at", "updated_at"}

func newRepoWithMock(t *testing.T) (*PostgresUserRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresUserRepository(db), mock, db
}

func TestFindByUsername_CaseInsensitive(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userColumns).
		AddRow("u-1", "alice", "alice@example.com", "hash", "ADMIN", true, false, "Alice", nil, now, now)
	mock.ExpectQuery(`(?s)^SELECT .+ FROM users WHERE lower\(username\) = lower\(\$1\)$`).
		WithArgs("ALICE").
		WillReturnRows(rows)

	got, err := repo.FindByUsername(context.Background(), "ALICE")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, entity.UserRoleAdmin, got.Role)
	require.NotNil(t, got.FirstName)
	assert.Equal(t, "Alice", *got.FirstName)
	assert.Nil(t, got.LastName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT .+ FROM users WHERE lower\(email\) = lower\(\$1\)$`).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, contract.ErrUserNotFound)
}

func TestFindByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT .+ FROM users WHERE id = \$1$`).
		WithArgs("u-1").
		WillReturnError(errors.New("db down"))

	_, err := repo.FindByID(context.Background(), "u-1")
	assert.ErrorContains(t, err, "db error: db down")
	assert.NotErrorIs(t, err, contract.ErrUserNotFound)
}

func TestFindAll(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userColumns).
		AddRow("u-1", "alice", "alice@example.com", "h", "USER", true, false, nil, nil, now, now).
		AddRow("u-2", "bob", "bob@example.com", "h", "MODERATOR", false, false, nil, "Builder", now, now)
	mock.ExpectQuery(`(?s)^SELECT .+ FROM users ORDER BY created_at, id$`).WillReturnRows(rows)

	users, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.False(t, users[1].Enabled)
	assert.Equal(t, "Builder", *users[1].LastName)
}

func TestSave_Upsert(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	first := "Alicia"
	u := &entity.User{
		ID: "u-1", Username: "alice", Email: "alice@example.com", PasswordHash: "h",
		Role: entity.UserRoleUser, Enabled: true, FirstName: &first,
	}
	mock.ExpectExec(`(?s)^INSERT INTO users .+ ON CONFLICT \(id\) DO UPDATE SET .+$`).
		WithArgs("u-1", "alice", "alice@example.com", "h", "USER", true, false, "Alicia", nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Save(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_AssignsID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^INSERT INTO users`).WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Save(context.Background(), &entity.User{Username: "carol", Email: "carol@example.com", Role: entity.UserRoleUser})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
}

func TestSave_MapsUniqueViolations(t *testing.T) {
	tests := []struct {
		constraint string
		want       error
	}{
		{usernameConstraint, contract.ErrDuplicateUsername},
		{emailConstraint, contract.ErrDuplicateEmail},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			mock.ExpectExec(`(?s)^INSERT INTO users`).
				WillReturnError(&pgconn.PgError{Code: uniqueViolation, ConstraintName: tt.constraint})

			_, err := repo.Save(context.Background(), &entity.User{ID: "u-1", Username: "alice", Email: "a@example.com"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSave_OtherPgErrorIsWrapped(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23514", ConstraintName: "users_role_check"})

	_, err := repo.Save(context.Background(), &entity.User{ID: "u-1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, contract.ErrDuplicateUsername)
	assert.NotErrorIs(t, err, contract.ErrDuplicateEmail)
}

func TestDeleteByID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^DELETE FROM users WHERE id = \$1$`).WithArgs("u-1").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteByID(context.Background(), "u-1"))

	mock.ExpectExec(`^DELETE FROM users WHERE id = \$1$`).WithArgs("missing").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.DeleteByID(context.Background(), "missing"), contract.ErrUserNotFound)
}
