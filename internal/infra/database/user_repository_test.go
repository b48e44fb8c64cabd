package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raffasdev/neocustomers/internal/entity"
	"github.com/raffasdev/neocustomers/internal/usecase"
)

func userRepoWithMock(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewUserRepository(db), mock
}

func persistedUser(t *testing.T) *entity.User {
	t.Helper()

	username, err := entity.NewUsername("operator")
	require.NoError(t, err)
	email, err := entity.NewEmail("operator@example.com")
	require.NoError(t, err)

	return entity.NewUser(entity.NewEntityID(), username, email, []entity.Role{entity.RoleAdmin}, "$2a$10$hash")
}

func TestUserSaveInserts(t *testing.T) {
	repo, mock := userRepoWithMock(t)
	user := persistedUser(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs(
			user.ID().Value(),
			user.Username(),
			user.Email(),
			pq.StringArray{"ADMIN"},
			user.EncodedPassword(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Save(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserSaveMapsUsernameViolation(t *testing.T) {
	repo, mock := userRepoWithMock(t)
	user := persistedUser(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})

	err := repo.Save(context.Background(), user)

	assert.ErrorIs(t, err, usecase.UsernameAlreadyExistsError{Username: user.Username()})
}

func TestUserFindByEmailRehydrates(t *testing.T) {
	repo, mock := userRepoWithMock(t)
	id := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "username", "email", "roles", "password"}).
		AddRow(id.String(), "operator", "operator@example.com", []byte(`{"ADMIN","USER"}`), "$2a$10$hash")

	mock.ExpectQuery("SELECT id, username, email, roles, password FROM users WHERE").
		WithArgs("operator@example.com").
		WillReturnRows(rows)

	user, err := repo.FindByEmail(context.Background(), "operator@example.com")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "operator", user.Username())
	assert.True(t, user.HasRole(entity.RoleAdmin))
	assert.True(t, user.HasRole(entity.RoleUser))
	assert.Equal(t, "$2a$10$hash", user.EncodedPassword())
}

func TestUserFindByEmailAbsent(t *testing.T) {
	repo, mock := userRepoWithMock(t)

	mock.ExpectQuery("SELECT id, username, email, roles, password FROM users WHERE").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "roles", "password"}))

	user, err := repo.FindByEmail(context.Background(), "ghost@example.com")

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserExistsByUsername(t *testing.T) {
	repo, mock := userRepoWithMock(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("operator").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsByUsername(context.Background(), "operator")

	assert.NoError(t, err)
	assert.False(t, exists)
}
