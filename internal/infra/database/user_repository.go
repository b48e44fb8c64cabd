package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/raffasdev/neocustomers/internal/entity"
	"github.com/raffasdev/neocustomers/internal/usecase"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, roles, password)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET username = EXCLUDED.username,
		    email = EXCLUDED.email,
		    roles = EXCLUDED.roles,
		    password = EXCLUDED.password
	`

	roles := make(pq.StringArray, 0, len(u.Roles()))
	for _, role := range u.Roles() {
		roles = append(roles, string(role))
	}

	_, err := r.DB.ExecContext(ctx, query,
		u.ID().Value(),
		u.Username(),
		u.Email(),
		roles,
		u.EncodedPassword(),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			switch pqErr.Constraint {
			case "users_username_key":
				return usecase.UsernameAlreadyExistsError{Username: u.Username()}
			default:
				return usecase.EmailAlreadyExistsError{Email: u.Email()}
			}
		}
		return fmt.Errorf("save user: %w", err)
	}

	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT id, username, email, roles, password FROM users WHERE email = $1`

	var (
		id       uuid.UUID
		username string
		rowEmail string
		roles    pq.StringArray
		password string
	)

	err := r.DB.QueryRowContext(ctx, query, email).Scan(&id, &username, &rowEmail, &roles, &password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	return mapUser(id, username, rowEmail, roles, password)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	if err := r.DB.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check user email: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`
	if err := r.DB.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return exists, nil
}

func mapUser(id uuid.UUID, username, email string, roles []string, password string) (*entity.User, error) {
	entityID, err := entity.EntityIDOf(id)
	if err != nil {
		return nil, fmt.Errorf("stored user: %w", err)
	}
	usernameVO, err := entity.NewUsername(username)
	if err != nil {
		return nil, fmt.Errorf("stored user %s: %w", id, err)
	}
	emailVO, err := entity.NewEmail(email)
	if err != nil {
		return nil, fmt.Errorf("stored user %s: %w", id, err)
	}
	rolesVO, err := entity.ParseRoles(roles)
	if err != nil {
		return nil, fmt.Errorf("stored user %s: %w", id, err)
	}

	return entity.ReconstituteUser(entityID, usernameVO, emailVO, rolesVO, password), nil
}
