package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/raffasdev/neocustomers/internal/entity"
	"github.com/raffasdev/neocustomers/internal/infra/queue"
)

// CustomerRepositoryInterface is the persistence contract for customers.
// Lookups return (nil, nil) when the record is absent; the true uniqueness
// guarantee lives in the storage layer's unique indexes, the Exists* checks
// only win the service a friendlier error.
type CustomerRepositoryInterface interface {
	Save(ctx context.Context, customer *entity.Customer) error
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Customer, int64, error)
	SearchByName(ctx context.Context, name string, limit, offset int) ([]*entity.Customer, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByCPF(ctx context.Context, cpf string) (bool, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type UserRepositoryInterface interface {
	Save(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type PasswordHasherInterface interface {
	Encode(raw string) (string, error)
	Matches(raw, encoded string) bool
}

// TokenGatewayInterface issues and checks signed credentials. Validate never
// returns an error: a bad token is a normal unauthenticated outcome.
type TokenGatewayInterface interface {
	Generate(subject string) (string, error)
	Validate(token string) (subject string, ok bool)
}

type EventPublisherInterface interface {
	PublishCustomerRegistered(ctx context.Context, payload queue.CustomerRegisteredPayload) error
}
