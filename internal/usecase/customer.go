package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/raffasdev/neocustomers/internal/entity"
	"github.com/raffasdev/neocustomers/internal/infra/queue"
)

type CustomerUseCase struct {
	Repo   CustomerRepositoryInterface
	Events EventPublisherInterface
}

func NewCustomerUseCase(repo CustomerRepositoryInterface, events EventPublisherInterface) *CustomerUseCase {
	return &CustomerUseCase{
		Repo:   repo,
		Events: events,
	}
}

// Register creates a new customer. Email uniqueness is checked before CPF
// uniqueness so conflict reporting stays deterministic.
func (uc *CustomerUseCase) Register(ctx context.Context, input RegisterCustomerInput) (*entity.Customer, error) {
	taken, err := uc.Repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, EmailAlreadyExistsError{Email: input.Email}
	}

	taken, err = uc.Repo.ExistsByCPF(ctx, input.CPF)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, CPFAlreadyExistsError{CPF: input.CPF}
	}

	name, err := entity.NewName(input.Name)
	if err != nil {
		return nil, err
	}
	email, err := entity.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}
	cpf, err := entity.NewCPF(input.CPF)
	if err != nil {
		return nil, err
	}
	phone, err := entity.NewPhone(input.Phone)
	if err != nil {
		return nil, err
	}
	birthDate, err := entity.ParseBirthDate(input.BirthDate)
	if err != nil {
		return nil, err
	}

	customer := entity.NewCustomer(entity.NewEntityID(), name, email, cpf, phone, birthDate)

	if err := uc.Repo.Save(ctx, customer); err != nil {
		return nil, err
	}

	// Fire-and-forget: broker fora do ar não derruba o cadastro.
	if uc.Events != nil {
		payload := queue.CustomerRegisteredPayload{
			CustomerID: customer.ID().String(),
			Name:       customer.Name(),
			Email:      customer.Email(),
		}
		if err := uc.Events.PublishCustomerRegistered(ctx, payload); err != nil {
			log.Warn().Err(err).Str("customer_id", customer.ID().String()).Msg("publish customer.registered")
		}
	}

	return customer, nil
}

func (uc *CustomerUseCase) FindAll(ctx context.Context, req PageRequest) (*CustomerPage, error) {
	req = req.normalize()
	customers, total, err := uc.Repo.FindAll(ctx, req.Size, req.offset())
	if err != nil {
		return nil, err
	}
	return newCustomerPage(customers, req, total), nil
}

func (uc *CustomerUseCase) SearchByName(ctx context.Context, name string, req PageRequest) (*CustomerPage, error) {
	req = req.normalize()
	customers, total, err := uc.Repo.SearchByName(ctx, name, req.Size, req.offset())
	if err != nil {
		return nil, err
	}
	return newCustomerPage(customers, req, total), nil
}

func (uc *CustomerUseCase) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, CustomerNotFoundError{ID: id}
	}
	return customer, nil
}

// UpdateByID merges the supplied fields over the stored customer: blank
// fields keep their current value, the CPF is always kept verbatim, and the
// email uniqueness check only runs when the email actually changes.
func (uc *CustomerUseCase) UpdateByID(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) error {
	current, err := uc.FindByID(ctx, id)
	if err != nil {
		return err
	}

	name, err := entity.NewName(pickValue(input.Name, current.Name()))
	if err != nil {
		return err
	}
	phone, err := entity.NewPhone(pickValue(input.Phone, current.Phone()))
	if err != nil {
		return err
	}

	birthDate, err := entity.NewBirthDate(current.BirthDate())
	if err != nil {
		return err
	}
	if input.BirthDate != "" {
		birthDate, err = entity.ParseBirthDate(input.BirthDate)
		if err != nil {
			return err
		}
	}

	email, err := entity.NewEmail(current.Email())
	if err != nil {
		return err
	}
	if input.Email != "" && input.Email != current.Email() {
		taken, err := uc.Repo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return err
		}
		if taken {
			return EmailAlreadyExistsError{Email: input.Email}
		}
		email, err = entity.NewEmail(input.Email)
		if err != nil {
			return err
		}
	}

	cpf, err := entity.NewCPF(current.CPF())
	if err != nil {
		return err
	}

	updated := entity.ReconstituteCustomer(current.ID(), name, email, cpf, phone, birthDate)

	return uc.Repo.Save(ctx, updated)
}

func (uc *CustomerUseCase) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return uc.Repo.DeleteByID(ctx, id)
}

func pickValue(candidate, current string) string {
	if candidate != "" {
		return candidate
	}
	return current
}
