package usecase

import (
	"context"

	"github.com/raffasdev/neocustomers/internal/entity"
)

type AuthUseCase struct {
	Users  UserRepositoryInterface
	Hasher PasswordHasherInterface
	Tokens TokenGatewayInterface
}

func NewAuthUseCase(users UserRepositoryInterface, hasher PasswordHasherInterface, tokens TokenGatewayInterface) *AuthUseCase {
	return &AuthUseCase{
		Users:  users,
		Hasher: hasher,
		Tokens: tokens,
	}
}

// RegisterUser creates an operator account. The confirmation must repeat the
// password; then email uniqueness is checked before username uniqueness, so
// conflicts are reported in a stable order.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, input RegisterUserInput) (*entity.User, error) {
	if input.Password != input.ConfirmPassword {
		return nil, PasswordsDoNotMatchError{}
	}

	taken, err := uc.Users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, EmailAlreadyExistsError{Email: input.Email}
	}

	taken, err = uc.Users.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, UsernameAlreadyExistsError{Username: input.Username}
	}

	username, err := entity.NewUsername(input.Username)
	if err != nil {
		return nil, err
	}
	email, err := entity.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}
	roles, err := entity.ParseRoles(input.Roles)
	if err != nil {
		return nil, err
	}

	encoded, err := uc.Hasher.Encode(input.Password)
	if err != nil {
		return nil, err
	}

	user := entity.NewUser(entity.NewEntityID(), username, email, roles, encoded)

	if err := uc.Users.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// LoginUser verifies the credentials and returns a signed token keyed by the
// user's email.
func (uc *AuthUseCase) LoginUser(ctx context.Context, email, password string) (string, error) {
	user, err := uc.Users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", UserNotFoundError{Email: email}
	}

	if !uc.Hasher.Matches(password, user.EncodedPassword()) {
		return "", ErrWrongCredentials
	}

	return uc.Tokens.Generate(user.Email())
}
