package usecase

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type EmailAlreadyExistsError struct {
	Email string
}

func (e EmailAlreadyExistsError) Error() string {
	return fmt.Sprintf("email %q is already registered", e.Email)
}

type CPFAlreadyExistsError struct {
	CPF string
}

func (e CPFAlreadyExistsError) Error() string {
	return fmt.Sprintf("cpf %q is already registered", e.CPF)
}

type UsernameAlreadyExistsError struct {
	Username string
}

func (e UsernameAlreadyExistsError) Error() string {
	return fmt.Sprintf("username %q is already registered", e.Username)
}

type CustomerNotFoundError struct {
	ID uuid.UUID
}

func (e CustomerNotFoundError) Error() string {
	return fmt.Sprintf("customer %s not found", e.ID)
}

type UserNotFoundError struct {
	Email string
}

func (e UserNotFoundError) Error() string {
	return fmt.Sprintf("user %q not found", e.Email)
}

// ErrWrongCredentials is kept distinct from UserNotFoundError inside the
// service; the HTTP boundary collapses both into one 401 response.
var ErrWrongCredentials = errors.New("wrong credentials")

// PasswordsDoNotMatchError rejects a registration whose confirmation does not
// repeat the password. It joins the validation family, so the boundary maps
// it to 400 like any value-object failure.
type PasswordsDoNotMatchError struct{}

func (e PasswordsDoNotMatchError) Field() string { return "confirm_password" }

func (e PasswordsDoNotMatchError) Error() string {
	return "password and confirm_password do not match"
}

// IsConflict reports whether err is one of the uniqueness conflicts.
func IsConflict(err error) bool {
	var email EmailAlreadyExistsError
	var cpf CPFAlreadyExistsError
	var username UsernameAlreadyExistsError
	return errors.As(err, &email) || errors.As(err, &cpf) || errors.As(err, &username)
}

// IsNotFound reports whether err is a missing-record lookup.
func IsNotFound(err error) bool {
	var customer CustomerNotFoundError
	var user UserNotFoundError
	return errors.As(err, &customer) || errors.As(err, &user)
}
