package entity

import "fmt"

// ValidationError is implemented by every value-object error so the HTTP
// boundary can map the whole family to a single status code.
type ValidationError interface {
	error
	Field() string
}

type InvalidIDError struct {
	Raw string
}

func (e InvalidIDError) Field() string { return "id" }

func (e InvalidIDError) Error() string {
	return fmt.Sprintf("invalid entity id: %q", e.Raw)
}

type InvalidNameError struct {
	Name string
}

func (e InvalidNameError) Field() string { return "name" }

func (e InvalidNameError) Error() string {
	return fmt.Sprintf("invalid name: %q must have between 2 and 15 characters", e.Name)
}

type InvalidUsernameError struct {
	Username string
}

func (e InvalidUsernameError) Field() string { return "username" }

func (e InvalidUsernameError) Error() string {
	return fmt.Sprintf("invalid username: %q must have between 2 and 15 characters", e.Username)
}

type InvalidEmailError struct {
	Email string
}

func (e InvalidEmailError) Field() string { return "email" }

func (e InvalidEmailError) Error() string {
	return fmt.Sprintf("invalid email: %q", e.Email)
}

type InvalidCPFError struct {
	CPF string
}

func (e InvalidCPFError) Field() string { return "cpf" }

func (e InvalidCPFError) Error() string {
	return fmt.Sprintf("invalid cpf: %q must match the format 000.000.000-00", e.CPF)
}

type InvalidPhoneError struct {
	Phone string
}

func (e InvalidPhoneError) Field() string { return "phone" }

func (e InvalidPhoneError) Error() string {
	return fmt.Sprintf("invalid phone: %q", e.Phone)
}

type InvalidBirthDateError struct {
	Raw string
}

func (e InvalidBirthDateError) Field() string { return "birth_date" }

func (e InvalidBirthDateError) Error() string {
	return fmt.Sprintf("invalid birth date: %q, customer must be at least 18 years old", e.Raw)
}

type InvalidRoleError struct {
	Role string
}

func (e InvalidRoleError) Field() string { return "roles" }

func (e InvalidRoleError) Error() string {
	return fmt.Sprintf("invalid role: %q must be ADMIN or USER", e.Role)
}
