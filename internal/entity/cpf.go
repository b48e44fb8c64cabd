package entity

import "regexp"

var cpfPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

// CPF holds a Brazilian tax id. Only the shape is validated, no check-digit
// math; the value is stored exactly as given, never normalized.
type CPF struct {
	value string
}

func NewCPF(cpf string) (CPF, error) {
	if !cpfPattern.MatchString(cpf) {
		return CPF{}, InvalidCPFError{CPF: cpf}
	}
	return CPF{value: cpf}, nil
}

func (c CPF) Value() string {
	return c.value
}
