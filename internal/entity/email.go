package entity

import (
	"net/mail"
	"strings"
)

type Email struct {
	value string
}

func NewEmail(email string) (Email, error) {
	if strings.TrimSpace(email) == "" {
		return Email{}, InvalidEmailError{Email: email}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return Email{}, InvalidEmailError{Email: email}
	}
	return Email{value: email}, nil
}

func (e Email) Value() string {
	return e.value
}
