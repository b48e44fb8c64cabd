package entity

import "regexp"

// Optional 2-digit area code, optional leading 9, then 4+4 digits with an
// optional separator. Covers both landline and mobile Brazilian numbers.
var phonePattern = regexp.MustCompile(`^(\(?\d{2}\)?\s?)?(9?\d{4}[-.\s]?\d{4})$`)

type Phone struct {
	value string
}

func NewPhone(phone string) (Phone, error) {
	if !phonePattern.MatchString(phone) {
		return Phone{}, InvalidPhoneError{Phone: phone}
	}
	return Phone{value: phone}, nil
}

func (p Phone) Value() string {
	return p.value
}
