package entity

import "unicode/utf8"

// Username identifies an API operator. Same bounds as Name but kept as a
// separate type so a customer name never slips into the auth flow.
type Username struct {
	value string
}

func NewUsername(username string) (Username, error) {
	if n := utf8.RuneCountInString(username); n < 2 || n > 15 {
		return Username{}, InvalidUsernameError{Username: username}
	}
	return Username{value: username}, nil
}

func (u Username) Value() string {
	return u.value
}
