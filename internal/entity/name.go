package entity

import "unicode/utf8"

// Name is a customer display name. Bounds count characters, not bytes, so
// accented names like "Conceição" are measured the way the column is.
type Name struct {
	value string
}

func NewName(name string) (Name, error) {
	if n := utf8.RuneCountInString(name); n < 2 || n > 15 {
		return Name{}, InvalidNameError{Name: name}
	}
	return Name{value: name}, nil
}

func (n Name) Value() string {
	return n.value
}
