package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEmail(t *testing.T) {
	valid := []string{
		"maria@example.com",
		"maria.silva+tag@sub.example.com.br",
	}
	for _, raw := range valid {
		email, err := NewEmail(raw)
		assert.NoError(t, err)
		assert.Equal(t, raw, email.Value())
	}

	invalid := []string{
		"",
		"   ",
		"maria",
		"maria@",
		"@example.com",
		"Maria <maria@example.com>",
	}
	for _, raw := range invalid {
		_, err := NewEmail(raw)
		assert.ErrorIs(t, err, InvalidEmailError{Email: raw})
	}
}

func TestEmailValueEquality(t *testing.T) {
	a, _ := NewEmail("maria@example.com")
	b, _ := NewEmail("maria@example.com")
	c, _ := NewEmail("joana@example.com")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
