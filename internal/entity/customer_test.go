package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCustomer(t *testing.T) *Customer {
	t.Helper()

	name, err := NewName("Maria")
	require.NoError(t, err)
	email, err := NewEmail("maria@example.com")
	require.NoError(t, err)
	cpf, err := NewCPF("123.456.789-09")
	require.NoError(t, err)
	phone, err := NewPhone("(11) 99999-9999")
	require.NoError(t, err)
	birthDate, err := ParseBirthDate("1990-05-20")
	require.NoError(t, err)

	return NewCustomer(NewEntityID(), name, email, cpf, phone, birthDate)
}

func TestCustomerAccessors(t *testing.T) {
	customer := buildCustomer(t)

	assert.Equal(t, "Maria", customer.Name())
	assert.Equal(t, "maria@example.com", customer.Email())
	assert.Equal(t, "123.456.789-09", customer.CPF())
	assert.Equal(t, "(11) 99999-9999", customer.Phone())
	assert.GreaterOrEqual(t, customer.Age(), 18)
}

func TestCustomerPredicates(t *testing.T) {
	customer := buildCustomer(t)

	email, _ := NewEmail("maria@example.com")
	otherEmail, _ := NewEmail("joana@example.com")
	cpf, _ := NewCPF("123.456.789-09")

	assert.True(t, customer.HasEmail(email))
	assert.False(t, customer.HasEmail(otherEmail))
	assert.True(t, customer.HasCPF(cpf))
}

func TestCustomerEqualityIsByIdentity(t *testing.T) {
	a := buildCustomer(t)
	b := buildCustomer(t)

	assert.False(t, a.Equals(b))
	assert.False(t, a.Equals(nil))

	// Same id, different attributes: still the same customer.
	name, _ := NewName("Joana")
	email, _ := NewEmail("joana@example.com")
	cpf, _ := NewCPF("987.654.321-00")
	phone, _ := NewPhone("8888-8888")
	birthDate, _ := ParseBirthDate("1980-01-01")
	updated := ReconstituteCustomer(a.ID(), name, email, cpf, phone, birthDate)

	assert.True(t, a.Equals(updated))
}
