package entity

import "time"

// Customer aggregates the validated value objects behind a stable identity.
// Instances are immutable; updates build a new one via ReconstituteCustomer.
type Customer struct {
	id        EntityID
	name      Name
	email     Email
	cpf       CPF
	phone     Phone
	birthDate BirthDate
}

// NewCustomer builds a brand-new customer from already-validated parts.
func NewCustomer(id EntityID, name Name, email Email, cpf CPF, phone Phone, birthDate BirthDate) *Customer {
	return &Customer{
		id:        id,
		name:      name,
		email:     email,
		cpf:       cpf,
		phone:     phone,
		birthDate: birthDate,
	}
}

// ReconstituteCustomer rehydrates a customer from storage or rebuilds it
// after an update. Construction is identical to NewCustomer.
func ReconstituteCustomer(id EntityID, name Name, email Email, cpf CPF, phone Phone, birthDate BirthDate) *Customer {
	return NewCustomer(id, name, email, cpf, phone, birthDate)
}

func (c *Customer) ID() EntityID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name.Value()
}

func (c *Customer) Email() string {
	return c.email.Value()
}

func (c *Customer) CPF() string {
	return c.cpf.Value()
}

func (c *Customer) Phone() string {
	return c.phone.Value()
}

func (c *Customer) BirthDate() time.Time {
	return c.birthDate.Value()
}

func (c *Customer) Age() int {
	return c.birthDate.Age()
}

func (c *Customer) HasName(name Name) bool {
	return c.name == name
}

func (c *Customer) HasEmail(email Email) bool {
	return c.email == email
}

func (c *Customer) HasCPF(cpf CPF) bool {
	return c.cpf == cpf
}

func (c *Customer) HasPhone(phone Phone) bool {
	return c.phone == phone
}

// Equals compares by identity, not by attribute values.
func (c *Customer) Equals(other *Customer) bool {
	return other != nil && c.id == other.id
}
