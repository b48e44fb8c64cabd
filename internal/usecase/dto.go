package usecase

import "github.com/raffasdev/neocustomers/internal/entity"

type RegisterCustomerInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	CPF       string `json:"cpf"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date"`
}

// UpdateCustomerInput carries merge-on-present semantics: a blank field keeps
// the stored value. CPF is deliberately absent, it is never updatable.
type UpdateCustomerInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date"`
}

type RegisterUserInput struct {
	Username        string   `json:"username"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	ConfirmPassword string   `json:"confirm_password"`
	Roles           []string `json:"roles"`
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// PageRequest is a zero-based page spec.
type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}
	return p
}

func (p PageRequest) offset() int {
	return p.Page * p.Size
}

type CustomerPage struct {
	Content       []*entity.Customer
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

func newCustomerPage(content []*entity.Customer, req PageRequest, total int64) *CustomerPage {
	pages := int(total) / req.Size
	if int(total)%req.Size != 0 {
		pages++
	}
	return &CustomerPage{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
