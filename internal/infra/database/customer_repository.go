package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/raffasdev/neocustomers/internal/entity"
	"github.com/raffasdev/neocustomers/internal/usecase"
)

const uniqueViolation = "23505"

type CustomerRepository struct {
	DB *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// Save upserts by id so the same call serves create and update-by-replacement.
// The unique indexes on email and cpf are the authoritative uniqueness
// guarantee; a violation here means the service-level pre-check lost the race.
func (r *CustomerRepository) Save(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, cpf, phone, birth_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    email = EXCLUDED.email,
		    phone = EXCLUDED.phone,
		    birth_date = EXCLUDED.birth_date
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID().Value(),
		c.Name(),
		c.Email(),
		c.CPF(),
		c.Phone(),
		c.BirthDate(),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			switch pqErr.Constraint {
			case "customers_cpf_key":
				return usecase.CPFAlreadyExistsError{CPF: c.CPF()}
			default:
				return usecase.EmailAlreadyExistsError{Email: c.Email()}
			}
		}
		return fmt.Errorf("save customer: %w", err)
	}

	return nil
}

func (r *CustomerRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Customer, int64, error) {
	query := `
		SELECT id, name, email, cpf, phone, birth_date
		FROM customers
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers, err := scanCustomers(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	return customers, total, nil
}

func (r *CustomerRepository) SearchByName(ctx context.Context, name string, limit, offset int) ([]*entity.Customer, int64, error) {
	query := `
		SELECT id, name, email, cpf, phone, birth_date
		FROM customers
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT $2 OFFSET $3
	`

	rows, err := r.DB.QueryContext(ctx, query, name, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("search customers: %w", err)
	}
	defer rows.Close()

	customers, err := scanCustomers(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM customers WHERE name ILIKE '%' || $1 || '%'`
	if err := r.DB.QueryRowContext(ctx, countQuery, name).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers by name: %w", err)
	}

	return customers, total, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	query := `SELECT id, name, email, cpf, phone, birth_date FROM customers WHERE id = $1`

	var (
		rowID     uuid.UUID
		name      string
		email     string
		cpf       string
		phone     string
		birthDate time.Time
	)

	err := r.DB.QueryRowContext(ctx, query, id).Scan(&rowID, &name, &email, &cpf, &phone, &birthDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find customer by id: %w", err)
	}

	return mapCustomer(rowID, name, email, cpf, phone, birthDate)
}

func (r *CustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM customers WHERE email = $1)`
	if err := r.DB.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check customer email: %w", err)
	}
	return exists, nil
}

func (r *CustomerRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM customers WHERE cpf = $1)`
	if err := r.DB.QueryRowContext(ctx, query, cpf).Scan(&exists); err != nil {
		return false, fmt.Errorf("check customer cpf: %w", err)
	}
	return exists, nil
}

// DeleteByID is a no-op for an absent id.
func (r *CustomerRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func scanCustomers(rows *sql.Rows) ([]*entity.Customer, error) {
	var customers []*entity.Customer
	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			email     string
			cpf       string
			phone     string
			birthDate time.Time
		)
		if err := rows.Scan(&id, &name, &email, &cpf, &phone, &birthDate); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customer, err := mapCustomer(id, name, email, cpf, phone, birthDate)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

// mapCustomer rehydrates through the validating factories, so a corrupted row
// surfaces instead of producing an invalid entity.
func mapCustomer(id uuid.UUID, name, email, cpf, phone string, birthDate time.Time) (*entity.Customer, error) {
	entityID, err := entity.EntityIDOf(id)
	if err != nil {
		return nil, fmt.Errorf("stored customer: %w", err)
	}
	nameVO, err := entity.NewName(name)
	if err != nil {
		return nil, fmt.Errorf("stored customer %s: %w", id, err)
	}
	emailVO, err := entity.NewEmail(email)
	if err != nil {
		return nil, fmt.Errorf("stored customer %s: %w", id, err)
	}
	cpfVO, err := entity.NewCPF(cpf)
	if err != nil {
		return nil, fmt.Errorf("stored customer %s: %w", id, err)
	}
	phoneVO, err := entity.NewPhone(phone)
	if err != nil {
		return nil, fmt.Errorf("stored customer %s: %w", id, err)
	}
	birthDateVO, err := entity.NewBirthDate(birthDate)
	if err != nil {
		return nil, fmt.Errorf("stored customer %s: %w", id, err)
	}

	return entity.ReconstituteCustomer(entityID, nameVO, emailVO, cpfVO, phoneVO, birthDateVO), nil
}
