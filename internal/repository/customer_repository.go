package repository

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
	"github.com/wastebank/ledger/internal/models"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id int64) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	Update(ctx context.Context, id int64, patch models.CustomerPatch) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	TotalBalance(ctx context.Context) (decimal.Decimal, error)
}

type customerRepo struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (code, name, nik, address, institution)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, balance, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		customer.Code, customer.Name, customer.NIK, customer.Address, customer.Institution,
	).Scan(&customer.ID, &customer.Balance, &customer.CreatedAt)
	return mapError(err)
}

func (r *customerRepo) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	query := `
		SELECT id, code, name, nik, address, institution, balance, created_at
		FROM customers WHERE id = $1
	`
	var c models.Customer
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Code, &c.Name, &c.NIK, &c.Address, &c.Institution, &c.Balance, &c.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *customerRepo) List(ctx context.Context) ([]models.Customer, error) {
	query := `
		SELECT id, code, name, nik, address, institution, balance, created_at
		FROM customers ORDER BY code
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer closeRows(rows)

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.NIK, &c.Address, &c.Institution, &c.Balance, &c.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		customers = append(customers, c)
	}
	return customers, mapError(rows.Err())
}

func (r *customerRepo) Update(ctx context.Context, id int64, patch models.CustomerPatch) error {
	query := `
		UPDATE customers
		SET name = COALESCE($1, name),
		    address = COALESCE($2, address),
		    institution = COALESCE($3, institution)
		WHERE id = $4
	`
	res, err := r.db.ExecContext(ctx, query, patch.Name, patch.Address, patch.Institution, id)
	if err != nil {
		return mapError(err)
	}
	return requireRowAffected(res)
}

func (r *customerRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return requireRowAffected(res)
}

func (r *customerRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM customers`).Scan(&count)
	return count, mapError(err)
}

func (r *customerRepo) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(sum(balance), 0) FROM customers`).Scan(&total)
	return total, mapError(err)
}
