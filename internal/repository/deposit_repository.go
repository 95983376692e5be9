package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wastebank/ledger/internal/apperrors"
	"github.com/wastebank/ledger/internal/models"
)

type DepositRepository interface {
	// Create appends the deposit record and credits the customer's
	// balance in one transaction; both commit or neither does.
	Create(ctx context.Context, deposit *models.Deposit) error
	GetByID(ctx context.Context, id int64) (*models.Deposit, error)
	List(ctx context.Context) ([]models.Deposit, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]models.Deposit, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]models.Deposit, error)
	Count(ctx context.Context) (int64, error)
	TotalValue(ctx context.Context) (decimal.Decimal, error)
	TotalValueByCustomer(ctx context.Context, customerID int64) (decimal.Decimal, error)
	LastByCustomer(ctx context.Context, customerID int64) (time.Time, error)
	WeightByType(ctx context.Context) (map[int64]decimal.Decimal, error)
}

type depositRepo struct {
	db *sql.DB
}

func NewDepositRepository(db *sql.DB) DepositRepository {
	return &depositRepo{db: db}
}

func (r *depositRepo) Create(ctx context.Context, deposit *models.Deposit) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err)
	}
	defer rollbackTx(tx)

	err = tx.QueryRowContext(ctx, `
		INSERT INTO deposits (customer_id, officer_id, waste_type_id, weight, value)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, deposit.CustomerID, deposit.OfficerID, deposit.WasteTypeID, deposit.Weight, deposit.Value,
	).Scan(&deposit.ID, &deposit.CreatedAt)
	if err != nil {
		return mapError(err)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE customers
		SET balance = balance + $1
		WHERE id = $2
	`, deposit.Value, deposit.CustomerID)
	if err != nil {
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}

	return mapError(tx.Commit())
}

func (r *depositRepo) GetByID(ctx context.Context, id int64) (*models.Deposit, error) {
	query := `
		SELECT id, customer_id, officer_id, waste_type_id, weight, value, created_at
		FROM deposits WHERE id = $1
	`
	var d models.Deposit
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.CustomerID, &d.OfficerID, &d.WasteTypeID, &d.Weight, &d.Value, &d.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &d, nil
}

func (r *depositRepo) List(ctx context.Context) ([]models.Deposit, error) {
	query := `
		SELECT id, customer_id, officer_id, waste_type_id, weight, value, created_at
		FROM deposits ORDER BY created_at DESC, id DESC
	`
	return r.queryDeposits(ctx, query)
}

func (r *depositRepo) ListByCustomer(ctx context.Context, customerID int64) ([]models.Deposit, error) {
	query := `
		SELECT id, customer_id, officer_id, waste_type_id, weight, value, created_at
		FROM deposits WHERE customer_id = $1 ORDER BY created_at DESC, id DESC
	`
	return r.queryDeposits(ctx, query, customerID)
}

func (r *depositRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]models.Deposit, error) {
	query := `
		SELECT id, customer_id, officer_id, waste_type_id, weight, value, created_at
		FROM deposits
		WHERE created_at::date >= $1::date AND created_at::date <= $2::date
		ORDER BY created_at, id
	`
	return r.queryDeposits(ctx, query, start, end)
}

func (r *depositRepo) queryDeposits(ctx context.Context, query string, args ...any) ([]models.Deposit, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer closeRows(rows)

	var deposits []models.Deposit
	for rows.Next() {
		var d models.Deposit
		if err := rows.Scan(&d.ID, &d.CustomerID, &d.OfficerID, &d.WasteTypeID, &d.Weight, &d.Value, &d.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		deposits = append(deposits, d)
	}
	return deposits, mapError(rows.Err())
}

func (r *depositRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM deposits`).Scan(&count)
	return count, mapError(err)
}

func (r *depositRepo) TotalValue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(sum(value), 0) FROM deposits`).Scan(&total)
	return total, mapError(err)
}

func (r *depositRepo) TotalValueByCustomer(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(sum(value), 0) FROM deposits WHERE customer_id = $1`, customerID,
	).Scan(&total)
	return total, mapError(err)
}

func (r *depositRepo) LastByCustomer(ctx context.Context, customerID int64) (time.Time, error) {
	var last sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`SELECT max(created_at) FROM deposits WHERE customer_id = $1`, customerID,
	).Scan(&last)
	if err != nil {
		return time.Time{}, mapError(err)
	}
	if !last.Valid {
		return time.Time{}, nil
	}
	return last.Time, nil
}

func (r *depositRepo) WeightByType(ctx context.Context) (map[int64]decimal.Decimal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT waste_type_id, sum(weight) FROM deposits GROUP BY waste_type_id`)
	if err != nil {
		return nil, mapError(err)
	}
	defer closeRows(rows)

	weights := make(map[int64]decimal.Decimal)
	for rows.Next() {
		var typeID int64
		var weight decimal.Decimal
		if err := rows.Scan(&typeID, &weight); err != nil {
			return nil, mapError(err)
		}
		weights[typeID] = weight
	}
	return weights, mapError(rows.Err())
}
