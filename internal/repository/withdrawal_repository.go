package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wastebank/ledger/internal/apperrors"
	"github.com/wastebank/ledger/internal/models"
)

type WithdrawalRepository interface {
	Create(ctx context.Context, withdrawal *models.Withdrawal) error
	GetByID(ctx context.Context, id int64) (*models.Withdrawal, error)
	List(ctx context.Context) ([]models.Withdrawal, error)
	ListPending(ctx context.Context) ([]models.Withdrawal, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]models.Withdrawal, error)
	ListCompletedByDateRange(ctx context.Context, start, end time.Time) ([]models.Withdrawal, error)
	// Complete debits the customer's balance and flips the request to
	// completed in one transaction. The debit is a conditional update,
	// so a concurrent approval that drained the balance first makes
	// this one fail with ErrInsufficientFunds instead of double-spending.
	Complete(ctx context.Context, id, customerID int64, amount decimal.Decimal) error
	Reject(ctx context.Context, id int64) error
	CountPending(ctx context.Context) (int64, error)
	TotalCompletedByCustomer(ctx context.Context, customerID int64) (decimal.Decimal, error)
	LastCompletedByCustomer(ctx context.Context, customerID int64) (time.Time, error)
}

type withdrawalRepo struct {
	db *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) WithdrawalRepository {
	return &withdrawalRepo{db: db}
}

func (r *withdrawalRepo) Create(ctx context.Context, withdrawal *models.Withdrawal) error {
	query := `
		INSERT INTO withdrawals (customer_id, officer_id, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		withdrawal.CustomerID, withdrawal.OfficerID, withdrawal.Amount, withdrawal.Status,
	).Scan(&withdrawal.ID, &withdrawal.CreatedAt)
	return mapError(err)
}

func (r *withdrawalRepo) GetByID(ctx context.Context, id int64) (*models.Withdrawal, error) {
	query := `
		SELECT id, customer_id, officer_id, amount, status, created_at
		FROM withdrawals WHERE id = $1
	`
	var w models.Withdrawal
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&w.ID, &w.CustomerID, &w.OfficerID, &w.Amount, &w.Status, &w.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &w, nil
}

func (r *withdrawalRepo) List(ctx context.Context) ([]models.Withdrawal, error) {
	query := `
		SELECT id, customer_id, officer_id, amount, status, created_at
		FROM withdrawals ORDER BY created_at DESC, id DESC
	`
	return r.queryWithdrawals(ctx, query)
}

func (r *withdrawalRepo) ListPending(ctx context.Context) ([]models.Withdrawal, error) {
	query := `
		SELECT id, customer_id, officer_id, amount, status, created_at
		FROM withdrawals WHERE status = 'pending' ORDER BY created_at DESC, id DESC
	`
	return r.queryWithdrawals(ctx, query)
}

func (r *withdrawalRepo) ListByCustomer(ctx context.Context, customerID int64) ([]models.Withdrawal, error) {
	query := `
		SELECT id, customer_id, officer_id, amount, status, created_at
		FROM withdrawals WHERE customer_id = $1 ORDER BY created_at DESC, id DESC
	`
	return r.queryWithdrawals(ctx, query, customerID)
}

func (r *withdrawalRepo) ListCompletedByDateRange(ctx context.Context, start, end time.Time) ([]models.Withdrawal, error) {
	query := `
		SELECT id, customer_id, officer_id, amount, status, created_at
		FROM withdrawals
		WHERE status = 'completed'
		  AND created_at::date >= $1::date AND created_at::date <= $2::date
		ORDER BY created_at, id
	`
	return r.queryWithdrawals(ctx, query, start, end)
}

func (r *withdrawalRepo) queryWithdrawals(ctx context.Context, query string, args ...any) ([]models.Withdrawal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer closeRows(rows)

	var withdrawals []models.Withdrawal
	for rows.Next() {
		var w models.Withdrawal
		if err := rows.Scan(&w.ID, &w.CustomerID, &w.OfficerID, &w.Amount, &w.Status, &w.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, mapError(rows.Err())
}

func (r *withdrawalRepo) Complete(ctx context.Context, id, customerID int64, amount decimal.Decimal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err)
	}
	defer rollbackTx(tx)

	res, err := tx.ExecContext(ctx, `
		UPDATE customers
		SET balance = balance - $1
		WHERE id = $2 AND balance >= $1
	`, amount, customerID)
	if err != nil {
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if n == 0 {
		return apperrors.ErrInsufficientFunds
	}

	res, err = tx.ExecContext(ctx, `
		UPDATE withdrawals
		SET status = 'completed'
		WHERE id = $1 AND status = 'pending'
	`, id)
	if err != nil {
		return mapError(err)
	}
	n, err = res.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if n == 0 {
		return apperrors.ErrInvalidState
	}

	return mapError(tx.Commit())
}

func (r *withdrawalRepo) Reject(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE withdrawals
		SET status = 'rejected'
		WHERE id = $1 AND status = 'pending'
	`, id)
	if err != nil {
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if n == 0 {
		return apperrors.ErrInvalidState
	}
	return nil
}

func (r *withdrawalRepo) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM withdrawals WHERE status = 'pending'`).Scan(&count)
	return count, mapError(err)
}

func (r *withdrawalRepo) TotalCompletedByCustomer(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(sum(amount), 0) FROM withdrawals
		WHERE customer_id = $1 AND status = 'completed'
	`, customerID).Scan(&total)
	return total, mapError(err)
}

func (r *withdrawalRepo) LastCompletedByCustomer(ctx context.Context, customerID int64) (time.Time, error) {
	var last sql.NullTime
	err := r.db.QueryRowContext(ctx, `
		SELECT max(created_at) FROM withdrawals
		WHERE customer_id = $1 AND status = 'completed'
	`, customerID).Scan(&last)
	if err != nil {
		return time.Time{}, mapError(err)
	}
	if !last.Valid {
		return time.Time{}, nil
	}
	return last.Time, nil
}
