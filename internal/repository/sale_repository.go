package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wastebank/ledger/internal/models"
)

type SaleRepository interface {
	Create(ctx context.Context, sale *models.CollectorSale) error
	GetByID(ctx context.Context, id int64) (*models.CollectorSale, error)
	List(ctx context.Context) ([]models.CollectorSale, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]models.CollectorSale, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	TotalWeight(ctx context.Context) (decimal.Decimal, error)
	WeightByType(ctx context.Context) (map[int64]decimal.Decimal, error)
}

type saleRepo struct {
	db *sql.DB
}

func NewSaleRepository(db *sql.DB) SaleRepository {
	return &saleRepo{db: db}
}

func (r *saleRepo) Create(ctx context.Context, sale *models.CollectorSale) error {
	query := `
		INSERT INTO collector_sales (collector_id, waste_type_id, weight, sale_price, total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		sale.CollectorID, sale.WasteTypeID, sale.Weight, sale.SalePrice, sale.Total,
	).Scan(&sale.ID, &sale.CreatedAt)
	return mapError(err)
}

func (r *saleRepo) GetByID(ctx context.Context, id int64) (*models.CollectorSale, error) {
	query := `
		SELECT id, collector_id, waste_type_id, weight, sale_price, total, created_at
		FROM collector_sales WHERE id = $1
	`
	var s models.CollectorSale
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.CollectorID, &s.WasteTypeID, &s.Weight, &s.SalePrice, &s.Total, &s.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &s, nil
}

func (r *saleRepo) List(ctx context.Context) ([]models.CollectorSale, error) {
	query := `
		SELECT id, collector_id, waste_type_id, weight, sale_price, total, created_at
		FROM collector_sales ORDER BY created_at DESC, id DESC
	`
	return r.querySales(ctx, query)
}

func (r *saleRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]models.CollectorSale, error) {
	query := `
		SELECT id, collector_id, waste_type_id, weight, sale_price, total, created_at
		FROM collector_sales
		WHERE created_at::date >= $1::date AND created_at::date <= $2::date
		ORDER BY created_at, id
	`
	return r.querySales(ctx, query, start, end)
}

func (r *saleRepo) querySales(ctx context.Context, query string, args ...any) ([]models.CollectorSale, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer closeRows(rows)

	var sales []models.CollectorSale
	for rows.Next() {
		var s models.CollectorSale
		if err := rows.Scan(&s.ID, &s.CollectorID, &s.WasteTypeID, &s.Weight, &s.SalePrice, &s.Total, &s.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		sales = append(sales, s)
	}
	return sales, mapError(rows.Err())
}

func (r *saleRepo) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(sum(total), 0) FROM collector_sales`).Scan(&total)
	return total, mapError(err)
}

func (r *saleRepo) TotalWeight(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(sum(weight), 0) FROM collector_sales`).Scan(&total)
	return total, mapError(err)
}

func (r *saleRepo) WeightByType(ctx context.Context) (map[int64]decimal.Decimal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT waste_type_id, sum(weight) FROM collector_sales GROUP BY waste_type_id`)
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
