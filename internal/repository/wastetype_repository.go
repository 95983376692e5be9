package repository

import (
	"context"
	"database/sql"

	"github.com/wastebank/ledger/internal/models"
)

type WasteTypeRepository interface {
	Create(ctx context.Context, wasteType *models.WasteType) error
	GetByID(ctx context.Context, id int64) (*models.WasteType, error)
	List(ctx context.Context) ([]models.WasteType, error)
	Update(ctx context.Context, id int64, patch models.WasteTypePatch) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type wasteTypeRepo struct {
	db *sql.DB
}

func NewWasteTypeRepository(db *sql.DB) WasteTypeRepository {
	return &wasteTypeRepo{db: db}
}

func (r *wasteTypeRepo) Create(ctx context.Context, wasteType *models.WasteType) error {
	query := `
		INSERT INTO waste_types (code, name, buy_price, sell_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		wasteType.Code, wasteType.Name, wasteType.BuyPrice, wasteType.SellPrice,
	).Scan(&wasteType.ID, &wasteType.CreatedAt)
	return mapError(err)
}

func (r *wasteTypeRepo) GetByID(ctx context.Context, id int64) (*models.WasteType, error) {
	query := `
		SELECT id, code, name, buy_price, sell_price, created_at
		FROM waste_types WHERE id = $1
	`
	var wt models.WasteType
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&wt.ID, &wt.Code, &wt.Name, &wt.BuyPrice, &wt.SellPrice, &wt.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &wt, nil
}

func (r *wasteTypeRepo) List(ctx context.Context) ([]models.WasteType, error) {
	query := `
		SELECT id, code, name, buy_price, sell_price, created_at
		FROM waste_types ORDER BY code
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer closeRows(rows)

	var wasteTypes []models.WasteType
	for rows.Next() {
		var wt models.WasteType
		if err := rows.Scan(&wt.ID, &wt.Code, &wt.Name, &wt.BuyPrice, &wt.SellPrice, &wt.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		wasteTypes = append(wasteTypes, wt)
	}
	return wasteTypes, mapError(rows.Err())
}

func (r *wasteTypeRepo) Update(ctx context.Context, id int64, patch models.WasteTypePatch) error {
	query := `
		UPDATE waste_types
		SET name = COALESCE($1, name),
		    buy_price = COALESCE($2, buy_price),
		    sell_price = COALESCE($3, sell_price)
		WHERE id = $4
	`
	res, err := r.db.ExecContext(ctx, query, patch.Name, patch.BuyPrice, patch.SellPrice, id)
	if err != nil {
		return mapError(err)
	}
	return requireRowAffected(res)
}

func (r *wasteTypeRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM waste_types WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return requireRowAffected(res)
}

func (r *wasteTypeRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM waste_types`).Scan(&count)
	return count, mapError(err)
}
