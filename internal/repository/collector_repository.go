package repository

import (
	"context"
	"database/sql"

	"github.com/wastebank/ledger/internal/models"
)

type CollectorRepository interface {
	Create(ctx context.Context, collector *models.Collector) error
	GetByID(ctx context.Context, id int64) (*models.Collector, error)
	List(ctx context.Context) ([]models.Collector, error)
	Update(ctx context.Context, id int64, patch models.CollectorPatch) error
	Delete(ctx context.Context, id int64) error
}

type collectorRepo struct {
	db *sql.DB
}

func NewCollectorRepository(db *sql.DB) CollectorRepository {
	return &collectorRepo{db: db}
}

func (r *collectorRepo) Create(ctx context.Context, collector *models.Collector) error {
	query := `
		INSERT INTO collectors (code, name, address)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		collector.Code, collector.Name, collector.Address,
	).Scan(&collector.ID, &collector.CreatedAt)
	return mapError(err)
}

func (r *collectorRepo) GetByID(ctx context.Context, id int64) (*models.Collector, error) {
	query := `
		SELECT id, code, name, address, created_at
		FROM collectors WHERE id = $1
	`
	var c models.Collector
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Code, &c.Name, &c.Address, &c.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *collectorRepo) List(ctx context.Context) ([]models.Collector, error) {
	query := `
		SELECT id, code, name, address, created_at
		FROM collectors ORDER BY code
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer closeRows(rows)

	var collectors []models.Collector
	for rows.Next() {
		var c models.Collector
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Address, &c.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		collectors = append(collectors, c)
	}
	return collectors, mapError(rows.Err())
}

func (r *collectorRepo) Update(ctx context.Context, id int64, patch models.CollectorPatch) error {
	query := `
		UPDATE collectors
		SET name = COALESCE($1, name),
		    address = COALESCE($2, address)
		WHERE id = $3
	`
	res, err := r.db.ExecContext(ctx, query, patch.Name, patch.Address, id)
	if err != nil {
		return mapError(err)
	}
	return requireRowAffected(res)
}

func (r *collectorRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM collectors WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return requireRowAffected(res)
}
