package repository

import (
	"context"
	"database/sql"

	"github.com/wastebank/ledger/internal/models"
)

type OfficerRepository interface {
	Create(ctx context.Context, officer *models.Officer) error
	GetByID(ctx context.Context, id int64) (*models.Officer, error)
	List(ctx context.Context) ([]models.Officer, error)
	Update(ctx context.Context, id int64, patch models.OfficerPatch) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type officerRepo struct {
	db *sql.DB
}

func NewOfficerRepository(db *sql.DB) OfficerRepository {
	return &officerRepo{db: db}
}

func (r *officerRepo) Create(ctx context.Context, officer *models.Officer) error {
	query := `
		INSERT INTO officers (code, name, nik, address, institution)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		officer.Code, officer.Name, officer.NIK, officer.Address, officer.Institution,
	).Scan(&officer.ID, &officer.CreatedAt)
	return mapError(err)
}

func (r *officerRepo) GetByID(ctx context.Context, id int64) (*models.Officer, error) {
	query := `
		SELECT id, code, name, nik, address, institution, created_at
		FROM officers WHERE id = $1
	`
	var o models.Officer
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&o.ID, &o.Code, &o.Name, &o.NIK, &o.Address, &o.Institution, &o.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &o, nil
}

func (r *officerRepo) List(ctx context.Context) ([]models.Officer, error) {
	query := `
		SELECT id, code, name, nik, address, institution, created_at
		FROM officers ORDER BY code
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer closeRows(rows)

	var officers []models.Officer
	for rows.Next() {
		var o models.Officer
		if err := rows.Scan(&o.ID, &o.Code, &o.Name, &o.NIK, &o.Address, &o.Institution, &o.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		officers = append(officers, o)
	}
	return officers, mapError(rows.Err())
}

func (r *officerRepo) Update(ctx context.Context, id int64, patch models.OfficerPatch) error {
	query := `
		UPDATE officers
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

func (r *officerRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM officers WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return requireRowAffected(res)
}

func (r *officerRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM officers`).Scan(&count)
	return count, mapError(err)
}
