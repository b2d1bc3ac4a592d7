package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/landlordly/internal/domain"
)

// UnitRepository manages persistence for rentable units.
type UnitRepository interface {
	Create(ctx context.Context, unit *domain.Unit) error
	Update(ctx context.Context, unit *domain.Unit) error
	GetByID(ctx context.Context, id string) (*domain.Unit, error)
	ListByProperty(ctx context.Context, propertyID string) ([]domain.Unit, error)
	GetByTenant(ctx context.Context, tenantID string) (*domain.Unit, error)
	DeleteByProperty(ctx context.Context, propertyID string) error
}

type unitRepository struct {
	pool *pgxpool.Pool
}

// NewUnitRepository constructs repository.
func NewUnitRepository(pool *pgxpool.Pool) UnitRepository {
	return &unitRepository{pool: pool}
}

func (r *unitRepository) Create(ctx context.Context, unit *domain.Unit) error {
	const query = `
        INSERT INTO units (property_id, unit_number, rent_amount, tenant_id, status, lease_start, lease_end)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		unit.PropertyID,
		unit.UnitNumber,
		unit.RentAmount,
		unit.TenantID,
		unit.Status,
		unit.LeaseStart,
		unit.LeaseEnd,
	).Scan(&unit.ID, &unit.CreatedAt, &unit.UpdatedAt)
}

func (r *unitRepository) Update(ctx context.Context, unit *domain.Unit) error {
	const query = `
        UPDATE units SET unit_number=$1, rent_amount=$2, tenant_id=$3, status=$4,
            lease_start=$5, lease_end=$6, updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		unit.UnitNumber,
		unit.RentAmount,
		unit.TenantID,
		unit.Status,
		unit.LeaseStart,
		unit.LeaseEnd,
		unit.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *unitRepository) GetByID(ctx context.Context, id string) (*domain.Unit, error) {
	const query = `
        SELECT id, property_id, unit_number, rent_amount, tenant_id, status, lease_start, lease_end, created_at, updated_at
        FROM units WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *unitRepository) GetByTenant(ctx context.Context, tenantID string) (*domain.Unit, error) {
	const query = `
        SELECT id, property_id, unit_number, rent_amount, tenant_id, status, lease_start, lease_end, created_at, updated_at
        FROM units WHERE tenant_id=$1`
	return r.fetchSingle(ctx, query, tenantID)
}

func (r *unitRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Unit, error) {
	var unit domain.Unit
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&unit.ID,
		&unit.PropertyID,
		&unit.UnitNumber,
		&unit.RentAmount,
		&unit.TenantID,
		&unit.Status,
		&unit.LeaseStart,
		&unit.LeaseEnd,
		&unit.CreatedAt,
		&unit.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepository) ListByProperty(ctx context.Context, propertyID string) ([]domain.Unit, error) {
	const query = `
        SELECT id, property_id, unit_number, rent_amount, tenant_id, status, lease_start, lease_end, created_at, updated_at
        FROM units WHERE property_id=$1 ORDER BY unit_number ASC`
	rows, err := r.pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Unit
	for rows.Next() {
		var unit domain.Unit
		if err := rows.Scan(
			&unit.ID,
			&unit.PropertyID,
			&unit.UnitNumber,
			&unit.RentAmount,
			&unit.TenantID,
			&unit.Status,
			&unit.LeaseStart,
			&unit.LeaseEnd,
			&unit.CreatedAt,
			&unit.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, unit)
	}
	return result, rows.Err()
}

func (r *unitRepository) DeleteByProperty(ctx context.Context, propertyID string) error {
	const query = `DELETE FROM units WHERE property_id=$1`
	_, err := r.pool.Exec(ctx, query, propertyID)
	return err
}
