package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/landlordly/internal/domain"
)

// MaintenanceRepository encapsulates maintenance request persistence.
type MaintenanceRepository interface {
	Create(ctx context.Context, request *domain.MaintenanceRequest) error
	Update(ctx context.Context, request *domain.MaintenanceRequest) error
	GetByID(ctx context.Context, id string) (*domain.MaintenanceRequest, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.MaintenanceRequest, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]domain.MaintenanceRequest, error)
}

type maintenanceRepository struct {
	pool *pgxpool.Pool
}

// NewMaintenanceRepository instantiates repository.
func NewMaintenanceRepository(pool *pgxpool.Pool) MaintenanceRepository {
	return &maintenanceRepository{pool: pool}
}

func (r *maintenanceRepository) Create(ctx context.Context, request *domain.MaintenanceRequest) error {
	const query = `
        INSERT INTO maintenance_requests (tenant_id, unit_id, title, description, priority, status, image_urls)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		request.TenantID,
		request.UnitID,
		request.Title,
		request.Description,
		request.Priority,
		request.Status,
		request.ImageURLs,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
}

func (r *maintenanceRepository) Update(ctx context.Context, request *domain.MaintenanceRequest) error {
	const query = `
        UPDATE maintenance_requests SET title=$1, description=$2, priority=$3, status=$4, image_urls=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		request.Title,
		request.Description,
		request.Priority,
		request.Status,
		request.ImageURLs,
		request.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id string) (*domain.MaintenanceRequest, error) {
	const query = `
        SELECT id, tenant_id, unit_id, title, description, priority, status, image_urls, created_at, updated_at
        FROM maintenance_requests WHERE id=$1`
	var request domain.MaintenanceRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.TenantID,
		&request.UnitID,
		&request.Title,
		&request.Description,
		&request.Priority,
		&request.Status,
		&request.ImageURLs,
		&request.CreatedAt,
		&request.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *maintenanceRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.MaintenanceRequest, error) {
	const query = `
        SELECT id, tenant_id, unit_id, title, description, priority, status, image_urls, created_at, updated_at
        FROM maintenance_requests WHERE tenant_id=$1 ORDER BY updated_at DESC`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMaintenanceRequests(rows)
}

func (r *maintenanceRepository) ListByLandlord(ctx context.Context, landlordID string) ([]domain.MaintenanceRequest, error) {
	const query = `
        SELECT m.id, m.tenant_id, m.unit_id, m.title, m.description, m.priority, m.status, m.image_urls, m.created_at, m.updated_at
        FROM maintenance_requests m
        JOIN units u ON u.id = m.unit_id
        JOIN properties p ON p.id = u.property_id
        WHERE p.landlord_id=$1 ORDER BY m.updated_at DESC`
	rows, err := r.pool.Query(ctx, query, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMaintenanceRequests(rows)
}

func scanMaintenanceRequests(rows pgx.Rows) ([]domain.MaintenanceRequest, error) {
	var result []domain.MaintenanceRequest
	for rows.Next() {
		var request domain.MaintenanceRequest
		if err := rows.Scan(
			&request.ID,
			&request.TenantID,
			&request.UnitID,
			&request.Title,
			&request.Description,
			&request.Priority,
			&request.Status,
			&request.ImageURLs,
			&request.CreatedAt,
			&request.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, request)
	}
	return result, rows.Err()
}
