package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/landlordly/internal/domain"
)

// NoticeRepository manages formal notice persistence.
type NoticeRepository interface {
	Create(ctx context.Context, notice *domain.Notice) error
	GetByID(ctx context.Context, id string) (*domain.Notice, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Notice, error)
	MarkAcknowledged(ctx context.Context, id string) error
}

type noticeRepository struct {
	pool *pgxpool.Pool
}

// NewNoticeRepository constructs repository.
func NewNoticeRepository(pool *pgxpool.Pool) NoticeRepository {
	return &noticeRepository{pool: pool}
}

func (r *noticeRepository) Create(ctx context.Context, notice *domain.Notice) error {
	const query = `
        INSERT INTO notices (type, tenant_id, unit_id, title, content, acknowledged)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, sent_at`
	return r.pool.QueryRow(ctx, query,
		notice.Type,
		notice.TenantID,
		notice.UnitID,
		notice.Title,
		notice.Content,
		notice.Acknowledged,
	).Scan(&notice.ID, &notice.SentAt)
}

func (r *noticeRepository) GetByID(ctx context.Context, id string) (*domain.Notice, error) {
	const query = `
        SELECT id, type, tenant_id, unit_id, title, content, sent_at, acknowledged
        FROM notices WHERE id=$1`
	var notice domain.Notice
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&notice.ID,
		&notice.Type,
		&notice.TenantID,
		&notice.UnitID,
		&notice.Title,
		&notice.Content,
		&notice.SentAt,
		&notice.Acknowledged,
	); err != nil {
		return nil, err
	}
	return &notice, nil
}

func (r *noticeRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Notice, error) {
	const query = `
        SELECT id, type, tenant_id, unit_id, title, content, sent_at, acknowledged
        FROM notices WHERE tenant_id=$1 ORDER BY sent_at DESC`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Notice
	for rows.Next() {
		var notice domain.Notice
		if err := rows.Scan(
			&notice.ID,
			&notice.Type,
			&notice.TenantID,
			&notice.UnitID,
			&notice.Title,
			&notice.Content,
			&notice.SentAt,
			&notice.Acknowledged,
		); err != nil {
			return nil, err
		}
		result = append(result, notice)
	}
	return result, rows.Err()
}

func (r *noticeRepository) MarkAcknowledged(ctx context.Context, id string) error {
	const query = `UPDATE notices SET acknowledged=TRUE WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
