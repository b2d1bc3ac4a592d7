package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/landlordly/internal/domain"
)

// PaymentRepository encapsulates rent payment persistence.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	Update(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	ListByTenantAndStatus(ctx context.Context, tenantID string, status domain.PaymentStatus) ([]domain.Payment, error)
	ListByUnit(ctx context.Context, unitID string) ([]domain.Payment, error)
}

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository instantiates repository.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	const query = `
        INSERT INTO payments (tenant_id, unit_id, amount, status, due_date, paid_date, late_fee, receipt_url)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		payment.TenantID,
		payment.UnitID,
		payment.Amount,
		payment.Status,
		payment.DueDate,
		payment.PaidDate,
		payment.LateFee,
		payment.ReceiptURL,
	).Scan(&payment.ID, &payment.CreatedAt)
}

func (r *paymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	const query = `
        UPDATE payments SET amount=$1, status=$2, due_date=$3, paid_date=$4, late_fee=$5, receipt_url=$6
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		payment.Amount,
		payment.Status,
		payment.DueDate,
		payment.PaidDate,
		payment.LateFee,
		payment.ReceiptURL,
		payment.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	const query = `
        SELECT id, tenant_id, unit_id, amount, status, due_date, paid_date, late_fee, receipt_url, created_at
        FROM payments WHERE id=$1`
	var payment domain.Payment
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&payment.ID,
		&payment.TenantID,
		&payment.UnitID,
		&payment.Amount,
		&payment.Status,
		&payment.DueDate,
		&payment.PaidDate,
		&payment.LateFee,
		&payment.ReceiptURL,
		&payment.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) ListByTenantAndStatus(ctx context.Context, tenantID string, status domain.PaymentStatus) ([]domain.Payment, error) {
	// Completed payments sort newest paid first, everything else by due date.
	order := "due_date ASC"
	if status == domain.PaymentStatusCompleted {
		order = "paid_date DESC"
	}
	query := `
        SELECT id, tenant_id, unit_id, amount, status, due_date, paid_date, late_fee, receipt_url, created_at
        FROM payments WHERE tenant_id=$1 AND status=$2 ORDER BY ` + order
	rows, err := r.pool.Query(ctx, query, tenantID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *paymentRepository) ListByUnit(ctx context.Context, unitID string) ([]domain.Payment, error) {
	const query = `
        SELECT id, tenant_id, unit_id, amount, status, due_date, paid_date, late_fee, receipt_url, created_at
        FROM payments WHERE unit_id=$1 ORDER BY due_date DESC`
	rows, err := r.pool.Query(ctx, query, unitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func scanPayments(rows pgx.Rows) ([]domain.Payment, error) {
	var result []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.TenantID,
			&payment.UnitID,
			&payment.Amount,
			&payment.Status,
			&payment.DueDate,
			&payment.PaidDate,
			&payment.LateFee,
			&payment.ReceiptURL,
			&payment.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, payment)
	}
	return result, rows.Err()
}
