package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/landlordly/internal/domain"
)

// MessageRepository manages chat thread messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.ChatMessage) error
	ListThread(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error)
	MarkRead(ctx context.Context, receiverID string) error
}

type messageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository builds repository.
func NewMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &messageRepository{pool: pool}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.ChatMessage) error {
	const query = `
        INSERT INTO messages (sender_id, receiver_id, body, from_assistant, read)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		msg.SenderID,
		msg.ReceiverID,
		msg.Body,
		msg.FromAssistant,
		msg.Read,
	).Scan(&msg.ID, &msg.CreatedAt)
}

func (r *messageRepository) ListThread(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	const query = `
        SELECT id, sender_id, receiver_id, body, from_assistant, read, created_at
        FROM messages WHERE sender_id=$1 OR receiver_id=$1
        ORDER BY created_at ASC LIMIT $2`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ChatMessage
	for rows.Next() {
		var msg domain.ChatMessage
		if err := rows.Scan(
			&msg.ID,
			&msg.SenderID,
			&msg.ReceiverID,
			&msg.Body,
			&msg.FromAssistant,
			&msg.Read,
			&msg.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, msg)
	}
	return result, rows.Err()
}

func (r *messageRepository) MarkRead(ctx context.Context, receiverID string) error {
	const query = `UPDATE messages SET read=TRUE WHERE receiver_id=$1 AND read=FALSE`
	_, err := r.pool.Exec(ctx, query, receiverID)
	return err
}
