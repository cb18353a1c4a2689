package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nandan/studenthub/internal/app/models"
	"github.com/nandan/studenthub/internal/pkg/apperrors"
)

// MessageRepository handles database operations for group messages
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

const messageColumns = `id, sender_id, sender_name, sender_type, subject, message,
	group_id, group_name, recipients, created_at `

func scanMessage(row pgx.Row) (*models.Message, error) {
	var m models.Message
	err := row.Scan(&m.MessageID, &m.SenderID, &m.SenderName, &m.SenderType,
		&m.Subject, &m.Message, &m.GroupID, &m.GroupName, &m.Recipients, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new message with its recipient snapshot.
func (r *MessageRepository) Create(ctx context.Context, m *models.Message) error {
	query := `
		INSERT INTO messages (id, sender_id, sender_name, sender_type, subject, message,
			group_id, group_name, recipients)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	recipients := m.Recipients
	if recipients == nil {
		recipients = []models.Recipient{}
	}

	err := r.db.QueryRow(ctx, query,
		m.MessageID, m.SenderID, m.SenderName, m.SenderType, m.Subject, m.Message,
		m.GroupID, m.GroupName, recipients,
	).Scan(&m.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating message: %w", err)
	}
	return nil
}

// GetByID retrieves a message by identifier.
func (r *MessageRepository) GetByID(ctx context.Context, id string) (*models.Message, error) {
	query := `SELECT ` + messageColumns + `FROM messages WHERE id = $1`

	m, err := scanMessage(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, fmt.Errorf("error retrieving message: %w", err)
	}
	return m, nil
}

// ListForStudent returns every message addressed to the student, newest first.
func (r *MessageRepository) ListForStudent(ctx context.Context, studentID string) ([]*models.Message, error) {
	query := `SELECT ` + messageColumns + `
		FROM messages
		WHERE recipients @> jsonb_build_array(jsonb_build_object('studentId', $1::text))
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// MarkRead flags the student's copy of a message as read. Marking an already
// read copy leaves its readAt timestamp untouched.
func (r *MessageRepository) MarkRead(ctx context.Context, messageID, studentID string) error {
	query := `
		UPDATE messages
		SET recipients = (
			SELECT COALESCE(jsonb_agg(
				CASE WHEN elem->>'studentId' = $2 AND NOT COALESCE((elem->>'isRead')::boolean, false)
					THEN elem || jsonb_build_object('isRead', true, 'readAt', to_jsonb(now()))
					ELSE elem
				END), '[]'::jsonb)
			FROM jsonb_array_elements(recipients) elem)
		WHERE id = $1
		  AND recipients @> jsonb_build_array(jsonb_build_object('studentId', $2::text))`

	tag, err := r.db.Exec(ctx, query, messageID, studentID)
	if err != nil {
		return fmt.Errorf("error marking message read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Nothing matched: tell the caller whether the message itself or
		// only the recipient entry is missing.
		if _, err := r.GetByID(ctx, messageID); err != nil {
			return err
		}
		return apperrors.ErrRecipientNotFound
	}
	return nil
}

// UnreadCount returns how many messages the student has not read yet.
func (r *MessageRepository) UnreadCount(ctx context.Context, studentID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM messages, jsonb_array_elements(recipients) elem
		WHERE elem->>'studentId' = $1
		  AND NOT COALESCE((elem->>'isRead')::boolean, false)`

	var count int
	if err := r.db.QueryRow(ctx, query, studentID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting unread messages: %w", err)
	}
	return count, nil
}
