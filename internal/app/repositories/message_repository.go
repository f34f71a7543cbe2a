package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumconnect/backend/internal/app/models"
	"github.com/alumconnect/backend/internal/pkg/apperrors"
)

// MessageRepository handles database operations for conversations and messages
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// GetOrCreateConversation returns the conversation between two users, creating
// it if none exists. The pair is stored in canonical order so the unique
// constraint makes concurrent creates converge on one row.
func (r *MessageRepository) GetOrCreateConversation(ctx context.Context, userA, userB int64) (*models.Conversation, error) {
	a, b := models.NormalizeConversationPair(userA, userB)

	query := `
		INSERT INTO conversations (user_a_id, user_b_id)
		VALUES ($1, $2)
		ON CONFLICT (user_a_id, user_b_id) DO UPDATE SET user_a_id = EXCLUDED.user_a_id
		RETURNING id, user_a_id, user_b_id, last_message_at, created_at
	`

	var c models.Conversation
	err := r.db.QueryRow(ctx, query, a, b).
		Scan(&c.ID, &c.UserAID, &c.UserBID, &c.LastMessageAt, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating conversation: %w", err)
	}
	return &c, nil
}

// GetConversation retrieves a conversation by ID
func (r *MessageRepository) GetConversation(ctx context.Context, id int64) (*models.Conversation, error) {
	query := `
		SELECT id, user_a_id, user_b_id, last_message_at, created_at
		FROM conversations
		WHERE id = $1
	`

	var c models.Conversation
	err := r.db.QueryRow(ctx, query, id).
		Scan(&c.ID, &c.UserAID, &c.UserBID, &c.LastMessageAt, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrConversationNotFound
		}
		return nil, fmt.Errorf("error retrieving conversation: %w", err)
	}
	return &c, nil
}

// ListConversations retrieves a user's conversations ordered by recent
// activity, with the other participant and the caller's unread count.
func (r *MessageRepository) ListConversations(ctx context.Context, userID int64) ([]*models.Conversation, error) {
	query := `
		SELECT c.id, c.user_a_id, c.user_b_id, c.last_message_at, c.created_at,
		       u.id, u.name, u.email, u.role, u.avatar_url,
		       (SELECT COUNT(*) FROM messages m
		        WHERE m.conversation_id = c.id AND m.receiver_id = $1 AND m.is_read = FALSE)
		FROM conversations c
		JOIN users u ON u.id = CASE WHEN c.user_a_id = $1 THEN c.user_b_id ELSE c.user_a_id END
		WHERE c.user_a_id = $1 OR c.user_b_id = $1
		ORDER BY c.last_message_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing conversations: %w", err)
	}
	defer rows.Close()

	var conversations []*models.Conversation
	for rows.Next() {
		var c models.Conversation
		var other models.User
		err := rows.Scan(
			&c.ID, &c.UserAID, &c.UserBID, &c.LastMessageAt, &c.CreatedAt,
			&other.ID, &other.Name, &other.Email, &other.Role, &other.AvatarURL,
			&c.UnreadCount,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning conversation row: %w", err)
		}
		c.Other = &other
		conversations = append(conversations, &c)
	}
	return conversations, rows.Err()
}

// CreateMessage inserts a message and bumps the conversation's activity
// timestamp in the same transaction.
func (r *MessageRepository) CreateMessage(ctx context.Context, msg *models.Message) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO messages (conversation_id, sender_id, receiver_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_read, created_at
	`
	err = tx.QueryRow(ctx, query,
		msg.ConversationID,
		msg.SenderID,
		msg.ReceiverID,
		msg.Content,
	).Scan(&msg.ID, &msg.IsRead, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating message: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE conversations SET last_message_at = NOW() WHERE id = $1`,
		msg.ConversationID,
	)
	if err != nil {
		return fmt.Errorf("error updating conversation activity: %w", err)
	}

	return tx.Commit(ctx)
}

// FetchAndAcknowledge returns the conversation's messages oldest first and
// marks those addressed to the reader as read, in one transaction.
func (r *MessageRepository) FetchAndAcknowledge(ctx context.Context, conversationID, readerID int64) ([]*models.Message, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		SELECT id, conversation_id, sender_id, receiver_id, content, is_read, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := tx.Query(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}

	var messages []*models.Message
	for rows.Next() {
		var m models.Message
		err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.ReceiverID, &m.Content, &m.IsRead, &m.CreatedAt)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, &m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading message rows: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE messages SET is_read = TRUE WHERE conversation_id = $1 AND receiver_id = $2 AND is_read = FALSE`,
		conversationID, readerID,
	)
	if err != nil {
		return nil, fmt.Errorf("error acknowledging messages: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("error committing message fetch: %w", err)
	}
	return messages, nil
}
