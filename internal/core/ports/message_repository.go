package ports

import (
	"context"

	"github.com/schooldesk/school-api/internal/core/domain"
)

// MessageRepository persists messages exchanged between schools.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	FindByID(ctx context.Context, id string) (*domain.Message, error)
	// ListByRecipient returns the inbox of schoolID, newest first.
	ListByRecipient(ctx context.Context, schoolID string) ([]*domain.Message, error)
	// ListBySender returns the outbox of schoolID, newest first.
	ListBySender(ctx context.Context, schoolID string) ([]*domain.Message, error)
	// MarkViewed flags the message as viewed when recipient matches its To field.
	// It returns domain.ErrMessageNotFound otherwise.
	MarkViewed(ctx context.Context, id, recipient string) (*domain.Message, error)
}

// IdempotencyStore remembers which message a client-supplied key produced.
type IdempotencyStore interface {
	// Reserve claims key for schoolID. When the key is already taken it returns
	// the message id it produced, or domain.ErrSendInProgress while the first
	// send has not completed.
	Reserve(ctx context.Context, schoolID, key string) (messageID string, reserved bool, err error)
	// Complete points a reserved key at the message it produced.
	Complete(ctx context.Context, schoolID, key, messageID string) error
	// Release frees a reserved key after a failed send.
	Release(ctx context.Context, schoolID, key string) error
}
