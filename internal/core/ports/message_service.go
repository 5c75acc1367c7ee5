package ports

import (
	"context"

	"github.com/schooldesk/school-api/internal/core/domain"
)

// SendMessageInput carries a new message. IdempotencyKey is optional.
type SendMessageInput struct {
	From           string
	To             string
	Title          string
	Body           string
	IdempotencyKey string
}

// SendResult is returned by Send. Replayed is true when the idempotency key
// matched an earlier send and no new message was stored.
type SendResult struct {
	Message  *domain.Message
	Replayed bool
}

// MessageService defines the inbox/outbox use cases.
type MessageService interface {
	Send(ctx context.Context, in SendMessageInput) (*SendResult, error)
	Inbox(ctx context.Context, schoolID string) ([]*domain.Message, error)
	Outbox(ctx context.Context, schoolID string) ([]*domain.Message, error)
	MarkViewed(ctx context.Context, schoolID, messageID string) (*domain.Message, error)
}
