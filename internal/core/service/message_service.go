package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/schooldesk/school-api/internal/core/domain"
	"github.com/schooldesk/school-api/internal/core/ports"
)

// MessageService implements the inbox/outbox use cases.
type MessageService struct {
	messages ports.MessageRepository
	schools  ports.SchoolRepository
	idem     ports.IdempotencyStore
	log      zerolog.Logger
}

func NewMessageService(messages ports.MessageRepository, schools ports.SchoolRepository, idem ports.IdempotencyStore, log zerolog.Logger) *MessageService {
	return &MessageService{messages: messages, schools: schools, idem: idem, log: log}
}

// Send stores a message for an existing recipient. When an idempotency key is
// given, it is reserved before the insert: a key that already produced a
// message replays it, and a key whose first send is still running yields
// domain.ErrSendInProgress. Idempotency store failures are logged and do not
// block sending.
func (s *MessageService) Send(ctx context.Context, in ports.SendMessageInput) (*ports.SendResult, error) {
	reserved := false
	if in.IdempotencyKey != "" {
		id, ok, err := s.idem.Reserve(ctx, in.From, in.IdempotencyKey)
		switch {
		case errors.Is(err, domain.ErrSendInProgress):
			return nil, err
		case err != nil:
			s.log.Warn().Err(err).Str("school_id", in.From).Msg("idempotency reserve failed, sending anyway")
		case ok:
			reserved = true
		default:
			if existing := s.replay(ctx, in.From, id); existing != nil {
				return &ports.SendResult{Message: existing, Replayed: true}, nil
			}
			// The stored target is gone; this send takes the key over.
			reserved = true
		}
	}

	created, err := s.create(ctx, in)
	if err != nil {
		if reserved {
			s.release(ctx, in.From, in.IdempotencyKey)
		}
		return nil, err
	}

	if reserved {
		if err := s.idem.Complete(ctx, in.From, in.IdempotencyKey, created.ID); err != nil {
			s.log.Warn().Err(err).Str("school_id", in.From).Msg("failed to store idempotency key")
		}
	}

	s.log.Info().Str("from", in.From).Str("to", in.To).Str("message_id", created.ID).Msg("message sent")
	return &ports.SendResult{Message: created}, nil
}

func (s *MessageService) create(ctx context.Context, in ports.SendMessageInput) (*domain.Message, error) {
	if _, err := s.schools.FindByID(ctx, in.To); err != nil {
		return nil, storeError("find recipient", err)
	}

	now := time.Now().UTC()
	created, err := s.messages.Create(ctx, &domain.Message{
		Title:     in.Title,
		Body:      in.Body,
		From:      in.From,
		To:        in.To,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, storeError("create message", err)
	}
	return created, nil
}

func (s *MessageService) release(ctx context.Context, schoolID, key string) {
	if err := s.idem.Release(context.WithoutCancel(ctx), schoolID, key); err != nil {
		s.log.Warn().Err(err).Str("school_id", schoolID).Msg("failed to release idempotency key")
	}
}

func (s *MessageService) replay(ctx context.Context, schoolID, id string) *domain.Message {
	m, err := s.messages.FindByID(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Str("message_id", id).Msg("idempotent replay target missing")
		return nil
	}
	s.log.Info().Str("school_id", schoolID).Str("message_id", id).Msg("idempotent replay")
	return m
}

func (s *MessageService) Inbox(ctx context.Context, schoolID string) ([]*domain.Message, error) {
	msgs, err := s.messages.ListByRecipient(ctx, schoolID)
	if err != nil {
		return nil, storeError("list inbox", err)
	}
	return msgs, nil
}

func (s *MessageService) Outbox(ctx context.Context, schoolID string) ([]*domain.Message, error) {
	msgs, err := s.messages.ListBySender(ctx, schoolID)
	if err != nil {
		return nil, storeError("list outbox", err)
	}
	return msgs, nil
}

// MarkViewed flags a message as read. Only the recipient may do so.
func (s *MessageService) MarkViewed(ctx context.Context, schoolID, messageID string) (*domain.Message, error) {
	m, err := s.messages.MarkViewed(ctx, messageID, schoolID)
	if err != nil {
		return nil, storeError("mark viewed", err)
	}
	return m, nil
}
