package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/schooldesk/school-api/internal/core/domain"
	"github.com/schooldesk/school-api/internal/core/ports"
)

func TestMessageHandler_Send(t *testing.T) {
	var got ports.SendMessageInput
	stub := &stubMessageService{
		sendFn: func(ctx context.Context, in ports.SendMessageInput) (*ports.SendResult, error) {
			got = in
			return &ports.SendResult{Message: &domain.Message{ID: "m1", From: in.From, To: in.To}}, nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/api/schools/s1/messages",
		`{"to":"s2","title":"Sports day","message":"See you on Friday"}`, "schoolId", "s1")
	c.Request().Header.Set(IdempotencyKeyHeader, "key-1")

	if err := NewMessageHandler(stub).Send(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.From != "s1" || got.To != "s2" || got.Body != "See you on Friday" || got.IdempotencyKey != "key-1" {
		t.Fatalf("unexpected input: %+v", got)
	}
}

func TestMessageHandler_Send_Replayed(t *testing.T) {
	stub := &stubMessageService{
		sendFn: func(context.Context, ports.SendMessageInput) (*ports.SendResult, error) {
			return &ports.SendResult{Message: &domain.Message{ID: "m1"}, Replayed: true}, nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/api/schools/s1/messages",
		`{"to":"s2","title":"Sports day","message":"See you on Friday"}`, "schoolId", "s1")

	if err := NewMessageHandler(stub).Send(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on replay, got %d", rec.Code)
	}
}

func TestMessageHandler_Send_ShortTitle(t *testing.T) {
	stub := &stubMessageService{
		sendFn: func(context.Context, ports.SendMessageInput) (*ports.SendResult, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	c, _ := newJSONContext(http.MethodPost, "/api/schools/s1/messages",
		`{"to":"s2","title":"Hi","message":"x"}`, "schoolId", "s1")

	err := NewMessageHandler(stub).Send(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %v", err)
	}
	if _, ok := ve.Fields.Get("title"); !ok {
		t.Fatalf("expected title error, got %v", ve.Fields.Fields())
	}
}

func TestMessageHandler_InboxEmpty(t *testing.T) {
	stub := &stubMessageService{
		inboxFn: func(context.Context, string) ([]*domain.Message, error) { return nil, nil },
	}
	c, rec := newJSONContext(http.MethodGet, "/api/schools/s1/messages/inbox", "", "schoolId", "s1")

	if err := NewMessageHandler(stub).Inbox(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestMessageHandler_MarkViewed_NotRecipient(t *testing.T) {
	stub := &stubMessageService{
		markViewedFn: func(ctx context.Context, schoolID, messageID string) (*domain.Message, error) {
			if schoolID != "s1" || messageID != "m9" {
				t.Fatalf("unexpected args: %s %s", schoolID, messageID)
			}
			return nil, domain.ErrMessageNotFound
		},
	}
	c, _ := newJSONContext(http.MethodPatch, "/api/schools/s1/messages/m9/viewed", "", "schoolId", "s1", "messageId", "m9")

	if err := NewMessageHandler(stub).MarkViewed(c); !errors.Is(err, domain.ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}
