package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/schooldesk/school-api/internal/api/metrics"
	"github.com/schooldesk/school-api/internal/core/domain"
	"github.com/schooldesk/school-api/internal/core/ports"
)

// IdempotencyKeyHeader lets a client retry a send without duplicating it.
const IdempotencyKeyHeader = "Idempotency-Key"

// MessageHandler handles the inbox and outbox of the school in the path.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

type sendMessageRequest struct {
	To      string `json:"to" validate:"required"`
	Title   string `json:"title" validate:"required,min=5,max=200"`
	Message string `json:"message" validate:"required"`
}

// Send delivers a message to another school.
//
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        schoolId         path      string              true   "Sender school ID"
// @Param        Idempotency-Key  header    string              false  "Key that makes retries return the original message"
// @Param        body             body      sendMessageRequest  true   "Message"
// @Success      201              {object}  domain.Message
// @Success      200              {object}  domain.Message  "replayed"
// @Failure      400              {object}  errorBody
// @Failure      404              {object}  errorBody
// @Failure      409              {object}  errorBody  "first send with this key still running"
// @Router       /api/schools/{schoolId}/messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	var req sendMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.service.Send(c.Request().Context(), ports.SendMessageInput{
		From:           c.Param("schoolId"),
		To:             req.To,
		Title:          req.Title,
		Body:           req.Message,
		IdempotencyKey: c.Request().Header.Get(IdempotencyKeyHeader),
	})
	if err != nil {
		return err
	}

	if result.Replayed {
		metrics.MessagesSentTotal.WithLabelValues("replayed").Inc()
		return c.JSON(http.StatusOK, result.Message)
	}
	metrics.MessagesSentTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, result.Message)
}

// Inbox lists received messages, newest first.
//
// @Summary      Inbox
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        schoolId  path      string  true  "School ID"
// @Success      200       {array}   domain.Message
// @Router       /api/schools/{schoolId}/messages/inbox [get]
func (h *MessageHandler) Inbox(c echo.Context) error {
	msgs, err := h.service.Inbox(c.Request().Context(), c.Param("schoolId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNil(msgs))
}

// Outbox lists sent messages, newest first.
//
// @Summary      Outbox
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        schoolId  path      string  true  "School ID"
// @Success      200       {array}   domain.Message
// @Router       /api/schools/{schoolId}/messages/outbox [get]
func (h *MessageHandler) Outbox(c echo.Context) error {
	msgs, err := h.service.Outbox(c.Request().Context(), c.Param("schoolId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNil(msgs))
}

// MarkViewed flags a received message as read.
//
// @Summary      Mark a message viewed
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        schoolId   path      string  true  "Recipient school ID"
// @Param        messageId  path      string  true  "Message ID"
// @Success      200        {object}  domain.Message
// @Failure      404        {object}  errorBody
// @Router       /api/schools/{schoolId}/messages/{messageId}/viewed [patch]
func (h *MessageHandler) MarkViewed(c echo.Context) error {
	msg, err := h.service.MarkViewed(c.Request().Context(), c.Param("schoolId"), c.Param("messageId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}

func nonNil(msgs []*domain.Message) []*domain.Message {
	if msgs == nil {
		return []*domain.Message{}
	}
	return msgs
}
