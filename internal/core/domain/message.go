package domain

import "time"

// Message is a note sent from one school to another. The sender sees it in
// its outbox, the recipient in its inbox.
type Message struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"message"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Viewed    bool      `json:"viewed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
