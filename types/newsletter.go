package types

import (
	"time"
)

// NewsletterSubscription is a stored newsletter signup. Email is the dedup
// key: subscribing the same address twice returns the original record.
type NewsletterSubscription struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// NewsletterCreate is the request payload for subscribing to the newsletter.
type NewsletterCreate struct {
	Email string `json:"email" binding:"required"`
}
