package types

import (
	"time"
)

// ContactSubmission is a stored contact-form submission. Records are
// immutable once created; there is no update or delete operation.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactCreate is the request payload for submitting the contact form.
// Phone and Service are optional and default to empty strings.
type ContactCreate struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message" binding:"required"`
}
