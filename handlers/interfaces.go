package handlers

import (
	"context"

	"github.com/gruhahomes/gruha-backend/types"
)

// ContactServiceInterface defines the contact service methods needed by handlers.
type ContactServiceInterface interface {
	Create(ctx context.Context, input types.ContactCreate) (*types.ContactSubmission, error)
	List(ctx context.Context) ([]types.ContactSubmission, error)
}

// NewsletterServiceInterface defines the newsletter service methods needed by handlers.
type NewsletterServiceInterface interface {
	Subscribe(ctx context.Context, input types.NewsletterCreate) (*types.NewsletterSubscription, error)
	List(ctx context.Context) ([]types.NewsletterSubscription, error)
}
