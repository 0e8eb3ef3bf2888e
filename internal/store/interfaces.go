// Package store defines the persistence contracts used by the service layer.
package store

import (
	"context"

	"github.com/gruhahomes/gruha-backend/types"
)

// ContactStore persists contact-form submissions.
type ContactStore interface {
	// CreateSubmission inserts a fully-populated submission.
	CreateSubmission(ctx context.Context, submission *types.ContactSubmission) error
	// ListSubmissions returns up to limit submissions in storage-native order.
	ListSubmissions(ctx context.Context, limit int) ([]types.ContactSubmission, error)
}

// NewsletterStore persists newsletter subscriptions. Email is unique across
// the collection.
type NewsletterStore interface {
	// GetSubscriptionByEmail returns the subscription for the given email,
	// or ErrNotFound when no such subscription exists.
	GetSubscriptionByEmail(ctx context.Context, email string) (*types.NewsletterSubscription, error)
	// CreateSubscription inserts a subscription and returns the stored
	// record. If a concurrent insert already claimed the email, the
	// pre-existing record is returned instead of an error.
	CreateSubscription(ctx context.Context, sub *types.NewsletterSubscription) (*types.NewsletterSubscription, error)
	// ListSubscriptions returns up to limit subscriptions in storage-native order.
	ListSubscriptions(ctx context.Context, limit int) ([]types.NewsletterSubscription, error)
}
