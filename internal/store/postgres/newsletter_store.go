package postgres

import (
	"context"
	"errors"

	"github.com/gruhahomes/gruha-backend/internal/store"
	"github.com/gruhahomes/gruha-backend/types"
	"github.com/jackc/pgx/v5"
)

// NewsletterStore implements the store.NewsletterStore interface using
// PostgreSQL. A unique index on email backs the dedup guarantee.
type NewsletterStore struct {
	db DB
}

// NewNewsletterStore creates a new NewsletterStore instance.
func NewNewsletterStore(db DB) *NewsletterStore {
	return &NewsletterStore{db: db}
}

// GetSubscriptionByEmail retrieves a subscription by exact email match.
func (s *NewsletterStore) GetSubscriptionByEmail(ctx context.Context, email string) (*types.NewsletterSubscription, error) {
	query := `
		SELECT id, email, subscribed_at
		FROM newsletter_subscriptions
		WHERE email = $1`

	sub := &types.NewsletterSubscription{}
	row := s.db.QueryRow(ctx, query, email)

	err := row.Scan(&sub.ID, &sub.Email, &sub.SubscribedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	return sub, nil
}

// CreateSubscription inserts a subscription. Two concurrent subscribes for
// the same email may both pass the service-level lookup; the unique index
// resolves the race and the loser returns the row that won.
func (s *NewsletterStore) CreateSubscription(ctx context.Context, sub *types.NewsletterSubscription) (*types.NewsletterSubscription, error) {
	query := `
		INSERT INTO newsletter_subscriptions (id, email, subscribed_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING
		RETURNING id, email, subscribed_at`

	stored := &types.NewsletterSubscription{}
	row := s.db.QueryRow(ctx, query, sub.ID, sub.Email, sub.SubscribedAt)

	err := row.Scan(&stored.ID, &stored.Email, &stored.SubscribedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict: another insert claimed the email first.
			return s.GetSubscriptionByEmail(ctx, sub.Email)
		}
		return nil, err
	}

	return stored, nil
}

// ListSubscriptions retrieves up to limit subscriptions in storage-native order.
func (s *NewsletterStore) ListSubscriptions(ctx context.Context, limit int) ([]types.NewsletterSubscription, error) {
	query := `
		SELECT id, email, subscribed_at
		FROM newsletter_subscriptions
		LIMIT $1`

	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := make([]types.NewsletterSubscription, 0)
	for rows.Next() {
		var sub types.NewsletterSubscription
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.SubscribedAt); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subs, nil
}
