package services

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gruhahomes/gruha-backend/errors"
	"github.com/gruhahomes/gruha-backend/internal/store"
	"github.com/gruhahomes/gruha-backend/logger"
	"github.com/gruhahomes/gruha-backend/types"
	"go.uber.org/zap"
)

// NewsletterService validates, deduplicates, and persists newsletter
// subscriptions.
type NewsletterService struct {
	newsletterStore store.NewsletterStore
	log             *zap.SugaredLogger

	newID func() string
	now   func() time.Time
}

// NewNewsletterService creates a NewsletterService backed by the given store.
func NewNewsletterService(newsletterStore store.NewsletterStore) *NewsletterService {
	return &NewsletterService{
		newsletterStore: newsletterStore,
		log:             logger.GetLogger(),
		newID:           uuid.NewString,
		now:             time.Now,
	}
}

// Subscribe registers an email for the newsletter. The operation is
// idempotent per distinct email: an existing subscription is returned
// unchanged, with no new id, timestamp, or insert.
func (s *NewsletterService) Subscribe(ctx context.Context, input types.NewsletterCreate) (*types.NewsletterSubscription, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, errors.ValidationFailed("validation_failed", "email must not be blank")
	}

	existing, err := s.newsletterStore.GetSubscriptionByEmail(ctx, email)
	if err == nil {
		s.log.Infow("Newsletter subscription already exists",
			"id", existing.ID,
			"email", logger.MaskEmail(email),
		)
		return existing, nil
	}
	if !stderrors.Is(err, store.ErrNotFound) {
		return nil, errors.NewDatabaseError(err)
	}

	sub := &types.NewsletterSubscription{
		ID:           s.newID(),
		Email:        email,
		SubscribedAt: s.now().UTC(),
	}

	// The store resolves concurrent duplicate inserts by returning the row
	// that won, so the idempotency guarantee holds under races too.
	stored, err := s.newsletterStore.CreateSubscription(ctx, sub)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}

	s.log.Infow("Newsletter subscription created",
		"id", stored.ID,
		"email", logger.MaskEmail(stored.Email),
	)

	return stored, nil
}

// List returns all stored subscriptions, capped at 1000 records, in
// storage-native order.
func (s *NewsletterService) List(ctx context.Context) ([]types.NewsletterSubscription, error) {
	subs, err := s.newsletterStore.ListSubscriptions(ctx, maxListLimit)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return subs, nil
}
