package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gruhahomes/gruha-backend/errors"
	"github.com/gruhahomes/gruha-backend/internal/store"
	"github.com/gruhahomes/gruha-backend/logger"
	"github.com/gruhahomes/gruha-backend/types"
	"go.uber.org/zap"
)

// maxListLimit caps list results for resource protection.
const maxListLimit = 1000

// ContactService validates and persists contact-form submissions.
type ContactService struct {
	contactStore store.ContactStore
	log          *zap.SugaredLogger

	// newID and now are swappable so tests can substitute deterministic
	// generators.
	newID func() string
	now   func() time.Time
}

// NewContactService creates a ContactService backed by the given store.
func NewContactService(contactStore store.ContactStore) *ContactService {
	return &ContactService{
		contactStore: contactStore,
		log:          logger.GetLogger(),
		newID:        uuid.NewString,
		now:          time.Now,
	}
}

// Create validates the input, assigns identity and a creation timestamp,
// persists the submission, and returns the stored record. Duplicates by
// name or email are permitted.
func (s *ContactService) Create(ctx context.Context, input types.ContactCreate) (*types.ContactSubmission, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Message = strings.TrimSpace(input.Message)

	if input.Name == "" {
		return nil, errors.ValidationFailed("validation_failed", "name must not be blank")
	}
	if input.Email == "" {
		return nil, errors.ValidationFailed("validation_failed", "email must not be blank")
	}
	if input.Message == "" {
		return nil, errors.ValidationFailed("validation_failed", "message must not be blank")
	}

	submission := &types.ContactSubmission{
		ID:        s.newID(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Service:   input.Service,
		Message:   input.Message,
		CreatedAt: s.now().UTC(),
	}

	if err := s.contactStore.CreateSubmission(ctx, submission); err != nil {
		return nil, errors.NewDatabaseError(err)
	}

	s.log.Infow("Contact submission created",
		"id", submission.ID,
		"email", logger.MaskEmail(submission.Email),
		"service", submission.Service,
	)

	return submission, nil
}

// List returns all stored submissions, capped at 1000 records, in
// storage-native order.
func (s *ContactService) List(ctx context.Context) ([]types.ContactSubmission, error) {
	submissions, err := s.contactStore.ListSubmissions(ctx, maxListLimit)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return submissions, nil
}
