package postgres

import (
	"context"

	"github.com/gruhahomes/gruha-backend/types"
)

// ContactStore implements the store.ContactStore interface using PostgreSQL.
type ContactStore struct {
	db DB
}

// NewContactStore creates a new ContactStore instance.
func NewContactStore(db DB) *ContactStore {
	return &ContactStore{db: db}
}

// CreateSubmission inserts a new contact-form submission.
func (s *ContactStore) CreateSubmission(ctx context.Context, submission *types.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (id, name, email, phone, service, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.Exec(ctx, query,
		submission.ID,
		submission.Name,
		submission.Email,
		submission.Phone,
		submission.Service,
		submission.Message,
		submission.CreatedAt,
	)
	return err
}

// ListSubmissions retrieves up to limit submissions. No ORDER BY: callers
// get storage-native order, matching the list contract.
func (s *ContactStore) ListSubmissions(ctx context.Context, limit int) ([]types.ContactSubmission, error) {
	query := `
		SELECT id, name, email, phone, service, message, created_at
		FROM contact_submissions
		LIMIT $1`

	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := make([]types.ContactSubmission, 0)
	for rows.Next() {
		var sub types.ContactSubmission
		err := rows.Scan(
			&sub.ID,
			&sub.Name,
			&sub.Email,
			&sub.Phone,
			&sub.Service,
			&sub.Message,
			&sub.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return submissions, nil
}
