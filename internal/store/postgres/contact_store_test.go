package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gruhahomes/gruha-backend/logger"
	"github.com/gruhahomes/gruha-backend/types"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.IsTest = true
	os.Exit(m.Run())
}

func newTestSubmission() *types.ContactSubmission {
	return &types.ContactSubmission{
		ID:        uuid.NewString(),
		Name:      "Jane",
		Email:     "jane@x.com",
		Phone:     "",
		Service:   "",
		Message:   "Hi",
		CreatedAt: time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestContactStore_CreateSubmission(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	s := NewContactStore(mockDB)
	sub := newTestSubmission()

	t.Run("successful insert", func(t *testing.T) {
		mockDB.ExpectExec("INSERT INTO contact_submissions").
			WithArgs(sub.ID, sub.Name, sub.Email, sub.Phone, sub.Service, sub.Message, sub.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := s.CreateSubmission(context.Background(), sub)
		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mockDB.ExpectExec("INSERT INTO contact_submissions").
			WithArgs(sub.ID, sub.Name, sub.Email, sub.Phone, sub.Service, sub.Message, sub.CreatedAt).
			WillReturnError(errors.New("connection refused"))

		err := s.CreateSubmission(context.Background(), sub)
		assert.Error(t, err)
	})
}

func TestContactStore_ListSubmissions(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	s := NewContactStore(mockDB)

	t.Run("returns rows with the limit applied", func(t *testing.T) {
		first := newTestSubmission()
		second := newTestSubmission()

		rows := pgxmock.NewRows([]string{"id", "name", "email", "phone", "service", "message", "created_at"}).
			AddRow(first.ID, first.Name, first.Email, first.Phone, first.Service, first.Message, first.CreatedAt).
			AddRow(second.ID, second.Name, second.Email, second.Phone, second.Service, second.Message, second.CreatedAt)

		mockDB.ExpectQuery("SELECT id, name, email, phone, service, message, created_at FROM contact_submissions").
			WithArgs(1000).
			WillReturnRows(rows)

		got, err := s.ListSubmissions(context.Background(), 1000)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first.ID, got[0].ID)
		assert.Equal(t, second.ID, got[1].ID)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		mockDB.ExpectQuery("SELECT id, name, email, phone, service, message, created_at FROM contact_submissions").
			WithArgs(1000).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "phone", "service", "message", "created_at"}))

		got, err := s.ListSubmissions(context.Background(), 1000)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("database error", func(t *testing.T) {
		mockDB.ExpectQuery("SELECT id, name, email, phone, service, message, created_at FROM contact_submissions").
			WithArgs(1000).
			WillReturnError(errors.New("timeout"))

		got, err := s.ListSubmissions(context.Background(), 1000)
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}
