package services

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	apperrors "github.com/gruhahomes/gruha-backend/errors"
	"github.com/gruhahomes/gruha-backend/logger"
	"github.com/gruhahomes/gruha-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.IsTest = true
	os.Exit(m.Run())
}

type mockContactStore struct {
	mock.Mock
}

func (m *mockContactStore) CreateSubmission(ctx context.Context, submission *types.ContactSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *mockContactStore) ListSubmissions(ctx context.Context, limit int) ([]types.ContactSubmission, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.ContactSubmission), args.Error(1)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestContactService_Create(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	t.Run("successful creation", func(t *testing.T) {
		ms := new(mockContactStore)
		svc := NewContactService(ms)
		svc.newID = func() string { return "11111111-1111-1111-1111-111111111111" }
		svc.now = fixedClock(now)

		ms.On("CreateSubmission", mock.Anything, mock.AnythingOfType("*types.ContactSubmission")).Return(nil)

		got, err := svc.Create(context.Background(), types.ContactCreate{
			Name:    "Jane",
			Email:   "jane@x.com",
			Message: "Hi",
		})

		require.NoError(t, err)
		assert.Equal(t, "11111111-1111-1111-1111-111111111111", got.ID)
		assert.Equal(t, "Jane", got.Name)
		assert.Equal(t, "jane@x.com", got.Email)
		assert.Equal(t, "Hi", got.Message)
		assert.Equal(t, "", got.Phone)
		assert.Equal(t, "", got.Service)
		assert.Equal(t, now, got.CreatedAt)
		assert.Equal(t, time.UTC, got.CreatedAt.Location())
		ms.AssertExpectations(t)
	})

	t.Run("optional fields are preserved", func(t *testing.T) {
		ms := new(mockContactStore)
		svc := NewContactService(ms)
		ms.On("CreateSubmission", mock.Anything, mock.Anything).Return(nil)

		got, err := svc.Create(context.Background(), types.ContactCreate{
			Name:    "Jane",
			Email:   "jane@x.com",
			Phone:   "+91 98765 43210",
			Service: "interior-design",
			Message: "Quote please",
		})

		require.NoError(t, err)
		assert.Equal(t, "+91 98765 43210", got.Phone)
		assert.Equal(t, "interior-design", got.Service)
	})

	t.Run("distinct ids across calls", func(t *testing.T) {
		ms := new(mockContactStore)
		svc := NewContactService(ms)
		ms.On("CreateSubmission", mock.Anything, mock.Anything).Return(nil)

		first, err := svc.Create(context.Background(), types.ContactCreate{Name: "A", Email: "a@x.com", Message: "m"})
		require.NoError(t, err)
		second, err := svc.Create(context.Background(), types.ContactCreate{Name: "B", Email: "b@x.com", Message: "m"})
		require.NoError(t, err)

		assert.NotEmpty(t, first.ID)
		assert.NotEmpty(t, second.ID)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("missing required fields", func(t *testing.T) {
		cases := []struct {
			name  string
			input types.ContactCreate
		}{
			{"blank name", types.ContactCreate{Email: "jane@x.com", Message: "Hi"}},
			{"blank email", types.ContactCreate{Name: "Jane", Message: "Hi"}},
			{"blank message", types.ContactCreate{Name: "Jane", Email: "jane@x.com"}},
			{"whitespace only", types.ContactCreate{Name: "  ", Email: "jane@x.com", Message: "Hi"}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ms := new(mockContactStore)
				svc := NewContactService(ms)

				got, err := svc.Create(context.Background(), tc.input)

				require.Error(t, err)
				assert.Nil(t, got)
				appErr, ok := err.(*apperrors.AppError)
				require.True(t, ok)
				assert.Equal(t, apperrors.ValidationError, appErr.Type)
				// Nothing may be persisted on validation failure.
				ms.AssertNotCalled(t, "CreateSubmission", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("store failure surfaces as database error", func(t *testing.T) {
		ms := new(mockContactStore)
		svc := NewContactService(ms)
		ms.On("CreateSubmission", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		got, err := svc.Create(context.Background(), types.ContactCreate{Name: "Jane", Email: "jane@x.com", Message: "Hi"})

		require.Error(t, err)
		assert.Nil(t, got)
		appErr, ok := err.(*apperrors.AppError)
		require.True(t, ok)
		assert.Equal(t, apperrors.DatabaseError, appErr.Type)
	})
}

func TestContactService_List(t *testing.T) {
	t.Run("passes the fixed cap to the store", func(t *testing.T) {
		ms := new(mockContactStore)
		svc := NewContactService(ms)

		stored := []types.ContactSubmission{
			{ID: "id-1", Name: "Jane", Email: "jane@x.com", Message: "Hi"},
			{ID: "id-2", Name: "John", Email: "john@x.com", Message: "Hello"},
		}
		ms.On("ListSubmissions", mock.Anything, 1000).Return(stored, nil)

		got, err := svc.List(context.Background())

		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "id-1", got[0].ID)
		assert.Equal(t, "id-2", got[1].ID)
		ms.AssertExpectations(t)
	})

	t.Run("store failure surfaces as database error", func(t *testing.T) {
		ms := new(mockContactStore)
		svc := NewContactService(ms)
		ms.On("ListSubmissions", mock.Anything, 1000).Return(nil, errors.New("timeout"))

		got, err := svc.List(context.Background())

		require.Error(t, err)
		assert.Nil(t, got)
	})
}
