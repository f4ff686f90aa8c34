package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lexdraft/internal/domain"
	"lexdraft/internal/review"
	"lexdraft/internal/service"
)

// MockReviewService is a mock implementation of service.ReviewService.
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Open(ctx context.Context, input service.OpenReviewInput) (*service.ReviewSession, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReviewSession), args.Error(1)
}

func (m *MockReviewService) Get(ctx context.Context, id uuid.UUID) (*service.ReviewSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReviewSession), args.Error(1)
}

func (m *MockReviewService) Close(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewService) SelectView(ctx context.Context, id uuid.UUID, view domain.ReviewView) (review.ViewModel, error) {
	args := m.Called(ctx, id, view)
	return args.Get(0).(review.ViewModel), args.Error(1)
}

func (m *MockReviewService) Render(ctx context.Context, id uuid.UUID, view domain.ReviewView) (review.ViewModel, error) {
	args := m.Called(ctx, id, view)
	return args.Get(0).(review.ViewModel), args.Error(1)
}

func (m *MockReviewService) RenderActive(ctx context.Context, id uuid.UUID) (review.ViewModel, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(review.ViewModel), args.Error(1)
}

func (m *MockReviewService) ApplyParty(ctx context.Context, id uuid.UUID, index int, role domain.PartyRole) error {
	args := m.Called(ctx, id, index, role)
	return args.Error(0)
}

func (m *MockReviewService) ApplyClause(ctx context.Context, id uuid.UUID, clauseID string) error {
	args := m.Called(ctx, id, clauseID)
	return args.Error(0)
}

func (m *MockReviewService) ApplyAmount(ctx context.Context, id uuid.UUID, index int) error {
	args := m.Called(ctx, id, index)
	return args.Error(0)
}

func (m *MockReviewService) ApplyDates(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewService) CopyClause(ctx context.Context, id uuid.UUID, clauseID string) (bool, error) {
	args := m.Called(ctx, id, clauseID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewService) Clipboard(ctx context.Context, id uuid.UUID) (string, bool, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Bool(1), args.Error(2)
}
