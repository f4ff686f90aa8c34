package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lexdraft/internal/domain"
)

// MockProfileService is a mock implementation of service.ProfileService.
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) profile(args mock.Arguments) (*domain.SavedProfile, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedProfile), args.Error(1)
}

func (m *MockProfileService) Create(ctx context.Context, owner string, input domain.ProfileInput) (*domain.SavedProfile, error) {
	return m.profile(m.Called(ctx, owner, input))
}

func (m *MockProfileService) Get(ctx context.Context, owner string, id uuid.UUID) (*domain.SavedProfile, error) {
	return m.profile(m.Called(ctx, owner, id))
}

func (m *MockProfileService) Update(ctx context.Context, owner string, id uuid.UUID, patch domain.ProfilePatch) (*domain.SavedProfile, error) {
	return m.profile(m.Called(ctx, owner, id, patch))
}

func (m *MockProfileService) Delete(ctx context.Context, owner string, id uuid.UUID) error {
	args := m.Called(ctx, owner, id)
	return args.Error(0)
}

func (m *MockProfileService) SetDefault(ctx context.Context, owner string, id uuid.UUID) (*domain.SavedProfile, error) {
	return m.profile(m.Called(ctx, owner, id))
}

func (m *MockProfileService) ToggleFavorite(ctx context.Context, owner string, id uuid.UUID) (*domain.SavedProfile, error) {
	return m.profile(m.Called(ctx, owner, id))
}

func (m *MockProfileService) List(ctx context.Context, owner string) ([]domain.SavedProfile, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedProfile), args.Error(1)
}

func (m *MockProfileService) Default(ctx context.Context, owner string) (*domain.SavedProfile, error) {
	return m.profile(m.Called(ctx, owner))
}
