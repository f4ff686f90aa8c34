package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lexdraft/internal/domain"
)

// MockProfileStore is a mock implementation of port.ProfileStore.
type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) Load(ctx context.Context, owner string) ([]domain.SavedProfile, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedProfile), args.Error(1)
}

func (m *MockProfileStore) SaveAll(ctx context.Context, owner string, profiles []domain.SavedProfile) error {
	args := m.Called(ctx, owner, profiles)
	return args.Error(0)
}
