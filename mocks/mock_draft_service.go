package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lexdraft/internal/domain"
	"lexdraft/internal/port"
	"lexdraft/internal/service"
)

// MockDraftService is a mock implementation of service.DraftService.
type MockDraftService struct {
	mock.Mock
}

func (m *MockDraftService) Create(ctx context.Context, input service.CreateDraftInput) (*domain.Draft, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Draft), args.Error(1)
}

func (m *MockDraftService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Draft), args.Error(1)
}

func (m *MockDraftService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDraftService) FillFromProfile(ctx context.Context, draftID uuid.UUID, owner string, profileID uuid.UUID, role domain.PartyRole) (*domain.Draft, error) {
	args := m.Called(ctx, draftID, owner, profileID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Draft), args.Error(1)
}

func (m *MockDraftService) Consumer(ctx context.Context, draftID uuid.UUID) port.DraftConsumer {
	args := m.Called(ctx, draftID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(port.DraftConsumer)
}
