package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lexdraft/internal/port"
)

// MockExtractionSource is a mock implementation of port.ExtractionSource.
type MockExtractionSource struct {
	mock.Mock
}

func (m *MockExtractionSource) Extract(ctx context.Context, input port.ExtractInput) (*port.ExtractOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ExtractOutput), args.Error(1)
}
