package mocks

import (
	"github.com/stretchr/testify/mock"

	"lexdraft/internal/domain"
)

// MockDraftConsumer is a mock implementation of port.DraftConsumer.
type MockDraftConsumer struct {
	mock.Mock
}

func (m *MockDraftConsumer) UseParty(party domain.ExtractedParty, role domain.PartyRole) {
	m.Called(party, role)
}

func (m *MockDraftConsumer) UseClause(clause domain.ExtractedClause) {
	m.Called(clause)
}

func (m *MockDraftConsumer) UseAmount(value float64, description string) {
	m.Called(value, description)
}

func (m *MockDraftConsumer) UseDates(dates domain.DateRange) {
	m.Called(dates)
}

// MockClipboard is a mock implementation of port.Clipboard.
type MockClipboard struct {
	mock.Mock
}

func (m *MockClipboard) WriteText(text string) error {
	args := m.Called(text)
	return args.Error(0)
}
