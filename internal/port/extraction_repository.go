package port

import (
	"context"

	"github.com/google/uuid"

	"lexdraft/internal/domain"
)

// ExtractionRepository persists extraction records. Records are immutable,
// so there is no update operation.
type ExtractionRepository interface {
	Create(ctx context.Context, record *domain.ExtractionRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ExtractionRecord, error)
	List(ctx context.Context, offset, limit int) ([]domain.ExtractionRecord, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DraftRepository persists in-progress drafts.
type DraftRepository interface {
	Create(ctx context.Context, draft *domain.Draft) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	Update(ctx context.Context, draft *domain.Draft) error
	Delete(ctx context.Context, id uuid.UUID) error
}
