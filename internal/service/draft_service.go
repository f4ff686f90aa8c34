package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lexdraft/internal/domain"
	"lexdraft/internal/logging"
	"lexdraft/internal/port"
)

// DefaultConsumerTimeout bounds a single merge performed by a draft consumer.
const DefaultConsumerTimeout = 10 * time.Second

// CreateDraftInput is the DTO for creating a draft.
type CreateDraftInput struct {
	Title        string
	DocumentType string
	Language     domain.Language
}

// DraftService defines the draft contract.
type DraftService interface {
	Create(ctx context.Context, input CreateDraftInput) (*domain.Draft, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FillFromProfile(ctx context.Context, draftID uuid.UUID, owner string, profileID uuid.UUID, role domain.PartyRole) (*domain.Draft, error)
	// Consumer returns a port.DraftConsumer that merges applied items into the draft.
	Consumer(ctx context.Context, draftID uuid.UUID) port.DraftConsumer
}

type draftService struct {
	repo     port.DraftRepository
	profiles port.ProfileStore
	locks    *keyedMutex
	logger   *zap.Logger
	timeout  time.Duration
}

// NewDraftService creates a new DraftService implementation.
func NewDraftService(repo port.DraftRepository, profiles port.ProfileStore, logger *zap.Logger) DraftService {
	return &draftService{
		repo:     repo,
		profiles: profiles,
		locks:    newKeyedMutex(),
		logger:   logging.OrNop(logger),
		timeout:  DefaultConsumerTimeout,
	}
}

func (s *draftService) Create(ctx context.Context, input CreateDraftInput) (*domain.Draft, error) {
	draft := &domain.Draft{
		ID:           uuid.New(),
		Title:        strings.TrimSpace(input.Title),
		DocumentType: strings.TrimSpace(input.DocumentType),
		Language:     domain.ParseLanguage(string(input.Language)),
		Clauses:      []domain.DraftClause{},
		Amounts:      []domain.DraftAmount{},
	}
	if err := s.repo.Create(ctx, draft); err != nil {
		return nil, fmt.Errorf("draftService.Create: %w", err)
	}
	return draft, nil
}

func (s *draftService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *draftService) Delete(ctx context.Context, id uuid.UUID) error {
	unlock := s.locks.Lock(id.String())
	defer unlock()
	return s.repo.Delete(ctx, id)
}

func (s *draftService) FillFromProfile(ctx context.Context, draftID uuid.UUID, owner string, profileID uuid.UUID, role domain.PartyRole) (*domain.Draft, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, domain.ErrMissingClientKey
	}
	if !domain.ValidPartyRole(role) {
		return nil, domain.ErrInvalidPartyRole
	}

	profiles, err := s.profiles.Load(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("draftService.FillFromProfile: %w", err)
	}
	var profile *domain.SavedProfile
	for i := range profiles {
		if profiles[i].ID == profileID {
			profile = &profiles[i]
			break
		}
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	return s.merge(ctx, draftID, func(d *domain.Draft) error {
		return d.ApplyProfile(*profile, role)
	})
}

// merge loads the draft, applies fn and saves it, serialized per draft.
func (s *draftService) merge(ctx context.Context, id uuid.UUID, fn func(*domain.Draft) error) (*domain.Draft, error) {
	unlock := s.locks.Lock(id.String())
	defer unlock()

	draft, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(draft); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, draft); err != nil {
		return nil, fmt.Errorf("draftService.merge: %w", err)
	}
	return draft, nil
}

func (s *draftService) Consumer(ctx context.Context, draftID uuid.UUID) port.DraftConsumer {
	return &draftConsumer{
		svc:     s,
		draftID: draftID,
		ctx:     context.WithoutCancel(ctx),
	}
}

// draftConsumer merges review-surface applications into a persisted draft.
// It outlives the request that opened the review, so it keeps only the
// values of ctx, not its cancellation.
type draftConsumer struct {
	svc     *draftService
	draftID uuid.UUID
	ctx     context.Context
}

func (c *draftConsumer) UseParty(party domain.ExtractedParty, role domain.PartyRole) {
	c.apply("party", func(d *domain.Draft) error { return d.ApplyParty(party, role) })
}

func (c *draftConsumer) UseClause(clause domain.ExtractedClause) {
	c.apply("clause", func(d *domain.Draft) error {
		d.ApplyClause(clause)
		return nil
	})
}

func (c *draftConsumer) UseAmount(value float64, description string) {
	c.apply("amount", func(d *domain.Draft) error {
		d.ApplyAmount(value, description)
		return nil
	})
}

func (c *draftConsumer) UseDates(dates domain.DateRange) {
	c.apply("dates", func(d *domain.Draft) error {
		d.ApplyDates(dates)
		return nil
	})
}

func (c *draftConsumer) apply(item string, fn func(*domain.Draft) error) {
	ctx, cancel := context.WithTimeout(c.ctx, c.svc.timeout)
	defer cancel()

	if _, err := c.svc.merge(ctx, c.draftID, fn); err != nil {
		c.svc.logger.Warn("applying item to draft failed",
			zap.String("draft_id", c.draftID.String()),
			zap.String("item", item),
			zap.Error(err))
		return
	}
	c.svc.logger.Debug("item applied to draft",
		zap.String("draft_id", c.draftID.String()),
		zap.String("item", item))
}
