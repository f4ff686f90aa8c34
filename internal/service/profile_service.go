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

// ProfileService defines the saved profile contract. Every operation is
// scoped to an owner, the client key of the caller.
type ProfileService interface {
	Create(ctx context.Context, owner string, input domain.ProfileInput) (*domain.SavedProfile, error)
	Get(ctx context.Context, owner string, id uuid.UUID) (*domain.SavedProfile, error)
	Update(ctx context.Context, owner string, id uuid.UUID, patch domain.ProfilePatch) (*domain.SavedProfile, error)
	Delete(ctx context.Context, owner string, id uuid.UUID) error
	SetDefault(ctx context.Context, owner string, id uuid.UUID) (*domain.SavedProfile, error)
	ToggleFavorite(ctx context.Context, owner string, id uuid.UUID) (*domain.SavedProfile, error)
	List(ctx context.Context, owner string) ([]domain.SavedProfile, error)
	Default(ctx context.Context, owner string) (*domain.SavedProfile, error)
}

type profileService struct {
	store  port.ProfileStore
	locks  *keyedMutex
	logger *zap.Logger
	now    func() time.Time
}

// NewProfileService creates a new ProfileService implementation.
func NewProfileService(store port.ProfileStore, logger *zap.Logger) ProfileService {
	return &profileService{
		store:  store,
		locks:  newKeyedMutex(),
		logger: logging.OrNop(logger),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// mutation changes the loaded collection and returns it together with the
// index of the profile to hand back, or -1.
type mutation func(profiles []domain.SavedProfile) ([]domain.SavedProfile, int, error)

// mutate runs load, fn and save as one step for owner.
func (s *profileService) mutate(ctx context.Context, owner, op string, fn mutation) (*domain.SavedProfile, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, domain.ErrMissingClientKey
	}
	unlock := s.locks.Lock(owner)
	defer unlock()

	profiles, err := s.store.Load(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("profileService.%s: %w", op, err)
	}

	next, idx, err := fn(profiles)
	if err != nil {
		return nil, err
	}
	domain.NormalizeDefaults(next)

	if err := s.store.SaveAll(ctx, owner, next); err != nil {
		s.logger.Error("saving profiles failed",
			zap.String("owner", owner),
			zap.String("op", op),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrProfilePersistFailed, err)
	}

	if idx < 0 {
		return nil, nil
	}
	out := next[idx]
	return &out, nil
}

func indexOf(profiles []domain.SavedProfile, id uuid.UUID) int {
	for i := range profiles {
		if profiles[i].ID == id {
			return i
		}
	}
	return -1
}

// Create adds a profile. Input missing a label or name is ignored and
// (nil, nil) is returned. The first profile of an owner becomes the default.
func (s *profileService) Create(ctx context.Context, owner string, input domain.ProfileInput) (*domain.SavedProfile, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, domain.ErrMissingClientKey
	}
	if !input.Complete() {
		return nil, nil
	}
	return s.mutate(ctx, owner, "Create", func(profiles []domain.SavedProfile) ([]domain.SavedProfile, int, error) {
		now := s.now()
		p := domain.SavedProfile{
			ID:         uuid.New(),
			Type:       input.Type,
			Label:      input.Label,
			IsFavorite: input.IsFavorite,
			CreatedAt:  now,
			UpdatedAt:  now,
			Data:       input.Data,
		}
		if !domain.ValidPartyType(p.Type) {
			p.Type = domain.PartyTypeIndividual
		}
		return append(profiles, p), len(profiles), nil
	})
}

func (s *profileService) Get(ctx context.Context, owner string, id uuid.UUID) (*domain.SavedProfile, error) {
	profiles, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}
	i := indexOf(profiles, id)
	if i < 0 {
		return nil, domain.ErrProfileNotFound
	}
	return &profiles[i], nil
}

// Update merges the non-nil fields of patch. A patch that would leave the
// label or name blank is rejected.
func (s *profileService) Update(ctx context.Context, owner string, id uuid.UUID, patch domain.ProfilePatch) (*domain.SavedProfile, error) {
	return s.mutate(ctx, owner, "Update", func(profiles []domain.SavedProfile) ([]domain.SavedProfile, int, error) {
		i := indexOf(profiles, id)
		if i < 0 {
			return nil, -1, domain.ErrProfileNotFound
		}
		p := profiles[i]
		patch.Apply(&p)
		if strings.TrimSpace(p.Label) == "" || strings.TrimSpace(p.Data.Name) == "" {
			return nil, -1, domain.ErrProfileIncomplete
		}
		if !domain.ValidPartyType(p.Type) {
			p.Type = profiles[i].Type
		}
		p.UpdatedAt = s.now()
		profiles[i] = p
		return profiles, i, nil
	})
}

// Delete removes a profile. When the default is removed the first remaining
// profile takes over.
func (s *profileService) Delete(ctx context.Context, owner string, id uuid.UUID) error {
	_, err := s.mutate(ctx, owner, "Delete", func(profiles []domain.SavedProfile) ([]domain.SavedProfile, int, error) {
		i := indexOf(profiles, id)
		if i < 0 {
			return nil, -1, domain.ErrProfileNotFound
		}
		wasDefault := profiles[i].IsDefault
		profiles = append(profiles[:i], profiles[i+1:]...)
		if wasDefault && len(profiles) > 0 {
			profiles[0].IsDefault = true
		}
		return profiles, -1, nil
	})
	return err
}

func (s *profileService) SetDefault(ctx context.Context, owner string, id uuid.UUID) (*domain.SavedProfile, error) {
	return s.mutate(ctx, owner, "SetDefault", func(profiles []domain.SavedProfile) ([]domain.SavedProfile, int, error) {
		i := indexOf(profiles, id)
		if i < 0 {
			return nil, -1, domain.ErrProfileNotFound
		}
		for j := range profiles {
			profiles[j].IsDefault = j == i
		}
		return profiles, i, nil
	})
}

func (s *profileService) ToggleFavorite(ctx context.Context, owner string, id uuid.UUID) (*domain.SavedProfile, error) {
	return s.mutate(ctx, owner, "ToggleFavorite", func(profiles []domain.SavedProfile) ([]domain.SavedProfile, int, error) {
		i := indexOf(profiles, id)
		if i < 0 {
			return nil, -1, domain.ErrProfileNotFound
		}
		profiles[i].IsFavorite = !profiles[i].IsFavorite
		return profiles, i, nil
	})
}

// List returns the owner's profiles in display order.
func (s *profileService) List(ctx context.Context, owner string) ([]domain.SavedProfile, error) {
	profiles, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}
	return domain.SortProfiles(profiles), nil
}

// Default returns the profile suggested for pre-filling a new draft.
func (s *profileService) Default(ctx context.Context, owner string) (*domain.SavedProfile, error) {
	profiles, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].IsDefault {
			return &profiles[i], nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (s *profileService) load(ctx context.Context, owner string) ([]domain.SavedProfile, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, domain.ErrMissingClientKey
	}
	profiles, err := s.store.Load(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("profileService.load: %w", err)
	}
	return profiles, nil
}
