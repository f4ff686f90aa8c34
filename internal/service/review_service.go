package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"lexdraft/internal/config"
	"lexdraft/internal/domain"
	"lexdraft/internal/logging"
	"lexdraft/internal/port"
	"lexdraft/internal/review"
)

// DefaultSessionTTL is how long an untouched review session is kept.
const DefaultSessionTTL = 30 * time.Minute

// OpenReviewInput is the DTO for opening a review session. Without a
// DraftID, apply actions are accepted and dropped.
type OpenReviewInput struct {
	ExtractionID uuid.UUID
	DraftID      *uuid.UUID
	Language     domain.Language
}

// ReviewSession is one open review over an extraction record.
type ReviewSession struct {
	ID           uuid.UUID
	ExtractionID uuid.UUID
	DraftID      *uuid.UUID
	Surface      *review.Surface
	Clipboard    *review.MemoryClipboard
	OpenedAt     time.Time
}

// ReviewService keeps review sessions and routes actions to their surfaces.
type ReviewService interface {
	Open(ctx context.Context, input OpenReviewInput) (*ReviewSession, error)
	Get(ctx context.Context, id uuid.UUID) (*ReviewSession, error)
	Close(ctx context.Context, id uuid.UUID) error
	SelectView(ctx context.Context, id uuid.UUID, view domain.ReviewView) (review.ViewModel, error)
	Render(ctx context.Context, id uuid.UUID, view domain.ReviewView) (review.ViewModel, error)
	RenderActive(ctx context.Context, id uuid.UUID) (review.ViewModel, error)
	ApplyParty(ctx context.Context, id uuid.UUID, index int, role domain.PartyRole) error
	ApplyClause(ctx context.Context, id uuid.UUID, clauseID string) error
	ApplyAmount(ctx context.Context, id uuid.UUID, index int) error
	ApplyDates(ctx context.Context, id uuid.UUID) error
	CopyClause(ctx context.Context, id uuid.UUID, clauseID string) (bool, error)
	Clipboard(ctx context.Context, id uuid.UUID) (string, bool, error)
}

type reviewService struct {
	extractions port.ExtractionRepository
	drafts      DraftService
	sessions    *cache.Cache
	cfg         config.ReviewConfig
	logger      *zap.Logger
}

// NewReviewService creates a new ReviewService implementation. Sessions
// expire after cfg.SessionTTL without access; an expired or closed session
// has its surface closed.
func NewReviewService(
	extractions port.ExtractionRepository,
	drafts DraftService,
	cfg config.ReviewConfig,
	logger *zap.Logger,
) ReviewService {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	if cfg.CopyAck <= 0 {
		cfg.CopyAck = review.DefaultCopyAck
	}
	sessions := cache.New(cfg.SessionTTL, cfg.SessionTTL/2)
	sessions.OnEvicted(func(_ string, v interface{}) {
		if sess, ok := v.(*ReviewSession); ok {
			sess.Surface.Close()
		}
	})
	return &reviewService{
		extractions: extractions,
		drafts:      drafts,
		sessions:    sessions,
		cfg:         cfg,
		logger:      logging.OrNop(logger),
	}
}

func (s *reviewService) Open(ctx context.Context, input OpenReviewInput) (*ReviewSession, error) {
	record, err := s.extractions.GetByID(ctx, input.ExtractionID)
	if err != nil {
		return nil, err
	}

	var consumer port.DraftConsumer
	if input.DraftID != nil {
		if _, err := s.drafts.GetByID(ctx, *input.DraftID); err != nil {
			return nil, err
		}
		consumer = s.drafts.Consumer(ctx, *input.DraftID)
	}

	clipboard := review.NewMemoryClipboard()
	sess := &ReviewSession{
		ID:           uuid.New(),
		ExtractionID: record.ID,
		DraftID:      input.DraftID,
		Clipboard:    clipboard,
		OpenedAt:     time.Now().UTC(),
		Surface: review.NewSurface(record, input.Language, consumer, clipboard,
			review.WithCopyAckDuration(s.cfg.CopyAck),
			review.WithLogger(s.logger.With(zap.String("extraction_id", record.ID.String()))),
		),
	}
	s.sessions.SetDefault(sess.ID.String(), sess)

	s.logger.Info("review session opened",
		zap.String("review_id", sess.ID.String()),
		zap.String("extraction_id", record.ID.String()),
		zap.String("language", string(sess.Surface.Language())),
		zap.Bool("draft_attached", consumer != nil))
	return sess, nil
}

// Get returns the session and extends its lifetime.
func (s *reviewService) Get(_ context.Context, id uuid.UUID) (*ReviewSession, error) {
	key := id.String()
	v, found := s.sessions.Get(key)
	if !found {
		return nil, domain.ErrReviewNotFound
	}
	sess := v.(*ReviewSession)
	s.sessions.SetDefault(key, sess)
	return sess, nil
}

func (s *reviewService) Close(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	s.sessions.Delete(id.String())
	return nil
}

func (s *reviewService) SelectView(ctx context.Context, id uuid.UUID, view domain.ReviewView) (review.ViewModel, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return review.ViewModel{}, err
	}
	if err := sess.Surface.SelectView(view); err != nil {
		return review.ViewModel{}, err
	}
	return sess.Surface.RenderActive(), nil
}

func (s *reviewService) Render(ctx context.Context, id uuid.UUID, view domain.ReviewView) (review.ViewModel, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return review.ViewModel{}, err
	}
	return sess.Surface.Render(view)
}

func (s *reviewService) RenderActive(ctx context.Context, id uuid.UUID) (review.ViewModel, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return review.ViewModel{}, err
	}
	return sess.Surface.RenderActive(), nil
}

func (s *reviewService) ApplyParty(ctx context.Context, id uuid.UUID, index int, role domain.PartyRole) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	party, ok := sess.Surface.PartyAt(index)
	if !ok {
		return domain.ErrPartyNotFound
	}
	sess.Surface.ApplyParty(party, role)
	return nil
}

func (s *reviewService) ApplyClause(ctx context.Context, id uuid.UUID, clauseID string) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	clause, ok := sess.Surface.ClauseByID(clauseID)
	if !ok {
		return domain.ErrClauseNotFound
	}
	sess.Surface.ApplyClause(clause)
	return nil
}

func (s *reviewService) ApplyAmount(ctx context.Context, id uuid.UUID, index int) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	amount, ok := sess.Surface.AmountAt(index)
	if !ok {
		return domain.ErrAmountNotFound
	}
	sess.Surface.ApplyAmount(amount.Value, amount.Description)
	return nil
}

func (s *reviewService) ApplyDates(ctx context.Context, id uuid.UUID) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !sess.Surface.ApplyDates() {
		return domain.ErrDatesUnavailable
	}
	return nil
}

// CopyClause copies the clause text to the session clipboard and reports
// whether the copy was acknowledged.
func (s *reviewService) CopyClause(ctx context.Context, id uuid.UUID, clauseID string) (bool, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if _, ok := sess.Surface.ClauseByID(clauseID); !ok {
		return false, domain.ErrClauseNotFound
	}
	return sess.Surface.CopyClauseText(clauseID), nil
}

func (s *reviewService) Clipboard(ctx context.Context, id uuid.UUID) (string, bool, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return "", false, err
	}
	text, ok := sess.Clipboard.ReadText()
	return text, ok, nil
}
