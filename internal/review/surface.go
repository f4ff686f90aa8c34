// Package review implements the extraction review surface: one extraction
// record rendered across six views, with actions that hand extracted items
// to a draft.
package review

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"lexdraft/internal/domain"
	"lexdraft/internal/logging"
	"lexdraft/internal/port"
)

// DefaultCopyAck is how long a copied clause stays acknowledged.
const DefaultCopyAck = 2 * time.Second

// Stopper is satisfied by *time.Timer.
type Stopper interface {
	Stop() bool
}

// AfterFunc schedules f after d.
type AfterFunc func(d time.Duration, f func()) Stopper

func realAfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

// Option configures a Surface.
type Option func(*Surface)

// WithCopyAckDuration sets how long a copy acknowledgment lasts.
func WithCopyAckDuration(d time.Duration) Option {
	return func(s *Surface) {
		if d > 0 {
			s.ackDuration = d
		}
	}
}

// WithLogger sets the logger used for consumer and clipboard failures.
func WithLogger(l *zap.Logger) Option {
	return func(s *Surface) { s.logger = logging.OrNop(l) }
}

// WithAfterFunc replaces the timer used to clear copy acknowledgments.
func WithAfterFunc(fn AfterFunc) Option {
	return func(s *Surface) {
		if fn != nil {
			s.afterFunc = fn
		}
	}
}

// Surface is a review session over one extraction record. It never mutates
// the record. A Surface is safe for concurrent use.
type Surface struct {
	record    *domain.ExtractionRecord
	lang      domain.Language
	consumer  port.DraftConsumer
	clipboard port.Clipboard

	ackDuration time.Duration
	afterFunc   AfterFunc
	logger      *zap.Logger

	mu        sync.Mutex
	active    domain.ReviewView
	copiedID  string
	copyGen   uint64
	copyTimer Stopper
}

// NewSurface opens a review surface. record may be nil; every view then
// renders its empty state. consumer and clipboard may be nil, which turns
// the corresponding actions into no-ops.
func NewSurface(record *domain.ExtractionRecord, lang domain.Language, consumer port.DraftConsumer, clipboard port.Clipboard, opts ...Option) *Surface {
	s := &Surface{
		record:      record,
		lang:        domain.ParseLanguage(string(lang)),
		consumer:    consumer,
		clipboard:   clipboard,
		ackDuration: DefaultCopyAck,
		afterFunc:   realAfterFunc,
		logger:      zap.NewNop(),
		active:      domain.ViewSummary,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record returns the record under review.
func (s *Surface) Record() *domain.ExtractionRecord { return s.record }

// Language returns the locale the surface renders in.
func (s *Surface) Language() domain.Language { return s.lang }

// SelectView makes view the active view.
func (s *Surface) SelectView(view domain.ReviewView) error {
	if !domain.ValidReviewView(view) {
		return domain.ErrInvalidView
	}
	s.mu.Lock()
	s.active = view
	s.mu.Unlock()
	return nil
}

// ActiveView returns the active view.
func (s *Surface) ActiveView() domain.ReviewView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Render renders any view without changing the active one.
func (s *Surface) Render(view domain.ReviewView) (ViewModel, error) {
	if !domain.ValidReviewView(view) {
		return ViewModel{}, domain.ErrInvalidView
	}
	return render(s.record, view, s.lang, s.CopiedID()), nil
}

// RenderActive renders the active view.
func (s *Surface) RenderActive() ViewModel {
	s.mu.Lock()
	view, copied := s.active, s.copiedID
	s.mu.Unlock()
	return render(s.record, view, s.lang, copied)
}

// PartyAt returns the i-th extracted party.
func (s *Surface) PartyAt(i int) (domain.ExtractedParty, bool) {
	if s.record == nil || i < 0 || i >= len(s.record.Parties) {
		return domain.ExtractedParty{}, false
	}
	return s.record.Parties[i], true
}

// ClauseByID returns the clause with the given id.
func (s *Surface) ClauseByID(id string) (domain.ExtractedClause, bool) {
	if s.record == nil || id == "" {
		return domain.ExtractedClause{}, false
	}
	for _, c := range s.record.Clauses {
		if c.ID == id {
			return c, true
		}
	}
	return domain.ExtractedClause{}, false
}

// AmountAt returns the i-th extracted amount.
func (s *Surface) AmountAt(i int) (domain.ExtractedFinancialAmount, bool) {
	if s.record == nil || i < 0 || i >= len(s.record.Financials.Amounts) {
		return domain.ExtractedFinancialAmount{}, false
	}
	return s.record.Financials.Amounts[i], true
}

// ApplyParty hands party to the draft under role. The role is not checked here.
func (s *Surface) ApplyParty(party domain.ExtractedParty, role domain.PartyRole) {
	s.deliver("party", func(c port.DraftConsumer) { c.UseParty(party, role) })
}

// ApplyClause hands clause to the draft.
func (s *Surface) ApplyClause(clause domain.ExtractedClause) {
	s.deliver("clause", func(c port.DraftConsumer) { c.UseClause(clause) })
}

// ApplyAmount hands a single amount to the draft. Type and frequency are not part of the contract.
func (s *Surface) ApplyAmount(value float64, description string) {
	s.deliver("amount", func(c port.DraftConsumer) { c.UseAmount(value, description) })
}

// DatesApplicable reports whether the record has a start date.
func (s *Surface) DatesApplicable() bool {
	return s.record != nil && s.record.Dates.StartDate != ""
}

// ApplyDates hands {start, end} to the draft. It does nothing and returns
// false when the record has no start date.
func (s *Surface) ApplyDates() bool {
	if !s.DatesApplicable() {
		return false
	}
	r := domain.DateRange{Start: s.record.Dates.StartDate, End: s.record.Dates.EndDate}
	s.deliver("dates", func(c port.DraftConsumer) { c.UseDates(r) })
	return true
}

// deliver invokes the consumer outside the lock. A panicking consumer is
// logged and leaves the surface untouched.
func (s *Surface) deliver(action string, call func(port.DraftConsumer)) {
	if s.consumer == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("draft consumer panicked",
				zap.String("action", action), zap.Any("panic", r))
		}
	}()
	call(s.consumer)
}

// CopyClauseText writes the clause content to the clipboard and
// acknowledges it until the ack duration elapses or another clause is
// copied. It returns false, and acknowledges nothing, when the clause is
// unknown or the write fails.
func (s *Surface) CopyClauseText(clauseID string) bool {
	clause, ok := s.ClauseByID(clauseID)
	if !ok || s.clipboard == nil {
		return false
	}

	// Held across the write so the acknowledged clause is the one on the clipboard.
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.clipboard.WriteText(clause.Content); err != nil {
		s.logger.Debug("clipboard write failed", zap.String("clause_id", clauseID), zap.Error(err))
		return false
	}
	if s.copyTimer != nil {
		s.copyTimer.Stop()
	}
	s.copyGen++
	gen := s.copyGen
	s.copiedID = clauseID
	s.copyTimer = s.afterFunc(s.ackDuration, func() { s.clearCopied(gen) })
	return true
}

func (s *Surface) clearCopied(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// A newer copy owns the acknowledgment now.
	if gen != s.copyGen {
		return
	}
	s.copiedID = ""
	s.copyTimer = nil
}

// CopiedID returns the id of the acknowledged clause, or "".
func (s *Surface) CopiedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copiedID
}

// Close stops a pending acknowledgment timer.
func (s *Surface) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.copyTimer != nil {
		s.copyTimer.Stop()
		s.copyTimer = nil
	}
	s.copiedID = ""
	s.copyGen++
}
