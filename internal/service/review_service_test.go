package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lexdraft/internal/config"
	"lexdraft/internal/domain"
	"lexdraft/internal/service"
	"lexdraft/mocks"
)

func reviewRecord() *domain.ExtractionRecord {
	r := &domain.ExtractionRecord{
		ID:           uuid.New(),
		DocumentType: "lease",
		Summary:      "Residential lease",
		SummaryAr:    "عقد إيجار سكني",
		Parties: []domain.ExtractedParty{
			{Name: "Ahmed Ali", Type: domain.PartyTypeIndividual, Role: "landlord"},
		},
		Financials: domain.Financials{
			Currency: "SAR",
			Amounts:  []domain.ExtractedFinancialAmount{{Value: 5000, Description: "Monthly rent", Type: "rent"}},
		},
		Dates: domain.ExtractedDates{StartDate: "2024-01-01", EndDate: "2024-12-31"},
		Clauses: []domain.ExtractedClause{
			{ID: "c1", Title: "Termination", Type: domain.ClauseTermination, Content: "Either party may terminate."},
		},
	}
	r.Normalize()
	return r
}

type reviewFixture struct {
	extractions *mocks.MockExtractionRepo
	drafts      service.DraftService
	draftRepo   *memDraftRepo
	svc         service.ReviewService
	record      *domain.ExtractionRecord
}

func newReviewFixture(t *testing.T) reviewFixture {
	t.Helper()
	f := reviewFixture{
		extractions: new(mocks.MockExtractionRepo),
		draftRepo:   newMemDraftRepo(),
		record:      reviewRecord(),
	}
	f.drafts = service.NewDraftService(f.draftRepo, nil, nil)
	f.svc = service.NewReviewService(f.extractions, f.drafts, config.ReviewConfig{
		CopyAck:    time.Hour,
		SessionTTL: time.Hour,
	}, nil)
	f.extractions.On("GetByID", mock.Anything, f.record.ID).Return(f.record, nil)
	return f
}

func (f reviewFixture) openWithDraft(t *testing.T) (*service.ReviewSession, *domain.Draft) {
	t.Helper()
	draft, err := f.drafts.Create(context.Background(), service.CreateDraftInput{Title: "Lease"})
	require.NoError(t, err)
	sess, err := f.svc.Open(context.Background(), service.OpenReviewInput{
		ExtractionID: f.record.ID,
		DraftID:      &draft.ID,
		Language:     domain.LanguageEnglish,
	})
	require.NoError(t, err)
	return sess, draft
}

func TestReviewService_Open_UnknownExtraction(t *testing.T) {
	f := newReviewFixture(t)
	id := uuid.New()
	f.extractions.On("GetByID", mock.Anything, id).Return(nil, domain.ErrExtractionNotFound)

	_, err := f.svc.Open(context.Background(), service.OpenReviewInput{ExtractionID: id})

	assert.ErrorIs(t, err, domain.ErrExtractionNotFound)
}

func TestReviewService_Open_UnknownDraft(t *testing.T) {
	f := newReviewFixture(t)
	missing := uuid.New()

	_, err := f.svc.Open(context.Background(), service.OpenReviewInput{ExtractionID: f.record.ID, DraftID: &missing})

	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestReviewService_RenderAndSelectView(t *testing.T) {
	f := newReviewFixture(t)
	sess, err := f.svc.Open(context.Background(), service.OpenReviewInput{
		ExtractionID: f.record.ID,
		Language:     "ar",
	})
	require.NoError(t, err)
	ctx := context.Background()

	vm, err := f.svc.RenderActive(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ViewSummary, vm.View)
	assert.Equal(t, domain.DirectionRTL, vm.Direction)

	vm, err = f.svc.SelectView(ctx, sess.ID, domain.ViewClauses)
	require.NoError(t, err)
	assert.Equal(t, domain.ViewClauses, vm.View)

	_, err = f.svc.SelectView(ctx, sess.ID, domain.ReviewView("bogus"))
	assert.ErrorIs(t, err, domain.ErrInvalidView)

	vm, err = f.svc.RenderActive(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ViewClauses, vm.View)

	vm, err = f.svc.Render(ctx, sess.ID, domain.ViewDates)
	require.NoError(t, err)
	assert.Equal(t, domain.ViewDates, vm.View)
}

func TestReviewService_ApplyActionsReachDraft(t *testing.T) {
	f := newReviewFixture(t)
	sess, draft := f.openWithDraft(t)
	ctx := context.Background()

	require.NoError(t, f.svc.ApplyParty(ctx, sess.ID, 0, domain.PartyRoleA))
	require.NoError(t, f.svc.ApplyClause(ctx, sess.ID, "c1"))
	require.NoError(t, f.svc.ApplyAmount(ctx, sess.ID, 0))
	require.NoError(t, f.svc.ApplyDates(ctx, sess.ID))

	got, err := f.draftRepo.GetByID(ctx, draft.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PartyA)
	assert.Equal(t, "Ahmed Ali", got.PartyA.Name)
	require.Len(t, got.Clauses, 1)
	assert.Equal(t, "c1", got.Clauses[0].SourceID)
	assert.Equal(t, []domain.DraftAmount{{Value: 5000, Description: "Monthly rent"}}, got.Amounts)
	assert.Equal(t, "2024-01-01", got.StartDate)
	assert.Equal(t, "2024-12-31", got.EndDate)
}

func TestReviewService_ApplyUnknownItems(t *testing.T) {
	f := newReviewFixture(t)
	sess, _ := f.openWithDraft(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.ApplyParty(ctx, sess.ID, 3, domain.PartyRoleA), domain.ErrPartyNotFound)
	assert.ErrorIs(t, f.svc.ApplyParty(ctx, sess.ID, -1, domain.PartyRoleA), domain.ErrPartyNotFound)
	assert.ErrorIs(t, f.svc.ApplyClause(ctx, sess.ID, "nope"), domain.ErrClauseNotFound)
	assert.ErrorIs(t, f.svc.ApplyAmount(ctx, sess.ID, 9), domain.ErrAmountNotFound)
}

func TestReviewService_ApplyDates_WithoutStart(t *testing.T) {
	f := newReviewFixture(t)
	f.record.Dates = domain.ExtractedDates{EndDate: "2024-12-31"}
	sess, draft := f.openWithDraft(t)

	err := f.svc.ApplyDates(context.Background(), sess.ID)

	assert.ErrorIs(t, err, domain.ErrDatesUnavailable)
	got, _ := f.draftRepo.GetByID(context.Background(), draft.ID)
	assert.Empty(t, got.EndDate)
}

func TestReviewService_WithoutDraft_AppliesAreDropped(t *testing.T) {
	f := newReviewFixture(t)
	sess, err := f.svc.Open(context.Background(), service.OpenReviewInput{ExtractionID: f.record.ID})
	require.NoError(t, err)

	assert.NoError(t, f.svc.ApplyClause(context.Background(), sess.ID, "c1"))
}

func TestReviewService_CopyClause(t *testing.T) {
	f := newReviewFixture(t)
	sess, _ := f.openWithDraft(t)
	ctx := context.Background()

	_, ok, err := f.svc.Clipboard(ctx, sess.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	copied, err := f.svc.CopyClause(ctx, sess.ID, "c1")
	require.NoError(t, err)
	assert.True(t, copied)

	text, ok, err := f.svc.Clipboard(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Either party may terminate.", text)
	assert.Equal(t, "c1", sess.Surface.CopiedID())

	_, err = f.svc.CopyClause(ctx, sess.ID, "missing")
	assert.ErrorIs(t, err, domain.ErrClauseNotFound)
}

func TestReviewService_Close(t *testing.T) {
	f := newReviewFixture(t)
	sess, _ := f.openWithDraft(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Close(ctx, sess.ID))

	_, err := f.svc.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)
	assert.ErrorIs(t, f.svc.Close(ctx, sess.ID), domain.ErrReviewNotFound)
	_, err = f.svc.RenderActive(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)
}

func TestReviewService_SessionExpires(t *testing.T) {
	extractions := new(mocks.MockExtractionRepo)
	record := reviewRecord()
	extractions.On("GetByID", mock.Anything, record.ID).Return(record, nil)
	svc := service.NewReviewService(extractions, nil, config.ReviewConfig{SessionTTL: 20 * time.Millisecond}, nil)

	sess, err := svc.Open(context.Background(), service.OpenReviewInput{ExtractionID: record.ID})
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)

	_, err = svc.Get(context.Background(), sess.ID)
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)
}
