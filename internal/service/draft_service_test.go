package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lexdraft/internal/domain"
	"lexdraft/internal/profilestore"
	"lexdraft/internal/repository/memory"
	"lexdraft/internal/service"
	"lexdraft/mocks"
)

// memDraftRepo is a map-backed port.DraftRepository.
type memDraftRepo struct {
	mu     sync.Mutex
	drafts map[uuid.UUID]domain.Draft
}

func newMemDraftRepo() *memDraftRepo {
	return &memDraftRepo{drafts: make(map[uuid.UUID]domain.Draft)}
}

func (r *memDraftRepo) Create(_ context.Context, d *domain.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[d.ID] = *d
	return nil
}

func (r *memDraftRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drafts[id]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	d.Clauses = append([]domain.DraftClause(nil), d.Clauses...)
	d.Amounts = append([]domain.DraftAmount(nil), d.Amounts...)
	return &d, nil
}

func (r *memDraftRepo) Update(_ context.Context, d *domain.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drafts[d.ID]; !ok {
		return domain.ErrDraftNotFound
	}
	r.drafts[d.ID] = *d
	return nil
}

func (r *memDraftRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, id)
	return nil
}

func newDraftFixture(t *testing.T) (service.DraftService, *memDraftRepo, *domain.Draft) {
	t.Helper()
	repo := newMemDraftRepo()
	profiles := profilestore.NewKeyedStore(memory.NewKVStore(), "")
	svc := service.NewDraftService(repo, profiles, nil)
	draft, err := svc.Create(context.Background(), service.CreateDraftInput{
		Title:        " Lease draft ",
		DocumentType: "lease",
		Language:     "ar",
	})
	require.NoError(t, err)
	return svc, repo, draft
}

func TestDraftService_Create(t *testing.T) {
	_, _, draft := newDraftFixture(t)

	assert.NotEqual(t, uuid.Nil, draft.ID)
	assert.Equal(t, "Lease draft", draft.Title)
	assert.Equal(t, domain.LanguageArabic, draft.Language)
	assert.NotNil(t, draft.Clauses)
	assert.NotNil(t, draft.Amounts)
}

func TestDraftService_Create_RepoError(t *testing.T) {
	repo := new(mocks.MockDraftRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
	svc := service.NewDraftService(repo, nil, nil)

	_, err := svc.Create(context.Background(), service.CreateDraftInput{Title: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "draftService.Create")
}

func TestDraftConsumer_MergesAppliedItems(t *testing.T) {
	svc, repo, draft := newDraftFixture(t)
	consumer := svc.Consumer(context.Background(), draft.ID)

	party := domain.ExtractedParty{Name: "Ahmed Ali", NameAr: "أحمد علي", Type: domain.PartyTypeIndividual, IDNumber: "1010"}
	consumer.UseParty(party, domain.PartyRoleB)
	consumer.UseClause(domain.ExtractedClause{ID: "c1", Title: "Termination", Type: domain.ClauseTermination, Content: "v1"})
	consumer.UseClause(domain.ExtractedClause{ID: "c1", Title: "Termination", Type: domain.ClauseTermination, Content: "v2"})
	consumer.UseAmount(5000, "Monthly rent")
	consumer.UseAmount(5000, "Monthly rent")
	consumer.UseDates(domain.DateRange{Start: "2024-01-01", End: "2024-12-31"})

	got, err := repo.GetByID(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PartyA)
	require.NotNil(t, got.PartyB)
	assert.Equal(t, "Ahmed Ali", got.PartyB.Name)
	assert.Equal(t, "1010", got.PartyB.IDNumber)
	assert.Equal(t, "extraction", got.PartyB.Source)
	require.Len(t, got.Clauses, 1)
	assert.Equal(t, "v2", got.Clauses[0].Content)
	assert.Equal(t, []domain.DraftAmount{{Value: 5000, Description: "Monthly rent"}}, got.Amounts)
	assert.Equal(t, "2024-01-01", got.StartDate)
	assert.Equal(t, "2024-12-31", got.EndDate)
}

func TestDraftConsumer_InvalidRoleIsDropped(t *testing.T) {
	svc, repo, draft := newDraftFixture(t)
	consumer := svc.Consumer(context.Background(), draft.ID)

	consumer.UseParty(domain.ExtractedParty{Name: "X"}, domain.PartyRole("partyC"))

	got, err := repo.GetByID(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PartyA)
	assert.Nil(t, got.PartyB)
}

func TestDraftConsumer_SurvivesCancelledRequest(t *testing.T) {
	svc, repo, draft := newDraftFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	consumer := svc.Consumer(ctx, draft.ID)
	cancel()

	consumer.UseDates(domain.DateRange{Start: "2025-02-01"})

	got, err := repo.GetByID(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-02-01", got.StartDate)
}

func TestDraftConsumer_MissingDraftDoesNotPanic(t *testing.T) {
	svc, _, _ := newDraftFixture(t)
	consumer := svc.Consumer(context.Background(), uuid.New())

	assert.NotPanics(t, func() {
		consumer.UseAmount(1, "x")
	})
}

func TestDraftConsumer_ConcurrentApplies(t *testing.T) {
	svc, repo, draft := newDraftFixture(t)
	consumer := svc.Consumer(context.Background(), draft.ID)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			consumer.UseAmount(float64(i), "installment")
		}(i)
	}
	wg.Wait()

	got, err := repo.GetByID(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Len(t, got.Amounts, 20)
}

func TestDraftService_FillFromProfile(t *testing.T) {
	repo := newMemDraftRepo()
	store := profilestore.NewKeyedStore(memory.NewKVStore(), "")
	profiles := service.NewProfileService(store, nil)
	drafts := service.NewDraftService(repo, store, nil)
	ctx := context.Background()

	draft, err := drafts.Create(ctx, service.CreateDraftInput{Title: "NDA"})
	require.NoError(t, err)
	profile, err := profiles.Create(ctx, "client-1", domain.ProfileInput{
		Type:  domain.PartyTypeCompany,
		Label: "My company",
		Data:  domain.ProfileData{Name: "Acme LLC", Address: "Riyadh", WhatsApp: "+966500000000"},
	})
	require.NoError(t, err)

	got, err := drafts.FillFromProfile(ctx, draft.ID, "client-1", profile.ID, domain.PartyRoleA)

	require.NoError(t, err)
	require.NotNil(t, got.PartyA)
	assert.Equal(t, domain.PartyTypeCompany, got.PartyA.Type)
	assert.Equal(t, "Acme LLC", got.PartyA.Name)
	assert.Equal(t, "Riyadh", got.PartyA.Address)
	assert.Equal(t, "+966500000000", got.PartyA.WhatsApp)
	assert.Equal(t, "profile", got.PartyA.Source)
}

func TestDraftService_FillFromProfile_Errors(t *testing.T) {
	svc, _, draft := newDraftFixture(t)
	ctx := context.Background()

	_, err := svc.FillFromProfile(ctx, draft.ID, "", uuid.New(), domain.PartyRoleA)
	assert.ErrorIs(t, err, domain.ErrMissingClientKey)

	_, err = svc.FillFromProfile(ctx, draft.ID, "client-1", uuid.New(), domain.PartyRole("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidPartyRole)

	_, err = svc.FillFromProfile(ctx, draft.ID, "client-1", uuid.New(), domain.PartyRoleA)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}
