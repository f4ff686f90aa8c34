package service_test

import (
	"context"
	"errors"
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

const owner = "client-1"

func newProfileService() (service.ProfileService, *profilestore.KeyedStore) {
	store := profilestore.NewKeyedStore(memory.NewKVStore(), "")
	return service.NewProfileService(store, nil), store
}

func profileInput(label, name string) domain.ProfileInput {
	return domain.ProfileInput{
		Type:  domain.PartyTypeIndividual,
		Label: label,
		Data:  domain.ProfileData{Name: name, IDNumber: "1010", Phone: "+966500000000"},
	}
}

func mustCreate(t *testing.T, svc service.ProfileService, label, name string) *domain.SavedProfile {
	t.Helper()
	p, err := svc.Create(context.Background(), owner, profileInput(label, name))
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func TestProfileService_Create_FirstBecomesDefault(t *testing.T) {
	svc, store := newProfileService()

	first := mustCreate(t, svc, "Me", "Ahmed Ali")
	second := mustCreate(t, svc, "Company", "Acme LLC")

	assert.True(t, first.IsDefault)
	assert.False(t, second.IsDefault)
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)
	assert.False(t, first.CreatedAt.IsZero())

	stored, err := store.Load(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, first.ID, stored[0].ID)
	assert.Equal(t, second.ID, stored[1].ID)
}

func TestProfileService_Create_BlankRequiredFieldsIsNoop(t *testing.T) {
	svc, store := newProfileService()

	p, err := svc.Create(context.Background(), owner, profileInput("  ", "Ahmed"))
	assert.NoError(t, err)
	assert.Nil(t, p)

	p, err = svc.Create(context.Background(), owner, profileInput("Me", ""))
	assert.NoError(t, err)
	assert.Nil(t, p)

	stored, err := store.Load(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestProfileService_Create_InvalidTypeFallsBackToIndividual(t *testing.T) {
	svc, _ := newProfileService()
	in := profileInput("Me", "Ahmed")
	in.Type = "robot"

	p, err := svc.Create(context.Background(), owner, in)

	require.NoError(t, err)
	assert.Equal(t, domain.PartyTypeIndividual, p.Type)
}

func TestProfileService_MissingOwner(t *testing.T) {
	svc, _ := newProfileService()
	ctx := context.Background()

	_, err := svc.Create(ctx, " ", profileInput("Me", "Ahmed"))
	assert.ErrorIs(t, err, domain.ErrMissingClientKey)
	_, err = svc.List(ctx, "")
	assert.ErrorIs(t, err, domain.ErrMissingClientKey)
	err = svc.Delete(ctx, "", uuid.New())
	assert.ErrorIs(t, err, domain.ErrMissingClientKey)
}

func TestProfileService_OwnersAreIsolated(t *testing.T) {
	svc, _ := newProfileService()
	mustCreate(t, svc, "Me", "Ahmed")

	list, err := svc.List(context.Background(), "client-2")

	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProfileService_Update(t *testing.T) {
	svc, _ := newProfileService()
	p := mustCreate(t, svc, "Me", "Ahmed")
	label := "Myself"
	email := "ahmed@example.com"

	got, err := svc.Update(context.Background(), owner, p.ID, domain.ProfilePatch{
		Label: &label,
		Data:  &domain.ProfileDataPatch{Email: &email},
	})

	require.NoError(t, err)
	assert.Equal(t, "Myself", got.Label)
	assert.Equal(t, "ahmed@example.com", got.Data.Email)
	assert.Equal(t, "Ahmed", got.Data.Name)
	assert.Equal(t, "1010", got.Data.IDNumber)
	assert.True(t, got.IsDefault)
	assert.False(t, got.UpdatedAt.Before(p.UpdatedAt))
}

func TestProfileService_Update_UnknownID(t *testing.T) {
	svc, store := newProfileService()
	mustCreate(t, svc, "Me", "Ahmed")
	before, _ := store.Load(context.Background(), owner)
	label := "x"

	_, err := svc.Update(context.Background(), owner, uuid.New(), domain.ProfilePatch{Label: &label})

	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	after, _ := store.Load(context.Background(), owner)
	assert.Equal(t, before, after)
}

func TestProfileService_Update_RejectsBlankName(t *testing.T) {
	svc, _ := newProfileService()
	p := mustCreate(t, svc, "Me", "Ahmed")
	blank := ""

	_, err := svc.Update(context.Background(), owner, p.ID, domain.ProfilePatch{
		Data: &domain.ProfileDataPatch{Name: &blank},
	})

	assert.ErrorIs(t, err, domain.ErrProfileIncomplete)
	got, err := svc.Get(context.Background(), owner, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ahmed", got.Data.Name)
}

func TestProfileService_Delete_PromotesFirstRemaining(t *testing.T) {
	svc, _ := newProfileService()
	first := mustCreate(t, svc, "A", "Ahmed")
	second := mustCreate(t, svc, "B", "Basma")
	mustCreate(t, svc, "C", "Carla")

	require.NoError(t, svc.Delete(context.Background(), owner, first.ID))

	def, err := svc.Default(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, second.ID, def.ID)
}

func TestProfileService_Delete_LastProfile(t *testing.T) {
	svc, _ := newProfileService()
	p := mustCreate(t, svc, "A", "Ahmed")

	require.NoError(t, svc.Delete(context.Background(), owner, p.ID))

	list, err := svc.List(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, list)
	_, err = svc.Default(context.Background(), owner)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestProfileService_Delete_UnknownID(t *testing.T) {
	svc, _ := newProfileService()
	mustCreate(t, svc, "A", "Ahmed")

	err := svc.Delete(context.Background(), owner, uuid.New())

	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestProfileService_SetDefault_ExactlyOne(t *testing.T) {
	svc, _ := newProfileService()
	mustCreate(t, svc, "A", "Ahmed")
	second := mustCreate(t, svc, "B", "Basma")

	got, err := svc.SetDefault(context.Background(), owner, second.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDefault)

	list, err := svc.List(context.Background(), owner)
	require.NoError(t, err)
	defaults := 0
	for _, p := range list {
		if p.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
	assert.Equal(t, second.ID, list[0].ID)

	_, err = svc.SetDefault(context.Background(), owner, uuid.New())
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestProfileService_ToggleFavorite(t *testing.T) {
	svc, _ := newProfileService()
	p := mustCreate(t, svc, "A", "Ahmed")

	got, err := svc.ToggleFavorite(context.Background(), owner, p.ID)
	require.NoError(t, err)
	assert.True(t, got.IsFavorite)

	got, err = svc.ToggleFavorite(context.Background(), owner, p.ID)
	require.NoError(t, err)
	assert.False(t, got.IsFavorite)
}

func TestProfileService_List_Ordering(t *testing.T) {
	svc, _ := newProfileService()
	def := mustCreate(t, svc, "zeta", "Z")
	mustCreate(t, svc, "beta", "B")
	fav := mustCreate(t, svc, "omega", "O")
	mustCreate(t, svc, "Alpha", "A")
	_, err := svc.ToggleFavorite(context.Background(), owner, fav.ID)
	require.NoError(t, err)

	list, err := svc.List(context.Background(), owner)
	require.NoError(t, err)

	labels := make([]string, len(list))
	for i, p := range list {
		labels[i] = p.Label
	}
	assert.Equal(t, []string{"zeta", "omega", "Alpha", "beta"}, labels)
	assert.Equal(t, def.ID, list[0].ID)
}

func TestProfileService_PersistFailure(t *testing.T) {
	store := new(mocks.MockProfileStore)
	store.On("Load", mock.Anything, owner).Return([]domain.SavedProfile{}, nil)
	store.On("SaveAll", mock.Anything, owner, mock.Anything).Return(errors.New("disk full"))
	svc := service.NewProfileService(store, nil)

	p, err := svc.Create(context.Background(), owner, profileInput("Me", "Ahmed"))

	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrProfilePersistFailed)
}

func TestProfileService_LoadFailure(t *testing.T) {
	store := new(mocks.MockProfileStore)
	store.On("Load", mock.Anything, owner).Return(nil, errors.New("corrupt"))
	svc := service.NewProfileService(store, nil)

	_, err := svc.List(context.Background(), owner)

	require.Error(t, err)
	store.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything, mock.Anything)
}
