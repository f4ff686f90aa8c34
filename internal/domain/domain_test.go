package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexdraft/internal/domain"
)

func TestParseLanguage(t *testing.T) {
	tests := map[string]domain.Language{
		"ar":              domain.LanguageArabic,
		"AR-sa":           domain.LanguageArabic,
		" ar_EG ":         domain.LanguageArabic,
		"ar-SA,ar;q=0.9":  domain.LanguageArabic,
		"en":              domain.LanguageEnglish,
		"fr":              domain.LanguageEnglish,
		"":                domain.LanguageEnglish,
		"arabic-ish-typo": domain.LanguageEnglish,
	}
	for in, want := range tests {
		assert.Equal(t, want, domain.ParseLanguage(in), in)
	}
	assert.Equal(t, domain.DirectionRTL, domain.LanguageArabic.Direction())
	assert.Equal(t, domain.DirectionLTR, domain.LanguageEnglish.Direction())
}

func TestLocalize(t *testing.T) {
	assert.Equal(t, "عقد", domain.Localize("Contract", "عقد", domain.LanguageArabic))
	assert.Equal(t, "Contract", domain.Localize("Contract", "عقد", domain.LanguageEnglish))
	assert.Equal(t, "Contract", domain.Localize("Contract", "", domain.LanguageArabic))
	assert.Equal(t, "Same", domain.Localize("Same", "Same", domain.LanguageArabic))
}

func TestStyleOf_UnknownFallsBackToOther(t *testing.T) {
	style := domain.StyleOf(domain.ClauseType("force_majeure"))

	assert.Equal(t, domain.ClauseOther, style.Type)
	assert.Equal(t, "Other", style.Label.In(domain.LanguageEnglish))
	assert.Equal(t, "red", domain.StyleOf(domain.ClauseTermination).Color)
	assert.Equal(t, "الإنهاء", domain.StyleOf(domain.ClauseTermination).Label.In(domain.LanguageArabic))
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "Landlord", domain.RoleLabel("landlord", domain.LanguageEnglish))
	assert.Equal(t, "المؤجر", domain.RoleLabel(" Landlord ", domain.LanguageArabic))
	assert.Equal(t, "Service Provider", domain.RoleLabel("service_provider", domain.LanguageArabic))
	assert.Equal(t, "", domain.RoleLabel("", domain.LanguageEnglish))
}

func TestPartyTypeStyleOf(t *testing.T) {
	assert.Equal(t, "building", domain.PartyTypeStyleOf(domain.PartyTypeCompany).Icon)
	assert.Equal(t, "user", domain.PartyTypeStyleOf(domain.PartyType("trust")).Icon)
}

func TestViewTitle(t *testing.T) {
	assert.Equal(t, "Clauses", domain.ViewTitle(domain.ViewClauses, domain.LanguageEnglish))
	assert.Equal(t, "البنود", domain.ViewTitle(domain.ViewClauses, domain.LanguageArabic))
	assert.True(t, domain.ValidReviewView(domain.ViewWarnings))
	assert.False(t, domain.ValidReviewView("history"))
}

func TestExtractionRecord_NormalizeSerializesArrays(t *testing.T) {
	r := &domain.ExtractionRecord{ID: uuid.New()}
	r.Normalize()

	raw, err := json.Marshal(r)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, key := range []string{"keyTerms", "parties", "clauses", "warnings", "notes"} {
		assert.Equal(t, []interface{}{}, m[key], key)
	}
	assert.True(t, r.Financials.IsEmpty())
	assert.True(t, r.Dates.IsEmpty())
}

func TestFinancials_IsEmpty(t *testing.T) {
	assert.True(t, domain.Financials{}.IsEmpty())
	assert.False(t, domain.Financials{Currency: "SAR"}.IsEmpty())
	assert.False(t, domain.Financials{PaymentTerms: "Net 30"}.IsEmpty())
	assert.False(t, domain.Financials{Amounts: []domain.ExtractedFinancialAmount{{Value: 1}}}.IsEmpty())
}

func TestDraft_ApplyParty(t *testing.T) {
	d := &domain.Draft{}
	p := domain.ExtractedParty{Name: "Acme", Type: domain.PartyTypeCompany, Email: "a@acme.test"}

	require.NoError(t, d.ApplyParty(p, domain.PartyRoleA))
	require.NoError(t, d.ApplyParty(domain.ExtractedParty{Name: "Other"}, domain.PartyRoleA))
	assert.ErrorIs(t, d.ApplyParty(p, domain.PartyRole("partyZ")), domain.ErrInvalidPartyRole)

	require.NotNil(t, d.PartyA)
	assert.Equal(t, "Other", d.PartyA.Name)
	assert.Empty(t, d.PartyA.Email)
	assert.Nil(t, d.PartyB)
}

func TestDraft_ApplyClauseReplacesSameID(t *testing.T) {
	d := &domain.Draft{}

	d.ApplyClause(domain.ExtractedClause{ID: "c1", Content: "v1", Type: "weird"})
	d.ApplyClause(domain.ExtractedClause{ID: "c2", Content: "other"})
	d.ApplyClause(domain.ExtractedClause{ID: "c1", Content: "v2"})
	d.ApplyClause(domain.ExtractedClause{Content: "no id"})
	d.ApplyClause(domain.ExtractedClause{Content: "no id"})

	require.Len(t, d.Clauses, 4)
	assert.Equal(t, "v2", d.Clauses[0].Content)
	assert.Equal(t, domain.ClauseOther, d.Clauses[0].Type)
}

func TestDraft_ApplyAmountAndDates(t *testing.T) {
	d := &domain.Draft{EndDate: "2024-06-30"}

	d.ApplyAmount(100, "deposit")
	d.ApplyAmount(100, "deposit")
	d.ApplyAmount(100, "rent")
	d.ApplyDates(domain.DateRange{Start: "2024-01-01"})

	assert.Len(t, d.Amounts, 2)
	assert.Equal(t, "2024-01-01", d.StartDate)
	assert.Equal(t, "2024-06-30", d.EndDate)
}

func TestNormalizeDefaults(t *testing.T) {
	ps := []domain.SavedProfile{{Label: "a"}, {Label: "b", IsDefault: true}, {Label: "c", IsDefault: true}}
	domain.NormalizeDefaults(ps)
	assert.False(t, ps[0].IsDefault)
	assert.True(t, ps[1].IsDefault)
	assert.False(t, ps[2].IsDefault)

	none := []domain.SavedProfile{{Label: "a"}, {Label: "b"}}
	domain.NormalizeDefaults(none)
	assert.True(t, none[0].IsDefault)

	domain.NormalizeDefaults(nil)
}

func TestProfilePatch_Apply(t *testing.T) {
	p := domain.SavedProfile{Label: "Me", Data: domain.ProfileData{Name: "Ahmed", Phone: "1"}}
	phone := "2"
	typ := domain.PartyTypeCompany

	domain.ProfilePatch{Type: &typ, Data: &domain.ProfileDataPatch{Phone: &phone}}.Apply(&p)

	assert.Equal(t, "Me", p.Label)
	assert.Equal(t, domain.PartyTypeCompany, p.Type)
	assert.Equal(t, "Ahmed", p.Data.Name)
	assert.Equal(t, "2", p.Data.Phone)
}

func TestSortProfiles_DoesNotMutateInput(t *testing.T) {
	in := []domain.SavedProfile{{Label: "b"}, {Label: "A"}, {Label: "c", IsDefault: true}}

	out := domain.SortProfiles(in)

	assert.Equal(t, "b", in[0].Label)
	assert.Equal(t, []string{"c", "A", "b"}, []string{out[0].Label, out[1].Label, out[2].Label})
}
