package review

import (
	"math"

	"lexdraft/internal/domain"
)

// ViewModel is one rendered view of a review session. Exactly one of the
// per-view fields is set, matching View.
type ViewModel struct {
	View         domain.ReviewView `json:"view"`
	Title        string            `json:"title"`
	Language     domain.Language   `json:"language"`
	Direction    domain.Direction  `json:"direction"`
	Empty        bool              `json:"empty"`
	EmptyMessage string            `json:"emptyMessage,omitempty"`

	Summary    *SummaryView    `json:"summary,omitempty"`
	Parties    *PartiesView    `json:"parties,omitempty"`
	Financials *FinancialsView `json:"financials,omitempty"`
	Dates      *DatesView      `json:"dates,omitempty"`
	Clauses    *ClausesView    `json:"clauses,omitempty"`
	Warnings   *WarningsView   `json:"warnings,omitempty"`
}

type SummaryView struct {
	FileName               string           `json:"fileName,omitempty"`
	FileSize               int64            `json:"fileSize"`
	DocumentType           string           `json:"documentType,omitempty"`
	DocumentTypeConfidence float64          `json:"documentTypeConfidence"`
	ConfidencePercent      int              `json:"confidencePercent"`
	Summary                string           `json:"summary,omitempty"`
	Jurisdiction           string           `json:"jurisdiction,omitempty"`
	KeyTerms               []domain.KeyTerm `json:"keyTerms"`
}

type PartiesView struct {
	Parties []PartyRow `json:"parties"`
}

// PartyRow is a party as displayed, with the roles it can be applied to.
type PartyRow struct {
	Index       int                `json:"index"`
	Name        string             `json:"name"`
	Type        domain.PartyType   `json:"type"`
	TypeLabel   string             `json:"typeLabel"`
	Icon        string             `json:"icon"`
	Role        string             `json:"role,omitempty"`
	RoleLabel   string             `json:"roleLabel,omitempty"`
	IDNumber    string             `json:"idNumber,omitempty"`
	Nationality string             `json:"nationality,omitempty"`
	Phone       string             `json:"phone,omitempty"`
	Email       string             `json:"email,omitempty"`
	ApplyRoles  []domain.PartyRole `json:"applyRoles"`
}

type FinancialsView struct {
	Currency     string      `json:"currency,omitempty"`
	PaymentTerms string      `json:"paymentTerms,omitempty"`
	Amounts      []AmountRow `json:"amounts"`
}

type AmountRow struct {
	Index       int     `json:"index"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
	Type        string  `json:"type,omitempty"`
	Frequency   string  `json:"frequency,omitempty"`
}

type DatesView struct {
	Dates []DateRow `json:"dates"`
	// CanApply is false when there is no start date; the apply action is not offered then.
	CanApply bool `json:"canApply"`
}

type DateRow struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type ClausesView struct {
	Clauses []ClauseRow `json:"clauses"`
}

type ClauseRow struct {
	ID         string                  `json:"id"`
	Title      string                  `json:"title"`
	Type       domain.ClauseType       `json:"type"`
	TypeLabel  string                  `json:"typeLabel"`
	Color      string                  `json:"color"`
	Content    string                  `json:"content"`
	Importance domain.ClauseImportance `json:"importance,omitempty"`
	Critical   bool                    `json:"critical"`
	Confidence float64                 `json:"confidence"`
	Copied     bool                    `json:"copied"`
}

type WarningsView struct {
	Warnings []string `json:"warnings"`
	Notes    []string `json:"notes"`
}

var applyRoles = []domain.PartyRole{domain.PartyRoleA, domain.PartyRoleB}

// render builds the view model for view. rec may be nil, in which case
// every view is empty.
func render(rec *domain.ExtractionRecord, view domain.ReviewView, lang domain.Language, copiedID string) ViewModel {
	vm := ViewModel{
		View:      view,
		Title:     domain.ViewTitle(view, lang),
		Language:  lang,
		Direction: lang.Direction(),
	}
	if rec == nil {
		rec = &domain.ExtractionRecord{}
	}

	switch view {
	case domain.ViewSummary:
		vm.Summary = renderSummary(rec, lang)
		vm.Empty = rec.DocumentType == "" && vm.Summary.Summary == "" && len(rec.KeyTerms) == 0
	case domain.ViewParties:
		vm.Parties = renderParties(rec, lang)
		vm.Empty = len(vm.Parties.Parties) == 0
	case domain.ViewFinancials:
		vm.Financials = renderFinancials(rec)
		vm.Empty = rec.Financials.IsEmpty()
	case domain.ViewDates:
		vm.Dates = renderDates(rec, lang)
		vm.Empty = len(vm.Dates.Dates) == 0
	case domain.ViewClauses:
		vm.Clauses = renderClauses(rec, lang, copiedID)
		vm.Empty = len(vm.Clauses.Clauses) == 0
	case domain.ViewWarnings:
		vm.Warnings = &WarningsView{Warnings: nonNil(rec.Warnings), Notes: nonNil(rec.Notes)}
		vm.Empty = len(rec.Warnings) == 0 && len(rec.Notes) == 0
	}

	if vm.Empty {
		vm.EmptyMessage = domain.EmptyStateMessage.In(lang)
	}
	return vm
}

func renderSummary(rec *domain.ExtractionRecord, lang domain.Language) *SummaryView {
	return &SummaryView{
		FileName:               rec.FileName,
		FileSize:               rec.FileSize,
		DocumentType:           rec.DocumentType,
		DocumentTypeConfidence: rec.DocumentTypeConfidence,
		ConfidencePercent:      int(math.Round(rec.DocumentTypeConfidence * 100)),
		Summary:                domain.Localize(rec.Summary, rec.SummaryAr, lang),
		Jurisdiction:           rec.Jurisdiction,
		KeyTerms:               nonNil(rec.KeyTerms),
	}
}

func renderParties(rec *domain.ExtractionRecord, lang domain.Language) *PartiesView {
	rows := make([]PartyRow, 0, len(rec.Parties))
	for i, p := range rec.Parties {
		style := domain.PartyTypeStyleOf(p.Type)
		row := PartyRow{
			Index:       i,
			Name:        domain.Localize(p.Name, p.NameAr, lang),
			Type:        p.Type,
			TypeLabel:   style.Label.In(lang),
			Icon:        style.Icon,
			Role:        p.Role,
			IDNumber:    p.IDNumber,
			Nationality: p.Nationality,
			Phone:       p.Phone,
			Email:       p.Email,
			ApplyRoles:  applyRoles,
		}
		if p.Role != "" {
			row.RoleLabel = domain.RoleLabel(p.Role, lang)
		}
		rows = append(rows, row)
	}
	return &PartiesView{Parties: rows}
}

func renderFinancials(rec *domain.ExtractionRecord) *FinancialsView {
	rows := make([]AmountRow, 0, len(rec.Financials.Amounts))
	for i, a := range rec.Financials.Amounts {
		rows = append(rows, AmountRow{
			Index:       i,
			Value:       a.Value,
			Description: a.Description,
			Type:        a.Type,
			Frequency:   a.Frequency,
		})
	}
	return &FinancialsView{
		Currency:     rec.Financials.Currency,
		PaymentTerms: rec.Financials.PaymentTerms,
		Amounts:      rows,
	}
}

func renderDates(rec *domain.ExtractionRecord, lang domain.Language) *DatesView {
	d := rec.Dates
	named := []struct {
		field string
		label domain.Text
		value string
	}{
		{"effectiveDate", domain.LabelEffectiveDate, d.EffectiveDate},
		{"startDate", domain.LabelStartDate, d.StartDate},
		{"endDate", domain.LabelEndDate, d.EndDate},
		{"signatureDate", domain.LabelSignatureDate, d.SignatureDate},
		{"noticePeriod", domain.LabelNoticePeriod, d.NoticePeriod},
	}

	rows := make([]DateRow, 0, len(named)+len(d.CustomDates))
	for _, n := range named {
		if n.value != "" {
			rows = append(rows, DateRow{Field: n.field, Label: n.label.In(lang), Value: n.value})
		}
	}
	for _, c := range d.CustomDates {
		rows = append(rows, DateRow{Field: "custom", Label: c.Label, Value: c.Date})
	}
	return &DatesView{Dates: rows, CanApply: d.StartDate != ""}
}

func renderClauses(rec *domain.ExtractionRecord, lang domain.Language, copiedID string) *ClausesView {
	rows := make([]ClauseRow, 0, len(rec.Clauses))
	for _, c := range rec.Clauses {
		style := domain.StyleOf(c.Type)
		rows = append(rows, ClauseRow{
			ID:         c.ID,
			Title:      domain.Localize(c.Title, c.TitleAr, lang),
			Type:       style.Type,
			TypeLabel:  style.Label.In(lang),
			Color:      style.Color,
			Content:    c.Content,
			Importance: c.Importance,
			Critical:   c.IsCritical(),
			Confidence: c.Confidence,
			Copied:     copiedID != "" && c.ID == copiedID,
		})
	}
	return &ClausesView{Clauses: rows}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
