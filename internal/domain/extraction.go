package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExtractionRecord is the structured result of parsing one uploaded legal document.
// Records are never mutated after they are persisted; re-extraction produces a new record.
type ExtractionRecord struct {
	ID                     uuid.UUID         `json:"id"`
	FileName               string            `json:"fileName"`
	FileSize               int64             `json:"fileSize"`
	ContentType            string            `json:"contentType,omitempty"`
	ObjectKey              string            `json:"objectKey,omitempty"`
	DocumentType           string            `json:"documentType"`
	DocumentTypeConfidence float64           `json:"documentTypeConfidence"`
	Summary                string            `json:"summary,omitempty"`
	SummaryAr              string            `json:"summaryAr,omitempty"`
	Jurisdiction           string            `json:"jurisdiction,omitempty"`
	KeyTerms               []KeyTerm         `json:"keyTerms"`
	Parties                []ExtractedParty  `json:"parties"`
	Financials             Financials        `json:"financials"`
	Dates                  ExtractedDates    `json:"dates"`
	Clauses                []ExtractedClause `json:"clauses"`
	Warnings               []string          `json:"warnings"`
	Notes                  []string          `json:"notes"`
	Language               Language          `json:"language,omitempty"`
	SourceModel            string            `json:"sourceModel,omitempty"`
	CreatedAt              time.Time         `json:"createdAt"`
}

// KeyTerm is one {term, value} pair. Order is presentation order and terms may repeat.
type KeyTerm struct {
	Term  string `json:"term"`
	Value string `json:"value"`
}

// ExtractedParty is a contracting party found in the source document.
// Empty optional fields mean the value was not found, not that it is invalid.
type ExtractedParty struct {
	Name        string    `json:"name"`
	NameAr      string    `json:"nameAr,omitempty"`
	Type        PartyType `json:"type"`
	Role        string    `json:"role,omitempty"`
	IDNumber    string    `json:"idNumber,omitempty"`
	Nationality string    `json:"nationality,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
}

// ExtractedClause is a single clause of the source document.
type ExtractedClause struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	TitleAr    string           `json:"titleAr,omitempty"`
	Type       ClauseType       `json:"type"`
	Content    string           `json:"content"`
	Importance ClauseImportance `json:"importance,omitempty"`
	Confidence float64          `json:"confidence"`
}

// IsCritical reports whether the clause is flagged critical.
func (c ExtractedClause) IsCritical() bool {
	return c.Importance == ImportanceCritical
}

// ExtractedFinancialAmount is one monetary amount mentioned by the document.
type ExtractedFinancialAmount struct {
	Value       float64 `json:"value"`
	Description string  `json:"description"`
	Type        string  `json:"type,omitempty"`
	Frequency   string  `json:"frequency,omitempty"`
}

// Financials aggregates all monetary terms of a document.
type Financials struct {
	Currency     string                     `json:"currency,omitempty"`
	Amounts      []ExtractedFinancialAmount `json:"amounts"`
	PaymentTerms string                     `json:"paymentTerms,omitempty"`
}

// IsEmpty reports whether nothing financial was extracted.
func (f Financials) IsEmpty() bool {
	return f.Currency == "" && len(f.Amounts) == 0 && f.PaymentTerms == ""
}

// CustomDate is a labelled date outside the well-known set.
type CustomDate struct {
	Label string `json:"label"`
	Date  string `json:"date"`
}

// ExtractedDates aggregates the dates of a document. Dates are kept as extracted strings.
type ExtractedDates struct {
	EffectiveDate string       `json:"effectiveDate,omitempty"`
	StartDate     string       `json:"startDate,omitempty"`
	EndDate       string       `json:"endDate,omitempty"`
	SignatureDate string       `json:"signatureDate,omitempty"`
	NoticePeriod  string       `json:"noticePeriod,omitempty"`
	CustomDates   []CustomDate `json:"customDates"`
}

// IsEmpty reports whether no date was extracted.
func (d ExtractedDates) IsEmpty() bool {
	return d.EffectiveDate == "" && d.StartDate == "" && d.EndDate == "" &&
		d.SignatureDate == "" && d.NoticePeriod == "" && len(d.CustomDates) == 0
}

// DateRange is the {start, end} pair handed to a draft.
type DateRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Normalize replaces nil collections with empty ones so the record always
// serializes with arrays, never null.
func (r *ExtractionRecord) Normalize() {
	if r.KeyTerms == nil {
		r.KeyTerms = []KeyTerm{}
	}
	if r.Parties == nil {
		r.Parties = []ExtractedParty{}
	}
	if r.Financials.Amounts == nil {
		r.Financials.Amounts = []ExtractedFinancialAmount{}
	}
	if r.Dates.CustomDates == nil {
		r.Dates.CustomDates = []CustomDate{}
	}
	if r.Clauses == nil {
		r.Clauses = []ExtractedClause{}
	}
	if r.Warnings == nil {
		r.Warnings = []string{}
	}
	if r.Notes == nil {
		r.Notes = []string{}
	}
}
