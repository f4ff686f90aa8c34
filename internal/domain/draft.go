package domain

import (
	"time"

	"github.com/google/uuid"
)

// Draft is an in-progress generated document that receives applied values.
type Draft struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	DocumentType string        `json:"document_type"`
	Language     Language      `json:"language"`
	PartyA       *DraftParty   `json:"party_a"`
	PartyB       *DraftParty   `json:"party_b"`
	Clauses      []DraftClause `json:"clauses"`
	Amounts      []DraftAmount `json:"amounts"`
	StartDate    string        `json:"start_date"`
	EndDate      string        `json:"end_date"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// DraftParty is a party slot of a draft.
type DraftParty struct {
	Type        PartyType `json:"type"`
	Name        string    `json:"name"`
	NameAr      string    `json:"name_ar,omitempty"`
	IDNumber    string    `json:"id_number,omitempty"`
	Nationality string    `json:"nationality,omitempty"`
	Address     string    `json:"address,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	WhatsApp    string    `json:"whatsapp,omitempty"`
	// Source records where the values came from: "extraction" or "profile".
	Source string `json:"source"`
}

// DraftClause is a clause imported into a draft.
type DraftClause struct {
	SourceID string     `json:"source_id"`
	Title    string     `json:"title"`
	TitleAr  string     `json:"title_ar,omitempty"`
	Type     ClauseType `json:"type"`
	Content  string     `json:"content"`
}

// DraftAmount is a monetary amount imported into a draft.
type DraftAmount struct {
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}

// slot returns the party slot addressed by role.
func (d *Draft) slot(role PartyRole) (**DraftParty, error) {
	switch role {
	case PartyRoleA:
		return &d.PartyA, nil
	case PartyRoleB:
		return &d.PartyB, nil
	default:
		return nil, ErrInvalidPartyRole
	}
}

// ApplyParty overwrites the party slot for role with an extracted party.
func (d *Draft) ApplyParty(p ExtractedParty, role PartyRole) error {
	slot, err := d.slot(role)
	if err != nil {
		return err
	}
	*slot = &DraftParty{
		Type:        p.Type,
		Name:        p.Name,
		NameAr:      p.NameAr,
		IDNumber:    p.IDNumber,
		Nationality: p.Nationality,
		Phone:       p.Phone,
		Email:       p.Email,
		Source:      "extraction",
	}
	return nil
}

// ApplyProfile overwrites the party slot for role with a saved profile.
func (d *Draft) ApplyProfile(p SavedProfile, role PartyRole) error {
	slot, err := d.slot(role)
	if err != nil {
		return err
	}
	*slot = &DraftParty{
		Type:        p.Type,
		Name:        p.Data.Name,
		IDNumber:    p.Data.IDNumber,
		Nationality: p.Data.Nationality,
		Address:     p.Data.Address,
		Phone:       p.Data.Phone,
		Email:       p.Data.Email,
		WhatsApp:    p.Data.WhatsApp,
		Source:      "profile",
	}
	return nil
}

// ApplyClause appends a clause, replacing an earlier import of the same clause id.
func (d *Draft) ApplyClause(c ExtractedClause) {
	dc := DraftClause{
		SourceID: c.ID,
		Title:    c.Title,
		TitleAr:  c.TitleAr,
		Type:     NormalizeClauseType(c.Type),
		Content:  c.Content,
	}
	for i := range d.Clauses {
		if c.ID != "" && d.Clauses[i].SourceID == c.ID {
			d.Clauses[i] = dc
			return
		}
	}
	d.Clauses = append(d.Clauses, dc)
}

// ApplyAmount appends an amount unless the same value and description are already present.
func (d *Draft) ApplyAmount(value float64, description string) {
	for _, a := range d.Amounts {
		if a.Value == value && a.Description == description {
			return
		}
	}
	d.Amounts = append(d.Amounts, DraftAmount{Value: value, Description: description})
}

// ApplyDates sets the term of the draft. An empty end keeps the current end date.
func (d *Draft) ApplyDates(r DateRange) {
	if r.Start != "" {
		d.StartDate = r.Start
	}
	if r.End != "" {
		d.EndDate = r.End
	}
}
