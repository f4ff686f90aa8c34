package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SavedProfile is a reusable party identity kept per client for pre-filling drafts.
type SavedProfile struct {
	ID         uuid.UUID   `json:"id"`
	Type       PartyType   `json:"type"`
	Label      string      `json:"label"`
	IsDefault  bool        `json:"isDefault"`
	IsFavorite bool        `json:"isFavorite"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
	Data       ProfileData `json:"data"`
}

// ProfileData holds the fields a profile can pre-fill into a party form.
type ProfileData struct {
	Name        string `json:"name"`
	IDNumber    string `json:"idNumber"`
	Nationality string `json:"nationality"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	WhatsApp    string `json:"whatsapp"`
}

// ProfileInput is the payload for creating a profile.
type ProfileInput struct {
	Type       PartyType
	Label      string
	IsFavorite bool
	Data       ProfileData
}

// Complete reports whether the required fields are filled.
func (in ProfileInput) Complete() bool {
	return strings.TrimSpace(in.Label) != "" && strings.TrimSpace(in.Data.Name) != ""
}

// ProfilePatch is a partial update; nil fields are left untouched.
// Default status is only changed through SetDefault.
type ProfilePatch struct {
	Type       *PartyType
	Label      *string
	IsFavorite *bool
	Data       *ProfileDataPatch
}

// ProfileDataPatch is a partial update of ProfileData.
type ProfileDataPatch struct {
	Name        *string `json:"name"`
	IDNumber    *string `json:"idNumber"`
	Nationality *string `json:"nationality"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	WhatsApp    *string `json:"whatsapp"`
}

// Apply merges the patch into p.
func (patch ProfilePatch) Apply(p *SavedProfile) {
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Label != nil {
		p.Label = *patch.Label
	}
	if patch.IsFavorite != nil {
		p.IsFavorite = *patch.IsFavorite
	}
	if d := patch.Data; d != nil {
		setIf(&p.Data.Name, d.Name)
		setIf(&p.Data.IDNumber, d.IDNumber)
		setIf(&p.Data.Nationality, d.Nationality)
		setIf(&p.Data.Address, d.Address)
		setIf(&p.Data.Phone, d.Phone)
		setIf(&p.Data.Email, d.Email)
		setIf(&p.Data.WhatsApp, d.WhatsApp)
	}
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// NormalizeDefaults enforces the default invariant in place: at most one
// default, and exactly one when the collection is non-empty. The first
// default in storage order is kept; if none exists the first profile is promoted.
func NormalizeDefaults(profiles []SavedProfile) {
	found := false
	for i := range profiles {
		if profiles[i].IsDefault {
			if found {
				profiles[i].IsDefault = false
			}
			found = true
		}
	}
	if !found && len(profiles) > 0 {
		profiles[0].IsDefault = true
	}
}

// SortProfiles returns a copy ordered for display: the default first, then
// favorites, then the rest by label (case-insensitive).
func SortProfiles(profiles []SavedProfile) []SavedProfile {
	out := make([]SavedProfile, len(profiles))
	copy(out, profiles)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsDefault != b.IsDefault {
			return a.IsDefault
		}
		if a.IsFavorite != b.IsFavorite {
			return a.IsFavorite
		}
		return strings.ToLower(a.Label) < strings.ToLower(b.Label)
	})
	return out
}
