package domain

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// PartyType distinguishes natural persons from legal entities.
type PartyType string

const (
	PartyTypeIndividual PartyType = "individual"
	PartyTypeCompany    PartyType = "company"
)

// ValidPartyType reports whether t is a known party type.
func ValidPartyType(t PartyType) bool {
	return t == PartyTypeIndividual || t == PartyTypeCompany
}

// PartyRole is the slot of a draft a party is applied to.
type PartyRole string

const (
	PartyRoleA PartyRole = "partyA"
	PartyRoleB PartyRole = "partyB"
)

// ValidPartyRole reports whether r names a draft party slot.
func ValidPartyRole(r PartyRole) bool {
	return r == PartyRoleA || r == PartyRoleB
}

// ReviewView is one of the mutually exclusive tabs of a review session.
type ReviewView string

const (
	ViewSummary    ReviewView = "summary"
	ViewParties    ReviewView = "parties"
	ViewFinancials ReviewView = "financials"
	ViewDates      ReviewView = "dates"
	ViewClauses    ReviewView = "clauses"
	ViewWarnings   ReviewView = "warnings"
)

// ReviewViews lists every view in tab order.
var ReviewViews = []ReviewView{
	ViewSummary, ViewParties, ViewFinancials, ViewDates, ViewClauses, ViewWarnings,
}

// ValidReviewView reports whether v is a known view.
func ValidReviewView(v ReviewView) bool {
	for _, known := range ReviewViews {
		if v == known {
			return true
		}
	}
	return false
}

// ClauseImportance grades how significant an extracted clause is.
// Only ImportanceCritical changes rendering.
type ClauseImportance string

const (
	ImportanceCritical ClauseImportance = "critical"
	ImportanceHigh     ClauseImportance = "high"
	ImportanceMedium   ClauseImportance = "medium"
	ImportanceLow      ClauseImportance = "low"
)

// ProfileBackend selects where saved profiles are persisted.
type ProfileBackend string

const (
	ProfileBackendSQLite   ProfileBackend = "sqlite"
	ProfileBackendPostgres ProfileBackend = "postgres"
	ProfileBackendMemory   ProfileBackend = "memory"
)
