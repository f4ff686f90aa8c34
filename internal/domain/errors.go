package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")

	ErrExtractionNotFound = errors.New("extraction record not found")
	ErrExtractionFailed   = errors.New("document extraction failed")
	ErrExtractionBusy     = errors.New("extraction providers are rate limited")
	ErrInvalidExtraction  = errors.New("extraction output does not match expected format")
	ErrSourceUnavailable  = errors.New("raw source document is no longer available")

	ErrDraftNotFound    = errors.New("draft not found")
	ErrInvalidPartyRole = errors.New("invalid party role")

	ErrReviewNotFound   = errors.New("review session not found")
	ErrInvalidView      = errors.New("invalid review view")
	ErrClauseNotFound   = errors.New("clause not found")
	ErrPartyNotFound    = errors.New("party not found")
	ErrAmountNotFound   = errors.New("amount not found")
	ErrDatesUnavailable = errors.New("no start date to apply")

	ErrMissingClientKey     = errors.New("missing client key")
	ErrProfileNotFound      = errors.New("saved profile not found")
	ErrProfileIncomplete    = errors.New("profile label and name are required")
	ErrProfilePersistFailed = errors.New("saving profiles to storage failed")
)
