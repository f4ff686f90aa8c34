package handler

import (
	"github.com/google/uuid"

	"lexdraft/internal/domain"
)

// Swagger type definitions for API documentation.
// The request types double as gin binding targets.

// --- Request Types ---

// CreateDraftRequest represents the create draft request body.
type CreateDraftRequest struct {
	Title        string          `json:"title" binding:"required" example:"Residential lease - Olaya"`
	DocumentType string          `json:"document_type" example:"lease"`
	Language     domain.Language `json:"language" example:"ar"`
}

// FillFromProfileRequest represents the fill-from-profile request body.
type FillFromProfileRequest struct {
	ProfileID uuid.UUID        `json:"profile_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Role      domain.PartyRole `json:"role" binding:"required,oneof=partyA partyB" example:"partyA"`
}

// OpenReviewRequest represents the open review request body.
type OpenReviewRequest struct {
	ExtractionID uuid.UUID       `json:"extraction_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	DraftID      *uuid.UUID      `json:"draft_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	Language     domain.Language `json:"language" example:"en"`
}

// SelectViewRequest represents the select view request body.
type SelectViewRequest struct {
	View domain.ReviewView `json:"view" binding:"required" example:"clauses"`
}

// ApplyPartyRequest represents the apply party request body.
type ApplyPartyRequest struct {
	PartyIndex *int             `json:"party_index" binding:"required" example:"0"`
	Role       domain.PartyRole `json:"role" binding:"required,oneof=partyA partyB" example:"partyB"`
}

// ApplyClauseRequest represents the apply clause request body.
type ApplyClauseRequest struct {
	ClauseID string `json:"clause_id" binding:"required" example:"clause-3"`
}

// ApplyAmountRequest represents the apply amount request body.
type ApplyAmountRequest struct {
	AmountIndex *int `json:"amount_index" binding:"required" example:"0"`
}

// CreateProfileRequest represents the create profile request body.
type CreateProfileRequest struct {
	Type       domain.PartyType   `json:"type" example:"individual"`
	Label      string             `json:"label" example:"Me"`
	IsFavorite bool               `json:"isFavorite" example:"false"`
	Data       domain.ProfileData `json:"data"`
}

// UpdateProfileRequest represents the update profile request body. Omitted
// fields are left unchanged.
type UpdateProfileRequest struct {
	Type       *domain.PartyType        `json:"type" example:"company"`
	Label      *string                  `json:"label" example:"My company"`
	IsFavorite *bool                    `json:"isFavorite" example:"true"`
	Data       *domain.ProfileDataPatch `json:"data"`
}

// --- Response Types ---

// Response is the generic success envelope used in swagger annotations.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody is the error envelope used in swagger annotations.
type ErrorResponseBody struct {
	Success bool     `json:"success" example:"false"`
	Error   APIError `json:"error"`
}

// SourceURLResponse carries a presigned URL for the original document.
type SourceURLResponse struct {
	URL string `json:"url" example:"https://bucket.s3.amazonaws.com/extractions/2024/05/..."`
}

// CopyClauseResponse reports whether a clause was copied to the session clipboard.
type CopyClauseResponse struct {
	Copied bool `json:"copied" example:"true"`
}

// ClipboardResponse is the session clipboard content.
type ClipboardResponse struct {
	Text  string `json:"text" example:"Either party may terminate this agreement with 30 days notice."`
	Empty bool   `json:"empty" example:"false"`
}

// ReviewSessionResponse describes an open review session with its active view.
type ReviewSessionResponse struct {
	ID           uuid.UUID       `json:"id"`
	ExtractionID uuid.UUID       `json:"extraction_id"`
	DraftID      *uuid.UUID      `json:"draft_id,omitempty"`
	Language     domain.Language `json:"language"`
	OpenedAt     string          `json:"opened_at" example:"2024-05-01T10:00:00Z"`
	View         interface{}     `json:"view"`
}
