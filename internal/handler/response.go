package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lexdraft/internal/domain"
	"lexdraft/internal/extractor"
	"lexdraft/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: pdf, jpg, png"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "file upload to storage failed"
	case errors.Is(err, domain.ErrExtractionNotFound):
		return http.StatusNotFound, "EXTRACTION_NOT_FOUND", "extraction record not found"
	case errors.Is(err, domain.ErrExtractionBusy):
		return http.StatusTooManyRequests, "EXTRACTION_RATE_LIMITED", "extraction providers are busy; retry later"
	case errors.Is(err, domain.ErrExtractionFailed):
		return http.StatusBadGateway, "EXTRACTION_FAILED", "document extraction failed"
	case errors.Is(err, domain.ErrInvalidExtraction):
		return http.StatusBadGateway, "INVALID_EXTRACTION", "extraction output does not match expected format"
	case errors.Is(err, domain.ErrSourceUnavailable):
		return http.StatusGone, "SOURCE_UNAVAILABLE", "the original document is no longer available"
	case errors.Is(err, domain.ErrDraftNotFound):
		return http.StatusNotFound, "DRAFT_NOT_FOUND", "draft not found"
	case errors.Is(err, domain.ErrInvalidPartyRole):
		return http.StatusBadRequest, "INVALID_PARTY_ROLE", "invalid party role; allowed: partyA, partyB"
	case errors.Is(err, domain.ErrReviewNotFound):
		return http.StatusNotFound, "REVIEW_NOT_FOUND", "review session not found or expired"
	case errors.Is(err, domain.ErrInvalidView):
		return http.StatusBadRequest, "INVALID_VIEW", "invalid view; allowed: summary, parties, financials, dates, clauses, warnings"
	case errors.Is(err, domain.ErrPartyNotFound):
		return http.StatusNotFound, "PARTY_NOT_FOUND", "party not found"
	case errors.Is(err, domain.ErrClauseNotFound):
		return http.StatusNotFound, "CLAUSE_NOT_FOUND", "clause not found"
	case errors.Is(err, domain.ErrAmountNotFound):
		return http.StatusNotFound, "AMOUNT_NOT_FOUND", "amount not found"
	case errors.Is(err, domain.ErrDatesUnavailable):
		return http.StatusUnprocessableEntity, "DATES_UNAVAILABLE", "the document has no start date to apply"
	case errors.Is(err, domain.ErrMissingClientKey):
		return http.StatusBadRequest, "MISSING_CLIENT_KEY", "a valid X-Client-ID header is required"
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, "PROFILE_NOT_FOUND", "saved profile not found"
	case errors.Is(err, domain.ErrProfileIncomplete):
		return http.StatusUnprocessableEntity, "PROFILE_INCOMPLETE", "profile label and name are required"
	case errors.Is(err, domain.ErrProfilePersistFailed):
		return http.StatusInternalServerError, "PROFILE_PERSIST_FAILED", "saving profiles failed; changes were not stored"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		middleware.LoggerFrom(c).Error("internal error", zap.Int("status", status), zap.Error(err))
	}
	var rlErr *extractor.RateLimitError
	if errors.As(err, &rlErr) {
		c.Header("Retry-After", strconv.Itoa(int(rlErr.RetryAfter.Seconds())))
	}
	RespondError(c, status, code, msg)
}

// parseID parses the named path parameter as a UUID. Returns false if it is
// malformed (error response already written).
func parseID(c *gin.Context, param, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+what+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// requestLanguage resolves the display language from the "language" query
// parameter, then the Accept-Language header, then fallback.
func requestLanguage(c *gin.Context, fallback domain.Language) domain.Language {
	if v := c.Query("language"); v != "" {
		return domain.ParseLanguage(v)
	}
	if v := c.GetHeader("Accept-Language"); v != "" {
		return domain.ParseLanguage(v)
	}
	if fallback != "" {
		return fallback
	}
	return domain.LanguageEnglish
}

func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
