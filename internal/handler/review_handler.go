package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lexdraft/internal/domain"
	"lexdraft/internal/review"
	"lexdraft/internal/service"
)

// ReviewHandler handles review session endpoints.
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func sessionResponse(sess *service.ReviewSession, vm review.ViewModel) ReviewSessionResponse {
	return ReviewSessionResponse{
		ID:           sess.ID,
		ExtractionID: sess.ExtractionID,
		DraftID:      sess.DraftID,
		Language:     sess.Surface.Language(),
		OpenedAt:     sess.OpenedAt.Format(time.RFC3339),
		View:         vm,
	}
}

// Open handles POST /api/v1/reviews
// @Summary Open a review session
// @Description Open a review over an extraction record. With a draft_id, apply actions merge into that draft.
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body OpenReviewRequest true "Review target"
// @Success 201 {object} Response{data=ReviewSessionResponse} "Review session with its summary view"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 404 {object} ErrorResponseBody "Extraction or draft not found"
// @Router /reviews [post]
func (h *ReviewHandler) Open(c *gin.Context) {
	var req OpenReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	lang := req.Language
	if lang == "" {
		lang = requestLanguage(c, "")
	}

	ctx := c.Request.Context()
	sess, err := h.reviewService.Open(ctx, service.OpenReviewInput{
		ExtractionID: req.ExtractionID,
		DraftID:      req.DraftID,
		Language:     lang,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	vm, err := h.reviewService.RenderActive(ctx, sess.ID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, sessionResponse(sess, vm))
}

// Get handles GET /api/v1/reviews/:id
// @Summary Get a review session
// @Description Returns the session with its active view rendered
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} Response{data=ReviewSessionResponse} "Review session"
// @Failure 404 {object} ErrorResponseBody "Review not found or expired"
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "review")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	sess, err := h.reviewService.Get(ctx, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	vm, err := h.reviewService.RenderActive(ctx, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, sessionResponse(sess, vm))
}

// Close handles DELETE /api/v1/reviews/:id
// @Summary Close a review session
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} Response "Review closed"
// @Failure 404 {object} ErrorResponseBody "Review not found or expired"
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Close(c *gin.Context) {
	id, ok := parseID(c, "id", "review")
	if !ok {
		return
	}

	if err := h.reviewService.Close(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "review closed"})
}

// SelectView handles PUT /api/v1/reviews/:id/view
// @Summary Switch the active view
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body SelectViewRequest true "View to activate"
// @Success 200 {object} Response{data=review.ViewModel} "Rendered view"
// @Failure 400 {object} ErrorResponseBody "Invalid view"
// @Failure 404 {object} ErrorResponseBody "Review not found or expired"
// @Router /reviews/{id}/view [put]
func (h *ReviewHandler) SelectView(c *gin.Context) {
	id, ok := parseID(c, "id", "review")
	if !ok {
		return
	}
	var req SelectViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	vm, err := h.reviewService.SelectView(c.Request.Context(), id, req.View)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, vm)
}

// RenderView handles GET /api/v1/reviews/:id/views/:view
// @Summary Render one view without changing the active view
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Param view path string true "summary, parties, financials, dates, clauses or warnings"
// @Success 200 {object} Response{data=review.ViewModel} "Rendered view"
// @Failure 400 {object} ErrorResponseBody "Invalid view"
// @Failure 404 {object} ErrorResponseBody "Review not found or expired"
// @Router /reviews/{id}/views/{view} [get]
func (h *ReviewHandler) RenderView(c *gin.Context) {
	id, ok := parseID(c, "id", "review")
	if !ok {
		return
	}

	vm, err := h.reviewService.Render(c.Request.Context(), id, domain.ReviewView(c.Param("view")))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, vm)
}

// ApplyParty handles POST /api/v1/reviews/:id/apply/party
// @Summary Apply an extracted party to the draft
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body ApplyPartyRequest true "Party index and draft role"
// @Success 200 {object} Response "Party applied"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 404 {object} ErrorResponseBody "Review or party not found"
// @Router /reviews/{id}/apply/party [post]
func (h *ReviewHandler) ApplyParty(c *gin.Context) {
	id, ok := parseID(c, "id", "review")
	if !ok {
		return
	}
	var req ApplyPartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := h.reviewService.ApplyParty(c.Request.Context(), id, *req.PartyIndex, req.Role); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "party applied"})
}

// ApplyClause handles POST /api/v1/reviews/:id/apply/clause
// @Summary Apply an extracted clause to the draft
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body ApplyClauseRequest true "Clause ID"
// @Success 200 {object} Response "Clause applied"
// @Failure 404 {object} ErrorResponseBody "Review or clause not found"
// @Router /reviews/{id}/apply/clause [post]
func (h *ReviewHandler) ApplyClause(c *gin.Context) {
	id, ok := parseID(c, "id", "review")
	if !ok {
		return
	}
	var req ApplyClauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := h.reviewService.ApplyClause(c.Request.Context(), id, req.ClauseID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "clause applied"})
}

// ApplyAmount handles POST /api/v1/reviews/:id/apply/amount
// @Summary Apply an extracted amount to the draft
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body ApplyAmountRequest true "Amount index"
// @Success 200 {object} Response "Amount applied"
// @Failure 404 {object} ErrorResponseBody "Review or amount not found"
// @Router /reviews/{id}/apply/amount [post]
func (h *ReviewHandler) ApplyAmount(c *gin.Context) {
	id, ok := parseID(c, "id", "review")
	if !ok {
		return
	}
	var req ApplyAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := h.reviewService.ApplyAmount(c.Request.Context(), id, *req.AmountIndex); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "amount applied"})
}

// ApplyDates handles POST /api/v1/reviews/:id/apply/dates
// @Summary Apply the extracted start and end dates to the draft
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} Response "Dates applied"
// @Failure 404 {object} ErrorResponseBody "Review not found"
// @Failure 422 {object} ErrorResponseBody "No start date extracted"
// @Router /reviews/{id}/apply/dates [post]
func (h *ReviewHandler) ApplyDates(c *gin.Context) {
	id, ok := parseID(c, "id", "review")
	if !ok {
		return
	}

	if err := h.reviewService.ApplyDates(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "dates applied"})
}

// CopyClause handles POST /api/v1/reviews/:id/clauses/:clauseId/copy
// @Summary Copy a clause's text to the session clipboard
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Param clauseId path string true "Clause ID"
// @Success 200 {object} Response{data=CopyClauseResponse} "Copy result"
// @Failure 404 {object} ErrorResponseBody "Review or clause not found"
// @Router /reviews/{id}/clauses/{clauseId}/copy [post]
func (h *ReviewHandler) CopyClause(c *gin.Context) {
	id, ok := parseID(c, "id", "review")
	if !ok {
		return
	}

	copied, err := h.reviewService.CopyClause(c.Request.Context(), id, c.Param("clauseId"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, CopyClauseResponse{Copied: copied})
}

// Clipboard handles GET /api/v1/reviews/:id/clipboard
// @Summary Read the session clipboard
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} Response{data=ClipboardResponse} "Clipboard content"
// @Failure 404 {object} ErrorResponseBody "Review not found"
// @Router /reviews/{id}/clipboard [get]
func (h *ReviewHandler) Clipboard(c *gin.Context) {
	id, ok := parseID(c, "id", "review")
	if !ok {
		return
	}

	text, ok, err := h.reviewService.Clipboard(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ClipboardResponse{Text: text, Empty: !ok})
}
