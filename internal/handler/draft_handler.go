package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexdraft/internal/middleware"
	"lexdraft/internal/service"
)

// DraftHandler handles draft endpoints.
type DraftHandler struct {
	draftService service.DraftService
}

// NewDraftHandler creates a new DraftHandler.
func NewDraftHandler(draftService service.DraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

// Create handles POST /api/v1/drafts
// @Summary Create a draft
// @Description Create an empty contract draft that review sessions can apply items to
// @Tags drafts
// @Accept json
// @Produce json
// @Param request body CreateDraftRequest true "Draft details"
// @Success 201 {object} Response{data=domain.Draft} "Draft created"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Router /drafts [post]
func (h *DraftHandler) Create(c *gin.Context) {
	var req CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	draft, err := h.draftService.Create(c.Request.Context(), service.CreateDraftInput{
		Title:        req.Title,
		DocumentType: req.DocumentType,
		Language:     req.Language,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, draft)
}

// GetByID handles GET /api/v1/drafts/:id
// @Summary Get a draft
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} Response{data=domain.Draft} "Draft"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Draft not found"
// @Router /drafts/{id} [get]
func (h *DraftHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id", "draft")
	if !ok {
		return
	}

	draft, err := h.draftService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, draft)
}

// Delete handles DELETE /api/v1/drafts/:id
// @Summary Delete a draft
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} Response "Draft deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Router /drafts/{id} [delete]
func (h *DraftHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "draft")
	if !ok {
		return
	}

	if err := h.draftService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "draft deleted"})
}

// FillFromProfile handles POST /api/v1/drafts/:id/fill-from-profile
// @Summary Fill a draft party from a saved profile
// @Tags drafts
// @Accept json
// @Produce json
// @Param X-Client-ID header string true "Client key owning the saved profiles"
// @Param id path string true "Draft ID"
// @Param request body FillFromProfileRequest true "Profile and target role"
// @Success 200 {object} Response{data=domain.Draft} "Updated draft"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 404 {object} ErrorResponseBody "Draft or profile not found"
// @Router /drafts/{id}/fill-from-profile [post]
func (h *DraftHandler) FillFromProfile(c *gin.Context) {
	owner, err := middleware.GetClientKey(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	id, ok := parseID(c, "id", "draft")
	if !ok {
		return
	}

	var req FillFromProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	draft, err := h.draftService.FillFromProfile(c.Request.Context(), id, owner, req.ProfileID, req.Role)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, draft)
}
