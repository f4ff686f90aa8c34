package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexdraft/internal/domain"
	"lexdraft/internal/middleware"
	"lexdraft/internal/service"
)

// ProfileHandler handles saved profile endpoints. Every route is scoped to
// the client key set by middleware.ClientKey.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// List handles GET /api/v1/profiles
// @Summary List saved profiles
// @Description List the caller's saved profiles: default first, then favorites, then by label
// @Tags profiles
// @Produce json
// @Param X-Client-ID header string true "Client key"
// @Success 200 {object} Response{data=[]domain.SavedProfile} "Saved profiles"
// @Failure 400 {object} ErrorResponseBody "Missing client key"
// @Router /profiles [get]
func (h *ProfileHandler) List(c *gin.Context) {
	owner, err := middleware.GetClientKey(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	profiles, err := h.profileService.List(c.Request.Context(), owner)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, profiles)
}

// Create handles POST /api/v1/profiles
// @Summary Create a saved profile
// @Description The first profile becomes the default
// @Tags profiles
// @Accept json
// @Produce json
// @Param X-Client-ID header string true "Client key"
// @Param request body CreateProfileRequest true "Profile"
// @Success 201 {object} Response{data=domain.SavedProfile} "Profile created"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 422 {object} ErrorResponseBody "Label or name missing"
// @Router /profiles [post]
func (h *ProfileHandler) Create(c *gin.Context) {
	owner, err := middleware.GetClientKey(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	input := domain.ProfileInput{
		Type:       req.Type,
		Label:      req.Label,
		IsFavorite: req.IsFavorite,
		Data:       req.Data,
	}
	if !input.Complete() {
		HandleError(c, domain.ErrProfileIncomplete)
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), owner, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	if profile == nil {
		HandleError(c, domain.ErrProfileIncomplete)
		return
	}

	RespondCreated(c, profile)
}

// Default handles GET /api/v1/profiles/default
// @Summary Get the default profile
// @Tags profiles
// @Produce json
// @Param X-Client-ID header string true "Client key"
// @Success 200 {object} Response{data=domain.SavedProfile} "Default profile"
// @Failure 404 {object} ErrorResponseBody "No profiles saved"
// @Router /profiles/default [get]
func (h *ProfileHandler) Default(c *gin.Context) {
	owner, err := middleware.GetClientKey(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	profile, err := h.profileService.Default(c.Request.Context(), owner)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, profile)
}

// GetByID handles GET /api/v1/profiles/:id
// @Summary Get a saved profile
// @Tags profiles
// @Produce json
// @Param X-Client-ID header string true "Client key"
// @Param id path string true "Profile ID"
// @Success 200 {object} Response{data=domain.SavedProfile} "Profile"
// @Failure 404 {object} ErrorResponseBody "Profile not found"
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetByID(c *gin.Context) {
	owner, err := middleware.GetClientKey(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	id, ok := parseID(c, "id", "profile")
	if !ok {
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), owner, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, profile)
}

// Update handles PATCH /api/v1/profiles/:id
// @Summary Update a saved profile
// @Description Partial update; omitted fields keep their values
// @Tags profiles
// @Accept json
// @Produce json
// @Param X-Client-ID header string true "Client key"
// @Param id path string true "Profile ID"
// @Param request body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} Response{data=domain.SavedProfile} "Updated profile"
// @Failure 404 {object} ErrorResponseBody "Profile not found"
// @Failure 422 {object} ErrorResponseBody "Label or name would become empty"
// @Router /profiles/{id} [patch]
func (h *ProfileHandler) Update(c *gin.Context) {
	owner, err := middleware.GetClientKey(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	id, ok := parseID(c, "id", "profile")
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), owner, id, domain.ProfilePatch{
		Type:       req.Type,
		Label:      req.Label,
		IsFavorite: req.IsFavorite,
		Data:       req.Data,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, profile)
}

// Delete handles DELETE /api/v1/profiles/:id
// @Summary Delete a saved profile
// @Description Deleting the default promotes the first remaining profile
// @Tags profiles
// @Produce json
// @Param X-Client-ID header string true "Client key"
// @Param id path string true "Profile ID"
// @Success 200 {object} Response "Profile deleted"
// @Failure 404 {object} ErrorResponseBody "Profile not found"
// @Router /profiles/{id} [delete]
func (h *ProfileHandler) Delete(c *gin.Context) {
	owner, err := middleware.GetClientKey(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	id, ok := parseID(c, "id", "profile")
	if !ok {
		return
	}

	if err := h.profileService.Delete(c.Request.Context(), owner, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "profile deleted"})
}

// SetDefault handles PUT /api/v1/profiles/:id/default
// @Summary Make a profile the default
// @Tags profiles
// @Produce json
// @Param X-Client-ID header string true "Client key"
// @Param id path string true "Profile ID"
// @Success 200 {object} Response{data=domain.SavedProfile} "New default profile"
// @Failure 404 {object} ErrorResponseBody "Profile not found"
// @Router /profiles/{id}/default [put]
func (h *ProfileHandler) SetDefault(c *gin.Context) {
	owner, err := middleware.GetClientKey(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	id, ok := parseID(c, "id", "profile")
	if !ok {
		return
	}

	profile, err := h.profileService.SetDefault(c.Request.Context(), owner, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, profile)
}

// ToggleFavorite handles POST /api/v1/profiles/:id/favorite
// @Summary Toggle a profile's favorite flag
// @Tags profiles
// @Produce json
// @Param X-Client-ID header string true "Client key"
// @Param id path string true "Profile ID"
// @Success 200 {object} Response{data=domain.SavedProfile} "Updated profile"
// @Failure 404 {object} ErrorResponseBody "Profile not found"
// @Router /profiles/{id}/favorite [post]
func (h *ProfileHandler) ToggleFavorite(c *gin.Context) {
	owner, err := middleware.GetClientKey(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	id, ok := parseID(c, "id", "profile")
	if !ok {
		return
	}

	profile, err := h.profileService.ToggleFavorite(c.Request.Context(), owner, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, profile)
}
