package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"riskscreen_backend/internal/services"
	"riskscreen_backend/internal/services/dto"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	profile := rg.Group("/profile")
	profile.Use(authRequired)
	{
		profile.GET("", h.Get)
		profile.PUT("", h.Update)
	}
}

// Get returns the caller's profile; 404 until it has been completed.
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.Get(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// Update completes or edits the caller's profile (created lazily).
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.Update(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
