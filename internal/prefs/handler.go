package prefs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avishek322/Ai-Resume-Builder/internal/shared/server/middleware"
	"github.com/avishek322/Ai-Resume-Builder/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches preference routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/preferences/theme", h.getTheme)
	rg.PUT("/preferences/theme", h.putTheme)
}

func (h *Handler) getTheme(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	theme, err := h.Svc.Theme(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch theme", nil)
		return
	}

	respond.OK(c, gin.H{"theme": theme})
}

type putThemeRequest struct {
	Theme string `json:"theme"`
}

func (h *Handler) putTheme(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req putThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	theme, err := h.Svc.SetTheme(c.Request.Context(), userID, req.Theme)
	if err != nil {
		if errors.Is(err, ErrInvalidTheme) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "theme must be light or dark", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store theme", nil)
		return
	}

	respond.OK(c, gin.H{"theme": theme})
}
