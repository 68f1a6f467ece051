package saved

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avishek322/Ai-Resume-Builder/internal/resume"
	"github.com/avishek322/Ai-Resume-Builder/internal/shared/server/middleware"
	"github.com/avishek322/Ai-Resume-Builder/internal/shared/server/respond"
)

// SessionSnapshot is the live state captured by a save.
type SessionSnapshot struct {
	ResumeData          resume.Data
	TemplateID          resume.TemplateID
	HTMLContent         string
	CustomTemplateImage string
}

// SessionSource exposes live session state to the save operation.
type SessionSource interface {
	Snapshot(sessionID, userID string) (SessionSnapshot, error)
}

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc      *Service
	Sessions SessionSource
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, sessions SessionSource) *Handler {
	return &Handler{Svc: svc, Sessions: sessions}
}

// RegisterRoutes attaches saved-resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.save)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.DELETE("/resumes/:id", h.remove)
}

type saveRequest struct {
	SessionID string `json:"sessionId"`
	Name      string `json:"name"`
}

func (h *Handler) save(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.SessionID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "sessionId is required", nil)
		return
	}

	snap, err := h.Sessions.Snapshot(req.SessionID, userID)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		return
	}

	sr, err := h.Svc.Save(c.Request.Context(), userID, req.Name, snap.ResumeData, snap.TemplateID, snap.HTMLContent, snap.CustomTemplateImage)
	if err != nil {
		switch {
		case errors.Is(err, ErrNothingGenerated):
			respond.Error(c, http.StatusConflict, "nothing_generated", "generate a resume before saving", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "name is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save resume", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(sr, true))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	resumes, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		return
	}

	resp := make([]gin.H, 0, len(resumes))
	for _, sr := range resumes {
		resp = append(resp, toResponse(sr, false))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	sr, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "saved resume not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(sr, true))
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "saved resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete resume", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// toResponse maps a SavedResume to its API shape. The full payload (data,
// HTML, images) is heavy, so list responses carry metadata only.
func toResponse(sr SavedResume, full bool) gin.H {
	resp := gin.H{
		"resumeId":   sr.ID,
		"name":       sr.Name,
		"savedAt":    sr.SavedAt.Format(time.RFC3339),
		"templateId": sr.TemplateID,
	}
	if full {
		resp["resumeData"] = sr.ResumeData
		resp["htmlContent"] = sr.HTMLContent
		if sr.CustomTemplateImage != "" {
			resp["customTemplateImage"] = sr.CustomTemplateImage
		}
	}
	return resp
}
