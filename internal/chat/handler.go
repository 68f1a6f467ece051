package chat

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avishek322/Ai-Resume-Builder/internal/export"
	"github.com/avishek322/Ai-Resume-Builder/internal/extract"
	"github.com/avishek322/Ai-Resume-Builder/internal/preview"
	"github.com/avishek322/Ai-Resume-Builder/internal/saved"
	"github.com/avishek322/Ai-Resume-Builder/internal/share"
	"github.com/avishek322/Ai-Resume-Builder/internal/shared/metrics"
	"github.com/avishek322/Ai-Resume-Builder/internal/shared/server/middleware"
	"github.com/avishek322/Ai-Resume-Builder/internal/shared/server/respond"
	"github.com/avishek322/Ai-Resume-Builder/internal/shared/telemetry"
)

// Handler wires chat session HTTP endpoints to the engine.
type Handler struct {
	Engine *Engine
	Store  *Store
	Saved  *saved.Service
	PDF    export.Renderer
}

// NewHandler constructs a Handler.
func NewHandler(engine *Engine, store *Store, savedSvc *saved.Service, pdf export.Renderer) *Handler {
	return &Handler{Engine: engine, Store: store, Saved: savedSvc, PDF: pdf}
}

// RegisterRoutes attaches session routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.create)
	rg.POST("/sessions/from-share", h.createFromShare)
	rg.GET("/sessions/:id", h.get)
	rg.POST("/sessions/:id/messages", h.message)
	rg.POST("/sessions/:id/import", h.importResume)
	rg.POST("/sessions/:id/load", h.load)
	rg.GET("/sessions/:id/preview", h.preview)
	rg.GET("/sessions/:id/share", h.shareToken)
	rg.GET("/sessions/:id/export/pdf", h.exportPDF)
	rg.GET("/sessions/:id/export/text", h.exportText)
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	s, err := h.Engine.NewSession(c.Request.Context(), userID)
	if err != nil {
		telemetry.Error("session.create_failed", map[string]any{"error": err.Error()})
		respond.Error(c, http.StatusBadGateway, "llm_unavailable", "could not start a chat session", nil)
		return
	}
	h.Store.Put(s)
	c.Set("sessionId", s.ID)

	respond.JSON(c, http.StatusCreated, s.State())
}

type fromShareRequest struct {
	Token string `json:"token"`
}

func (h *Handler) createFromShare(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req fromShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	payload, err := share.Decode(req.Token)
	if err != nil {
		// A broken share link degrades to a fresh session, the same way the
		// editor ignores a corrupt URL fragment.
		telemetry.Warn("share.token_ignored", map[string]any{"error": err.Error()})
		h.create(c)
		return
	}

	s, err := h.Engine.NewSessionFromShare(c.Request.Context(), userID, payload.ResumeData, payload.TemplateID, payload.CustomTemplateImage)
	if err != nil {
		telemetry.Error("session.create_failed", map[string]any{"error": err.Error()})
		respond.Error(c, http.StatusBadGateway, "llm_unavailable", "could not start a chat session", nil)
		return
	}
	h.Store.Put(s)
	c.Set("sessionId", s.ID)

	respond.JSON(c, http.StatusCreated, s.State())
}

func (h *Handler) get(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	respond.OK(c, s.State())
}

type messageRequest struct {
	Message      string `json:"message"`
	ImageDataURL string `json:"imageDataUrl"`
}

func (h *Handler) message(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Message == "" && req.ImageDataURL == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "message or image is required", nil)
		return
	}

	if err := h.Engine.Turn(c.Request.Context(), s, req.Message, req.ImageDataURL); err != nil {
		switch {
		case errors.Is(err, ErrTurnInFlight):
			respond.Error(c, http.StatusConflict, "turn_in_flight", "a previous message is still being processed", nil)
		case errors.Is(err, ErrInvalidImage):
			respond.Error(c, http.StatusBadRequest, "invalid_image", "attached image must be a base64 image data URL", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process message", nil)
		}
		return
	}

	respond.OK(c, s.State())
}

func (h *Handler) importResume(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "a file upload is required", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read upload", nil)
		return
	}

	text, err := extract.ResumeText(c.Request.Context(), data, header.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedType):
			respond.Error(c, http.StatusBadRequest, "unsupported_type", "only PDF resumes can be imported", nil)
		case errors.Is(err, extract.ErrNoText):
			respond.Error(c, http.StatusBadRequest, "no_text", "the PDF contains no extractable text", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		}
		return
	}

	if err := h.Engine.Turn(c.Request.Context(), s, importMessage(text), ""); err != nil {
		if errors.Is(err, ErrTurnInFlight) {
			respond.Error(c, http.StatusConflict, "turn_in_flight", "a previous message is still being processed", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to import resume", nil)
		return
	}

	respond.OK(c, s.State())
}

type loadRequest struct {
	ResumeID string `json:"resumeId"`
}

func (h *Handler) load(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req loadRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ResumeID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resumeId is required", nil)
		return
	}

	sr, err := h.Saved.Get(c.Request.Context(), userID, req.ResumeID)
	if err != nil {
		if errors.Is(err, saved.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "saved resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load resume", nil)
		return
	}

	if err := h.Engine.LoadSaved(s, sr.Name, sr.ResumeData, sr.TemplateID, sr.HTMLContent, sr.CustomTemplateImage); err != nil {
		respond.Error(c, http.StatusConflict, "turn_in_flight", "a previous message is still being processed", nil)
		return
	}

	respond.OK(c, s.State())
}

func (h *Handler) preview(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	html, err := h.previewHTML(s)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render preview", nil)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *Handler) shareToken(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	state := s.State()
	token, err := share.Encode(share.Payload{
		ResumeData:          state.ResumeData,
		TemplateID:          state.TemplateID,
		CustomTemplateImage: state.CustomTemplateImage,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to encode share token", nil)
		return
	}

	respond.OK(c, gin.H{"token": token})
}

func (h *Handler) exportPDF(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	html, ok := h.exportSource(c, s)
	if !ok {
		return
	}

	pdfBytes, err := h.PDF.RenderPDF(c.Request.Context(), html)
	if err != nil {
		telemetry.Error("export.pdf_failed", map[string]any{
			"session_id": s.ID,
			"error":      err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, "render_failed", "failed to render PDF", nil)
		return
	}

	metrics.IncPDFExport()
	c.Header("Content-Disposition", `attachment; filename="resume.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (h *Handler) exportText(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	html, ok := h.exportSource(c, s)
	if !ok {
		return
	}

	c.Header("Content-Disposition", `attachment; filename="resume.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(export.PlainText(html)))
}

// exportSource picks the generated HTML, falling back to the structural
// preview when nothing has been generated yet. An empty snapshot with no
// HTML has nothing worth exporting.
func (h *Handler) exportSource(c *gin.Context, s *Session) (string, bool) {
	state := s.State()
	if state.HTML != "" {
		return state.HTML, true
	}
	if state.ResumeData.Empty() {
		respond.Error(c, http.StatusConflict, "nothing_generated", "generate a resume before exporting", nil)
		return "", false
	}
	html, err := preview.Render(state.ResumeData, state.TemplateID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render preview", nil)
		return "", false
	}
	return html, true
}

func (h *Handler) previewHTML(s *Session) (string, error) {
	state := s.State()
	if state.HTML != "" {
		return state.HTML, nil
	}
	return preview.Render(state.ResumeData, state.TemplateID)
}

// session resolves the :id path param to an owned session or writes a 404.
func (h *Handler) session(c *gin.Context) (*Session, bool) {
	userID := middleware.UserIDFromContext(c)
	s, err := h.Store.Get(c.Param("id"), userID)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		return nil, false
	}
	c.Set("sessionId", s.ID)
	return s, true
}

// importMessage wraps extracted resume text as a normal collection turn so
// the model maps it onto the snapshot fields itself.
func importMessage(text string) string {
	return fmt.Sprintf("I'm importing my existing resume. Here is its full text. Please extract my details into the resume fields and tell me what you found:\n\n%s", text)
}
