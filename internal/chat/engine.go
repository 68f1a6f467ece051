package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avishek322/Ai-Resume-Builder/internal/llm"
	"github.com/avishek322/Ai-Resume-Builder/internal/resume"
	"github.com/avishek322/Ai-Resume-Builder/internal/shared/metrics"
	"github.com/avishek322/Ai-Resume-Builder/internal/shared/telemetry"
)

const (
	greetingMessage       = "Hello! I'm your AI resume assistant. You can describe the resume you want, or upload an image of a template you like, and I'll help you build it.\n\nHow can I help you get started?"
	malformedReplyApology = "Sorry, I encountered an issue. Please try rephrasing your message."
	connectivityApology   = "I'm sorry, I seem to be having a little trouble connecting. Please check your connection and try again in a moment."
	sharedResumeMessage   = "Loaded a shared resume. You can start editing!"
)

// Engine turns one user message into an updated snapshot, an appended
// transcript, and possibly regenerated HTML. It owns all session mutation.
type Engine struct {
	LLM llm.Client
}

// NewEngine constructs an Engine.
func NewEngine(client llm.Client) *Engine {
	return &Engine{LLM: client}
}

// NewSession opens a fresh session with an empty snapshot and a greeting.
func (e *Engine) NewSession(ctx context.Context, userID string) (*Session, error) {
	chat, err := e.LLM.StartChat(ctx)
	if err != nil {
		return nil, fmt.Errorf("start chat: %w", err)
	}
	s := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
		data:      resume.New(),
		template:  resume.TemplateClassic,
		chat:      chat,
	}
	s.append(Message{Role: RoleAssistant, Content: greetingMessage})
	return s, nil
}

// Turn processes one user turn. Side effects are strictly ordered: user
// transcript append, model call, assistant transcript append, image/field/
// template mutation, then conditional generation. Model and parse failures
// degrade to a single apology message with no state mutation; the error
// return is reserved for caller mistakes (bad attachment, concurrent turn).
func (e *Engine) Turn(ctx context.Context, s *Session, message, imageDataURL string) error {
	var image *llm.Image
	if imageDataURL != "" {
		img, err := llm.ParseDataURL(imageDataURL)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidImage, err)
		}
		image = img
	}

	if err := s.beginTurn(); err != nil {
		return err
	}
	defer s.endTurn()
	metrics.IncTurn()

	s.append(Message{Role: RoleUser, Content: message, Image: imageDataURL})

	s.mu.Lock()
	snapshot := s.data
	chat := s.chat
	s.mu.Unlock()

	prompt, err := turnPrompt(snapshot, message, image != nil)
	if err != nil {
		return err
	}

	raw, err := chat.Send(ctx, prompt, image)
	if err != nil {
		telemetry.Error("chat.send_failed", map[string]any{
			"session_id": s.ID,
			"error":      err.Error(),
		})
		s.append(Message{Role: RoleAssistant, Content: connectivityApology})
		return nil
	}

	reply, err := parseReply(raw)
	if err != nil {
		metrics.IncMalformedReply()
		telemetry.Error("chat.malformed_reply", map[string]any{
			"session_id": s.ID,
			"error":      err.Error(),
		})
		s.append(Message{Role: RoleAssistant, Content: malformedReplyApology})
		return nil
	}

	if reply.Response != "" {
		s.append(Message{Role: RoleAssistant, Content: reply.Response})
	}

	s.mu.Lock()
	if image != nil {
		switch reply.ImagePurpose {
		case ImageProfile:
			s.data.ProfilePicture = imageDataURL
		case ImageTemplate:
			s.customTemplate = imageDataURL
			s.template = resume.TemplateCustom
		}
	}
	if !reply.UpdatedFields.IsZero() {
		s.data.Apply(reply.UpdatedFields)
	}
	if reply.TemplateID != "" && reply.TemplateID != s.template {
		s.template = reply.TemplateID
		if reply.TemplateID.BuiltIn() {
			s.customTemplate = ""
		}
	}
	data := s.data
	template := s.template
	customTemplate := s.customTemplate
	currentHTML := s.html
	s.mu.Unlock()

	switch reply.Action {
	case ActionGenerate:
		html, err := e.generate(ctx, data, template, customTemplate)
		if err != nil {
			e.reportGenerationFailure(s, err)
			return nil
		}
		s.setHTML(html)
	case ActionRefine:
		base := currentHTML
		if base == "" {
			generated, err := e.generate(ctx, data, template, customTemplate)
			if err != nil {
				e.reportGenerationFailure(s, err)
				return nil
			}
			base = generated
		}
		refined, err := e.LLM.RefineResume(ctx, base, message, imageFromDataURL(customTemplate))
		if err != nil {
			e.reportGenerationFailure(s, err)
			return nil
		}
		s.setHTML(refined)
	}

	return nil
}

// generate invokes the generation client with the resolved template state.
func (e *Engine) generate(ctx context.Context, data resume.Data, template resume.TemplateID, customTemplate string) (string, error) {
	var image *llm.Image
	if template == resume.TemplateCustom {
		image = imageFromDataURL(customTemplate)
	}
	started := metrics.NowMillis()
	html, err := e.LLM.GenerateResume(ctx, data, template, image)
	if err == nil {
		metrics.ObserveGenerationDurationMs(metrics.NowMillis() - started)
	}
	return html, err
}

func (e *Engine) reportGenerationFailure(s *Session, err error) {
	metrics.IncGenerationFailed()
	telemetry.Error("chat.generation_failed", map[string]any{
		"session_id": s.ID,
		"error":      err.Error(),
	})
	s.append(Message{Role: RoleAssistant, Content: connectivityApology})
}

func (s *Session) setHTML(html string) {
	s.mu.Lock()
	s.html = html
	s.mu.Unlock()
}

// LoadSaved replaces the live state wholesale with a saved resume and resets
// the transcript to a single informational message.
func (e *Engine) LoadSaved(s *Session, name string, data resume.Data, template resume.TemplateID, html, customTemplate string) error {
	if err := s.beginTurn(); err != nil {
		return err
	}
	defer s.endTurn()

	data.Normalize()
	s.mu.Lock()
	s.data = data
	s.template = template
	s.html = html
	s.customTemplate = customTemplate
	s.messages = nil
	s.mu.Unlock()
	s.append(Message{
		Role:    RoleAssistant,
		Content: fmt.Sprintf("I've loaded your resume %q. Let me know what changes you'd like to make.", name),
	})
	return nil
}

// NewSessionFromShare opens a session from a decoded share payload and
// immediately generates HTML for it.
func (e *Engine) NewSessionFromShare(ctx context.Context, userID string, data resume.Data, template resume.TemplateID, customTemplate string) (*Session, error) {
	chat, err := e.LLM.StartChat(ctx)
	if err != nil {
		return nil, fmt.Errorf("start chat: %w", err)
	}
	data.Normalize()
	s := &Session{
		ID:             uuid.NewString(),
		UserID:         userID,
		CreatedAt:      time.Now().UTC(),
		data:           data,
		template:       template,
		customTemplate: customTemplate,
		chat:           chat,
	}
	s.append(Message{Role: RoleAssistant, Content: sharedResumeMessage})

	html, err := e.generate(ctx, data, template, customTemplate)
	if err != nil {
		// The shared state itself is intact; surface the failure in the
		// transcript like any other generation fault.
		e.reportGenerationFailure(s, err)
		return s, nil
	}
	s.setHTML(html)
	return s, nil
}

// turnPrompt wraps the fresh snapshot and the literal user message for the
// stateful chat session.
func turnPrompt(data resume.Data, message string, hasImage bool) (string, error) {
	snapshot, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	userMessage := message
	if hasImage {
		userMessage += " [USER UPLOADED AN IMAGE]"
	}
	return fmt.Sprintf(`Here is the current state of the resume data we've collected so far. An empty string "" or empty array [] means the data hasn't been provided yet.
%s

Based on this data and my latest message below, please respond with a single JSON object according to your instructions.

My message: %q`, snapshot, userMessage), nil
}

func imageFromDataURL(dataURL string) *llm.Image {
	if dataURL == "" {
		return nil
	}
	img, err := llm.ParseDataURL(dataURL)
	if err != nil {
		return nil
	}
	return img
}
