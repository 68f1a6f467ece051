package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/avishek322/Ai-Resume-Builder/internal/llm"
	"github.com/avishek322/Ai-Resume-Builder/internal/resume"
)

const (
	// DefaultTextModel handles chat turns and text-only generation.
	DefaultTextModel = "gemini-2.5-flash"
	// DefaultImageModel handles requests that carry a reference template image.
	DefaultImageModel = "gemini-2.5-flash-image"
)

// Client implements llm.Client on the Gemini API.
type Client struct {
	genai      *genai.Client
	textModel  string
	imageModel string
}

// NewClient constructs a Gemini-backed client. Empty model names fall back
// to the defaults.
func NewClient(ctx context.Context, apiKey, textModel, imageModel string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(textModel) == "" {
		textModel = DefaultTextModel
	}
	if strings.TrimSpace(imageModel) == "" {
		imageModel = DefaultImageModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{genai: client, textModel: textModel, imageModel: imageModel}, nil
}

// StartChat opens a server-side chat session primed with the assistant
// system instruction. The remote service retains the turn history.
func (c *Client) StartChat(ctx context.Context) (llm.ChatSession, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(chatSystemInstruction, genai.RoleUser),
	}
	chat, err := c.genai.Chats.Create(ctx, c.textModel, cfg, nil)
	if err != nil {
		return nil, fmt.Errorf("create chat session: %w", err)
	}
	return &chatSession{chat: chat}, nil
}

// GenerateResume produces the full resume HTML for the snapshot.
func (c *Client) GenerateResume(ctx context.Context, data resume.Data, template resume.TemplateID, image *llm.Image) (string, error) {
	var (
		model string
		parts []*genai.Part
	)
	if template == resume.TemplateCustom && image != nil {
		prompt, err := customGeneratePrompt(data)
		if err != nil {
			return "", err
		}
		model = c.imageModel
		parts = []*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(image.Data, image.MIMEType),
		}
	} else {
		prompt, err := generatePrompt(data, template)
		if err != nil {
			return "", err
		}
		model = c.textModel
		parts = []*genai.Part{genai.NewPartFromText(prompt)}
	}

	return c.generate(ctx, model, parts)
}

// RefineResume returns the complete replacement HTML for a change request.
func (c *Client) RefineResume(ctx context.Context, currentHTML, request string, image *llm.Image) (string, error) {
	model := c.textModel
	parts := []*genai.Part{genai.NewPartFromText(refinePrompt(currentHTML, request, image != nil))}
	if image != nil {
		model = c.imageModel
		parts = append(parts, genai.NewPartFromBytes(image.Data, image.MIMEType))
	}
	return c.generate(ctx, model, parts)
}

func (c *Client) generate(ctx context.Context, model string, parts []*genai.Part) (string, error) {
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	resp, err := c.genai.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	out := llm.StripCodeFence(resp.Text())
	if out == "" {
		return "", llm.ErrEmptyReply
	}
	return out, nil
}

type chatSession struct {
	chat *genai.Chat
}

func (s *chatSession) Send(ctx context.Context, text string, image *llm.Image) (string, error) {
	parts := []genai.Part{{Text: text}}
	if image != nil {
		parts = append(parts, genai.Part{
			InlineData: &genai.Blob{MIMEType: image.MIMEType, Data: image.Data},
		})
	}
	resp, err := s.chat.SendMessage(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini chat send: %w", err)
	}
	out := strings.TrimSpace(resp.Text())
	if out == "" {
		return "", llm.ErrEmptyReply
	}
	return out, nil
}

var _ llm.Client = (*Client)(nil)
