package llm

import (
	"context"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/avishek322/Ai-Resume-Builder/internal/resume"
)

// MockClient is a deterministic Client for tests and for running the server
// without model credentials. Chat replies can be scripted per session; when
// the script runs out it falls back to a generic COLLECT reply.
type MockClient struct {
	mu          sync.Mutex
	ChatReplies []string
	SendErr     error

	// Recorded calls, for assertions.
	GenerateCalls int
	RefineCalls   int
	GenerateErr   error
	RefineErr     error
}

// StartChat returns a session that consumes the scripted replies.
func (m *MockClient) StartChat(ctx context.Context) (ChatSession, error) {
	_ = ctx
	return &mockChat{client: m}, nil
}

// GenerateResume returns a stable HTML fragment derived from the snapshot.
func (m *MockClient) GenerateResume(ctx context.Context, data resume.Data, template resume.TemplateID, image *Image) (string, error) {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateCalls++
	if m.GenerateErr != nil {
		return "", m.GenerateErr
	}
	name := data.FullName
	if name == "" {
		name = "Untitled"
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="template-%s">`, template)
	fmt.Fprintf(&b, `<h1 class="resume-heading">%s</h1>`, html.EscapeString(name))
	if data.Summary != "" {
		fmt.Fprintf(&b, `<p class="resume-section">%s</p>`, html.EscapeString(data.Summary))
	}
	if data.ProfilePicture != "" {
		fmt.Fprintf(&b, `<img src="%s" alt="profile" />`, data.ProfilePicture)
	}
	b.WriteString(`</div>`)
	return b.String(), nil
}

// RefineResume appends a marker so tests can observe the refinement.
func (m *MockClient) RefineResume(ctx context.Context, currentHTML, request string, image *Image) (string, error) {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RefineCalls++
	if m.RefineErr != nil {
		return "", m.RefineErr
	}
	return currentHTML + fmt.Sprintf("<!-- refined: %s -->", html.EscapeString(request)), nil
}

type mockChat struct {
	client *MockClient
	sent   []string
}

func (c *mockChat) Send(ctx context.Context, text string, image *Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.client.mu.Lock()
	defer c.client.mu.Unlock()
	if c.client.SendErr != nil {
		return "", c.client.SendErr
	}
	c.sent = append(c.sent, text)
	if len(c.client.ChatReplies) > 0 {
		reply := c.client.ChatReplies[0]
		c.client.ChatReplies = c.client.ChatReplies[1:]
		return reply, nil
	}
	return `{"response":"Got it. What else should I add?","updatedFields":{},"action":"COLLECT"}`, nil
}

var _ Client = (*MockClient)(nil)
