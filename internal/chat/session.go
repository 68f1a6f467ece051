package chat

import (
	"bytes"
	"errors"
	"sync"
	"time"

	"github.com/yuin/goldmark"

	"github.com/avishek322/Ai-Resume-Builder/internal/llm"
	"github.com/avishek322/Ai-Resume-Builder/internal/resume"
)

var (
	// ErrNotFound is returned for unknown session ids.
	ErrNotFound = errors.New("session not found")
	// ErrTurnInFlight is returned when a second turn arrives while one is
	// still being processed. One in-flight turn per session is an engine
	// invariant, not a UI affordance.
	ErrTurnInFlight = errors.New("a turn is already in flight for this session")
	// ErrInvalidImage is returned for attachments that are not base64 image
	// data URLs.
	ErrInvalidImage = errors.New("attached image must be a base64 image data URL")
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one transcript entry. The transcript is append-only.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	// HTML is the goldmark rendering of assistant Markdown, for clients
	// that display rich transcripts.
	HTML  string `json:"html,omitempty"`
	Image string `json:"image,omitempty"`
}

// Session holds the live editing state for one conversation: the snapshot,
// template selection, last generated HTML, transcript, and the remote chat
// handle. All fields behind mu; the engine is the only writer.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time

	mu       sync.Mutex
	inFlight bool

	data           resume.Data
	template       resume.TemplateID
	customTemplate string // template reference image as a data URL
	html           string
	messages       []Message
	chat           llm.ChatSession
}

// State is a point-in-time copy of session state for API responses.
type State struct {
	ID                  string            `json:"sessionId"`
	CreatedAt           time.Time         `json:"createdAt"`
	ResumeData          resume.Data       `json:"resumeData"`
	TemplateID          resume.TemplateID `json:"templateId"`
	CustomTemplateImage string            `json:"customTemplateImage,omitempty"`
	HTML                string            `json:"htmlContent,omitempty"`
	Messages            []Message         `json:"messages"`
}

// State returns a copy of the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := make([]Message, len(s.messages))
	copy(msgs, s.messages)
	return State{
		ID:                  s.ID,
		CreatedAt:           s.CreatedAt,
		ResumeData:          s.data,
		TemplateID:          s.template,
		CustomTemplateImage: s.customTemplate,
		HTML:                s.html,
		Messages:            msgs,
	}
}

// beginTurn reserves the session for a single in-flight operation.
func (s *Session) beginTurn() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return ErrTurnInFlight
	}
	s.inFlight = true
	return nil
}

// endTurn releases the reservation. Must run on every exit path.
func (s *Session) endTurn() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

func (s *Session) append(msg Message) {
	if msg.Role == RoleAssistant && msg.HTML == "" {
		msg.HTML = renderMarkdown(msg.Content)
	}
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
}

// renderMarkdown converts assistant Markdown to HTML for transcript display.
func renderMarkdown(md string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return ""
	}
	return buf.String()
}

// Store is the in-memory registry of live sessions. Durable state lives in
// saved resumes; a session is an editing workspace and dies with the process.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Put registers a session.
func (st *Store) Put(s *Session) {
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
}

// Get fetches a session owned by the given user.
func (st *Store) Get(id, userID string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok || s.UserID != userID {
		return nil, ErrNotFound
	}
	return s, nil
}
