package llm

import (
	"context"
	"errors"

	"github.com/avishek322/Ai-Resume-Builder/internal/resume"
)

// ChatSession is a stateful conversation whose history is owned by the remote
// model service. Callers send only the latest message; prior turns are
// retained server-side.
type ChatSession interface {
	Send(ctx context.Context, text string, image *Image) (string, error)
}

// Client abstracts the generative model used for resume building.
type Client interface {
	// StartChat opens a fresh conversational session primed with the
	// resume-assistant system instruction.
	StartChat(ctx context.Context) (ChatSession, error)

	// GenerateResume produces a complete styled HTML fragment from the
	// snapshot. When template is custom, image carries the reference
	// template to mimic.
	GenerateResume(ctx context.Context, data resume.Data, template resume.TemplateID, image *Image) (string, error)

	// RefineResume returns the entire replacement HTML reflecting the
	// requested change. Never a diff.
	RefineResume(ctx context.Context, currentHTML, request string, image *Image) (string, error)
}

// ErrEmptyReply is returned when the model produced no usable text.
var ErrEmptyReply = errors.New("llm: empty model reply")
