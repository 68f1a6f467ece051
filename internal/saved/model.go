package saved

import (
	"errors"
	"time"

	"github.com/avishek322/Ai-Resume-Builder/internal/resume"
)

var (
	ErrNotFound         = errors.New("saved resume not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNothingGenerated = errors.New("nothing generated yet")
)

// SavedResume is an immutable snapshot of a session at save time. It is
// created only by an explicit user save and never mutated, only deleted.
type SavedResume struct {
	ID                  string
	UserID              string
	Name                string
	SavedAt             time.Time
	ResumeData          resume.Data
	TemplateID          resume.TemplateID
	HTMLContent         string
	CustomTemplateImage string
}
