package saved

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avishek322/Ai-Resume-Builder/internal/resume"
)

// Service contains business logic for saved resumes.
type Service struct {
	Repo Repo
}

// Save records an immutable snapshot. Saving requires generated HTML; there
// is nothing worth keeping before the first draft exists.
func (s *Service) Save(ctx context.Context, userID, name string, data resume.Data, template resume.TemplateID, htmlContent, customTemplateImage string) (SavedResume, error) {
	if strings.TrimSpace(name) == "" {
		return SavedResume{}, ErrInvalidInput
	}
	if htmlContent == "" {
		return SavedResume{}, ErrNothingGenerated
	}
	data.Normalize()
	sr := SavedResume{
		ID:                  uuid.NewString(),
		UserID:              userID,
		Name:                strings.TrimSpace(name),
		SavedAt:             time.Now().UTC(),
		ResumeData:          data,
		TemplateID:          template,
		HTMLContent:         htmlContent,
		CustomTemplateImage: customTemplateImage,
	}
	if err := s.Repo.Create(ctx, sr); err != nil {
		return SavedResume{}, err
	}
	return sr, nil
}

// List returns the user's saved resumes, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]SavedResume, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Get returns one saved resume.
func (s *Service) Get(ctx context.Context, userID, id string) (SavedResume, error) {
	if strings.TrimSpace(id) == "" {
		return SavedResume{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, id)
}

// Delete removes a saved resume.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, userID, id)
}
