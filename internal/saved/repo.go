package saved

import "context"

// Repo defines persistence operations for saved resumes.
type Repo interface {
	Create(ctx context.Context, r SavedResume) error
	ListByUser(ctx context.Context, userID string) ([]SavedResume, error)
	GetByID(ctx context.Context, userID, id string) (SavedResume, error)
	Delete(ctx context.Context, userID, id string) error
}
