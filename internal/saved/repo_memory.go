package saved

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]SavedResume // userID -> resumes
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]SavedResume)}
}

// Create appends a saved resume for its user.
func (r *MemoryRepo) Create(ctx context.Context, sr SavedResume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[sr.UserID] = append(r.data[sr.UserID], sr)
	return nil
}

// ListByUser returns the user's saved resumes, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]SavedResume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	stored := r.data[userID]
	r.mu.RUnlock()

	out := make([]SavedResume, len(stored))
	copy(out, stored)
	sort.Slice(out, func(i, j int) bool {
		return out[i].SavedAt.After(out[j].SavedAt)
	})
	return out, nil
}

// GetByID returns one saved resume owned by the user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, id string) (SavedResume, error) {
	if err := ctx.Err(); err != nil {
		return SavedResume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, sr := range r.data[userID] {
		if sr.ID == id {
			return sr, nil
		}
	}
	return SavedResume{}, ErrNotFound
}

// Delete removes a saved resume by id.
func (r *MemoryRepo) Delete(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.data[userID]
	for i, sr := range stored {
		if sr.ID == id {
			r.data[userID] = append(stored[:i], stored[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

var _ Repo = (*MemoryRepo)(nil)
