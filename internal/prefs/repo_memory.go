package prefs

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo for dev and tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	themes map[string]Theme
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{themes: make(map[string]Theme)}
}

func (r *MemoryRepo) GetTheme(ctx context.Context, userID string) (Theme, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	theme, ok := r.themes[userID]
	return theme, ok, nil
}

func (r *MemoryRepo) SetTheme(ctx context.Context, userID string, theme Theme) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.themes[userID] = theme
	return nil
}
