package prefs

import "context"

// Repo persists per-user preferences.
type Repo interface {
	GetTheme(ctx context.Context, userID string) (Theme, bool, error)
	SetTheme(ctx context.Context, userID string, theme Theme) error
}
