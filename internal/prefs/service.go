package prefs

import "context"

// Service resolves and stores user preferences.
type Service struct {
	Repo Repo
}

// Theme returns the stored theme or the light default.
func (s *Service) Theme(ctx context.Context, userID string) (Theme, error) {
	theme, ok, err := s.Repo.GetTheme(ctx, userID)
	if err != nil {
		return "", err
	}
	if !ok {
		return ThemeLight, nil
	}
	return theme, nil
}

// SetTheme validates and stores a theme preference.
func (s *Service) SetTheme(ctx context.Context, userID, raw string) (Theme, error) {
	theme, err := ParseTheme(raw)
	if err != nil {
		return "", err
	}
	if err := s.Repo.SetTheme(ctx, userID, theme); err != nil {
		return "", err
	}
	return theme, nil
}
