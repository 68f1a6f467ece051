package prefs

import (
	"context"
	"database/sql"
	"fmt"
)

// PGRepo is a Postgres-backed Repo.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) GetTheme(ctx context.Context, userID string) (Theme, bool, error) {
	const query = `SELECT theme FROM user_preferences WHERE user_id = $1`

	var raw string
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&raw)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get theme: %w", err)
	}

	theme, err := ParseTheme(raw)
	if err != nil {
		return "", false, fmt.Errorf("get theme: stored value %q: %w", raw, err)
	}
	return theme, true, nil
}

func (r *PGRepo) SetTheme(ctx context.Context, userID string, theme Theme) error {
	const query = `
INSERT INTO user_preferences (user_id, theme, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (user_id) DO UPDATE SET theme = EXCLUDED.theme, updated_at = now()`

	if _, err := r.DB.ExecContext(ctx, query, userID, string(theme)); err != nil {
		return fmt.Errorf("set theme: %w", err)
	}
	return nil
}
