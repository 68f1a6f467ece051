package saved

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avishek322/Ai-Resume-Builder/internal/resume"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new saved resume.
func (r *PGRepo) Create(ctx context.Context, sr SavedResume) error {
	const query = `
INSERT INTO saved_resumes (
    id,
    user_id,
    name,
    saved_at,
    resume_data,
    template_id,
    html_content,
    custom_template_image
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	payload, err := json.Marshal(sr.ResumeData)
	if err != nil {
		return fmt.Errorf("marshal resume data: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		sr.ID,
		sr.UserID,
		sr.Name,
		sr.SavedAt,
		payload,
		string(sr.TemplateID),
		sr.HTMLContent,
		sr.CustomTemplateImage,
	)
	return err
}

// ListByUser returns the user's saved resumes, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]SavedResume, error) {
	const query = `
SELECT id, user_id, name, saved_at, resume_data, template_id, html_content, custom_template_image
FROM saved_resumes
WHERE user_id = $1
ORDER BY saved_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SavedResume{}
	for rows.Next() {
		sr, err := scanSavedResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

// GetByID returns one saved resume owned by the user.
func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (SavedResume, error) {
	const query = `
SELECT id, user_id, name, saved_at, resume_data, template_id, html_content, custom_template_image
FROM saved_resumes
WHERE user_id = $1 AND id = $2`

	row := r.DB.QueryRowContext(ctx, query, userID, id)
	sr, err := scanSavedResume(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SavedResume{}, ErrNotFound
		}
		return SavedResume{}, err
	}
	return sr, nil
}

// Delete removes a saved resume by id.
func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM saved_resumes WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSavedResume(row rowScanner) (SavedResume, error) {
	var (
		sr       SavedResume
		payload  []byte
		template string
	)
	if err := row.Scan(&sr.ID, &sr.UserID, &sr.Name, &sr.SavedAt, &payload, &template, &sr.HTMLContent, &sr.CustomTemplateImage); err != nil {
		return SavedResume{}, err
	}
	if err := json.Unmarshal(payload, &sr.ResumeData); err != nil {
		return SavedResume{}, fmt.Errorf("decode resume data: %w", err)
	}
	sr.ResumeData.Normalize()
	sr.TemplateID = resume.TemplateID(template)
	return sr, nil
}

var _ Repo = (*PGRepo)(nil)
