package saved

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"github.com/avishek322/Ai-Resume-Builder/internal/resume"
)

func TestPGRepoCreateInsertsRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	sr := SavedResume{
		ID:          "r1",
		UserID:      "guest:u1",
		Name:        "My resume",
		SavedAt:     time.Now().UTC(),
		ResumeData:  sampleData(),
		TemplateID:  resume.TemplateClassic,
		HTMLContent: "<div></div>",
	}
	payload, _ := json.Marshal(sr.ResumeData)

	mock.ExpectExec("INSERT INTO saved_resumes").
		WithArgs(sr.ID, sr.UserID, sr.Name, sr.SavedAt, payload, "classic", sr.HTMLContent, "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	if err := repo.Create(context.Background(), sr); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByIDDecodesPayload(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	payload, _ := json.Marshal(sampleData())
	savedAt := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "saved_at", "resume_data", "template_id", "html_content", "custom_template_image"}).
		AddRow("r1", "guest:u1", "My resume", savedAt, payload, "modern", "<div></div>", "")

	mock.ExpectQuery("SELECT id, user_id, name, saved_at").
		WithArgs("guest:u1", "r1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	sr, err := repo.GetByID(context.Background(), "guest:u1", "r1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if sr.ResumeData.FullName != "Jane Doe" {
		t.Fatalf("expected decoded resume data, got %+v", sr.ResumeData)
	}
	if sr.TemplateID != resume.TemplateModern {
		t.Fatalf("expected modern template, got %q", sr.TemplateID)
	}
	if sr.ResumeData.Certifications == nil {
		t.Fatalf("expected normalized lists")
	}
}

func TestPGRepoGetByIDMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "saved_at", "resume_data", "template_id", "html_content", "custom_template_image"})
	mock.ExpectQuery("SELECT id, user_id, name, saved_at").
		WithArgs("guest:u1", "missing").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByID(context.Background(), "guest:u1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoDeleteMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM saved_resumes").
		WithArgs("guest:u1", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := &PGRepo{DB: db}
	if err := repo.Delete(context.Background(), "guest:u1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
