package resumes

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func sampleResume() Resume {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	return Resume{
		ID:             "res-1",
		UserID:         "user-1",
		CompanyName:    "Google",
		JobTitle:       "Frontend Developer",
		JobDescription: "Build UIs",
		FileName:       "resume.pdf",
		StorageKey:     "abc/def_resume.pdf",
		MimeType:       "application/pdf",
		SizeBytes:      1024,
		Content:        "Jane Doe",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	resume := sampleResume()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO resumes`)).
		WithArgs(
			resume.ID,
			resume.UserID,
			resume.CompanyName,
			resume.JobTitle,
			resume.JobDescription,
			resume.FileName,
			resume.StorageKey,
			resume.ImageKey,
			resume.MimeType,
			resume.SizeBytes,
			resume.Content,
			resume.CreatedAt,
			resume.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	if err := repo.Create(context.Background(), resume); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	resume := sampleResume()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "company_name", "job_title", "job_description",
		"file_name", "storage_key", "image_key", "mime_type", "size_bytes",
		"content", "created_at", "updated_at",
	}).AddRow(
		resume.ID, resume.UserID, resume.CompanyName, resume.JobTitle, resume.JobDescription,
		resume.FileName, resume.StorageKey, resume.ImageKey, resume.MimeType, resume.SizeBytes,
		resume.Content, resume.CreatedAt, resume.UpdatedAt,
	)

	mock.ExpectQuery(`SELECT .* FROM resumes`).
		WithArgs("user-1", "res-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.GetByID(context.Background(), "user-1", "res-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.JobTitle != "Frontend Developer" {
		t.Fatalf("unexpected job title: %s", got.JobTitle)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM resumes`).
		WithArgs("user-1", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByID(context.Background(), "user-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateContentNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE resumes`)).
		WithArgs("user-1", "missing", "new content").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := &PGRepo{DB: db}
	if err := repo.UpdateContent(context.Background(), "user-1", "missing", "new content"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM resumes WHERE user_id = $1 AND id = $2`)).
		WithArgs("user-1", "res-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	if err := repo.Delete(context.Background(), "user-1", "res-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
