package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, user_id, company_name, job_title, job_description, file_name, storage_key, image_key, mime_type, size_bytes, content, created_at, updated_at`

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (
    id,
    user_id,
    company_name,
    job_title,
    job_description,
    file_name,
    storage_key,
    image_key,
    mime_type,
    size_bytes,
    content,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
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
	)
	return err
}

// GetByID returns a resume by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userId, resumeID string) (Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1 AND id = $2`

	var resume Resume
	err := r.DB.QueryRowContext(ctx, query, userId, resumeID).Scan(
		&resume.ID,
		&resume.UserID,
		&resume.CompanyName,
		&resume.JobTitle,
		&resume.JobDescription,
		&resume.FileName,
		&resume.StorageKey,
		&resume.ImageKey,
		&resume.MimeType,
		&resume.SizeBytes,
		&resume.Content,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// ListByUser returns resumes for a user, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userId string, limit, offset int) ([]Resume, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userId, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		var resume Resume
		if err := rows.Scan(
			&resume.ID,
			&resume.UserID,
			&resume.CompanyName,
			&resume.JobTitle,
			&resume.JobDescription,
			&resume.FileName,
			&resume.StorageKey,
			&resume.ImageKey,
			&resume.MimeType,
			&resume.SizeBytes,
			&resume.Content,
			&resume.CreatedAt,
			&resume.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// UpdateContent replaces the extracted text for a resume.
func (r *PGRepo) UpdateContent(ctx context.Context, userId, resumeID, content string) error {
	const query = `
UPDATE resumes
SET content = $3, updated_at = now()
WHERE user_id = $1 AND id = $2`

	res, err := r.DB.ExecContext(ctx, query, userId, resumeID, content)
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

// Delete removes a resume.
func (r *PGRepo) Delete(ctx context.Context, userId, resumeID string) error {
	const query = `DELETE FROM resumes WHERE user_id = $1 AND id = $2`

	res, err := r.DB.ExecContext(ctx, query, userId, resumeID)
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

var _ Repo = (*PGRepo)(nil)
