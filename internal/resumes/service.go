package resumes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumind-backend/internal/extract"
	"resumind-backend/internal/shared/storage/kv"
	"resumind-backend/internal/shared/storage/object"
	"resumind-backend/internal/shared/telemetry"
)

// MaxUploadBytes caps resume uploads at 20MB.
const MaxUploadBytes = 20 << 20

// ErrFileTooLarge is returned for uploads over MaxUploadBytes.
var ErrFileTooLarge = errors.New("file too large")

// Service coordinates resume uploads, retrieval and edits.
type Service struct {
	repo  Repo
	store object.ObjectStore
	kv    kv.Store
}

// NewService constructs a resume Service.
func NewService(repo Repo, store object.ObjectStore, kvStore kv.Store) *Service {
	return &Service{repo: repo, store: store, kv: kvStore}
}

// UploadInput carries the multipart fields of a resume upload.
type UploadInput struct {
	UserID         string
	FileName       string
	CompanyName    string
	JobTitle       string
	JobDescription string
	SizeHint       int64
	Body           io.Reader
}

// Upload stores the file, extracts its text and creates the resume record.
func (s *Service) Upload(ctx context.Context, input UploadInput) (Resume, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return Resume{}, errors.New("user is required")
	}
	if strings.TrimSpace(input.FileName) == "" {
		return Resume{}, errors.New("file name is required")
	}
	if input.SizeHint > MaxUploadBytes {
		return Resume{}, ErrFileTooLarge
	}

	body := io.LimitReader(input.Body, MaxUploadBytes+1)
	storageKey, sizeBytes, mimeType, err := s.store.Save(ctx, input.UserID, input.FileName, body)
	if err != nil {
		return Resume{}, fmt.Errorf("save upload: %w", err)
	}
	if sizeBytes > MaxUploadBytes {
		// No record points at the object; remove it rather than leak it.
		if err := s.store.Delete(ctx, storageKey); err != nil {
			telemetry.Warn("resume.oversized_cleanup_failed", map[string]any{
				"storage_key": storageKey,
				"error":       err.Error(),
			})
		}
		return Resume{}, ErrFileTooLarge
	}

	content, err := extract.Text(ctx, s.store, storageKey, mimeType, input.FileName)
	if err != nil {
		// Keep the upload; analysis operations will report the missing text.
		telemetry.Warn("resume.extract_failed", map[string]any{
			"storage_key": storageKey,
			"mime_type":   mimeType,
			"error":       err.Error(),
		})
		content = ""
	}

	now := time.Now().UTC()
	resume := Resume{
		ID:             uuid.NewString(),
		UserID:         input.UserID,
		CompanyName:    strings.TrimSpace(input.CompanyName),
		JobTitle:       strings.TrimSpace(input.JobTitle),
		JobDescription: strings.TrimSpace(input.JobDescription),
		FileName:       input.FileName,
		StorageKey:     storageKey,
		MimeType:       mimeType,
		SizeBytes:      sizeBytes,
		Content:        content,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, resume); err != nil {
		return Resume{}, fmt.Errorf("create resume: %w", err)
	}

	telemetry.Info("resume.uploaded", map[string]any{
		"resume_id":  resume.ID,
		"mime_type":  mimeType,
		"size_bytes": sizeBytes,
		"has_text":   content != "",
	})
	return resume, nil
}

// Get returns a resume by ID for a user.
func (s *Service) Get(ctx context.Context, userId, resumeID string) (Resume, error) {
	return s.repo.GetByID(ctx, userId, resumeID)
}

// List returns the user's resumes, newest first.
func (s *Service) List(ctx context.Context, userId string, limit, offset int) ([]Resume, error) {
	return s.repo.ListByUser(ctx, userId, limit, offset)
}

// UpdateContent saves inline edits to the extracted resume text.
func (s *Service) UpdateContent(ctx context.Context, userId, resumeID, content string) (Resume, error) {
	if strings.TrimSpace(content) == "" {
		return Resume{}, errors.New("content is required")
	}
	if err := s.repo.UpdateContent(ctx, userId, resumeID, content); err != nil {
		return Resume{}, err
	}
	return s.repo.GetByID(ctx, userId, resumeID)
}

// OpenFile opens the stored original for download.
func (s *Service) OpenFile(ctx context.Context, userId, resumeID string) (io.ReadCloser, Resume, error) {
	resume, err := s.repo.GetByID(ctx, userId, resumeID)
	if err != nil {
		return nil, Resume{}, err
	}
	rc, err := s.store.Open(ctx, resume.StorageKey)
	if err != nil {
		return nil, Resume{}, fmt.Errorf("open resume file: %w", err)
	}
	return rc, resume, nil
}

// Delete removes the resume record, its stored files and derived AI
// artifacts.
func (s *Service) Delete(ctx context.Context, userId, resumeID string) error {
	resume, err := s.repo.GetByID(ctx, userId, resumeID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userId, resumeID); err != nil {
		return err
	}
	if s.store != nil {
		keys := []string{resume.StorageKey, resume.StorageKey + ".extracted.txt"}
		if resume.ImageKey != "" {
			keys = append(keys, resume.ImageKey)
		}
		for _, key := range keys {
			if err := s.store.Delete(ctx, key); err != nil {
				telemetry.Warn("resume.file_delete_failed", map[string]any{
					"resume_id": resumeID,
					"key":       key,
					"error":     err.Error(),
				})
			}
		}
	}
	for _, key := range ArtifactKeys(resumeID) {
		if err := s.kv.Delete(ctx, key); err != nil {
			telemetry.Warn("resume.artifact_delete_failed", map[string]any{
				"resume_id": resumeID,
				"key":       key,
				"error":     err.Error(),
			})
		}
	}
	return nil
}

// Wipe deletes every resume the user owns, including stored files and
// AI artifacts. Returns the number of resumes removed.
func (s *Service) Wipe(ctx context.Context, userId string) (int, error) {
	deleted := 0
	for {
		items, err := s.repo.ListByUser(ctx, userId, 100, 0)
		if err != nil {
			return deleted, err
		}
		if len(items) == 0 {
			return deleted, nil
		}
		for _, item := range items {
			if err := s.Delete(ctx, userId, item.ID); err != nil {
				return deleted, err
			}
			deleted++
		}
	}
}

// ArtifactKeys lists the kv keys holding AI artifacts for a resume.
func ArtifactKeys(resumeID string) []string {
	return []string{
		"resume:" + resumeID,
		"resume-hr:" + resumeID,
	}
}
