package resumes

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a resume does not exist for the user.
var ErrNotFound = errors.New("resume not found")

// Repo defines persistence operations for resumes.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, userId, resumeID string) (Resume, error)
	ListByUser(ctx context.Context, userId string, limit, offset int) ([]Resume, error)
	UpdateContent(ctx context.Context, userId, resumeID, content string) error
	Delete(ctx context.Context, userId, resumeID string) error
}
