package resumes

import "time"

// Resume represents an uploaded resume owned by a user, together with
// the job it targets and the extracted text used for AI analysis.
type Resume struct {
	ID             string
	UserID         string
	CompanyName    string
	JobTitle       string
	JobDescription string
	FileName       string
	StorageKey     string
	ImageKey       string
	MimeType       string
	SizeBytes      int64
	Content        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
