package resumes

import "time"

// ResumeDTO is the wire representation of a resume.
type ResumeDTO struct {
	ID             string    `json:"id"`
	CompanyName    string    `json:"companyName"`
	JobTitle       string    `json:"jobTitle"`
	JobDescription string    `json:"jobDescription"`
	FileName       string    `json:"fileName"`
	MimeType       string    `json:"mimeType"`
	SizeBytes      int64     `json:"sizeBytes"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ToDTO converts a Resume to its wire shape.
func ToDTO(r Resume) ResumeDTO {
	return ResumeDTO{
		ID:             r.ID,
		CompanyName:    r.CompanyName,
		JobTitle:       r.JobTitle,
		JobDescription: r.JobDescription,
		FileName:       r.FileName,
		MimeType:       r.MimeType,
		SizeBytes:      r.SizeBytes,
		Content:        r.Content,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
