package export

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"resumind-backend/internal/feedback"
	"resumind-backend/internal/resumes"
)

// resumeTmpl renders the improved draft as a standalone printable page.
// Styles are inlined so the document survives being saved or printed
// without any companion assets.
var resumeTmpl = template.Must(template.New("resume").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body style="font-family: Arial, Helvetica, sans-serif; max-width: 800px; margin: 40px auto; color: #1a1a2e; line-height: 1.5;">
<h1 style="font-size: 24px; margin-bottom: 4px;">{{.Title}}</h1>
{{if .Subtitle}}<p style="color: #666; margin-top: 0;">{{.Subtitle}}</p>{{end}}

<h2 style="font-size: 16px; text-transform: uppercase; border-bottom: 2px solid #1a1a2e; padding-bottom: 4px;">Professional Summary</h2>
<p>{{.Draft.Summary}}</p>

<h2 style="font-size: 16px; text-transform: uppercase; border-bottom: 2px solid #1a1a2e; padding-bottom: 4px;">Skills</h2>
<p>{{.SkillsLine}}</p>

<h2 style="font-size: 16px; text-transform: uppercase; border-bottom: 2px solid #1a1a2e; padding-bottom: 4px;">Experience</h2>
<p style="white-space: pre-wrap;">{{.Draft.Experience}}</p>

{{if .Draft.Education}}<h2 style="font-size: 16px; text-transform: uppercase; border-bottom: 2px solid #1a1a2e; padding-bottom: 4px;">Education</h2>
<p style="white-space: pre-wrap;">{{.Draft.Education}}</p>{{end}}
</body>
</html>
`))

type templateData struct {
	Title      string
	Subtitle   string
	Draft      feedback.ImprovedResume
	SkillsLine string
}

// RenderImprovedHTML renders the improved resume draft as a printable
// HTML document.
func RenderImprovedHTML(resume resumes.Resume, draft feedback.ImprovedResume) (string, error) {
	title := strings.TrimSpace(resume.JobTitle)
	if title == "" {
		title = "Improved Resume"
	}

	subtitle := strings.TrimSpace(resume.CompanyName)
	data := templateData{
		Title:      title,
		Subtitle:   subtitle,
		Draft:      draft,
		SkillsLine: strings.Join(draft.Skills, " · "),
	}

	var buf bytes.Buffer
	if err := resumeTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render improved resume: %w", err)
	}
	return buf.String(), nil
}
