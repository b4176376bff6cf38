package llm

import (
	_ "embed"
	"strings"
)

var (
	//go:embed prompts/feedback.txt
	feedbackTemplate string
	//go:embed prompts/hr_review.txt
	hrReviewTemplate string
	//go:embed prompts/improve.txt
	improveTemplate string
	//go:embed prompts/rescore.txt
	rescoreTemplate string
)

// FeedbackPrompt builds the ATS feedback instructions for the given role.
func FeedbackPrompt(jobTitle, jobDescription string) string {
	return strings.NewReplacer(
		"{{JOB_TITLE}}", jobTitle,
		"{{JOB_DESCRIPTION}}", jobDescription,
	).Replace(feedbackTemplate)
}

// HRReviewPrompt builds the HR reviewer instructions for the given role.
func HRReviewPrompt(jobTitle, jobDescription string) string {
	return strings.NewReplacer(
		"{{JOB_TITLE}}", jobTitle,
		"{{JOB_DESCRIPTION}}", jobDescription,
	).Replace(hrReviewTemplate)
}

// ImprovePrompt builds the resume rewrite instructions. hrFeedback is
// the serialized HR review the rewrite should address.
func ImprovePrompt(jobTitle, jobDescription, hrFeedback string) string {
	return strings.NewReplacer(
		"{{JOB_TITLE}}", jobTitle,
		"{{JOB_DESCRIPTION}}", jobDescription,
		"{{HR_FEEDBACK}}", hrFeedback,
	).Replace(improveTemplate)
}

// RescorePrompt builds the quick rescore instructions over raw resume text.
func RescorePrompt(jobTitle, resumeContent string) string {
	return strings.NewReplacer(
		"{{JOB_TITLE}}", jobTitle,
		"{{RESUME_CONTENT}}", resumeContent,
	).Replace(rescoreTemplate)
}
