package llm

import (
	"strings"
	"testing"
)

func TestFeedbackPromptFillsPlaceholders(t *testing.T) {
	prompt := FeedbackPrompt("Frontend Developer", "Build React apps")

	for _, want := range []string{
		"The job title is: Frontend Developer",
		"The job description is: Build React apps",
		"interface Feedback",
		"overallScore: number",
		"toneAndStyle",
		"without any other text and without the backticks",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
	if strings.Contains(prompt, "{{") {
		t.Fatalf("prompt has unfilled placeholders:\n%s", prompt)
	}
}

func TestHRReviewPromptFillsPlaceholders(t *testing.T) {
	prompt := HRReviewPrompt("Cloud Engineer", "Operate AWS infrastructure")

	for _, want := range []string{
		"Job Title: Cloud Engineer",
		"Job Description: Operate AWS infrastructure",
		"interface HRReview",
		"roleFitScore: number",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
	if strings.Contains(prompt, "{{") {
		t.Fatalf("prompt has unfilled placeholders")
	}
}

func TestImprovePromptIncludesHRFeedback(t *testing.T) {
	prompt := ImprovePrompt("Data Analyst", "SQL and dashboards", "Weak on metrics")

	for _, want := range []string{
		"Job Title: Data Analyst",
		"HR Feedback: Weak on metrics",
		`Adding relevant keywords for "Data Analyst" naturally throughout`,
		"interface ImprovedResume",
		"estimatedScore: number",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestRescorePromptEmbedsResumeContent(t *testing.T) {
	prompt := RescorePrompt("iOS Developer", "Jane Doe\nSwift, Objective-C")

	for _, want := range []string{
		`Analyze the following resume for the position: "iOS Developer".`,
		"Jane Doe",
		`"score": <number between 0-100>`,
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestFeedbackPromptScoringExample(t *testing.T) {
	prompt := FeedbackPrompt("Backend Engineer", "Go, PostgreSQL, Kubernetes")

	for _, want := range []string{
		"Backend Engineer",
		"Go, PostgreSQL, Kubernetes",
		"interface Feedback",
		"ATS: {",
		"tips: {",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestPromptsAreDeterministic(t *testing.T) {
	a := FeedbackPrompt("Role", "Desc")
	b := FeedbackPrompt("Role", "Desc")
	if a != b {
		t.Fatalf("same inputs produced different prompts")
	}
}
