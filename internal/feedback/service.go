package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"resumind-backend/internal/llm"
	"resumind-backend/internal/resumes"
	"resumind-backend/internal/shared/metrics"
	"resumind-backend/internal/shared/storage/kv"
	"resumind-backend/internal/shared/telemetry"
	"resumind-backend/internal/usage"
)

// Operation names used for in-flight keys, logs and metrics.
const (
	OpFeedback = "feedback"
	OpHRReview = "hr-review"
	OpImprove  = "improve"
	OpRescore  = "rescore"
)

// Artifact is the per-resume AI state stored under "resume:<id>".
type Artifact struct {
	ResumeID  string          `json:"resumeId"`
	Feedback  *Feedback       `json:"feedback,omitempty"`
	Enhanced  *ImprovedResume `json:"enhanced,omitempty"`
	Rescore   *RescoreResult  `json:"rescore,omitempty"`
	AppliedAt *time.Time      `json:"appliedAt,omitempty"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// HRArtifact is the HR review state stored under "resume-hr:<id>".
type HRArtifact struct {
	ResumeID       string          `json:"resumeId"`
	Review         *HRReview       `json:"review,omitempty"`
	ImprovedResume *ImprovedResume `json:"improvedResume,omitempty"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Service orchestrates AI operations over resumes. LLM calls are never
// retried; every failure is terminal and reported to the caller.
type Service struct {
	resumes  *resumes.Service
	kv       kv.Store
	client   llm.Client
	usage    *usage.Service
	inflight *inflightGuard
}

// NewService constructs a feedback Service. client may be nil when no
// provider is configured; operations then fail with ErrNotConfigured.
func NewService(resumeSvc *resumes.Service, kvStore kv.Store, client llm.Client, usageSvc *usage.Service) *Service {
	return &Service{
		resumes:  resumeSvc,
		kv:       kvStore,
		client:   client,
		usage:    usageSvc,
		inflight: newInflightGuard(),
	}
}

func feedbackKey(resumeID string) string { return "resume:" + resumeID }
func hrKey(resumeID string) string       { return "resume-hr:" + resumeID }

// Generate produces ATS feedback for a resume and stores it.
func (s *Service) Generate(ctx context.Context, userID, resumeID string) (*Feedback, error) {
	var out Feedback
	err := s.run(ctx, OpFeedback, userID, resumeID, func(resume resumes.Resume) error {
		prompt := withResumeContent(llm.FeedbackPrompt(resume.JobTitle, resume.JobDescription), resume.Content)
		reply, err := s.chat(ctx, prompt)
		if err != nil {
			return err
		}
		if err := DecodeInto(reply, &out); err != nil {
			return err
		}
		return s.mutateArtifact(ctx, resumeID, func(a *Artifact) {
			a.Feedback = &out
		})
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Review produces an HR review for a resume and stores it.
func (s *Service) Review(ctx context.Context, userID, resumeID string) (*HRReview, error) {
	var out HRReview
	err := s.run(ctx, OpHRReview, userID, resumeID, func(resume resumes.Resume) error {
		prompt := withResumeContent(llm.HRReviewPrompt(resume.JobTitle, resume.JobDescription), resume.Content)
		reply, err := s.chat(ctx, prompt)
		if err != nil {
			return err
		}
		if err := DecodeInto(reply, &out); err != nil {
			return err
		}
		return s.mutateHRArtifact(ctx, resumeID, func(a *HRArtifact) {
			a.Review = &out
		})
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Improve rewrites the resume draft guided by the stored HR review.
func (s *Service) Improve(ctx context.Context, userID, resumeID string) (*ImprovedResume, error) {
	var out ImprovedResume
	err := s.run(ctx, OpImprove, userID, resumeID, func(resume resumes.Resume) error {
		hrFeedback := "No HR feedback available"
		if hr, err := s.loadHRArtifact(ctx, resumeID); err == nil && hr.Review != nil {
			if encoded, err := json.Marshal(hr.Review); err == nil {
				hrFeedback = string(encoded)
			}
		}

		prompt := withResumeContent(llm.ImprovePrompt(resume.JobTitle, resume.JobDescription, hrFeedback), resume.Content)
		reply, err := s.chat(ctx, prompt)
		if err != nil {
			return err
		}
		if err := DecodeInto(reply, &out); err != nil {
			return err
		}
		if err := s.mutateArtifact(ctx, resumeID, func(a *Artifact) {
			a.Enhanced = &out
		}); err != nil {
			return err
		}
		return s.mutateHRArtifact(ctx, resumeID, func(a *HRArtifact) {
			a.ImprovedResume = &out
		})
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveImproved persists a manually edited improved draft back onto the
// stored records. The draft must satisfy the same schema the AI output
// does.
func (s *Service) SaveImproved(ctx context.Context, userID, resumeID string, draft ImprovedResume) error {
	if _, err := s.resumes.Get(ctx, userID, resumeID); err != nil {
		return err
	}
	if err := draft.Validate(); err != nil {
		return err
	}
	if err := s.mutateArtifact(ctx, resumeID, func(a *Artifact) {
		a.Enhanced = &draft
	}); err != nil {
		return err
	}
	return s.mutateHRArtifact(ctx, resumeID, func(a *HRArtifact) {
		a.ImprovedResume = &draft
	})
}

// Rescore refreshes the overall score for edited resume text. When
// contentOverride is non-empty it is scored instead of the stored text.
func (s *Service) Rescore(ctx context.Context, userID, resumeID, contentOverride string) (*RescoreResult, error) {
	var out RescoreResult
	err := s.run(ctx, OpRescore, userID, resumeID, func(resume resumes.Resume) error {
		content := resume.Content
		if strings.TrimSpace(contentOverride) != "" {
			content = contentOverride
		}

		reply, err := s.chat(ctx, llm.RescorePrompt(resume.JobTitle, content))
		if err != nil {
			return err
		}
		if err := DecodeInto(reply, &out); err != nil {
			return err
		}
		return s.mutateArtifact(ctx, resumeID, func(a *Artifact) {
			a.Rescore = &out
			if a.Feedback != nil {
				a.Feedback.OverallScore = out.Score
			}
		})
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ApplyEnhanced merges the stored enhanced draft into the resume text.
func (s *Service) ApplyEnhanced(ctx context.Context, userID, resumeID string) (resumes.Resume, error) {
	artifact, err := s.GetArtifact(ctx, userID, resumeID)
	if err != nil {
		return resumes.Resume{}, err
	}
	if artifact.Enhanced == nil {
		return resumes.Resume{}, ErrNotFound
	}

	merged := RenderEnhancedText(*artifact.Enhanced)
	resume, err := s.resumes.UpdateContent(ctx, userID, resumeID, merged)
	if err != nil {
		return resumes.Resume{}, err
	}

	now := time.Now().UTC()
	if err := s.mutateArtifact(ctx, resumeID, func(a *Artifact) {
		a.AppliedAt = &now
	}); err != nil {
		return resumes.Resume{}, err
	}

	telemetry.Info("ai.enhanced_applied", map[string]any{
		"resume_id": resumeID,
	})
	return resume, nil
}

// GetArtifact loads the AI artifact for a resume the user owns.
func (s *Service) GetArtifact(ctx context.Context, userID, resumeID string) (Artifact, error) {
	if _, err := s.resumes.Get(ctx, userID, resumeID); err != nil {
		return Artifact{}, err
	}
	return s.loadArtifact(ctx, resumeID)
}

// GetHRArtifact loads the HR review artifact for a resume the user owns.
func (s *Service) GetHRArtifact(ctx context.Context, userID, resumeID string) (HRArtifact, error) {
	if _, err := s.resumes.Get(ctx, userID, resumeID); err != nil {
		return HRArtifact{}, err
	}
	return s.loadHRArtifact(ctx, resumeID)
}

func (s *Service) loadArtifact(ctx context.Context, resumeID string) (Artifact, error) {
	var artifact Artifact
	raw, err := s.kv.Get(ctx, feedbackKey(resumeID))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return Artifact{}, ErrNotFound
		}
		return Artifact{}, err
	}
	if err := json.Unmarshal([]byte(raw), &artifact); err != nil {
		return Artifact{}, fmt.Errorf("decode artifact: %w", err)
	}
	return artifact, nil
}

func (s *Service) loadHRArtifact(ctx context.Context, resumeID string) (HRArtifact, error) {
	var artifact HRArtifact
	raw, err := s.kv.Get(ctx, hrKey(resumeID))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return HRArtifact{}, ErrNotFound
		}
		return HRArtifact{}, err
	}
	if err := json.Unmarshal([]byte(raw), &artifact); err != nil {
		return HRArtifact{}, fmt.Errorf("decode hr artifact: %w", err)
	}
	return artifact, nil
}

// run wraps one AI operation: in-flight guard, usage accounting,
// metrics and logging.
func (s *Service) run(ctx context.Context, operation, userID, resumeID string, fn func(resumes.Resume) error) error {
	if !s.inflight.TryAcquire(operation, resumeID) {
		return ErrInFlight
	}
	defer s.inflight.Release(operation, resumeID)

	resume, err := s.resumes.Get(ctx, userID, resumeID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(resume.Content) == "" {
		return ErrNoResumeText
	}

	if _, err := s.usage.Consume(ctx, userID, 1); err != nil {
		return err
	}

	metrics.IncFeedbackStarted()
	start := metrics.NowMillis()
	telemetry.Info("ai."+operation+".started", map[string]any{
		"resume_id": resumeID,
	})

	if err := fn(resume); err != nil {
		metrics.IncFeedbackFailed()
		telemetry.Error("ai."+operation+".failed", map[string]any{
			"resume_id": resumeID,
			"error":     err.Error(),
			"quota":     llm.IsQuota(err),
		})
		return err
	}

	metrics.IncFeedbackCompleted()
	metrics.ObserveFeedbackDurationMs(metrics.NowMillis() - start)
	telemetry.Info("ai."+operation+".completed", map[string]any{
		"resume_id":   resumeID,
		"duration_ms": metrics.NowMillis() - start,
	})
	return nil
}

func (s *Service) chat(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", llm.ErrNotConfigured
	}
	resp, err := s.client.Chat(ctx, prompt)
	if err != nil {
		return "", err
	}
	if resp == nil || resp.Message.Content.IsEmpty() {
		return "", llm.ErrNoResponse
	}
	return resp.Message.Content.Text(), nil
}

func (s *Service) mutateArtifact(ctx context.Context, resumeID string, mutate func(*Artifact)) error {
	artifact, err := s.loadArtifact(ctx, resumeID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	artifact.ResumeID = resumeID
	mutate(&artifact)
	artifact.UpdatedAt = time.Now().UTC()

	encoded, err := json.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}
	return s.kv.Set(ctx, feedbackKey(resumeID), string(encoded))
}

func (s *Service) mutateHRArtifact(ctx context.Context, resumeID string, mutate func(*HRArtifact)) error {
	artifact, err := s.loadHRArtifact(ctx, resumeID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	artifact.ResumeID = resumeID
	mutate(&artifact)
	artifact.UpdatedAt = time.Now().UTC()

	encoded, err := json.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("encode hr artifact: %w", err)
	}
	return s.kv.Set(ctx, hrKey(resumeID), string(encoded))
}

func withResumeContent(prompt, content string) string {
	return prompt + "\n\nResume Content:\n" + content
}

// RenderEnhancedText flattens an enhanced draft into plain resume text.
func RenderEnhancedText(draft ImprovedResume) string {
	var b strings.Builder
	b.WriteString("SUMMARY\n")
	b.WriteString(draft.Summary)
	b.WriteString("\n\nSKILLS\n")
	b.WriteString(strings.Join(draft.Skills, ", "))
	b.WriteString("\n\nEXPERIENCE\n")
	b.WriteString(draft.Experience)
	if strings.TrimSpace(draft.Education) != "" {
		b.WriteString("\n\nEDUCATION\n")
		b.WriteString(draft.Education)
	}
	return b.String()
}
