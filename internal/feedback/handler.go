package feedback

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumind-backend/internal/llm"
	"resumind-backend/internal/resumes"
	"resumind-backend/internal/shared/server/middleware"
	"resumind-backend/internal/shared/server/respond"
	"resumind-backend/internal/usage"
)

// QuotaMessage is returned when the AI usage allowance is exhausted.
const QuotaMessage = "AI usage limit reached. Please try again later or upgrade your account."

// Handler exposes the AI operations over HTTP.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the feedback routes on the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/resumes/:id/feedback", h.generate)
	rg.GET("/resumes/:id/feedback", h.getFeedback)
	rg.POST("/resumes/:id/hr-review", h.review)
	rg.GET("/resumes/:id/hr-review", h.getHRReview)
	rg.POST("/resumes/:id/improve", h.improve)
	rg.PUT("/resumes/:id/improve", h.saveImproved)
	rg.POST("/resumes/:id/improve/apply", h.applyImproved)
	rg.POST("/resumes/:id/rescore", h.rescore)
}

func (h *Handler) generate(c *gin.Context) {
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)
	c.Set("aiOperation", OpFeedback)

	result, err := h.svc.Generate(c.Request.Context(), middleware.UserIDFromContext(c), resumeID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"feedback": result})
}

func (h *Handler) getFeedback(c *gin.Context) {
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)

	artifact, err := h.svc.GetArtifact(c.Request.Context(), middleware.UserIDFromContext(c), resumeID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, artifact)
}

func (h *Handler) review(c *gin.Context) {
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)
	c.Set("aiOperation", OpHRReview)

	result, err := h.svc.Review(c.Request.Context(), middleware.UserIDFromContext(c), resumeID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"review": result})
}

func (h *Handler) getHRReview(c *gin.Context) {
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)

	artifact, err := h.svc.GetHRArtifact(c.Request.Context(), middleware.UserIDFromContext(c), resumeID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, artifact)
}

func (h *Handler) improve(c *gin.Context) {
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)
	c.Set("aiOperation", OpImprove)

	result, err := h.svc.Improve(c.Request.Context(), middleware.UserIDFromContext(c), resumeID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"improvedResume": result})
}

func (h *Handler) saveImproved(c *gin.Context) {
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)

	var draft ImprovedResume
	if err := c.ShouldBindJSON(&draft); err != nil {
		respond.BadRequest(c, "invalid_body", "request body must be JSON")
		return
	}

	err := h.svc.SaveImproved(c.Request.Context(), middleware.UserIDFromContext(c), resumeID, draft)
	if err != nil {
		// edits come from the client, so schema failures are their fault
		var violation *SchemaViolationError
		if errors.As(err, &violation) {
			respond.BadRequest(c, "schema_violation", err.Error())
			return
		}
		h.writeError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"improvedResume": draft})
}

func (h *Handler) applyImproved(c *gin.Context) {
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)

	resume, err := h.svc.ApplyEnhanced(c.Request.Context(), middleware.UserIDFromContext(c), resumeID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, resumes.ToDTO(resume))
}

type rescoreRequest struct {
	Content string `json:"content"`
}

func (h *Handler) rescore(c *gin.Context) {
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)
	c.Set("aiOperation", OpRescore)

	var req rescoreRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.BadRequest(c, "invalid_body", "request body must be JSON")
			return
		}
	}

	result, err := h.svc.Rescore(c.Request.Context(), middleware.UserIDFromContext(c), resumeID, req.Content)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"newScore": result.Score, "feedback": result.Feedback})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var pe *llm.ProviderError
	var malformed *MalformedJSONError
	var violation *SchemaViolationError

	switch {
	case llm.IsQuota(err):
		respond.TooManyRequests(c, "ai_quota_exhausted", QuotaMessage)
	case errors.Is(err, usage.ErrLimitReached):
		respond.TooManyRequests(c, "usage_limit_reached", QuotaMessage)
	case errors.Is(err, ErrInFlight):
		respond.Conflict(c, "operation_in_progress", "an AI operation for this resume is already in progress")
	case errors.Is(err, resumes.ErrNotFound):
		respond.NotFound(c, "resume_not_found", "resume not found")
	case errors.Is(err, ErrNotFound):
		respond.NotFound(c, "not_found", "no stored result for this resume")
	case errors.Is(err, ErrNoResumeText):
		respond.Error(c, http.StatusUnprocessableEntity, "no_resume_text", "resume has no extracted text to analyze")
	case errors.As(err, &malformed):
		respond.Error(c, http.StatusBadGateway, "malformed_ai_response", err.Error())
	case errors.As(err, &violation):
		respond.Error(c, http.StatusBadGateway, "schema_violation", err.Error())
	case errors.Is(err, llm.ErrNoResponse):
		respond.Internal(c, "no_ai_response", llm.ErrNoResponse.Error())
	case errors.Is(err, llm.ErrNotConfigured):
		respond.Internal(c, "ai_not_configured", llm.ErrNotConfigured.Error())
	case errors.As(err, &pe):
		status := pe.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		respond.Error(c, status, "ai_provider_error", pe.Message)
	default:
		respond.Internal(c, "internal_error", "Failed to analyze resume")
	}
}
