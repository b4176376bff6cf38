package export

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumind-backend/internal/feedback"
	"resumind-backend/internal/resumes"
	"resumind-backend/internal/shared/server/middleware"
	"resumind-backend/internal/shared/server/respond"
	"resumind-backend/internal/shared/util"
)

// Handler serves printable exports of AI-improved resumes.
type Handler struct {
	resumes  *resumes.Service
	feedback *feedback.Service
}

func NewHandler(resumeSvc *resumes.Service, feedbackSvc *feedback.Service) *Handler {
	return &Handler{resumes: resumeSvc, feedback: feedbackSvc}
}

// Register mounts the export routes on the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/resumes/:id/export/html", h.exportHTML)
}

func (h *Handler) exportHTML(c *gin.Context) {
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)

	userID := middleware.UserIDFromContext(c)
	resume, err := h.resumes.Get(c.Request.Context(), userID, resumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			respond.NotFound(c, "resume_not_found", "resume not found")
			return
		}
		respond.Internal(c, "internal_error", "failed to load resume")
		return
	}

	artifact, err := h.feedback.GetArtifact(c.Request.Context(), userID, resumeID)
	if err != nil || artifact.Enhanced == nil {
		respond.NotFound(c, "not_found", "no improved resume to export")
		return
	}

	doc, err := RenderImprovedHTML(resume, *artifact.Enhanced)
	if err != nil {
		respond.Internal(c, "render_failed", "failed to render export")
		return
	}

	name := util.SanitizeFileName(resume.JobTitle)
	c.Header("Content-Disposition", `attachment; filename="`+name+`.html"`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}
