package resumes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resumind-backend/internal/shared/server/middleware"
	"resumind-backend/internal/shared/server/respond"
)

// Handler exposes resume endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a resume Handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register wires resume routes onto the group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.upload)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.GET("/resumes/:id/file", h.downloadFile)
	rg.PUT("/resumes/:id/content", h.updateContent)
	rg.DELETE("/resumes/:id", h.delete)
	rg.DELETE("/resumes", h.wipe)
}

func (h *Handler) wipe(c *gin.Context) {
	deleted, err := h.service.Wipe(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respond.Internal(c, "internal_error", "failed to wipe resumes")
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"deleted": deleted})
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Unauthorized(c, "unauthorized", "Missing identity")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respond.BadRequest(c, "bad_request", "file is required")
		return
	}
	defer file.Close()

	resume, err := h.service.Upload(c.Request.Context(), UploadInput{
		UserID:         userID,
		FileName:       header.Filename,
		CompanyName:    c.PostForm("companyName"),
		JobTitle:       c.PostForm("jobTitle"),
		JobDescription: c.PostForm("jobDescription"),
		SizeHint:       header.Size,
		Body:           file,
	})
	if err != nil {
		if errors.Is(err, ErrFileTooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds the upload limit")
			return
		}
		respond.Internal(c, "internal_error", "failed to store resume")
		return
	}

	c.Set("resumeId", resume.ID)
	respond.JSON(c, http.StatusCreated, ToDTO(resume))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.service.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Internal(c, "internal_error", "failed to list resumes")
		return
	}

	out := make([]ResumeDTO, 0, len(items))
	for _, r := range items {
		out = append(out, ToDTO(r))
	}
	respond.JSON(c, http.StatusOK, gin.H{"resumes": out})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")

	resume, err := h.service.Get(c.Request.Context(), userID, resumeID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.NotFound(c, "not_found", "resume not found")
			return
		}
		respond.Internal(c, "internal_error", "failed to load resume")
		return
	}

	c.Set("resumeId", resume.ID)
	respond.JSON(c, http.StatusOK, ToDTO(resume))
}

func (h *Handler) downloadFile(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")

	rc, resume, err := h.service.OpenFile(c.Request.Context(), userID, resumeID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.NotFound(c, "not_found", "resume not found")
			return
		}
		respond.Internal(c, "internal_error", "failed to open resume file")
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `attachment; filename="`+resume.FileName+`"`)
	c.DataFromReader(http.StatusOK, resume.SizeBytes, resume.MimeType, rc, nil)
}

type updateContentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *Handler) updateContent(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")

	var req updateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "bad_request", "content is required")
		return
	}

	resume, err := h.service.UpdateContent(c.Request.Context(), userID, resumeID, req.Content)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.NotFound(c, "not_found", "resume not found")
			return
		}
		respond.Internal(c, "internal_error", "failed to update resume")
		return
	}

	c.Set("resumeId", resume.ID)
	respond.JSON(c, http.StatusOK, ToDTO(resume))
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), userID, resumeID); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.NotFound(c, "not_found", "resume not found")
			return
		}
		respond.Internal(c, "internal_error", "failed to delete resume")
		return
	}

	respond.Message(c, http.StatusOK, "resume deleted")
}
