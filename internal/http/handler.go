package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/brightwave-agency/proposals-service/internal/service"
	"github.com/brightwave-agency/proposals-service/internal/upload"
)

type Authenticator interface {
	Login(email, password string) (string, error)
}

type Handler struct {
	proposals *service.ProposalService
	events    *service.EventService
	auth      Authenticator
	uploads   *upload.Uploader
	log       zerolog.Logger
}

func NewHandler(proposals *service.ProposalService, events *service.EventService, auth Authenticator, uploads *upload.Uploader, log zerolog.Logger) *Handler {
	return &Handler{
		proposals: proposals,
		events:    events,
		auth:      auth,
		uploads:   uploads,
		log:       log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	router.GET("/healthz", h.health)

	api := router.Group("/api")
	api.POST("/auth/login", h.login)
	api.GET("/service-templates", h.listTemplates)
	api.GET("/proposals/slug/:slug", h.getProposalBySlug)

	// Event ingest is deliberately unauthenticated: losing a view or click
	// must never block the client page.
	api.POST("/proposals/:id/events", h.appendEvent)

	protected := api.Group("/")
	protected.Use(authMiddleware)
	protected.GET("/proposals", h.listProposals)
	protected.POST("/proposals", h.createProposal)
	protected.GET("/proposals/:id", h.getProposal)
	protected.PATCH("/proposals/:id", h.updateProposal)
	protected.DELETE("/proposals/:id", h.deleteProposal)
	protected.PUT("/proposals/:id/services", h.replaceServices)
	protected.GET("/proposals/:id/events", h.listEvents)
	protected.GET("/proposals/:id/metrics", h.getMetrics)
	protected.GET("/proposals/:id/export", h.exportEngagement)
	protected.GET("/proposals/:id/agreement.pdf", h.agreementPDF)
	protected.POST("/uploads", h.uploadLogo)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) listTemplates(c *gin.Context) {
	templates, err := h.proposals.ListTemplates(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (h *Handler) uploadLogo(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}

	url, err := h.uploads.Save(fileHeader)
	if err != nil {
		if errors.Is(err, upload.ErrInvalidFile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("logo upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSlugTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseProposalID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid proposal id"})
		return uuid.Nil, false
	}
	return id, true
}
