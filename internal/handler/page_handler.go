package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/maven-leads-api/internal/models"
)

type pageSettingsService interface {
	Get(ctx context.Context) (*models.Settings, error)
}

type pageLeadService interface {
	List(ctx context.Context) ([]models.Lead, error)
}

// PageHandler renders the server-side HTML surfaces.
type PageHandler struct {
	settings pageSettingsService
	leads    pageLeadService
	logger   *zap.Logger
}

// NewPageHandler builds a new handler.
func NewPageHandler(settings pageSettingsService, leads pageLeadService, logger *zap.Logger) *PageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{settings: settings, leads: leads, logger: logger}
}

// Index godoc
// @Summary Public chat widget page
// @Tags Pages
// @Produce html
// @Success 200 {string} string "rendered page"
// @Router / [get]
func (h *PageHandler) Index(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		h.logger.Error("error loading index page", zap.Error(err))
		c.String(http.StatusServiceUnavailable, "Service unavailable. Please try again later.")
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"Settings": settings})
}

// Admin godoc
// @Summary Admin panel
// @Tags Pages
// @Produce html
// @Success 200 {string} string "rendered page"
// @Router /admin [get]
func (h *PageHandler) Admin(c *gin.Context) {
	ctx := c.Request.Context()

	settings, err := h.settings.Get(ctx)
	if err != nil {
		h.renderError(c, err)
		return
	}
	leads, err := h.leads.List(ctx)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Settings": settings,
		"Leads":    leads,
		"Flash":    popFlash(c),
	})
}

// Favicon answers browser favicon probes with an empty 204.
func (h *PageHandler) Favicon(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func (h *PageHandler) renderError(c *gin.Context, err error) {
	h.logger.Error("error loading admin page", zap.Error(err))
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Flash": &Flash{Category: "error", Message: "Database connection error. Please try again."},
	})
}
