package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/maven-leads-api/pkg/response"
)

type translationService interface {
	Get(ctx context.Context, language string) (map[string]string, error)
}

// TranslationHandler serves the static UI string bundle.
type TranslationHandler struct {
	service translationService
}

// NewTranslationHandler builds a new handler.
func NewTranslationHandler(service translationService) *TranslationHandler {
	return &TranslationHandler{service: service}
}

// Get godoc
// @Summary Translations for a language
// @Tags Translations
// @Produce json
// @Param language path string true "2-letter language code"
// @Param cb query string false "Cache buster, ignored"
// @Success 200 {object} map[string]string
// @Router /get_translations/{language} [get]
func (h *TranslationHandler) Get(c *gin.Context) {
	// The cb query parameter exists only to defeat HTTP caching.
	mapping, err := h.service.Get(c.Request.Context(), c.Param("language"))
	if err != nil {
		response.JSON(c, http.StatusInternalServerError, gin.H{"error": "Translations unavailable"})
		return
	}
	response.JSON(c, http.StatusOK, mapping)
}
