package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/maven-leads-api/internal/service"
	"github.com/noah-isme/maven-leads-api/pkg/response"
)

type exportService interface {
	Render(ctx context.Context, format service.ExportFormat) ([]byte, string, error)
}

// ExportHandler serves lead table downloads for the admin panel.
type ExportHandler struct {
	service exportService
}

// NewExportHandler builds a new handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Export godoc
// @Summary Download the lead table
// @Tags Leads
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /admin/leads/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", string(service.ExportFormatCSV)))

	payload, contentType, err := h.service.Render(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=leads.%s", format))
	c.Data(http.StatusOK, contentType, payload)
}
