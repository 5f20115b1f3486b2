package service

import (
	"context"
	"fmt"
	"strconv"

	appErrors "github.com/noah-isme/maven-leads-api/pkg/errors"
	"github.com/noah-isme/maven-leads-api/pkg/export"
)

// ExportFormat names a supported lead export encoding.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

var leadExportHeaders = []string{"ID", "Name", "Email", "Phone", "Category", "Language", "Message", "Submitted"}

// ExportService renders the lead table for download.
type ExportService struct {
	leads *LeadService
	csv   *export.CSVExporter
	pdf   *export.PDFExporter
}

// NewExportService constructs an ExportService.
func NewExportService(leads *LeadService) *ExportService {
	return &ExportService{
		leads: leads,
		csv:   export.NewCSVExporter(),
		pdf:   export.NewPDFExporter(),
	}
}

// Render produces the lead table in the requested format along with its
// MIME type.
func (s *ExportService) Render(ctx context.Context, format ExportFormat) ([]byte, string, error) {
	leads, err := s.leads.List(ctx)
	if err != nil {
		return nil, "", err
	}

	dataset := export.Dataset{Headers: leadExportHeaders, Rows: make([]map[string]string, 0, len(leads))}
	for _, lead := range leads {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"ID":        strconv.FormatInt(lead.ID, 10),
			"Name":      lead.Name,
			"Email":     lead.Email,
			"Phone":     lead.Phone,
			"Category":  lead.DropdownSelection,
			"Language":  lead.LanguageLabel(),
			"Message":   lead.Message,
			"Submitted": lead.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	switch format {
	case ExportFormatCSV:
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", fmt.Errorf("export leads csv: %w", err)
		}
		return payload, "text/csv", nil
	case ExportFormatPDF:
		payload, err := s.pdf.Render(dataset, "Maven Chatbot Leads")
		if err != nil {
			return nil, "", fmt.Errorf("export leads pdf: %w", err)
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}
