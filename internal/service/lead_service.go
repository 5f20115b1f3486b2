package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/maven-leads-api/internal/dto"
	"github.com/noah-isme/maven-leads-api/internal/models"
	appErrors "github.com/noah-isme/maven-leads-api/pkg/errors"
)

type leadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	ListNewestFirst(ctx context.Context) ([]models.Lead, error)
	Delete(ctx context.Context, id int64) error
}

type leadNotifier interface {
	NotifyAdmin(ctx context.Context, lead *models.Lead, settings *models.Settings) error
	NotifyLead(ctx context.Context, lead *models.Lead, settings *models.Settings) error
}

type settingsReader interface {
	Get(ctx context.Context) (*models.Settings, error)
}

// SubmitResult reports a stored lead plus whether the admin
// notification failed. The flag only ever decorates the response
// message; submission success is decided by persistence alone.
type SubmitResult struct {
	Lead              *models.Lead
	AdminNotifyFailed bool
}

// LeadService orchestrates lead submission, listing and deletion.
type LeadService struct {
	repo      leadRepository
	settings  settingsReader
	notifier  leadNotifier
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewLeadService constructs a LeadService.
func NewLeadService(repo leadRepository, settings settingsReader, notifier leadNotifier, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *LeadService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeadService{
		repo:      repo,
		settings:  settings,
		notifier:  notifier,
		validator: validate,
		metrics:   metrics,
		logger:    logger,
	}
}

// Submit validates and stores a lead, then dispatches the two
// notification emails. Admin-notification failure is logged and
// reported on the result; welcome-mail failure is logged and dropped.
// Neither changes the outcome of the submission.
func (s *LeadService) Submit(ctx context.Context, req dto.SubmitLeadRequest) (*SubmitResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, appErrors.ErrValidation.Message)
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	lead := &models.Lead{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		DropdownSelection: req.DropdownSelection,
		Message:           req.Message,
		Language:          language,
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	s.metrics.RecordLeadSubmitted()

	result := &SubmitResult{Lead: lead}

	settings, err := s.settings.Get(ctx)
	if err != nil || settings == nil {
		s.logger.Error("settings unavailable for notifications", zap.Int64("lead_id", lead.ID), zap.Error(err))
		result.AdminNotifyFailed = true
		return result, nil
	}

	if err := s.notifier.NotifyAdmin(ctx, lead, settings); err != nil {
		s.logger.Error("failed to send email notification", zap.Int64("lead_id", lead.ID), zap.Error(err))
		result.AdminNotifyFailed = true
	}

	if err := s.notifier.NotifyLead(ctx, lead, settings); err != nil {
		s.logger.Error("failed to send welcome email", zap.String("to", lead.Email), zap.Error(err))
	}

	return result, nil
}

// List returns every lead, newest first.
func (s *LeadService) List(ctx context.Context) ([]models.Lead, error) {
	leads, err := s.repo.ListNewestFirst(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list leads")
	}
	return leads, nil
}

// Delete removes a lead by id, mapping a missing row to NotFound.
func (s *LeadService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "lead not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete lead")
	}
	return nil
}
