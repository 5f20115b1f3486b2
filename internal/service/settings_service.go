package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/maven-leads-api/internal/dto"
	"github.com/noah-isme/maven-leads-api/internal/models"
	appErrors "github.com/noah-isme/maven-leads-api/pkg/errors"
)

const settingsCacheKey = "settings:projection"

type settingsRepository interface {
	Get(ctx context.Context) (*models.Settings, error)
	Upsert(ctx context.Context, settings *models.Settings) error
}

// SettingsService orchestrates reads and writes of the settings
// singleton and keeps the cached projection coherent.
type SettingsService struct {
	repo   settingsRepository
	cache  *CacheService
	logger *zap.Logger
}

// NewSettingsService constructs a SettingsService.
func NewSettingsService(repo settingsRepository, cache *CacheService, logger *zap.Logger) *SettingsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{repo: repo, cache: cache, logger: logger}
}

// Get returns the settings singleton, or nil when none exists yet.
func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load settings")
	}
	return settings, nil
}

// Projection returns the widget-facing settings view, read through the
// cache when enabled. A nil projection means no settings row exists.
func (s *SettingsService) Projection(ctx context.Context) (*dto.SettingsProjection, error) {
	var cached dto.SettingsProjection
	if hit, _ := s.cache.Get(ctx, settingsCacheKey, &cached); hit {
		return &cached, nil
	}

	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, nil
	}

	projection := projectSettings(settings)
	_ = s.cache.Set(ctx, settingsCacheKey, projection, 0)
	return projection, nil
}

// Save overwrites the singleton from the admin form. Fields absent from
// the form fall back to their fixed defaults, never to the previously
// stored value, and the logo flags mirror checkbox presence.
func (s *SettingsService) Save(ctx context.Context, form dto.SettingsForm) (*models.Settings, error) {
	settings := &models.Settings{
		CounselorTitle:  valueOr(form.CounselorTitle, models.DefaultCounselorTitle),
		PhoneNumber:     valueOr(form.PhoneNumber, models.DefaultPhoneNumber),
		EmailRecipients: splitTrim(valueOr(form.EmailRecipients, models.DefaultEmailRecipients)),
		DropdownOptions: splitTrim(valueOr(form.DropdownOptions, models.DefaultDropdownOptions)),
		LogoPosition:    valueOr(form.LogoPosition, models.DefaultLogoPosition),
		LogoURL1:        valueOr(form.LogoURL1, ""),
		LogoURL2:        valueOr(form.LogoURL2, ""),
		LogoURL3:        valueOr(form.LogoURL3, ""),
		Logo1Enabled:    form.Logo1Enabled,
		Logo2Enabled:    form.Logo2Enabled,
		Logo3Enabled:    form.Logo3Enabled,
		PrimaryColor:    valueOr(form.PrimaryColor, models.DefaultPrimaryColor),
		ChatbotColor:    valueOr(form.ChatbotColor, models.DefaultChatbotColor),
		UserColor:       valueOr(form.UserColor, models.DefaultUserColor),
		ButtonColor:     valueOr(form.ButtonColor, models.DefaultButtonColor),
	}

	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save settings")
	}
	s.invalidate(ctx)
	return settings, nil
}

// SaveEmailRecipients updates only the recipient list. The raw value
// must be non-empty after trimming.
func (s *SettingsService) SaveEmailRecipients(ctx context.Context, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return appErrors.Clone(appErrors.ErrValidation, "At least one email address is required")
	}

	settings, err := s.Get(ctx)
	if err != nil {
		return err
	}
	if settings == nil {
		settings = defaultSettings()
	}
	settings.EmailRecipients = splitTrim(raw)

	if err := s.repo.Upsert(ctx, settings); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save email settings")
	}
	s.invalidate(ctx)
	return nil
}

// EnsureDefault creates the bootstrap settings row when none exists.
// Called once at process start.
func (s *SettingsService) EnsureDefault(ctx context.Context) error {
	settings, err := s.Get(ctx)
	if err != nil {
		return err
	}
	if settings != nil {
		return nil
	}

	bootstrap := defaultSettings()
	bootstrap.PhoneNumber = "(555) 123-4567"
	bootstrap.LogoURL1 = "images/logo.png"
	bootstrap.Logo1Enabled = true

	if err := s.repo.Upsert(ctx, bootstrap); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create default settings")
	}
	s.logger.Info("default settings row created")
	return nil
}

func (s *SettingsService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, settingsCacheKey); err != nil {
		s.logger.Warn("settings cache invalidation failed", zap.Error(err))
	}
}

func defaultSettings() *models.Settings {
	return &models.Settings{
		CounselorTitle:  models.DefaultCounselorTitle,
		PhoneNumber:     models.DefaultPhoneNumber,
		EmailRecipients: splitTrim(models.DefaultEmailRecipients),
		DropdownOptions: splitTrim(models.DefaultDropdownOptions),
		LogoPosition:    models.DefaultLogoPosition,
		Logo1Enabled:    true,
		PrimaryColor:    models.DefaultPrimaryColor,
		ChatbotColor:    models.DefaultChatbotColor,
		UserColor:       models.DefaultUserColor,
		ButtonColor:     models.DefaultButtonColor,
	}
}

func projectSettings(settings *models.Settings) *dto.SettingsProjection {
	return &dto.SettingsProjection{
		CounselorTitle:  settings.CounselorTitle,
		PhoneNumber:     settings.PhoneNumber,
		DropdownOptions: settings.DropdownOptions,
		LogoPosition:    settings.LogoPosition,
		LogoURL1:        settings.LogoURL1,
		LogoURL2:        settings.LogoURL2,
		LogoURL3:        settings.LogoURL3,
		Logo1Enabled:    settings.Logo1Enabled,
		Logo2Enabled:    settings.Logo2Enabled,
		Logo3Enabled:    settings.Logo3Enabled,
		PrimaryColor:    settings.PrimaryColor,
		ChatbotColor:    settings.ChatbotColor,
		UserColor:       settings.UserColor,
		ButtonColor:     settings.ButtonColor,
	}
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

func splitTrim(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
