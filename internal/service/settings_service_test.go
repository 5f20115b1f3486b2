package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/maven-leads-api/internal/dto"
	"github.com/noah-isme/maven-leads-api/internal/models"
	appErrors "github.com/noah-isme/maven-leads-api/pkg/errors"
)

type mockSettingsRepo struct {
	stored  *models.Settings
	getErr  error
	saveErr error
}

func (m *mockSettingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.stored == nil {
		return nil, sql.ErrNoRows
	}
	return m.stored, nil
}

func (m *mockSettingsRepo) Upsert(ctx context.Context, settings *models.Settings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	settings.ID = models.SettingsID
	m.stored = settings
	return nil
}

func newSettingsService(repo *mockSettingsRepo) *SettingsService {
	cache := NewCacheService(nil, nil, 0, zap.NewNop(), false)
	return NewSettingsService(repo, cache, zap.NewNop())
}

func strPtr(value string) *string {
	return &value
}

func TestSettingsServiceGetMissingRow(t *testing.T) {
	svc := newSettingsService(&mockSettingsRepo{})

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestSettingsServiceSaveAppliesDefaults(t *testing.T) {
	repo := &mockSettingsRepo{}
	svc := newSettingsService(repo)

	saved, err := svc.Save(context.Background(), dto.SettingsForm{
		CounselorTitle: strPtr("advisors"),
	})
	require.NoError(t, err)
	assert.Equal(t, "advisors", saved.CounselorTitle)
	assert.Equal(t, models.DefaultPhoneNumber, saved.PhoneNumber)
	assert.Equal(t, []string{"General Inquiry", "Technical Support", "Billing", "Other"}, saved.DropdownOptions)
	assert.Equal(t, models.DefaultPrimaryColor, saved.PrimaryColor)
}

func TestSettingsServiceSaveCheckboxAbsenceResetsFlag(t *testing.T) {
	repo := &mockSettingsRepo{stored: &models.Settings{Logo2Enabled: true}}
	svc := newSettingsService(repo)

	saved, err := svc.Save(context.Background(), dto.SettingsForm{
		Logo1Enabled: true,
	})
	require.NoError(t, err)
	assert.True(t, saved.Logo1Enabled)
	assert.False(t, saved.Logo2Enabled)
}

func TestSettingsServiceSaveEmailRecipients(t *testing.T) {
	repo := &mockSettingsRepo{stored: &models.Settings{
		CounselorTitle:  "counselors",
		EmailRecipients: []string{"old@x.com"},
	}}
	svc := newSettingsService(repo)

	require.NoError(t, svc.SaveEmailRecipients(context.Background(), " a@x.com, b@x.com "))
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, repo.stored.EmailRecipients)
	assert.Equal(t, "counselors", repo.stored.CounselorTitle)
}

func TestSettingsServiceSaveEmailRecipientsEmpty(t *testing.T) {
	svc := newSettingsService(&mockSettingsRepo{})

	err := svc.SaveEmailRecipients(context.Background(), "   ")
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestSettingsServiceSaveEmailRecipientsCreatesRow(t *testing.T) {
	repo := &mockSettingsRepo{}
	svc := newSettingsService(repo)

	require.NoError(t, svc.SaveEmailRecipients(context.Background(), "team@x.com"))
	require.NotNil(t, repo.stored)
	assert.Equal(t, []string{"team@x.com"}, repo.stored.EmailRecipients)
	assert.Equal(t, models.DefaultCounselorTitle, repo.stored.CounselorTitle)
}

func TestSettingsServiceEnsureDefault(t *testing.T) {
	repo := &mockSettingsRepo{}
	svc := newSettingsService(repo)

	require.NoError(t, svc.EnsureDefault(context.Background()))
	require.NotNil(t, repo.stored)
	assert.Equal(t, "(555) 123-4567", repo.stored.PhoneNumber)
	assert.Equal(t, "images/logo.png", repo.stored.LogoURL1)
	assert.True(t, repo.stored.Logo1Enabled)
}

func TestSettingsServiceEnsureDefaultNoOverwrite(t *testing.T) {
	existing := &models.Settings{CounselorTitle: "advisors"}
	repo := &mockSettingsRepo{stored: existing}
	svc := newSettingsService(repo)

	require.NoError(t, svc.EnsureDefault(context.Background()))
	assert.Equal(t, "advisors", repo.stored.CounselorTitle)
}

func TestSettingsServiceProjection(t *testing.T) {
	repo := &mockSettingsRepo{stored: &models.Settings{
		CounselorTitle:  "counselors",
		PhoneNumber:     "(866)9284248",
		EmailRecipients: []string{"admin@x.com"},
		DropdownOptions: []string{"General Inquiry", "Billing"},
		LogoPosition:    "top-left",
		Logo1Enabled:    true,
		PrimaryColor:    "#0d1b2a",
	}}
	svc := newSettingsService(repo)

	projection, err := svc.Projection(context.Background())
	require.NoError(t, err)
	require.NotNil(t, projection)
	assert.Equal(t, []string{"General Inquiry", "Billing"}, projection.DropdownOptions)
	assert.Equal(t, "#0d1b2a", projection.PrimaryColor)
}

func TestSettingsServiceProjectionMissingRow(t *testing.T) {
	svc := newSettingsService(&mockSettingsRepo{})

	projection, err := svc.Projection(context.Background())
	require.NoError(t, err)
	assert.Nil(t, projection)
}
