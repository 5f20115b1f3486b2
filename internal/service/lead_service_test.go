package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/maven-leads-api/internal/dto"
	"github.com/noah-isme/maven-leads-api/internal/models"
	appErrors "github.com/noah-isme/maven-leads-api/pkg/errors"
)

type mockLeadRepo struct {
	leads     []models.Lead
	createErr error
	deleteErr error
}

func (m *mockLeadRepo) Create(ctx context.Context, lead *models.Lead) error {
	if m.createErr != nil {
		return m.createErr
	}
	lead.ID = int64(len(m.leads) + 1)
	m.leads = append(m.leads, *lead)
	return nil
}

func (m *mockLeadRepo) ListNewestFirst(ctx context.Context) ([]models.Lead, error) {
	return m.leads, nil
}

func (m *mockLeadRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteErr
}

type mockSettingsReader struct {
	settings *models.Settings
	err      error
}

func (m *mockSettingsReader) Get(ctx context.Context) (*models.Settings, error) {
	return m.settings, m.err
}

type mockNotifier struct {
	adminCalls   int
	welcomeCalls int
	adminErr     error
	welcomeErr   error
}

func (m *mockNotifier) NotifyAdmin(ctx context.Context, lead *models.Lead, settings *models.Settings) error {
	m.adminCalls++
	return m.adminErr
}

func (m *mockNotifier) NotifyLead(ctx context.Context, lead *models.Lead, settings *models.Settings) error {
	m.welcomeCalls++
	return m.welcomeErr
}

func testSettings() *models.Settings {
	return &models.Settings{
		CounselorTitle:  "counselors",
		PhoneNumber:     "(866)9284248",
		EmailRecipients: []string{"admin@x.com"},
		DropdownOptions: []string{"Billing"},
	}
}

func newLeadService(repo *mockLeadRepo, settings *mockSettingsReader, notifier *mockNotifier) *LeadService {
	return NewLeadService(repo, settings, notifier, validator.New(), nil, zap.NewNop())
}

func TestLeadServiceSubmit(t *testing.T) {
	repo := &mockLeadRepo{}
	notifier := &mockNotifier{}
	svc := newLeadService(repo, &mockSettingsReader{settings: testSettings()}, notifier)

	result, err := svc.Submit(context.Background(), dto.SubmitLeadRequest{
		Name:              "Jane Doe",
		Email:             "jane@x.com",
		Phone:             "555-0100",
		DropdownSelection: "Billing",
		Message:           "Need help",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Lead)
	assert.Equal(t, "en", result.Lead.Language)
	assert.False(t, result.AdminNotifyFailed)
	assert.Equal(t, 1, notifier.adminCalls)
	assert.Equal(t, 1, notifier.welcomeCalls)
	require.Len(t, repo.leads, 1)
}

func TestLeadServiceSubmitKeepsLanguage(t *testing.T) {
	repo := &mockLeadRepo{}
	svc := newLeadService(repo, &mockSettingsReader{settings: testSettings()}, &mockNotifier{})

	result, err := svc.Submit(context.Background(), dto.SubmitLeadRequest{
		Name:              "Jane Doe",
		Email:             "jane@x.com",
		Phone:             "555-0100",
		DropdownSelection: "Billing",
		Message:           "Need help",
		Language:          "es",
	})
	require.NoError(t, err)
	assert.Equal(t, "es", result.Lead.Language)
}

func TestLeadServiceSubmitMissingField(t *testing.T) {
	repo := &mockLeadRepo{}
	notifier := &mockNotifier{}
	svc := newLeadService(repo, &mockSettingsReader{settings: testSettings()}, notifier)

	_, err := svc.Submit(context.Background(), dto.SubmitLeadRequest{
		Name:  "Jane Doe",
		Email: "jane@x.com",
	})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Empty(t, repo.leads)
	assert.Zero(t, notifier.adminCalls)
}

func TestLeadServiceSubmitAdminNotifyFailure(t *testing.T) {
	repo := &mockLeadRepo{}
	notifier := &mockNotifier{adminErr: errors.New("smtp down")}
	svc := newLeadService(repo, &mockSettingsReader{settings: testSettings()}, notifier)

	result, err := svc.Submit(context.Background(), dto.SubmitLeadRequest{
		Name:              "Jane Doe",
		Email:             "jane@x.com",
		Phone:             "555-0100",
		DropdownSelection: "Billing",
		Message:           "Need help",
	})
	require.NoError(t, err)
	assert.True(t, result.AdminNotifyFailed)
	// The welcome mail is still attempted after the admin failure.
	assert.Equal(t, 1, notifier.welcomeCalls)
	require.Len(t, repo.leads, 1)
}

func TestLeadServiceSubmitWelcomeFailureSwallowed(t *testing.T) {
	repo := &mockLeadRepo{}
	notifier := &mockNotifier{welcomeErr: errors.New("bad address")}
	svc := newLeadService(repo, &mockSettingsReader{settings: testSettings()}, notifier)

	result, err := svc.Submit(context.Background(), dto.SubmitLeadRequest{
		Name:              "Jane Doe",
		Email:             "jane@x.com",
		Phone:             "555-0100",
		DropdownSelection: "Billing",
		Message:           "Need help",
	})
	require.NoError(t, err)
	assert.False(t, result.AdminNotifyFailed)
}

func TestLeadServiceSubmitNoSettings(t *testing.T) {
	repo := &mockLeadRepo{}
	notifier := &mockNotifier{}
	svc := newLeadService(repo, &mockSettingsReader{}, notifier)

	result, err := svc.Submit(context.Background(), dto.SubmitLeadRequest{
		Name:              "Jane Doe",
		Email:             "jane@x.com",
		Phone:             "555-0100",
		DropdownSelection: "Billing",
		Message:           "Need help",
	})
	require.NoError(t, err)
	assert.True(t, result.AdminNotifyFailed)
	assert.Zero(t, notifier.adminCalls)
	require.Len(t, repo.leads, 1)
}

func TestLeadServiceDeleteNotFound(t *testing.T) {
	repo := &mockLeadRepo{deleteErr: sql.ErrNoRows}
	svc := newLeadService(repo, &mockSettingsReader{}, &mockNotifier{})

	err := svc.Delete(context.Background(), 99)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
