package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/maven-leads-api/internal/models"
	appErrors "github.com/noah-isme/maven-leads-api/pkg/errors"
	"github.com/noah-isme/maven-leads-api/pkg/mailer"
)

type mockSender struct {
	sent []mailer.Message
	err  error
}

func (m *mockSender) Send(ctx context.Context, msg mailer.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func testLead() *models.Lead {
	return &models.Lead{
		ID:                1,
		Name:              "Jane Doe",
		Email:             "jane@x.com",
		Phone:             "555-0100",
		DropdownSelection: "Billing",
		Message:           "Need help",
		Language:          "es",
		CreatedAt:         time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNotifyAdmin(t *testing.T) {
	sender := &mockSender{}
	svc := NewNotificationService(sender, nil, zap.NewNop(), time.Second)

	err := svc.NotifyAdmin(context.Background(), testLead(), testSettings())
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, []string{"admin@x.com"}, msg.To)
	assert.Equal(t, "New Lead from Jane Doe - Maven Chatbot", msg.Subject)
	assert.Contains(t, msg.Text, "Language: Spanish")
	assert.Contains(t, msg.Text, "Phone: 555-0100")
	assert.Contains(t, msg.HTML, "Jane Doe")
	assert.Contains(t, msg.HTML, "Spanish")
}

func TestNotifyAdminEnglishLabel(t *testing.T) {
	sender := &mockSender{}
	svc := NewNotificationService(sender, nil, zap.NewNop(), time.Second)

	lead := testLead()
	lead.Language = "en"
	require.NoError(t, svc.NotifyAdmin(context.Background(), lead, testSettings()))
	assert.Contains(t, sender.sent[0].Text, "Language: English")
}

func TestNotifyAdminNoSettings(t *testing.T) {
	svc := NewNotificationService(&mockSender{}, nil, zap.NewNop(), time.Second)

	err := svc.NotifyAdmin(context.Background(), testLead(), nil)
	assert.ErrorIs(t, err, appErrors.ErrNoSettings)
}

func TestNotifyAdminTransportError(t *testing.T) {
	sender := &mockSender{err: errors.New("connection refused")}
	svc := NewNotificationService(sender, nil, zap.NewNop(), time.Second)

	err := svc.NotifyAdmin(context.Background(), testLead(), testSettings())
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotification.Code, appErr.Code)
}

func TestNotifyLead(t *testing.T) {
	sender := &mockSender{}
	svc := NewNotificationService(sender, nil, zap.NewNop(), time.Second)

	settings := testSettings()
	require.NoError(t, svc.NotifyLead(context.Background(), testLead(), settings))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, []string{"jane@x.com"}, msg.To)
	assert.Contains(t, msg.Text, settings.CounselorTitle)
	assert.Contains(t, msg.Text, settings.PhoneNumber)
}
