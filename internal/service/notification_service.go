package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/maven-leads-api/internal/models"
	appErrors "github.com/noah-isme/maven-leads-api/pkg/errors"
	"github.com/noah-isme/maven-leads-api/pkg/mailer"
)

// NotificationService composes and sends the two per-lead emails. The
// admin notification propagates failures to the caller; the welcome
// mail is secondary and callers are expected to log-and-drop its error.
type NotificationService struct {
	sender  mailer.Sender
	metrics *MetricsService
	logger  *zap.Logger
	timeout time.Duration
}

// NewNotificationService constructs a NotificationService.
func NewNotificationService(sender mailer.Sender, metrics *MetricsService, logger *zap.Logger, timeout time.Duration) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &NotificationService{sender: sender, metrics: metrics, logger: logger, timeout: timeout}
}

// NotifyAdmin emails the configured recipient list about a new lead.
func (s *NotificationService) NotifyAdmin(ctx context.Context, lead *models.Lead, settings *models.Settings) error {
	if settings == nil {
		return appErrors.ErrNoSettings
	}
	if len(settings.EmailRecipients) == 0 {
		return appErrors.Clone(appErrors.ErrNotification, "no admin recipients configured")
	}

	msg := mailer.Message{
		To:      settings.EmailRecipients,
		Subject: fmt.Sprintf("New Lead from %s - Maven Chatbot", lead.Name),
		Text:    adminText(lead),
		HTML:    adminHTML(lead),
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.sender.Send(sendCtx, msg); err != nil {
		s.metrics.RecordNotification("admin", false)
		return appErrors.Wrap(err, appErrors.ErrNotification.Code, appErrors.ErrNotification.Status, "admin notification failed")
	}
	s.metrics.RecordNotification("admin", true)
	s.logger.Info("admin notification sent", zap.Int64("lead_id", lead.ID))
	return nil
}

// NotifyLead sends the thank-you mail to the submitter.
func (s *NotificationService) NotifyLead(ctx context.Context, lead *models.Lead, settings *models.Settings) error {
	if settings == nil {
		return appErrors.ErrNoSettings
	}

	msg := mailer.Message{
		To:      []string{lead.Email},
		Subject: "Thank you for contacting Maven - We'll be in touch soon!",
		Text:    welcomeText(lead, settings),
		HTML:    welcomeHTML(lead, settings),
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.sender.Send(sendCtx, msg); err != nil {
		s.metrics.RecordNotification("welcome", false)
		return appErrors.Wrap(err, appErrors.ErrNotification.Code, appErrors.ErrNotification.Status, "welcome email failed")
	}
	s.metrics.RecordNotification("welcome", true)
	s.logger.Info("welcome email sent", zap.String("to", lead.Email))
	return nil
}

func adminText(lead *models.Lead) string {
	return fmt.Sprintf(`New lead received from the Maven Chatbot:

Name: %s
Email: %s
Phone: %s
Category: %s
Language: %s
Message: %s

Submitted on: %s

---
This is an automated message from the Maven Chatbot system.
`,
		lead.Name, lead.Email, lead.Phone, lead.DropdownSelection,
		lead.LanguageLabel(), lead.Message,
		lead.CreatedAt.Format("2006-01-02 15:04:05"),
	)
}

func adminHTML(lead *models.Lead) string {
	return fmt.Sprintf(`<html>
<head>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.header { background-color: #0d1b2a; color: white; padding: 20px; text-align: center; }
.content { padding: 20px; }
.lead-info { background-color: #f8f9fa; padding: 15px; border-radius: 8px; margin: 20px 0; }
.field strong { color: #2e7d32; }
.footer { text-align: center; color: #666; font-size: 0.9em; margin-top: 30px; }
</style>
</head>
<body>
<div class="header"><h1>New Lead Notification</h1><p>Maven Chatbot System</p></div>
<div class="content">
<div class="lead-info">
<h3>Lead Details</h3>
<div class="field"><strong>Name:</strong> %s</div>
<div class="field"><strong>Email:</strong> %s</div>
<div class="field"><strong>Phone:</strong> %s</div>
<div class="field"><strong>Category:</strong> %s</div>
<div class="field"><strong>Language:</strong> %s</div>
<div class="field"><strong>Submitted:</strong> %s</div>
</div>
<div class="lead-info"><h3>Message</h3><p>%s</p></div>
</div>
<div class="footer"><p>This is an automated message from the Maven Chatbot system.</p></div>
</body>
</html>`,
		lead.Name, lead.Email, lead.Phone, lead.DropdownSelection,
		lead.LanguageLabel(), lead.CreatedAt.Format("2006-01-02 15:04:05"), lead.Message,
	)
}

func welcomeText(lead *models.Lead, settings *models.Settings) string {
	return fmt.Sprintf(`Hi %s,

Thank you for reaching out to us through our website. We've received your inquiry and one of our %s will be in touch with you soon.

Here's a summary of your submission:
- Category: %s
- Phone: %s
- Email: %s

If you need immediate assistance, please call us at %s.

Best regards,
Maven Team
`,
		lead.Name, settings.CounselorTitle,
		lead.DropdownSelection, lead.Phone, lead.Email,
		settings.PhoneNumber,
	)
}

func welcomeHTML(lead *models.Lead, settings *models.Settings) string {
	return fmt.Sprintf(`<html>
<head>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.header { background-color: #0d1b2a; color: white; padding: 20px; text-align: center; }
.content { padding: 20px; }
.summary { background-color: #f8f9fa; padding: 15px; border-radius: 8px; margin: 20px 0; }
.contact-info { background-color: #2e7d32; color: white; padding: 15px; border-radius: 8px; text-align: center; }
.footer { text-align: center; color: #666; font-size: 0.9em; margin-top: 30px; }
</style>
</head>
<body>
<div class="header"><h1>Thank You for Contacting Maven!</h1></div>
<div class="content">
<p>Hi %s,</p>
<p>Thank you for reaching out to us through our website. We've received your inquiry and one of our %s will be in touch with you soon.</p>
<div class="summary">
<h3>Your Submission Summary:</h3>
<p><strong>Category:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
</div>
<div class="contact-info"><h3>Need Immediate Assistance?</h3><p>Call us at: <strong>%s</strong></p></div>
<p>Best regards,<br>Maven Team</p>
</div>
<div class="footer"><p>This is an automated message. Please do not reply to this email.</p></div>
</body>
</html>`,
		lead.Name, settings.CounselorTitle,
		lead.DropdownSelection, lead.Phone, lead.Email,
		settings.PhoneNumber,
	)
}
