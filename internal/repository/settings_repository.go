package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/maven-leads-api/internal/models"
)

// settingsRow is the storage shape of the settings singleton. The
// recipient and dropdown lists travel comma-joined in text columns;
// the split/join happens only here, at the storage boundary.
type settingsRow struct {
	ID              int64     `db:"id"`
	CounselorTitle  string    `db:"counselor_title"`
	PhoneNumber     string    `db:"phone_number"`
	EmailRecipients string    `db:"email_recipients"`
	DropdownOptions string    `db:"dropdown_options"`
	LogoPosition    string    `db:"logo_position"`
	LogoURL1        string    `db:"logo_url_1"`
	LogoURL2        string    `db:"logo_url_2"`
	LogoURL3        string    `db:"logo_url_3"`
	Logo1Enabled    bool      `db:"logo_1_enabled"`
	Logo2Enabled    bool      `db:"logo_2_enabled"`
	Logo3Enabled    bool      `db:"logo_3_enabled"`
	PrimaryColor    string    `db:"primary_color"`
	ChatbotColor    string    `db:"chatbot_color"`
	UserColor       string    `db:"user_color"`
	ButtonColor     string    `db:"button_color"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// SettingsRepository persists the settings singleton.
type SettingsRepository struct {
	db *sqlx.DB
}

// NewSettingsRepository constructs the repository.
func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get fetches the singleton row. The first row found is canonical.
// Returns sql.ErrNoRows when no settings exist yet.
func (r *SettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	const query = `SELECT id, counselor_title, phone_number, email_recipients, dropdown_options,
logo_position, logo_url_1, logo_url_2, logo_url_3, logo_1_enabled, logo_2_enabled, logo_3_enabled,
primary_color, chatbot_color, user_color, button_color, updated_at
FROM settings ORDER BY id ASC LIMIT 1`
	var row settingsRow
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		return nil, err
	}
	return row.toModel(), nil
}

// Upsert writes the singleton, pinned to the fixed id so concurrent
// first saves converge on a single row. updated_at is touched on every
// call.
func (r *SettingsRepository) Upsert(ctx context.Context, settings *models.Settings) error {
	settings.ID = models.SettingsID
	settings.UpdatedAt = time.Now().UTC()
	row := toRow(settings)
	const query = `INSERT INTO settings (id, counselor_title, phone_number, email_recipients, dropdown_options,
logo_position, logo_url_1, logo_url_2, logo_url_3, logo_1_enabled, logo_2_enabled, logo_3_enabled,
primary_color, chatbot_color, user_color, button_color, updated_at)
VALUES (:id, :counselor_title, :phone_number, :email_recipients, :dropdown_options,
:logo_position, :logo_url_1, :logo_url_2, :logo_url_3, :logo_1_enabled, :logo_2_enabled, :logo_3_enabled,
:primary_color, :chatbot_color, :user_color, :button_color, :updated_at)
ON CONFLICT (id)
DO UPDATE SET counselor_title = EXCLUDED.counselor_title, phone_number = EXCLUDED.phone_number,
              email_recipients = EXCLUDED.email_recipients, dropdown_options = EXCLUDED.dropdown_options,
              logo_position = EXCLUDED.logo_position, logo_url_1 = EXCLUDED.logo_url_1,
              logo_url_2 = EXCLUDED.logo_url_2, logo_url_3 = EXCLUDED.logo_url_3,
              logo_1_enabled = EXCLUDED.logo_1_enabled, logo_2_enabled = EXCLUDED.logo_2_enabled,
              logo_3_enabled = EXCLUDED.logo_3_enabled, primary_color = EXCLUDED.primary_color,
              chatbot_color = EXCLUDED.chatbot_color, user_color = EXCLUDED.user_color,
              button_color = EXCLUDED.button_color, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

func (row *settingsRow) toModel() *models.Settings {
	return &models.Settings{
		ID:              row.ID,
		CounselorTitle:  row.CounselorTitle,
		PhoneNumber:     row.PhoneNumber,
		EmailRecipients: splitList(row.EmailRecipients),
		DropdownOptions: splitList(row.DropdownOptions),
		LogoPosition:    row.LogoPosition,
		LogoURL1:        row.LogoURL1,
		LogoURL2:        row.LogoURL2,
		LogoURL3:        row.LogoURL3,
		Logo1Enabled:    row.Logo1Enabled,
		Logo2Enabled:    row.Logo2Enabled,
		Logo3Enabled:    row.Logo3Enabled,
		PrimaryColor:    row.PrimaryColor,
		ChatbotColor:    row.ChatbotColor,
		UserColor:       row.UserColor,
		ButtonColor:     row.ButtonColor,
		UpdatedAt:       row.UpdatedAt,
	}
}

func toRow(s *models.Settings) *settingsRow {
	return &settingsRow{
		ID:              s.ID,
		CounselorTitle:  s.CounselorTitle,
		PhoneNumber:     s.PhoneNumber,
		EmailRecipients: strings.Join(s.EmailRecipients, ","),
		DropdownOptions: strings.Join(s.DropdownOptions, ","),
		LogoPosition:    s.LogoPosition,
		LogoURL1:        s.LogoURL1,
		LogoURL2:        s.LogoURL2,
		LogoURL3:        s.LogoURL3,
		Logo1Enabled:    s.Logo1Enabled,
		Logo2Enabled:    s.Logo2Enabled,
		Logo3Enabled:    s.Logo3Enabled,
		PrimaryColor:    s.PrimaryColor,
		ChatbotColor:    s.ChatbotColor,
		UserColor:       s.UserColor,
		ButtonColor:     s.ButtonColor,
		UpdatedAt:       s.UpdatedAt,
	}
}

func splitList(raw string) []string {
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
