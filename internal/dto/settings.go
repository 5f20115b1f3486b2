package dto

// SettingsForm is the admin save payload. String fields are nil when
// the form omitted them, which makes the field fall back to its fixed
// default. The logo flags reflect checkbox presence: absent means off.
type SettingsForm struct {
	CounselorTitle  *string
	PhoneNumber     *string
	EmailRecipients *string
	DropdownOptions *string
	LogoPosition    *string
	LogoURL1        *string
	LogoURL2        *string
	LogoURL3        *string
	Logo1Enabled    bool
	Logo2Enabled    bool
	Logo3Enabled    bool
	PrimaryColor    *string
	ChatbotColor    *string
	UserColor       *string
	ButtonColor     *string
}

// SettingsProjection is the JSON shape served to the public widget.
// The recipient list is deliberately not exposed here.
type SettingsProjection struct {
	CounselorTitle  string   `json:"counselor_title"`
	PhoneNumber     string   `json:"phone_number"`
	DropdownOptions []string `json:"dropdown_options"`
	LogoPosition    string   `json:"logo_position"`
	LogoURL1        string   `json:"logo_url_1"`
	LogoURL2        string   `json:"logo_url_2"`
	LogoURL3        string   `json:"logo_url_3"`
	Logo1Enabled    bool     `json:"logo_1_enabled"`
	Logo2Enabled    bool     `json:"logo_2_enabled"`
	Logo3Enabled    bool     `json:"logo_3_enabled"`
	PrimaryColor    string   `json:"primary_color"`
	ChatbotColor    string   `json:"chatbot_color"`
	UserColor       string   `json:"user_color"`
	ButtonColor     string   `json:"button_color"`
}
