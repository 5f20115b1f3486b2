package models

import "time"

// SettingsID pins the singleton settings row. Upserts always target
// this id so concurrent first saves cannot create duplicates.
const SettingsID = 1

// Settings is the single configuration record governing branding and
// contact routing. The recipient and dropdown lists are first-class
// slices here; the comma-joined wire form lives only in the repository.
type Settings struct {
	ID              int64
	CounselorTitle  string
	PhoneNumber     string
	EmailRecipients []string
	DropdownOptions []string
	LogoPosition    string
	LogoURL1        string
	LogoURL2        string
	LogoURL3        string
	Logo1Enabled    bool
	Logo2Enabled    bool
	Logo3Enabled    bool
	PrimaryColor    string
	ChatbotColor    string
	UserColor       string
	ButtonColor     string
	UpdatedAt       time.Time
}

// Field defaults applied whenever a form omits a value. These are fixed
// constants, not the previously stored value.
const (
	DefaultCounselorTitle  = "counselors"
	DefaultPhoneNumber     = "(866)9284248"
	DefaultEmailRecipients = "abbasjadoon915@gmail.com"
	DefaultDropdownOptions = "General Inquiry,Technical Support,Billing,Other"
	DefaultLogoPosition    = "top-left"
	DefaultPrimaryColor    = "#0d1b2a"
	DefaultChatbotColor    = "#2e7d32"
	DefaultUserColor       = "#e0e1dd"
	DefaultButtonColor     = "#4db6ac"
)
