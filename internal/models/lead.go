package models

import "time"

// Lead is a prospective-customer inquiry submitted through the public
// widget. Leads are immutable after creation; the only mutation is an
// explicit admin delete.
type Lead struct {
	ID                int64     `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	Email             string    `db:"email" json:"email"`
	Phone             string    `db:"phone" json:"phone"`
	DropdownSelection string    `db:"dropdown_selection" json:"dropdown_selection"`
	Message           string    `db:"message" json:"message"`
	Language          string    `db:"language" json:"language"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// LanguageLabel maps the stored 2-letter code to the label used in
// notification emails. Only Spanish is distinguished; everything else
// reads as English.
func (l Lead) LanguageLabel() string {
	if l.Language == "es" {
		return "Spanish"
	}
	return "English"
}
