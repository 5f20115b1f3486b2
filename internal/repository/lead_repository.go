package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/maven-leads-api/internal/models"
)

// LeadRepository manages persistence for lead submissions.
type LeadRepository struct {
	db *sqlx.DB
}

// NewLeadRepository constructs a LeadRepository.
func NewLeadRepository(db *sqlx.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create inserts a new lead and fills in its generated id.
func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO leads (name, email, phone, dropdown_selection, message, language, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	if err := r.db.GetContext(ctx, &lead.ID, query,
		lead.Name, lead.Email, lead.Phone, lead.DropdownSelection, lead.Message, lead.Language, lead.CreatedAt,
	); err != nil {
		return fmt.Errorf("create lead: %w", err)
	}
	return nil
}

// ListNewestFirst returns every lead ordered by submission time,
// newest first. Ties on created_at fall back to insertion order.
func (r *LeadRepository) ListNewestFirst(ctx context.Context) ([]models.Lead, error) {
	const query = `SELECT id, name, email, phone, dropdown_selection, message, language, created_at
FROM leads ORDER BY created_at DESC, id DESC`
	var leads []models.Lead
	if err := r.db.SelectContext(ctx, &leads, query); err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return leads, nil
}

// Delete removes a lead by id. Returns sql.ErrNoRows when no lead
// matched.
func (r *LeadRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete lead rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
