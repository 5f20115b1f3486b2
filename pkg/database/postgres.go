package database

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/noah-isme/maven-leads-api/pkg/config"
)

// NewPostgres returns a configured PostgreSQL client.
func NewPostgres(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	db.SetConnMaxLifetime(1 * time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema creates the two tables this application needs. There is
// no external migration runner; the schema is small enough to bootstrap
// at process start.
func EnsureSchema(db *sqlx.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS leads (
    id SERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    email VARCHAR(120) NOT NULL,
    phone VARCHAR(20) NOT NULL,
    dropdown_selection VARCHAR(100) NOT NULL,
    message TEXT NOT NULL,
    language VARCHAR(2) NOT NULL DEFAULT 'en',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS settings (
    id INTEGER PRIMARY KEY,
    counselor_title VARCHAR(100) NOT NULL,
    phone_number VARCHAR(20) NOT NULL,
    email_recipients TEXT NOT NULL,
    dropdown_options TEXT NOT NULL,
    logo_position VARCHAR(20) NOT NULL,
    logo_url_1 VARCHAR(255) NOT NULL DEFAULT '',
    logo_url_2 VARCHAR(255) NOT NULL DEFAULT '',
    logo_url_3 VARCHAR(255) NOT NULL DEFAULT '',
    logo_1_enabled BOOLEAN NOT NULL DEFAULT TRUE,
    logo_2_enabled BOOLEAN NOT NULL DEFAULT FALSE,
    logo_3_enabled BOOLEAN NOT NULL DEFAULT FALSE,
    primary_color VARCHAR(7) NOT NULL,
    chatbot_color VARCHAR(7) NOT NULL,
    user_color VARCHAR(7) NOT NULL,
    button_color VARCHAR(7) NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
