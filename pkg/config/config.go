package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env  string
	Port int

	Database DatabaseConfig
	Redis    RedisConfig
	Mail     MailConfig
	Notify   NotifyConfig
	Admin    AdminConfig
	Cache    CacheConfig
	Exports  ExportsConfig
	Assets   AssetsConfig
	CORS     CORSConfig
	Log      LogConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// MailConfig describes the SMTP transport used for lead notifications.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

// NotifyConfig tunes notification dispatch behaviour.
type NotifyConfig struct {
	Timeout time.Duration
	// SurfaceAdminErrors marks the submission response message when the
	// admin notification fails. The HTTP status is never affected.
	SurfaceAdminErrors bool
}

// AdminConfig covers admin surface knobs.
type AdminConfig struct {
	// SaveDelay artificially delays settings saves. Off by default;
	// kept as a tunable for exercising the admin form under latency.
	SaveDelay time.Duration
}

// CacheConfig governs the optional Redis read-through cache.
type CacheConfig struct {
	Enabled         bool
	SettingsTTL     time.Duration
	TranslationsTTL time.Duration
}

// ExportsConfig gates the lead export endpoint.
type ExportsConfig struct {
	Enabled bool
}

// AssetsConfig points at on-disk web assets.
type AssetsConfig struct {
	TemplatesGlob    string
	TranslationsPath string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Mail = MailConfig{
		Host:     v.GetString("MAIL_SERVER"),
		Port:     v.GetInt("MAIL_PORT"),
		Username: v.GetString("MAIL_USERNAME"),
		Password: v.GetString("MAIL_PASSWORD"),
		Sender:   v.GetString("MAIL_DEFAULT_SENDER"),
	}

	cfg.Notify = NotifyConfig{
		Timeout:            parseDuration(v.GetString("NOTIFY_TIMEOUT"), 10*time.Second),
		SurfaceAdminErrors: v.GetBool("NOTIFY_SURFACE_ADMIN_ERRORS"),
	}

	cfg.Admin = AdminConfig{
		SaveDelay: parseDuration(v.GetString("ADMIN_SAVE_DELAY"), 0),
	}

	cfg.Cache = CacheConfig{
		Enabled:         v.GetBool("ENABLE_CACHE"),
		SettingsTTL:     parseDuration(v.GetString("CACHE_SETTINGS_TTL"), 5*time.Minute),
		TranslationsTTL: parseDuration(v.GetString("CACHE_TRANSLATIONS_TTL"), time.Hour),
	}

	cfg.Exports = ExportsConfig{
		Enabled: v.GetBool("ENABLE_EXPORTS"),
	}

	cfg.Assets = AssetsConfig{
		TemplatesGlob:    v.GetString("TEMPLATES_GLOB"),
		TranslationsPath: v.GetString("TRANSLATIONS_PATH"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "maven_leads")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("MAIL_SERVER", "smtp.gmail.com")
	v.SetDefault("MAIL_PORT", 587)
	v.SetDefault("MAIL_USERNAME", "")
	v.SetDefault("MAIL_PASSWORD", "")
	v.SetDefault("MAIL_DEFAULT_SENDER", "noreply@mavenchatbot.com")

	v.SetDefault("NOTIFY_TIMEOUT", "10s")
	v.SetDefault("NOTIFY_SURFACE_ADMIN_ERRORS", false)

	v.SetDefault("ADMIN_SAVE_DELAY", "0s")

	v.SetDefault("ENABLE_CACHE", false)
	v.SetDefault("CACHE_SETTINGS_TTL", "5m")
	v.SetDefault("CACHE_TRANSLATIONS_TTL", "1h")

	v.SetDefault("ENABLE_EXPORTS", true)

	v.SetDefault("TEMPLATES_GLOB", "web/templates/*.html")
	v.SetDefault("TRANSLATIONS_PATH", "web/translations.json")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
