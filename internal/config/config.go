package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"db"`
	Session  SessionConfig  `mapstructure:"session"`
	OIDC     OIDCConfig     `mapstructure:"oidc"`
	Log      LogConfig      `mapstructure:"log"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Content  ContentConfig  `mapstructure:"content"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Contact  ContactConfig  `mapstructure:"contact"`
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Port    string    `mapstructure:"port"`
	BaseURL string    `mapstructure:"base_url"`
	CSRFKey string    `mapstructure:"csrf_key"` // 32 bytes; CSRF protection is off when empty
	TLS     TLSConfig `mapstructure:"tls"`
}

// TLSConfig holds TLS-specific configuration.
type TLSConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	CertFile string `mapstructure:"certFile"`
	KeyFile  string `mapstructure:"keyFile"`
}

// DBConfig holds database-specific configuration.
type DBConfig struct {
	Driver string `mapstructure:"driver"` // "mysql" or "sqlite3"
	DSN    string `mapstructure:"dsn"`
}

// SessionConfig holds operator session settings.
type SessionConfig struct {
	Lifetime int `mapstructure:"lifetime"` // hours
}

// OIDCConfig holds OIDC client configuration. Single sign-on is disabled when IssuerURL is empty.
type OIDCConfig struct {
	IssuerURL    string `mapstructure:"issuer_url"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string `mapstructure:"level"`  // e.g., "debug", "info", "warn", "error"
	Format     string `mapstructure:"format"` // e.g., "json", "console"
	File       string `mapstructure:"file"`   // rotated log file; stdout when empty
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// CacheConfig holds the SQLite cache configuration.
type CacheConfig struct {
	FilePath    string        `mapstructure:"file_path"`
	CalendarTTL time.Duration `mapstructure:"calendar_ttl"`
}

// ContentConfig selects and configures the remote content store.
type ContentConfig struct {
	Backend         string         `mapstructure:"backend"` // "sql" or "firestore"
	RefreshInterval time.Duration  `mapstructure:"refresh_interval"`
	Firebase        FirebaseConfig `mapstructure:"firebase"`
}

// FirebaseConfig holds the Firebase project settings shared by Firestore and Storage.
type FirebaseConfig struct {
	ProjectID       string `mapstructure:"project_id"`
	CredentialsFile string `mapstructure:"credentials_file"`
	Bucket          string `mapstructure:"bucket"`
}

// StorageConfig selects the blob store used for uploaded images.
type StorageConfig struct {
	Backend    string `mapstructure:"backend"` // "local" or "firebase"
	LocalDir   string `mapstructure:"local_dir"`
	PublicPath string `mapstructure:"public_path"`
}

// CalendarConfig identifies the public Google Calendar shown on the site.
type CalendarConfig struct {
	ID     string `mapstructure:"id"`
	APIKey string `mapstructure:"api_key"`
}

// ContactConfig holds the contact form delivery and verification settings.
type ContactConfig struct {
	SMTPHost        string `mapstructure:"smtp_host"`
	SMTPPort        int    `mapstructure:"smtp_port"`
	SMTPUsername    string `mapstructure:"smtp_username"`
	SMTPPassword    string `mapstructure:"smtp_password"`
	From            string `mapstructure:"from"`
	To              string `mapstructure:"to"`
	Subject         string `mapstructure:"subject"`
	RecaptchaSite   string `mapstructure:"recaptcha_site_key"`
	RecaptchaSecret string `mapstructure:"recaptcha_secret"`
	VerifyURL       string `mapstructure:"verify_url"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.dsn", "site:site@tcp(localhost:3306)/site?parseTime=true")
	v.SetDefault("session.lifetime", 24)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("cache.file_path", "cache.db")
	v.SetDefault("cache.calendar_ttl", 15*time.Minute)
	v.SetDefault("content.backend", "sql")
	v.SetDefault("content.refresh_interval", 0)
	v.SetDefault("storage.backend", "local")
	v.SetDefault("storage.local_dir", "uploads")
	v.SetDefault("storage.public_path", "/uploads")
	v.SetDefault("contact.smtp_port", 587)
	v.SetDefault("contact.subject", "New message from the website")
	v.SetDefault("contact.verify_url", "https://www.google.com/recaptcha/api/siteverify")

	// Unmarshal only sees environment overrides for keys viper already knows about.
	for _, key := range []string{
		"server.csrf_key", "server.tls.enabled", "server.tls.certFile", "server.tls.keyFile",
		"oidc.issuer_url", "oidc.client_id", "oidc.client_secret", "oidc.redirect_url",
		"log.file",
		"content.firebase.project_id", "content.firebase.credentials_file", "content.firebase.bucket",
		"calendar.id", "calendar.api_key",
		"contact.smtp_host", "contact.smtp_username", "contact.smtp_password",
		"contact.from", "contact.to", "contact.recaptcha_site_key", "contact.recaptcha_secret",
	} {
		if !v.IsSet(key) {
			v.SetDefault(key, "")
		}
	}
	v.SetDefault("server.tls.enabled", false)
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("/etc/workshop-site/")
	v.AddConfigPath("$HOME/.workshop-site")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return nil, err
		}
		// Config file not found; proceed with defaults and env vars
	}

	v.SetEnvPrefix("SITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
