package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultJWTSecret is the development fallback; production refuses to start with it
const DefaultJWTSecret = "change-this-in-production"

// ErrInsecureJWTSecret is returned by Validate for a production config without a real secret
var ErrInsecureJWTSecret = errors.New("JWT_SECRET must be set to a non-default value when SERVER_ENV=production")

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Admin    AdminConfig
	CORS     CORSConfig
	Mail     MailConfig
	Media    MediaConfig
	Cache    CacheConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret        string
	SessionExpiry time.Duration
	CookieSecure  bool
}

// AdminConfig holds the bootstrap credentials of the single admin
type AdminConfig struct {
	Username     string
	Password     string
	PasswordHash string
}

// CORSConfig holds the origins allowed to call the API with credentials
type CORSConfig struct {
	AllowedOrigins []string
}

// MailConfig holds SMTP settings for contact notifications
type MailConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	NotifyTo  string
	QueueSize int
}

// Enabled reports whether enough SMTP settings are present to send mail
func (c MailConfig) Enabled() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// MediaConfig holds image host credentials
type MediaConfig struct {
	CloudName     string
	APIKey        string
	APISecret     string
	Folder        string
	UploadTimeout time.Duration
}

// Enabled reports whether the media host credentials are configured
func (c MediaConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

// CacheConfig holds in-process cache settings
type CacheConfig struct {
	ProfileTTL time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	username := getEnv("SMTP_USERNAME", "")
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "portfolio"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", DefaultJWTSecret),
			SessionExpiry: getEnvAsDuration("SESSION_EXPIRY", 7*24*time.Hour),
			CookieSecure:  getEnvAsBool("COOKIE_SECURE", false),
		},
		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			Password:     getEnv("ADMIN_PASSWORD", ""),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{
				"http://localhost:5173",
				"http://localhost:5174",
			}),
		},
		Mail: MailConfig{
			Host:      getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:      getEnvAsInt("SMTP_PORT", 587),
			Username:  username,
			Password:  getEnv("SMTP_PASSWORD", ""),
			From:      getEnv("MAIL_FROM", username),
			NotifyTo:  getEnv("MAIL_NOTIFY_TO", username),
			QueueSize: getEnvAsInt("NOTIFY_QUEUE_SIZE", 64),
		},
		Media: MediaConfig{
			CloudName:     getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:        getEnv("CLOUDINARY_API_KEY", ""),
			APISecret:     getEnv("CLOUDINARY_API_SECRET", ""),
			Folder:        getEnv("CLOUDINARY_FOLDER", "portfolio"),
			UploadTimeout: getEnvAsDuration("UPLOAD_TIMEOUT", 30*time.Second),
		},
		Cache: CacheConfig{
			ProfileTTL: getEnvAsDuration("PROFILE_CACHE_TTL", 5*time.Minute),
		},
	}
}

// Validate rejects settings that are only safe outside production
func (c *Config) Validate() error {
	if c.Server.Env == "production" {
		secret := strings.TrimSpace(c.JWT.Secret)
		if secret == "" || secret == DefaultJWTSecret {
			return ErrInsecureJWTSecret
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
