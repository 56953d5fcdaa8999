package config

import (
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// S3Config holds settings for an S3-compatible bucket reached through the AWS SDK
// (AWS S3 itself or Cloudflare R2 when AccountID is set).
type S3Config struct {
	AccountID string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
}

// StorageConfig selects the object storage driver ("minio" or "s3").
type StorageConfig struct {
	Driver string
	// MediaBaseURL is prepended to object keys when rendering public media URLs.
	MediaBaseURL string
	MinIO        MinIOConfig
	S3           S3Config
}

// RedisConfig holds cache settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// MailConfig holds SMTP transport settings and the administrator address
// that receives contact notifications.
type MailConfig struct {
	AdminEmail string
	Host       string
	Port       int
	User       string
	Password   string
}

// CaptchaConfig holds reCAPTCHA keys.
type CaptchaConfig struct {
	PublicKey  string
	PrivateKey string
	VerifyURL  string
}

// AuthConfig holds administrator credentials for the REST write surface.
type AuthConfig struct {
	AdminUsername string
	AdminPassword string
	JWTSecret     string
	TokenTTL      time.Duration
}

// SiteConfig holds branding and owner settings applied once at startup.
type SiteConfig struct {
	Header         string
	Title          string
	IndexTitle     string
	OwnerFirstName string
	OwnerLastName  string
	OwnerEmail     string
	ResumePassword string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Timezone string
	LogLevel string
	Database DatabaseConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Mail     MailConfig
	Captcha  CaptchaConfig
	Auth     AuthConfig
	Site     SiteConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load() *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8080"),
		Port:     getEnv("PORT", "8080"),
		Timezone: getEnv("APP_TIMEZONE", "UTC"),
		LogLevel: getEnv("LOG_LEVEL", "INFO"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Storage: StorageConfig{
			Driver:       getEnv("STORAGE_DRIVER", "minio"),
			MediaBaseURL: getEnv("MEDIA_BASE_URL", ""),
			MinIO: MinIOConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", ""),
				AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
				SecretKey: getEnv("MINIO_SECRET_KEY", ""),
				Bucket:    getEnv("MINIO_BUCKET", ""),
				UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			},
			S3: S3Config{
				AccountID: getEnv("R2_ACCOUNT_ID", ""),
				Endpoint:  getEnv("S3_ENDPOINT", ""),
				Region:    getEnv("S3_REGION", "auto"),
				AccessKey: getEnv("S3_ACCESS_KEY", ""),
				SecretKey: getEnv("S3_SECRET_KEY", ""),
				Bucket:    getEnv("S3_BUCKET", ""),
			},
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		Mail: MailConfig{
			AdminEmail: getEnv("ADMIN_EMAIL", ""),
			Host:       getEnv("EMAIL_HOST", ""),
			Port:       getEnvInt("EMAIL_PORT", 587),
			User:       getEnv("EMAIL_HOST_USER", ""),
			Password:   getEnv("EMAIL_HOST_PASSWORD", ""),
		},
		Captcha: CaptchaConfig{
			PublicKey:  getEnv("RECAPTCHA_PUBLIC_KEY", ""),
			PrivateKey: getEnv("RECAPTCHA_PRIVATE_KEY", ""),
			VerifyURL:  getEnv("RECAPTCHA_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify"),
		},
		Auth: AuthConfig{
			AdminUsername: getEnv("ADMIN_USERNAME", ""),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
			JWTSecret:     getEnv("JWT_SECRET", ""),
			TokenTTL:      getEnvDuration("JWT_TTL", 24*time.Hour),
		},
		Site: SiteConfig{
			Header:         getEnv("SITE_HEADER", "Portfolio"),
			Title:          getEnv("SITE_TITLE", "Portfolio"),
			IndexTitle:     getEnv("INDEX_TITLE", "Welcome"),
			OwnerFirstName: getEnv("OWNER_FIRST_NAME", ""),
			OwnerLastName:  getEnv("OWNER_LAST_NAME", ""),
			OwnerEmail:     getEnv("OWNER_EMAIL", ""),
			ResumePassword: getEnv("RESUME_PASSWORD", ""),
		},
	}
}

// Location resolves the configured timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}
