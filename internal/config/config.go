package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Upload    UploadConfig
	S3        S3Config
	Cache     CacheConfig
	SMTP      SMTPConfig
	Scheduler SchedulerConfig
	Seed      SeedConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	// Adds internal error detail to 500 responses. Ignored in production.
	VerboseErrors bool
}

type DatabaseConfig struct {
	Driver     string // "postgres" or "memory"
	Connection string
	LogLevel   string // silent, error, warn, info
}

type AuthConfig struct {
	JwtSecret string
	TokenTTL  time.Duration
}

type UploadConfig struct {
	Driver        string // "local" or "s3"
	Dir           string
	PublicPrefix  string
	MaxSizeBytes  int64
	MaxImageWidth int
}

type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	PublicURL       string
	AccessKeyID     string
	SecretAccessKey string
}

type CacheConfig struct {
	Driver string // "memory" or "redis"
	TTL    time.Duration
}

type SMTPConfig struct {
	Host              string
	Port              int
	Email             string
	Password          string
	SenderName        string
	NotificationEmail string
}

type SchedulerConfig struct {
	Enabled bool
	Spec    string
}

type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			VerboseErrors:      getEnvAsBool("VERBOSE_ERRORS", false),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("STORE_DRIVER", "postgres"),
			Connection: getEnv("DB_CONNECTION_STRING", ""),
			LogLevel:   getEnv("DB_LOG_LEVEL", "warn"),
		},
		Auth: AuthConfig{
			JwtSecret: getEnv("JWT_SECRET", "default_secret"),
			TokenTTL:  getEnvAsDuration("JWT_TTL", 24*time.Hour),
		},
		Upload: UploadConfig{
			Driver:        getEnv("UPLOAD_DRIVER", "local"),
			Dir:           getEnv("UPLOAD_DIR", "./uploads"),
			PublicPrefix:  getEnv("UPLOAD_PUBLIC_PREFIX", "/uploads"),
			MaxSizeBytes:  int64(getEnvAsInt("UPLOAD_MAX_SIZE_MB", 5)) * 1024 * 1024,
			MaxImageWidth: getEnvAsInt("UPLOAD_MAX_IMAGE_WIDTH", 1920),
		},
		S3: S3Config{
			Bucket:          getEnv("S3_BUCKET", ""),
			Region:          getEnv("S3_REGION", "us-east-1"),
			Endpoint:        getEnv("S3_ENDPOINT", ""),
			PublicURL:       getEnv("S3_PUBLIC_URL", ""),
			AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		},
		Cache: CacheConfig{
			Driver: getEnv("CACHE_DRIVER", "memory"),
			TTL:    getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		},
		SMTP: SMTPConfig{
			Host:              getEnv("SMTP_HOST", ""),
			Port:              getEnvAsInt("SMTP_PORT", 587),
			Email:             getEnv("SMTP_EMAIL", ""),
			Password:          getEnv("SMTP_PASSWORD", ""),
			SenderName:        getEnv("SMTP_SENDER_NAME", "Company Profile"),
			NotificationEmail: getEnv("CONTACT_NOTIFICATION_EMAIL", ""),
		},
		Scheduler: SchedulerConfig{
			Enabled: getEnvAsBool("SCHEDULER_ENABLED", true),
			Spec:    getEnv("SCHEDULER_SPEC", "@every 15m"),
		},
		Seed: SeedConfig{
			AdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@example.com"),
			AdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin123"),
			AdminName:     getEnv("SEED_ADMIN_NAME", "Administrator"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// CorsOrigins returns the configured origins, trimmed.
func (c *Config) CorsOrigins() []string {
	parts := strings.Split(c.App.CorsAllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
