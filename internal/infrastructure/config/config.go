package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrMissingAccessTokenSecret = errors.New("missing ACCESS_TOKEN_SECRET")

const (
	defaultPort              = 8080
	defaultAccessTokenTTL    = 15 * time.Minute
	defaultRefreshTokenTTL   = 30 * 24 * time.Hour
	defaultPasswordResetTTL  = time.Hour
	defaultTrialPeriodDays   = 90
	defaultUploadMaxFileSize = 20 << 20
	defaultMaxPhotos         = 5
	defaultTrialSchedule     = "0 7 * * *"
)

var defaultUploadAllowedTypes = []string{"jpg", "jpeg", "png", "webp", "heic", "heif", "avif", "gif", "mp4", "mov"}

type Config struct {
	Port        int
	AppEnv      string
	LogLevel    string
	LogFormat   string
	FrontendURL string
	AdminEmail  string
	CORSOrigins []string

	AccessTokenSecret string
	AccessTokenTTL    time.Duration
	RefreshTokenTTL   time.Duration
	PasswordResetTTL  time.Duration
	TrialPeriodDays   int

	Redis RedisConfig
	SMTP  SMTPConfig
	S3    S3Config

	UploadMaxFileSize  int64
	UploadMaxPhotos    int
	UploadAllowedTypes []string

	MercadoPago       MercadoPagoConfig
	SubscriptionPrice float64

	TrialJobSchedule string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type MercadoPagoConfig struct {
	AccessToken string
	// Sandbox payer used when a test-mode payload carries no payer.
	TestPayerEmail  string
	TestPayerUserID string
}

type S3Config struct {
	Bucket   string
	Endpoint string
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:        getenvInt("PORT", defaultPort),
		AppEnv:      getenvDefault("APP_ENV", "development"),
		LogLevel:    getenvDefault("LOG_LEVEL", "info"),
		LogFormat:   getenvDefault("LOG_FORMAT", "json"),
		FrontendURL: strings.TrimRight(getenvDefault("FRONTEND_URL", "http://localhost:5173"), "/"),
		AdminEmail:  strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))),

		AccessTokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
		AccessTokenTTL:    getenvDuration("ACCESS_TOKEN_TTL", defaultAccessTokenTTL),
		RefreshTokenTTL:   getenvDuration("REFRESH_TOKEN_TTL", defaultRefreshTokenTTL),
		PasswordResetTTL:  getenvDuration("PASSWORD_RESET_TTL", defaultPasswordResetTTL),
		TrialPeriodDays:   getenvInt("TRIAL_PERIOD_DAYS", defaultTrialPeriodDays),

		Redis: RedisConfig{
			Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getenvInt("REDIS_DB", 0),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getenvInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getenvDefault("EMAIL_FROM", "EstiMate Pro <no-reply@estimatepro.app>"),
		},
		S3: S3Config{
			Bucket:   os.Getenv("S3_BUCKET"),
			Endpoint: os.Getenv("S3_ENDPOINT"),
		},

		UploadMaxFileSize:  int64(getenvInt("UPLOAD_MAX_FILE_SIZE", defaultUploadMaxFileSize)),
		UploadMaxPhotos:    getenvInt("UPLOAD_MAX_PHOTOS", defaultMaxPhotos),
		UploadAllowedTypes: getenvList("UPLOAD_ALLOWED_TYPES", defaultUploadAllowedTypes),

		MercadoPago: MercadoPagoConfig{
			AccessToken:     strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
			TestPayerEmail:  strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
			TestPayerUserID: strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
		},
		SubscriptionPrice: getenvFloat("SUBSCRIPTION_PRICE", 49),

		TrialJobSchedule: getenvDefault("JOBS_TRIAL_SCHEDULE", defaultTrialSchedule),
	}
	cfg.CORSOrigins = getenvList("CORS_ORIGINS", []string{cfg.FrontendURL})

	if cfg.AccessTokenSecret == "" {
		return Config{}, ErrMissingAccessTokenSecret
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func getenvFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(key)), 64)
	if err != nil {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getenvList(key string, def []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
