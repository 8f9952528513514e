package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Google   GoogleConfig
	LLM      LLMConfig
	Session  SessionConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	CORSOrigins []string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32

	MigrationsDir string
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	StateSecret  string
}

type LLMConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type SessionConfig struct {
	TTL time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		CORSOrigins: splitOrigins(opt("CORS_ORIGINS")),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE"),
		ConnectTimeout: durationSeconds(opt("DB_CONNECT_TIMEOUT"), 0),
		PoolMaxConns:   int32FromEnv(opt("DB_POOL_MAX_CONNS")),
		PoolMinConns:   int32FromEnv(opt("DB_POOL_MIN_CONNS")),
		MigrationsDir:  opt("DB_MIGRATIONS_DIR"),
	}

	cfg.Google = GoogleConfig{
		ClientID:     req("GOOGLE_CLIENT_ID"),
		ClientSecret: req("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  req("OAUTH_REDIRECT_URL"),
		StateSecret:  opt("OAUTH_STATE_SECRET"),
	}

	cfg.LLM = LLMConfig{
		APIKey:  opt("LLM_API_KEY"),
		BaseURL: opt("LLM_BASE_URL"),
		Model:   opt("LLM_MODEL"),
	}

	cfg.Session = SessionConfig{
		TTL: sessionTTL(opt("SESSION_TTL_DAYS")),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func durationSeconds(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}

func int32FromEnv(raw string) int32 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v <= 0 {
		return 0
	}
	return int32(v)
}

// Sessions live 7 days unless overridden.
func sessionTTL(raw string) time.Duration {
	if raw == "" {
		return 7 * 24 * time.Hour
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 7 * 24 * time.Hour
	}
	return time.Duration(v) * 24 * time.Hour
}
