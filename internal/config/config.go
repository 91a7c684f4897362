package config

import (
	"time"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	LLM       LLMConfig       `yaml:"llm"`
	Assistant AssistantConfig `yaml:"assistant"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig limits chat turns per user. Each turn costs a model call.
type RateLimitConfig struct {
	ChatPerMinute int           `yaml:"chat_per_minute" env:"RATE_LIMIT_CHAT_PER_MINUTE" env-default:"20"`
	CleanupEvery  time.Duration `yaml:"cleanup_every"   env:"RATE_LIMIT_CLEANUP_EVERY"   env-default:"5m"`
}

// ServerConfig holds HTTP server settings.
// WriteTimeout is 0 by default: chat and event responses are long-lived streams.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"0s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"26214400"`
	EventHeartbeat  time.Duration `yaml:"event_heartbeat"  env:"SERVER_EVENT_HEARTBEAT"  env-default:"25s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds access-token validation settings. Tokens are issued by
// the identity service; this service only verifies them.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"coursepilot"`
}

// LLMConfig holds model endpoint settings.
type LLMConfig struct {
	APIKey           string        `yaml:"api_key"            env:"LLM_API_KEY"            env-required:"true"`
	Model            string        `yaml:"model"              env:"LLM_MODEL"              env-default:"claude-sonnet-4-5"`
	MaxTokens        int64         `yaml:"max_tokens"         env:"LLM_MAX_TOKENS"         env-default:"4096"`
	SummaryMaxTokens int64         `yaml:"summary_max_tokens" env:"LLM_SUMMARY_MAX_TOKENS" env-default:"1024"`
	Timeout          time.Duration `yaml:"timeout"            env:"LLM_TIMEOUT"            env-default:"120s"`
	MaxRetries       int           `yaml:"max_retries"        env:"LLM_MAX_RETRIES"        env-default:"2"`
}

// AssistantConfig tunes directive dispatch and course creation.
type AssistantConfig struct {
	MinCourseNameLen    int    `yaml:"min_course_name_len" env:"ASSISTANT_MIN_COURSE_NAME_LEN" env-default:"3"`
	PlaceholderSlugsRaw string `yaml:"placeholder_slugs"   env:"ASSISTANT_PLACEHOLDER_SLUGS"   env-default:"new-course,course,my-course,course-slug,slug,unknown,placeholder"`
	PlaceholderNamesRaw string `yaml:"placeholder_names"   env:"ASSISTANT_PLACEHOLDER_NAMES"   env-default:"New Course,Untitled,Course,My Course"`
	LanguagesRaw        string `yaml:"languages"           env:"ASSISTANT_LANGUAGES"           env-default:"English,Spanish,French,German,Italian,Portuguese,Chinese,Japanese,Korean,Russian,Arabic,Hindi,Dutch,Polish,Turkish,Swedish"`
	UploadConcurrency   int    `yaml:"upload_concurrency"  env:"ASSISTANT_UPLOAD_CONCURRENCY"  env-default:"4"`

	// TutorialTick is the delay between words of a tutorial step.
	TutorialTick time.Duration `yaml:"tutorial_tick" env:"ASSISTANT_TUTORIAL_TICK" env-default:"40ms"`

	// PlaceholderSlugs is parsed from PlaceholderSlugsRaw during validation.
	PlaceholderSlugs []string `yaml:"-" env:"-"`
	// PlaceholderNames is parsed from PlaceholderNamesRaw during validation.
	PlaceholderNames []string `yaml:"-" env:"-"`
	// Languages is parsed from LanguagesRaw during validation.
	Languages []domain.Language `yaml:"-" env:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
