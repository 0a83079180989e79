package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Auth          AuthConfig          `yaml:"auth"`
	Log           LogConfig           `yaml:"log"`
	CORS          CORSConfig          `yaml:"cors"`
	RateLimit     RateLimitConfig     `yaml:"rate_limit"`
	NATS          NATSConfig          `yaml:"nats"`
	Redis         RedisConfig         `yaml:"redis"`
	Push          PushConfig          `yaml:"push"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
	Ledger        LedgerConfig        `yaml:"ledger"`
	Messaging     MessagingConfig     `yaml:"messaging"`
	Notifications NotificationsConfig `yaml:"notifications"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	Trace           bool          `yaml:"trace"              env:"DATABASE_TRACE"              env-default:"true"`
}

// AuthConfig holds bearer token validation settings. Tokens are issued by
// the external identity provider and signed with a shared HS256 secret.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"ideamatcher"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	RequestsPerMin  int           `yaml:"requests_per_min" env:"RATE_LIMIT_REQUESTS_PER_MIN" env-default:"300"`
	NotifyPerMin    int           `yaml:"notify_per_min"   env:"RATE_LIMIT_NOTIFY_PER_MIN"   env-default:"60"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// NATSConfig holds event bus settings.
type NATSConfig struct {
	URL           string        `yaml:"url"            env:"NATS_URL"            env-default:"nats://localhost:4222"`
	SubjectPrefix string        `yaml:"subject_prefix" env:"NATS_SUBJECT_PREFIX" env-default:"ideamatcher"`
	ClientName    string        `yaml:"client_name"    env:"NATS_CLIENT_NAME"    env-default:"ideamatcher-api"`
	ReconnectWait time.Duration `yaml:"reconnect_wait" env:"NATS_RECONNECT_WAIT" env-default:"2s"`
	MaxReconnects int           `yaml:"max_reconnects" env:"NATS_MAX_RECONNECTS" env-default:"60"`
}

// RedisConfig holds the notification inbox store settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// PushConfig selects and configures the push provider.
type PushConfig struct {
	// Provider is "fcm" for Firebase Cloud Messaging or "log" to only log
	// deliveries (development).
	Provider  string `yaml:"provider"   env:"PUSH_PROVIDER"   env-default:"log"`
	ProjectID string `yaml:"project_id" env:"PUSH_PROJECT_ID"`
}

// TelemetryConfig holds OpenTelemetry tracing settings. Tracing is disabled
// when OTLPEndpoint is empty.
type TelemetryConfig struct {
	ServiceName  string `yaml:"service_name"  env:"OTEL_SERVICE_NAME"                 env-default:"ideamatcher-api"`
	Environment  string `yaml:"environment"   env:"OTEL_ENVIRONMENT"                  env-default:"local"`
	OTLPEndpoint string `yaml:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Insecure     bool   `yaml:"insecure"      env:"OTEL_EXPORTER_OTLP_INSECURE"       env-default:"true"`
}

// LedgerConfig controls retries of transactional paired mutations.
type LedgerConfig struct {
	MaxAttempts     uint          `yaml:"max_attempts"     env:"LEDGER_MAX_ATTEMPTS"     env-default:"5"`
	InitialInterval time.Duration `yaml:"initial_interval" env:"LEDGER_INITIAL_INTERVAL" env-default:"20ms"`
	MaxInterval     time.Duration `yaml:"max_interval"     env:"LEDGER_MAX_INTERVAL"     env-default:"500ms"`
}

// MessagingConfig bounds conversation reads.
type MessagingConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"MESSAGING_DEFAULT_PAGE_SIZE" env-default:"100"`
	MaxPageSize     int `yaml:"max_page_size"     env:"MESSAGING_MAX_PAGE_SIZE"     env-default:"200"`
}

// NotificationsConfig holds dispatcher and inbox settings.
type NotificationsConfig struct {
	BatchSize        int           `yaml:"batch_size"         env:"NOTIFY_BATCH_SIZE"         env-default:"500"`
	BatchConcurrency int           `yaml:"batch_concurrency"  env:"NOTIFY_BATCH_CONCURRENCY"  env-default:"4"`
	InboxSize        int64         `yaml:"inbox_size"         env:"NOTIFY_INBOX_SIZE"         env-default:"100"`
	InboxTTL         time.Duration `yaml:"inbox_ttl"          env:"NOTIFY_INBOX_TTL"          env-default:"720h"`
	TokenMaxIdleDays int           `yaml:"token_max_idle_days" env:"NOTIFY_TOKEN_MAX_IDLE_DAYS" env-default:"270"`
}

// PushProvider returns the normalized provider name.
func (c PushConfig) PushProvider() string {
	return strings.ToLower(strings.TrimSpace(c.Provider))
}

// TracingEnabled reports whether spans are exported.
func (c TelemetryConfig) TracingEnabled() bool {
	return strings.TrimSpace(c.OTLPEndpoint) != ""
}
