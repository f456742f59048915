package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
//
// Boolean switches default to false: cleanenv applies env-default to any
// zero-valued field, so a default of true could never be turned off from YAML.
// The shipped config.yaml turns them on.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Redis     RedisConfig     `yaml:"redis"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:3000,http://127.0.0.1:3000"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	APIPrefix       string        `yaml:"api_prefix"       env:"SERVER_API_PREFIX"       env-default:"/api/v1"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN               string        `yaml:"dsn"                 env:"DATABASE_DSN"                 env-required:"true"`
	MaxConns          int32         `yaml:"max_conns"           env:"DATABASE_MAX_CONNS"           env-default:"25"`
	MinConns          int32         `yaml:"min_conns"           env:"DATABASE_MIN_CONNS"           env-default:"5"`
	MaxConnLifetime   time.Duration `yaml:"max_conn_lifetime"   env:"DATABASE_MAX_CONN_LIFETIME"   env-default:"1h"`
	MaxConnIdleTime   time.Duration `yaml:"max_conn_idle_time"  env:"DATABASE_MAX_CONN_IDLE_TIME"  env-default:"30m"`
	HealthCheckPeriod time.Duration `yaml:"health_check_period" env:"DATABASE_HEALTH_CHECK_PERIOD" env-default:"1m"`
	ConnectTimeout    time.Duration `yaml:"connect_timeout"     env:"DATABASE_CONNECT_TIMEOUT"     env-default:"5s"`
	ApplicationName   string        `yaml:"application_name"    env:"DATABASE_APPLICATION_NAME"    env-default:"mythosengine"`
}

// AuthConfig holds access token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"mythosengine"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"30m"`
}

// Storage backends.
const (
	StorageLocal  = "local"
	StorageRemote = "remote"
)

// StorageConfig selects and configures the image blob store.
type StorageConfig struct {
	Backend             string `yaml:"backend"            env:"STORAGE_BACKEND"            env-default:"local"`
	LocalPath           string `yaml:"local_path"         env:"STORAGE_LOCAL_PATH"         env-default:"./uploads/images"`
	MaxImageSizeMB      int    `yaml:"max_image_size_mb"  env:"STORAGE_MAX_IMAGE_SIZE_MB"  env-default:"10"`
	AllowedMimeTypesRaw string `yaml:"allowed_mime_types" env:"STORAGE_ALLOWED_MIME_TYPES" env-default:"image/jpeg,image/png,image/gif,image/webp"`
	RemoteBucket        string `yaml:"remote_bucket"      env:"STORAGE_REMOTE_BUCKET"`
	RemoteBaseURL       string `yaml:"remote_base_url"    env:"STORAGE_REMOTE_BASE_URL"`

	// AllowedMimeTypes is parsed from AllowedMimeTypesRaw during validation.
	AllowedMimeTypes []string `yaml:"-" env:"-"`
}

// MaxImageBytes returns the upload size limit in bytes.
func (s StorageConfig) MaxImageBytes() int64 {
	return int64(s.MaxImageSizeMB) * 1024 * 1024
}

// IsRemote reports whether images go to the remote backend.
func (s StorageConfig) IsRemote() bool {
	return s.Backend == StorageRemote
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"             env-default:"false"`
	RequestsPerWindow int           `yaml:"requests_per_window" env:"RATE_LIMIT_REQUESTS_PER_WINDOW" env-default:"120"`
	Window            time.Duration `yaml:"window"              env:"RATE_LIMIT_WINDOW"              env-default:"1m"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}

// RedisConfig holds the optional Redis connection. When disabled the rate
// limiter keeps its counters in memory.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	URL     string `yaml:"url"     env:"REDIS_URL"     env-default:"redis://localhost:6379/0"`
	Prefix  string `yaml:"prefix"  env:"REDIS_PREFIX"  env-default:"mythos:ratelimit:"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"false"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// SplitList splits a comma-separated list, dropping empty items.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
