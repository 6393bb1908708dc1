package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Content  ContentConfig  `yaml:"content"`
	Glossary GlossaryConfig `yaml:"glossary"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
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
	// LookupRateLimit caps word lookups and tokenize calls per client IP per
	// minute. Zero disables the limit.
	LookupRateLimit int `yaml:"lookup_rate_limit" env:"SERVER_LOOKUP_RATE_LIMIT" env-default:"300"`
}

// DatabaseConfig holds PostgreSQL connection settings. Only used when the
// content provider is "postgres".
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"false"`
}

// Content provider names.
const (
	ProviderStatic   = "static"
	ProviderPostgres = "postgres"
	ProviderSQLite   = "sqlite"
)

// ContentConfig selects where poems, authors and categories come from and
// sizes the catalog pages.
type ContentConfig struct {
	Provider     string `yaml:"provider"      env:"CONTENT_PROVIDER"      env-default:"static"`
	FixturePath  string `yaml:"fixture_path"  env:"CONTENT_FIXTURE_PATH"`
	SQLitePath   string `yaml:"sqlite_path"   env:"CONTENT_SQLITE_PATH"   env-default:"kavita.db"`
	FeaturedSize int    `yaml:"featured_size" env:"CONTENT_FEATURED_SIZE" env-default:"3"`
	RecentSize   int    `yaml:"recent_size"   env:"CONTENT_RECENT_SIZE"   env-default:"6"`
	RelatedSize  int    `yaml:"related_size"  env:"CONTENT_RELATED_SIZE"  env-default:"3"`
	ListSize     int    `yaml:"list_size"     env:"CONTENT_LIST_SIZE"     env-default:"50"`
}

// GlossaryConfig holds word lookup settings. An empty Path uses the
// built-in glossary.
type GlossaryConfig struct {
	Path            string `yaml:"path"              env:"GLOSSARY_PATH"`
	RenderCacheSize int    `yaml:"render_cache_size" env:"GLOSSARY_RENDER_CACHE_SIZE" env-default:"256"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
