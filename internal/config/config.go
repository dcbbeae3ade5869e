package config

import "time"

// Recency storage backends.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
)

// Word source kinds.
const (
	SourceRandom  = "random"
	SourceElastic = "elastic"
	SourceLLM     = "llm"
	SourceStatic  = "static"
)

// Config is the root application configuration.
type Config struct {
	Log        LogConfig        `yaml:"log"`
	Languages  LanguagesConfig  `yaml:"languages"`
	Recent     RecentConfig     `yaml:"recent"`
	Source     SourceConfig     `yaml:"source"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	RandomWord RandomWordConfig `yaml:"random_word"`
	Elastic    ElasticConfig    `yaml:"elastic"`
	LLM        LLMConfig        `yaml:"llm"`
	Static     StaticConfig     `yaml:"static"`
	Database   DatabaseConfig   `yaml:"database"`
	SQLite     SQLiteConfig     `yaml:"sqlite"`
	Redis      RedisConfig      `yaml:"redis"`
	Server     ServerConfig     `yaml:"server"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// LanguagesConfig lists the target languages shown next to English.
type LanguagesConfig struct {
	Codes  []string          `yaml:"codes"  env:"LANGUAGES"       env-default:"de,id,vi" env-separator:","`
	Labels map[string]string `yaml:"labels" env:"LANGUAGE_LABELS"`
}

// RecentConfig controls the recency memory.
type RecentConfig struct {
	Backend string        `yaml:"backend"  env:"RECENT_BACKEND"  env-default:"file"`
	Path    string        `yaml:"path"     env:"RECENT_FILE"     env-default:"recent_words.json"`
	List    string        `yaml:"list"     env:"RECENT_LIST"     env-default:"default"`
	TTL     time.Duration `yaml:"ttl"      env:"RECENT_TTL"      env-default:"5m"`
	MaxSize int           `yaml:"max_size" env:"RECENT_MAX"      env-default:"0"`
}

// SourceConfig selects the word source.
type SourceConfig struct {
	Kind string `yaml:"kind" env:"WORD_SOURCE" env-default:"random"`
}

// DictionaryConfig holds dictionary lookup settings.
type DictionaryConfig struct {
	BaseURL string        `yaml:"base_url" env:"DICTIONARY_BASE_URL" env-default:"https://freedictionaryapi.com/api/v1/entries/en"`
	Timeout time.Duration `yaml:"timeout"  env:"DICTIONARY_TIMEOUT"  env-default:"10s"`
}

// RandomWordConfig holds random-word-api settings.
type RandomWordConfig struct {
	BaseURL    string        `yaml:"base_url"   env:"RANDOM_WORD_BASE_URL"   env-default:"https://random-word-api.herokuapp.com/word"`
	BatchSize  int           `yaml:"batch_size" env:"RANDOM_WORD_BATCH_SIZE" env-default:"5"`
	Difficulty int           `yaml:"difficulty" env:"RANDOM_WORD_DIFFICULTY" env-default:"1"`
	Timeout    time.Duration `yaml:"timeout"    env:"RANDOM_WORD_TIMEOUT"    env-default:"10s"`
}

// ElasticConfig holds Elastic Agent Builder tool settings.
type ElasticConfig struct {
	APIURL  string        `yaml:"api_url" env:"ELASTIC_API_URL"`
	APIKey  string        `yaml:"api_key" env:"ELASTIC_API_KEY"`
	ToolID  string        `yaml:"tool_id" env:"ELASTIC_TOOL_ID" env-default:"word.of.the.day.multilingual"`
	Timeout time.Duration `yaml:"timeout" env:"ELASTIC_TIMEOUT" env-default:"30s"`
}

// LLMConfig holds Anthropic API settings.
type LLMConfig struct {
	APIKey     string        `yaml:"api_key"     env:"ANTHROPIC_API_KEY"`
	Model      string        `yaml:"model"       env:"LLM_MODEL"       env-default:"claude-3-5-haiku-latest"`
	BaseURL    string        `yaml:"base_url"    env:"LLM_BASE_URL"`
	Timeout    time.Duration `yaml:"timeout"     env:"LLM_TIMEOUT"     env-default:"60s"`
	MaxRetries int           `yaml:"max_retries" env:"LLM_MAX_RETRIES" env-default:"2"`
}

// StaticConfig holds the offline rotation source settings.
// An empty Path uses the built-in list.
type StaticConfig struct {
	Path string `yaml:"path" env:"STATIC_WORDS_FILE"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"5"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"0"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// SQLiteConfig holds the local SQLite backend settings.
type SQLiteConfig struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"recent_words.db"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimit       int           `yaml:"rate_limit"       env:"SERVER_RATE_LIMIT"       env-default:"30"`
	CORS            CORSConfig    `yaml:"cors"`
}

// CORSConfig holds CORS settings for the word endpoint.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type,X-Request-Id"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"300"`
}
