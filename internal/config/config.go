package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	S3        S3Config
	Log       LogConfig
	CORS      CORSConfig
	Extractor ExtractorConfig
	Review    ReviewConfig
	Profiles  ProfilesConfig
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ProviderConfig holds settings for a single extraction provider.
type ProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	Endpoint     string `mapstructure:"endpoint"`
	MaxRetries   int    `mapstructure:"max_retries"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// ExtractorConfig holds document extraction settings with multi-provider support.
type ExtractorConfig struct {
	// Legacy flat fields
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	Endpoint     string `mapstructure:"endpoint"`
	MaxRetries   int    `mapstructure:"max_retries"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`

	Primary   ProviderConfig `mapstructure:"primary"`
	Secondary ProviderConfig `mapstructure:"secondary"`
	Tertiary  ProviderConfig `mapstructure:"tertiary"`

	// ValidateSchema rejects provider output that does not match the record schema.
	ValidateSchema bool `mapstructure:"validate_schema"`
}

// PrimaryConfig returns the primary provider config, falling back to legacy flat fields.
func (e *ExtractorConfig) PrimaryConfig() *ProviderConfig {
	if e.Primary.Provider != "" {
		return &e.Primary
	}
	return &ProviderConfig{
		Provider:     e.Provider,
		APIKey:       e.APIKey,
		DefaultModel: e.DefaultModel,
		Endpoint:     e.Endpoint,
		MaxRetries:   e.MaxRetries,
		TimeoutSecs:  e.TimeoutSecs,
	}
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (e *ExtractorConfig) SecondaryConfig() *ProviderConfig {
	if e.Secondary.Provider != "" {
		return &e.Secondary
	}
	return nil
}

// TertiaryConfig returns the tertiary provider config, or nil if not configured.
func (e *ExtractorConfig) TertiaryConfig() *ProviderConfig {
	if e.Tertiary.Provider != "" {
		return &e.Tertiary
	}
	return nil
}

// ReviewConfig holds review session settings.
type ReviewConfig struct {
	CopyAck    time.Duration `mapstructure:"copy_ack"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// ProfilesConfig holds saved profile storage settings.
type ProfilesConfig struct {
	Backend    string `mapstructure:"backend"`
	SQLitePath string `mapstructure:"sqlite_path"`
	KeyPrefix  string `mapstructure:"key_prefix"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from a .env file (if present) and environment
// variables with the LEXDRAFT_ prefix.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("LEXDRAFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                       "LEXDRAFT_SERVER_PORT",
		"server.read_timeout":               "LEXDRAFT_SERVER_READ_TIMEOUT",
		"server.write_timeout":              "LEXDRAFT_SERVER_WRITE_TIMEOUT",
		"server.shutdown_timeout":           "LEXDRAFT_SERVER_SHUTDOWN_TIMEOUT",
		"server.environment":                "LEXDRAFT_SERVER_ENVIRONMENT",
		"db.host":                           "LEXDRAFT_DB_HOST",
		"db.port":                           "LEXDRAFT_DB_PORT",
		"db.user":                           "LEXDRAFT_DB_USER",
		"db.password":                       "LEXDRAFT_DB_PASSWORD",
		"db.name":                           "LEXDRAFT_DB_NAME",
		"db.sslmode":                        "LEXDRAFT_DB_SSLMODE",
		"db.max_open":                       "LEXDRAFT_DB_MAX_OPEN",
		"db.max_idle":                       "LEXDRAFT_DB_MAX_IDLE",
		"s3.region":                         "LEXDRAFT_S3_REGION",
		"s3.bucket":                         "LEXDRAFT_S3_BUCKET",
		"s3.endpoint":                       "LEXDRAFT_S3_ENDPOINT",
		"s3.access_key":                     "LEXDRAFT_S3_ACCESS_KEY",
		"s3.secret_key":                     "LEXDRAFT_S3_SECRET_KEY",
		"s3.max_file_size_mb":               "LEXDRAFT_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":                 "LEXDRAFT_S3_PRESIGN_EXPIRY",
		"log.level":                         "LEXDRAFT_LOG_LEVEL",
		"log.format":                        "LEXDRAFT_LOG_FORMAT",
		"cors.allowed_origins":              "LEXDRAFT_CORS_ALLOWED_ORIGINS",
		"extractor.provider":                "LEXDRAFT_EXTRACTOR_PROVIDER",
		"extractor.api_key":                 "LEXDRAFT_EXTRACTOR_API_KEY",
		"extractor.default_model":           "LEXDRAFT_EXTRACTOR_DEFAULT_MODEL",
		"extractor.endpoint":                "LEXDRAFT_EXTRACTOR_ENDPOINT",
		"extractor.max_retries":             "LEXDRAFT_EXTRACTOR_MAX_RETRIES",
		"extractor.timeout_secs":            "LEXDRAFT_EXTRACTOR_TIMEOUT_SECS",
		"extractor.validate_schema":         "LEXDRAFT_EXTRACTOR_VALIDATE_SCHEMA",
		"extractor.primary.provider":        "LEXDRAFT_EXTRACTOR_PRIMARY_PROVIDER",
		"extractor.primary.api_key":         "LEXDRAFT_EXTRACTOR_PRIMARY_API_KEY",
		"extractor.primary.default_model":   "LEXDRAFT_EXTRACTOR_PRIMARY_DEFAULT_MODEL",
		"extractor.primary.endpoint":        "LEXDRAFT_EXTRACTOR_PRIMARY_ENDPOINT",
		"extractor.primary.timeout_secs":    "LEXDRAFT_EXTRACTOR_PRIMARY_TIMEOUT_SECS",
		"extractor.secondary.provider":      "LEXDRAFT_EXTRACTOR_SECONDARY_PROVIDER",
		"extractor.secondary.api_key":       "LEXDRAFT_EXTRACTOR_SECONDARY_API_KEY",
		"extractor.secondary.default_model": "LEXDRAFT_EXTRACTOR_SECONDARY_DEFAULT_MODEL",
		"extractor.secondary.endpoint":      "LEXDRAFT_EXTRACTOR_SECONDARY_ENDPOINT",
		"extractor.secondary.timeout_secs":  "LEXDRAFT_EXTRACTOR_SECONDARY_TIMEOUT_SECS",
		"extractor.tertiary.provider":       "LEXDRAFT_EXTRACTOR_TERTIARY_PROVIDER",
		"extractor.tertiary.api_key":        "LEXDRAFT_EXTRACTOR_TERTIARY_API_KEY",
		"extractor.tertiary.default_model":  "LEXDRAFT_EXTRACTOR_TERTIARY_DEFAULT_MODEL",
		"extractor.tertiary.endpoint":       "LEXDRAFT_EXTRACTOR_TERTIARY_ENDPOINT",
		"extractor.tertiary.timeout_secs":   "LEXDRAFT_EXTRACTOR_TERTIARY_TIMEOUT_SECS",
		"review.copy_ack":                   "LEXDRAFT_REVIEW_COPY_ACK",
		"review.session_ttl":                "LEXDRAFT_REVIEW_SESSION_TTL",
		"profiles.backend":                  "LEXDRAFT_PROFILES_BACKEND",
		"profiles.sqlite_path":              "LEXDRAFT_PROFILES_SQLITE_PATH",
		"profiles.key_prefix":               "LEXDRAFT_PROFILES_KEY_PREFIX",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set PORT. Use it if LEXDRAFT_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LEXDRAFT_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:            serverPort,
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		Environment:     v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Extractor = ExtractorConfig{
		Provider:       v.GetString("extractor.provider"),
		APIKey:         v.GetString("extractor.api_key"),
		DefaultModel:   v.GetString("extractor.default_model"),
		Endpoint:       v.GetString("extractor.endpoint"),
		MaxRetries:     v.GetInt("extractor.max_retries"),
		TimeoutSecs:    v.GetInt("extractor.timeout_secs"),
		ValidateSchema: v.GetBool("extractor.validate_schema"),
		Primary:        providerConfig(v, "extractor.primary"),
		Secondary:      providerConfig(v, "extractor.secondary"),
		Tertiary:       providerConfig(v, "extractor.tertiary"),
	}
	cfg.Review = ReviewConfig{
		CopyAck:    v.GetDuration("review.copy_ack"),
		SessionTTL: v.GetDuration("review.session_ttl"),
	}
	cfg.Profiles = ProfilesConfig{
		Backend:    v.GetString("profiles.backend"),
		SQLitePath: v.GetString("profiles.sqlite_path"),
		KeyPrefix:  v.GetString("profiles.key_prefix"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "180s")
	v.SetDefault("server.shutdown_timeout", "20s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "lexdraft")
	v.SetDefault("db.password", "lexdraft_secret")
	v.SetDefault("db.name", "lexdraft_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "me-south-1")
	v.SetDefault("s3.bucket", "lexdraft-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 20)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Extractor defaults (legacy flat)
	v.SetDefault("extractor.provider", "claude")
	v.SetDefault("extractor.api_key", "")
	v.SetDefault("extractor.default_model", "")
	v.SetDefault("extractor.endpoint", "")
	v.SetDefault("extractor.max_retries", 2)
	v.SetDefault("extractor.timeout_secs", 120)
	v.SetDefault("extractor.validate_schema", true)
	for _, tier := range []string{"primary", "secondary", "tertiary"} {
		v.SetDefault("extractor."+tier+".provider", "")
		v.SetDefault("extractor."+tier+".api_key", "")
		v.SetDefault("extractor."+tier+".default_model", "")
		v.SetDefault("extractor."+tier+".endpoint", "")
		v.SetDefault("extractor."+tier+".max_retries", 2)
		v.SetDefault("extractor."+tier+".timeout_secs", 120)
	}

	// Review defaults
	v.SetDefault("review.copy_ack", "2s")
	v.SetDefault("review.session_ttl", "30m")

	// Profile storage defaults
	v.SetDefault("profiles.backend", "sqlite")
	v.SetDefault("profiles.sqlite_path", "data/profiles.db")
	v.SetDefault("profiles.key_prefix", "saved_profiles")
}

func providerConfig(v *viper.Viper, prefix string) ProviderConfig {
	return ProviderConfig{
		Provider:     v.GetString(prefix + ".provider"),
		APIKey:       v.GetString(prefix + ".api_key"),
		DefaultModel: v.GetString(prefix + ".default_model"),
		Endpoint:     v.GetString(prefix + ".endpoint"),
		MaxRetries:   v.GetInt(prefix + ".max_retries"),
		TimeoutSecs:  v.GetInt(prefix + ".timeout_secs"),
	}
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
