// Package config provides configuration loading and validation for the application.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default configuration constants.
const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 8080
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	DefaultMongoDBTimeout     = 10 * time.Second
	DefaultMongoDBMaxPoolSize = 100

	DefaultRedisPoolSize = 10

	DefaultTokenTTL   = 24 * time.Hour
	DefaultBcryptCost = 12
)

const devJWTSecret = "dev-secret-change-in-production"

// Config holds the complete application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	MongoDB MongoDBConfig `yaml:"mongodb"`
	Redis   RedisConfig   `yaml:"redis"`
	Auth    AuthConfig    `yaml:"auth"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig holds HTTP server configuration.
//
//nolint:golines // Struct tags require longer lines for readability
type ServerConfig struct {
	Host            string        `yaml:"host" env:"SERVER_HOST"`
	Port            int           `yaml:"port" env:"SERVER_PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
}

// Address returns the full server address (host:port).
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MongoDBConfig holds MongoDB connection configuration.
//
//nolint:golines // Struct tags require longer lines for readability
type MongoDBConfig struct {
	URI         string        `yaml:"uri" env:"MONGODB_URI"`
	Database    string        `yaml:"database" env:"MONGODB_DATABASE"`
	Timeout     time.Duration `yaml:"timeout" env:"MONGODB_TIMEOUT"`
	MaxPoolSize uint64        `yaml:"max_pool_size" env:"MONGODB_MAX_POOL_SIZE"`
}

// RedisConfig holds Redis connection configuration.
//
//nolint:golines // Struct tags require longer lines for readability
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
	PoolSize int    `yaml:"pool_size" env:"REDIS_POOL_SIZE"`
}

// AuthConfig holds authentication configuration.
//
//nolint:golines // Struct tags require longer lines for readability
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	TokenTTL   time.Duration `yaml:"token_ttl" env:"AUTH_TOKEN_TTL"`
	BcryptCost int           `yaml:"bcrypt_cost" env:"AUTH_BCRYPT_COST"`
}

// LogConfig holds logging configuration.
//
//nolint:golines // Struct tags require longer lines for readability
type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`   // debug | info | warn | error
	Format string `yaml:"format" env:"LOG_FORMAT"` // json | text
}

// Configuration errors.
var (
	ErrConfigNotFound   = errors.New("configuration file not found")
	ErrConfigInvalid    = errors.New("invalid configuration")
	ErrInvalidDuration  = errors.New("invalid duration format")
	ErrInvalidLogLevel  = errors.New("invalid log level: must be debug, info, warn, or error")
	ErrInvalidLogFormat = errors.New("invalid log format: must be json or text")
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		MongoDB: MongoDBConfig{
			URI:         "mongodb://localhost:27017",
			Database:    "conduit",
			Timeout:     DefaultMongoDBTimeout,
			MaxPoolSize: DefaultMongoDBMaxPoolSize,
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
			PoolSize: DefaultRedisPoolSize,
		},
		Auth: AuthConfig{
			JWTSecret:  devJWTSecret,
			TokenTTL:   DefaultTokenTTL,
			BcryptCost: DefaultBcryptCost,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errs []error

	errs = c.validateServer(errs)
	errs = c.validateMongoDB(errs)
	errs = c.validateRedis(errs)
	errs = c.validateAuth(errs)
	errs = c.validateLog(errs)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, errors.Join(errs...))
	}

	return nil
}

func (c *Config) validateServer(errs []error) []error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	return errs
}

func (c *Config) validateMongoDB(errs []error) []error {
	if c.MongoDB.URI == "" {
		errs = append(errs, errors.New("mongodb.uri is required"))
	}
	if c.MongoDB.Database == "" {
		errs = append(errs, errors.New("mongodb.database is required"))
	}
	return errs
}

func (c *Config) validateRedis(errs []error) []error {
	if c.Redis.Addr == "" {
		errs = append(errs, errors.New("redis.addr is required"))
	}
	return errs
}

func (c *Config) validateAuth(errs []error) []error {
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret is required"))
	}
	// The dev secret is allowed locally; deployment validation catches it.
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		errs = append(errs, fmt.Errorf("auth.bcrypt_cost must be between 4 and 31, got %d", c.Auth.BcryptCost))
	}
	return errs
}

func (c *Config) validateLog(errs []error) []error {
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ErrInvalidLogLevel)
	}
	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[strings.ToLower(c.Log.Format)] {
		errs = append(errs, ErrInvalidLogFormat)
	}
	return errs
}

// Load loads configuration from the default config file and environment variables.
func Load() (*Config, error) {
	return LoadFromPath("")
}

// LoadFromPath loads configuration from a specific file path.
// If path is empty, it tries to find the config file in standard locations.
func LoadFromPath(path string) (*Config, error) {
	loader := NewLoader()
	return loader.Load(path)
}

// Loader handles configuration loading from files and environment variables.
type Loader struct {
	configPaths []string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{
		configPaths: []string{
			"configs/config.yaml",
			"config.yaml",
			"/etc/conduit/config.yaml",
		},
	}
}

// WithConfigPaths sets custom config paths to search.
func (l *Loader) WithConfigPaths(paths []string) *Loader {
	l.configPaths = paths
	return l
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values, which take
// precedence over defaults.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	configPath := path
	if configPath == "" {
		if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
			configPath = envPath
		} else {
			for _, p := range l.configPaths {
				if _, err := os.Stat(p); err == nil {
					configPath = p
					break
				}
			}
		}
	}

	if configPath != "" {
		if err := l.loadFromFile(cfg, configPath); err != nil {
			// A missing file is an error only when it was asked for by name.
			if path != "" || os.Getenv("CONFIG_PATH") != "" {
				return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
			}
		}
	}

	if err := l.loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (l *Loader) loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
		return fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	return nil
}

func (l *Loader) loadFromEnv(cfg *Config) error {
	return l.loadEnvToStruct(reflect.ValueOf(cfg).Elem())
}

// loadEnvToStruct recursively loads environment variables into a struct.
func (l *Loader) loadEnvToStruct(v reflect.Value) error {
	t := v.Type()

	for i := range v.NumField() {
		field := v.Field(i)
		fieldType := t.Field(i)

		if field.Kind() == reflect.Struct {
			if err := l.loadEnvToStruct(field); err != nil {
				return err
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}

		envValue := os.Getenv(envTag)
		if envValue == "" {
			continue
		}

		if err := l.setFieldFromEnv(field, envValue); err != nil {
			return fmt.Errorf("failed to set %s from env %s: %w", fieldType.Name, envTag, err)
		}
	}

	return nil
}

// setFieldFromEnv sets a struct field value from an environment variable string.
//
//nolint:exhaustive // We only support a subset of reflect.Kind for config values
func (l *Loader) setFieldFromEnv(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.Type() == reflect.TypeFor[time.Duration]() {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("%w: %s", ErrInvalidDuration, value)
			}
			field.SetInt(int64(d))
		} else {
			i, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %s", value)
			}
			field.SetInt(i)
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid unsigned integer value: %s", value)
		}
		field.SetUint(u)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value: %s", value)
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// IsDevelopment returns true if the log level indicates a development environment.
func (c *Config) IsDevelopment() bool {
	return strings.ToLower(c.Log.Level) == "debug"
}

// IsProduction returns true if authentication appears configured for production.
func (c *Config) IsProduction() bool {
	return c.Auth.JWTSecret != devJWTSecret && c.Auth.JWTSecret != ""
}
