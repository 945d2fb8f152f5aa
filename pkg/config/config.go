package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	StoreDriverSQLite = "sqlite"
	StoreDriverRedis  = "redis"
)

type Config struct {
	App       AppConfig
	Store     StoreConfig
	Redis     RedisConfig
	Media     MediaConfig
	Bootstrap BootstrapConfig
	CORS      CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Store.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"NEONMART_APP_ENV" default:"dev"`
	Port         string `envconfig:"NEONMART_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"NEONMART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"NEONMART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StoreConfig selects and configures the snapshot store driver. The sqlite
// driver keeps the whole store in one local file, which is the moral
// equivalent of a single browser profile's local storage.
type StoreConfig struct {
	Driver     string `envconfig:"NEONMART_STORE_DRIVER" default:"sqlite"`
	SQLitePath string `envconfig:"NEONMART_STORE_SQLITE_PATH" default:"neonmart.db"`
}

func (s StoreConfig) validate() error {
	switch s.Driver {
	case StoreDriverSQLite, StoreDriverRedis:
		return nil
	}
	return fmt.Errorf("unknown store driver %q", s.Driver)
}

type RedisConfig struct {
	URL          string        `envconfig:"NEONMART_REDIS_URL"`
	Address      string        `envconfig:"NEONMART_REDIS_ADDR"`
	Password     string        `envconfig:"NEONMART_REDIS_PASSWORD"`
	DB           int           `envconfig:"NEONMART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"NEONMART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"NEONMART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"NEONMART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"NEONMART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"NEONMART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type MediaConfig struct {
	MaxImageBytes int `envconfig:"NEONMART_MEDIA_MAX_IMAGE_BYTES" default:"2097152"`
}

// BootstrapConfig carries the first-run host credential. The password is
// persisted and compared in plain text; that is the documented contract of
// this system, not an oversight.
type BootstrapConfig struct {
	HostUsername string `envconfig:"NEONMART_BOOTSTRAP_HOST_USERNAME" default:"admin"`
	HostPassword string `envconfig:"NEONMART_BOOTSTRAP_HOST_PASSWORD" default:"admin123"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"NEONMART_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}
