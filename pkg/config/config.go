package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Password PasswordConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	if err := cfg.JWT.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env             string        `envconfig:"HEALTHTRACK_APP_ENV" required:"true"`
	Port            string        `envconfig:"HEALTHTRACK_APP_PORT" default:"3000"`
	LogLevel        string        `envconfig:"HEALTHTRACK_LOG_LEVEL" default:"info"`
	LogWarnStack    bool          `envconfig:"HEALTHTRACK_LOG_WARN_STACK" default:"false"`
	ShutdownTimeout time.Duration `envconfig:"HEALTHTRACK_SHUTDOWN_TIMEOUT" default:"10s"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type HTTPConfig struct {
	ReadTimeout  time.Duration `envconfig:"HEALTHTRACK_HTTP_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"HEALTHTRACK_HTTP_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout  time.Duration `envconfig:"HEALTHTRACK_HTTP_IDLE_TIMEOUT" default:"60s"`
}

type DBConfig struct {
	Driver string `envconfig:"HEALTHTRACK_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"HEALTHTRACK_DB_DSN" default:"file:sql_database.db?_foreign_keys=on"`

	MaxOpenConns    int           `envconfig:"HEALTHTRACK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"HEALTHTRACK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"HEALTHTRACK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"HEALTHTRACK_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	// QueryTimeout bounds every individual storage call.
	QueryTimeout time.Duration `envconfig:"HEALTHTRACK_DB_QUERY_TIMEOUT" default:"5s"`
	AutoMigrate  bool          `envconfig:"HEALTHTRACK_DB_AUTO_MIGRATE" default:"true"`
}

// IsSQLite reports whether the configured driver is the embedded SQLite store.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(strings.TrimSpace(db.Driver), DBDriverSQLite)
}

func (db DBConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(db.Driver)) {
	case DBDriverSQLite, DBDriverPostgres:
	default:
		return fmt.Errorf("%s must be one of %s, %s", EnvDBDriver, DBDriverSQLite, DBDriverPostgres)
	}
	if strings.TrimSpace(db.DSN) == "" {
		return fmt.Errorf("%s is required", EnvDBDSN)
	}
	if db.QueryTimeout <= 0 {
		return fmt.Errorf("%s must be positive", EnvDBQueryTimeout)
	}
	return nil
}

// RedisConfig is optional; when neither URL nor Address is set the session
// cache is disabled and the database stays the only token store.
type RedisConfig struct {
	URL          string        `envconfig:"HEALTHTRACK_REDIS_URL"`
	Address      string        `envconfig:"HEALTHTRACK_REDIS_ADDR"`
	Password     string        `envconfig:"HEALTHTRACK_REDIS_PASSWORD"`
	DB           int           `envconfig:"HEALTHTRACK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"HEALTHTRACK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"HEALTHTRACK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"HEALTHTRACK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"HEALTHTRACK_REDIS_READ_TIMEOUT" default:"2s"`
	WriteTimeout time.Duration `envconfig:"HEALTHTRACK_REDIS_WRITE_TIMEOUT" default:"2s"`
}

// Enabled reports whether a Redis endpoint is configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"HEALTHTRACK_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"HEALTHTRACK_JWT_ISSUER" default:"healthtrack"`
	ExpirationMinutes int    `envconfig:"HEALTHTRACK_JWT_EXPIRATION_MINUTES" default:"43200"`
}

// TTL returns the session token lifetime.
func (j JWTConfig) TTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

func (j JWTConfig) validate() error {
	if strings.TrimSpace(j.Secret) == "" {
		return fmt.Errorf("%s is required", EnvJWTSecret)
	}
	if j.ExpirationMinutes <= 0 {
		return fmt.Errorf("%s must be positive", EnvJWTExpMins)
	}
	return nil
}

type PasswordConfig struct {
	BcryptCost int `envconfig:"HEALTHTRACK_BCRYPT_COST" default:"8"`
}
