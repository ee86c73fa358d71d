package config

// EnvPrefix is handed to envconfig; every field carries its full variable name.
const EnvPrefix = "HEALTHTRACK"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
)

const (
	EnvAppEnv         = "HEALTHTRACK_APP_ENV"
	EnvPort           = "HEALTHTRACK_APP_PORT"
	EnvLogLevel       = "HEALTHTRACK_LOG_LEVEL"
	EnvDBDriver       = "HEALTHTRACK_DB_DRIVER"
	EnvDBDSN          = "HEALTHTRACK_DB_DSN"
	EnvDBQueryTimeout = "HEALTHTRACK_DB_QUERY_TIMEOUT"
	EnvRedisURL       = "HEALTHTRACK_REDIS_URL"
	EnvJWTSecret      = "HEALTHTRACK_JWT_SECRET"
	EnvJWTIssuer      = "HEALTHTRACK_JWT_ISSUER"
	EnvJWTExpMins     = "HEALTHTRACK_JWT_EXPIRATION_MINUTES"
	EnvBcryptCost     = "HEALTHTRACK_BCRYPT_COST"
)
