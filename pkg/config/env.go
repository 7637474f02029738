package config

// EnvPrefix is handed to envconfig; every field carries its full name via tags.
const EnvPrefix = "OPSBOARD"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	DefaultSalesCutoffDate = "2024-08-01"
)

const (
	EnvAppEnv          = "OPSBOARD_APP_ENV"
	EnvPort            = "OPSBOARD_APP_PORT"
	EnvLogLevel        = "OPSBOARD_LOG_LEVEL"
	EnvDBDSN           = "OPSBOARD_DB_DSN"
	EnvDBDriver        = "OPSBOARD_DB_DRIVER"
	EnvDBHost          = "OPSBOARD_DB_HOST"
	EnvDBPort          = "OPSBOARD_DB_PORT"
	EnvDBUser          = "OPSBOARD_DB_USER"
	EnvDBPassword      = "OPSBOARD_DB_PASSWORD"
	EnvDBName          = "OPSBOARD_DB_NAME"
	EnvUseSQLite       = "OPSBOARD_USE_SQLITE"
	EnvSQLitePath      = "OPSBOARD_SQLITE_PATH"
	EnvRedisURL        = "OPSBOARD_REDIS_URL"
	EnvCORSOrigins     = "OPSBOARD_CORS_ALLOWED_ORIGINS"
	EnvSalesCutoffDate = "OPSBOARD_SALES_CUTOFF_DATE"
	EnvAdminWindow     = "OPSBOARD_ADMIN_RATE_LIMIT_WINDOW"
	EnvAdminIPLimit    = "OPSBOARD_ADMIN_RATE_LIMIT_IP_LIMIT"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
