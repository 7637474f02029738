package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Password     PasswordConfig
	CORS         CORSConfig
	Reporting    ReportingConfig
	AdminLimit   AdminRateLimitConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(cfg.FeatureFlags); err != nil {
		return nil, err
	}
	if _, err := cfg.Reporting.SalesCutoff(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"OPSBOARD_APP_ENV" required:"true"`
	Port         string `envconfig:"OPSBOARD_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"OPSBOARD_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"OPSBOARD_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"OPSBOARD_DB_DSN"`
	Driver string `envconfig:"OPSBOARD_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"OPSBOARD_DB_HOST"`
	LegacyPort     int    `envconfig:"OPSBOARD_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"OPSBOARD_DB_USER"`
	LegacyPassword string `envconfig:"OPSBOARD_DB_PASSWORD"`
	LegacyName     string `envconfig:"OPSBOARD_DB_NAME"`
	LegacySSLMode  string `envconfig:"OPSBOARD_DB_SSLMODE" default:"disable"`

	SQLitePath string `envconfig:"OPSBOARD_SQLITE_PATH" default:"opsboard.db"`

	MaxOpenConns    int           `envconfig:"OPSBOARD_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"OPSBOARD_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"OPSBOARD_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"OPSBOARD_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// UsesSQLite reports whether the sqlite driver should back the store.
func (db DBConfig) UsesSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"OPSBOARD_REDIS_URL"`
	Address      string        `envconfig:"OPSBOARD_REDIS_ADDR"`
	Password     string        `envconfig:"OPSBOARD_REDIS_PASSWORD"`
	DB           int           `envconfig:"OPSBOARD_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"OPSBOARD_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"OPSBOARD_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"OPSBOARD_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"OPSBOARD_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"OPSBOARD_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"OPSBOARD_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"OPSBOARD_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"OPSBOARD_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"OPSBOARD_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"OPSBOARD_ARGON_KEY_LEN" default:"32"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"OPSBOARD_CORS_ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
}

type ReportingConfig struct {
	SalesCutoffDate string `envconfig:"OPSBOARD_SALES_CUTOFF_DATE" default:"2024-08-01"`
}

// SalesCutoff parses the monthly sales lower bound as a UTC date.
func (r ReportingConfig) SalesCutoff() (time.Time, error) {
	raw := strings.TrimSpace(r.SalesCutoffDate)
	if raw == "" {
		raw = DefaultSalesCutoffDate
	}
	parsed, err := time.ParseInLocation(time.DateOnly, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", EnvSalesCutoffDate, raw, err)
	}
	return parsed, nil
}

type AdminRateLimitConfig struct {
	Window  time.Duration `envconfig:"OPSBOARD_ADMIN_RATE_LIMIT_WINDOW" default:"1m"`
	IPLimit int           `envconfig:"OPSBOARD_ADMIN_RATE_LIMIT_IP_LIMIT" default:"5"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"OPSBOARD_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"OPSBOARD_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN(flags FeatureFlagsConfig) error {
	if flags.UseSQLite {
		db.Driver = DriverSQLite
	}
	if db.UsesSQLite() {
		if db.DSN == "" {
			db.DSN = db.SQLitePath
		}
		return nil
	}
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
