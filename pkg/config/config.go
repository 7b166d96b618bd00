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
	Cart         CartConfig
	Tax          TaxConfig
	CORS         CORSConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"NETTORIA_APP_ENV" required:"true"`
	Port         string `envconfig:"NETTORIA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"NETTORIA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"NETTORIA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"NETTORIA_DB_DSN"`
	Driver string `envconfig:"NETTORIA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"NETTORIA_DB_HOST"`
	LegacyPort     int    `envconfig:"NETTORIA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"NETTORIA_DB_USER"`
	LegacyPassword string `envconfig:"NETTORIA_DB_PASSWORD"`
	LegacyName     string `envconfig:"NETTORIA_DB_NAME"`
	LegacySSLMode  string `envconfig:"NETTORIA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"NETTORIA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"NETTORIA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"NETTORIA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"NETTORIA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"NETTORIA_REDIS_URL" required:"true"`
	Address      string        `envconfig:"NETTORIA_REDIS_ADDR"`
	Password     string        `envconfig:"NETTORIA_REDIS_PASSWORD"`
	DB           int           `envconfig:"NETTORIA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"NETTORIA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"NETTORIA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"NETTORIA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"NETTORIA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"NETTORIA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CartConfig struct {
	CookieName      string        `envconfig:"NETTORIA_CART_COOKIE_NAME" default:"nt_cart"`
	TTL             time.Duration `envconfig:"NETTORIA_CART_TTL" default:"720h"`
	RateLimitWindow time.Duration `envconfig:"NETTORIA_CART_RATE_LIMIT_WINDOW" default:"1m"`
	RateLimitMax    int           `envconfig:"NETTORIA_CART_RATE_LIMIT_MAX" default:"60"`
}

type TaxConfig struct {
	// Rate is the VAT-equivalent fraction applied to discounted subtotals.
	Rate float64 `envconfig:"NETTORIA_TAX_RATE" default:"0.09"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"NETTORIA_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"NETTORIA_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"NETTORIA_AUTO_MIGRATE" default:"false"`
	SeedCatalog bool `envconfig:"NETTORIA_SEED_CATALOG" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
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
