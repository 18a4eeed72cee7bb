package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "PHARMSHOP_DB_DSN"
	EnvDBHost = "PHARMSHOP_DB_HOST"
	EnvDBUser = "PHARMSHOP_DB_USER"
	EnvDBName = "PHARMSHOP_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	CORS          CORSConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PHARMSHOP_APP_ENV" required:"true"`
	Port         string `envconfig:"PHARMSHOP_APP_PORT" default:"3000"`
	LogLevel     string `envconfig:"PHARMSHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PHARMSHOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"PHARMSHOP_DB_DSN"`

	LegacyHost     string `envconfig:"PHARMSHOP_DB_HOST"`
	LegacyPort     int    `envconfig:"PHARMSHOP_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"PHARMSHOP_DB_USER"`
	LegacyPassword string `envconfig:"PHARMSHOP_DB_PASSWORD"`
	LegacyName     string `envconfig:"PHARMSHOP_DB_NAME"`
	LegacySSLMode  string `envconfig:"PHARMSHOP_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"PHARMSHOP_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"PHARMSHOP_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"PHARMSHOP_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PHARMSHOP_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"PHARMSHOP_REDIS_URL"`
	Address      string        `envconfig:"PHARMSHOP_REDIS_ADDR"`
	Password     string        `envconfig:"PHARMSHOP_REDIS_PASSWORD"`
	DB           int           `envconfig:"PHARMSHOP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PHARMSHOP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PHARMSHOP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PHARMSHOP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PHARMSHOP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PHARMSHOP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"PHARMSHOP_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"PHARMSHOP_JWT_ISSUER" default:"pharmshop"`
	ExpirationMinutes      int    `envconfig:"PHARMSHOP_JWT_EXPIRATION_MINUTES" default:"30"`
	RefreshTokenTTLMinutes int    `envconfig:"PHARMSHOP_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"PHARMSHOP_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"PHARMSHOP_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"PHARMSHOP_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"PHARMSHOP_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"PHARMSHOP_ARGON_KEY_LEN" default:"32"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"PHARMSHOP_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"PHARMSHOP_AUTH_LOGIN_WINDOW" default:"5m"`
	LoginIPLimit       int           `envconfig:"PHARMSHOP_AUTH_LOGIN_IP_LIMIT" default:"20"`
	LoginEmailLimit    int           `envconfig:"PHARMSHOP_AUTH_LOGIN_EMAIL_LIMIT" default:"10"`
	RegisterWindow     time.Duration `envconfig:"PHARMSHOP_AUTH_REGISTER_WINDOW" default:"15m"`
	RegisterIPLimit    int           `envconfig:"PHARMSHOP_AUTH_REGISTER_IP_LIMIT" default:"10"`
	RegisterEmailLimit int           `envconfig:"PHARMSHOP_AUTH_REGISTER_EMAIL_LIMIT" default:"5"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"PHARMSHOP_AUTO_MIGRATE" default:"false"`
	SeedData    bool `envconfig:"PHARMSHOP_SEED_DATA" default:"false"`
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
