package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// DevJWTSecret is the signing secret used when APP_ENV=development is set
	// explicitly and JWT_SECRET is not. Any other environment refuses it.
	DevJWTSecret = "dev-jwt-secret-change-me"

	StorePostgres = "postgres"
	StoreMemory   = "memory"

	HashBcrypt   = "bcrypt"
	HashArgon2id = "argon2id"
)

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName  string
	Env      string // development, staging, production
	Port     string
	GinMode  string
	LogLevel string

	// Database
	DatabaseURL   string // overrides the DB_* parts when set
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBMaxConns    int32
	DBMinConns    int32
	DBMaxConnLife time.Duration
	MigrationsDir string

	// UserStore selects the persistence adapter: postgres or memory.
	UserStore string

	// JWT
	JWTSecret string
	JWTTTL    time.Duration
	JWTIssuer string

	// Password hashing
	HashAlgo    string
	BcryptCost  int
	HashWorkers int

	// Redis
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	ProfileCacheTTL time.Duration // 0 disables the profile cache

	// RabbitMQ
	RabbitMQURL        string // empty disables welcome emails
	RabbitMQEmailQueue string

	// Mailgun
	MailgunDomain string
	MailgunAPIKey string
	MailgunSender string

	// Links for emails
	LoginURL   string
	SupportURL string

	// Email sending toggle
	MailSendEnabled bool

	// CORS
	CORSAllowedOrigins string // comma-separated

	// HTTP access log toggle (Gin logger instead of the structured access log)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// jwtSecret falls back to DevJWTSecret only when development is requested
// explicitly; otherwise a missing JWT_SECRET stays empty and fails Validate.
func jwtSecret() string {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		return v
	}
	if os.Getenv("APP_ENV") == "development" {
		return DevJWTSecret
	}
	return ""
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName:  getenv("APP_NAME", "go-ddd-auth"),
		Env:      getenv("APP_ENV", "development"),
		Port:     getenv("PORT", "8080"),
		GinMode:  getenv("GIN_MODE", "release"),
		LogLevel: getenv("LOG_LEVEL", ""),

		DatabaseURL:   getenv("DATABASE_URL", ""),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPassword:    getenv("DB_PASSWORD", "postgres"),
		DBName:        getenv("DB_NAME", "appdb"),
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),
		DBMaxConns:    int32(getint("DB_MAX_CONNS", 10)),
		DBMinConns:    int32(getint("DB_MIN_CONNS", 2)),
		DBMaxConnLife: getdur("DB_MAX_CONN_LIFETIME", time.Hour),
		MigrationsDir: getenv("MIGRATIONS_DIR", "db/migrations"),

		UserStore: strings.ToLower(getenv("USER_STORE", StorePostgres)),

		JWTSecret: jwtSecret(),
		JWTTTL:    getdur("JWT_TTL", 8*time.Hour),
		JWTIssuer: getenv("JWT_ISSUER", "go-ddd-auth"),

		HashAlgo:    strings.ToLower(getenv("HASH_ALGO", HashBcrypt)),
		BcryptCost:  getint("BCRYPT_COST", 10),
		HashWorkers: getint("HASH_WORKERS", runtime.NumCPU()),

		RedisAddr:       getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getenv("REDIS_PASSWORD", ""),
		RedisDB:         getint("REDIS_DB", 0),
		ProfileCacheTTL: getdur("PROFILE_CACHE_TTL", 5*time.Minute),

		RabbitMQURL:        getenv("RABBITMQ_URL", ""),
		RabbitMQEmailQueue: getenv("RABBITMQ_EMAIL_QUEUE", "emails"),

		MailgunDomain: getenv("MAILGUN_DOMAIN", ""),
		MailgunAPIKey: getenv("MAILGUN_API_KEY", ""),
		MailgunSender: getenv("MAILGUN_SENDER", ""),

		LoginURL:   getenv("LOGIN_URL", ""),
		SupportURL: getenv("SUPPORT_URL", ""),

		MailSendEnabled: getbool("MAIL_SEND_ENABLED", true),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must not be empty"))
	}
	if c.Env != "development" && c.JWTSecret == DevJWTSecret {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be set when APP_ENV is %q", c.Env))
	}
	if c.JWTTTL <= 0 {
		errs = append(errs, fmt.Errorf("JWT_TTL must be positive, got %s", c.JWTTTL))
	}
	switch c.HashAlgo {
	case HashBcrypt, HashArgon2id:
	default:
		errs = append(errs, fmt.Errorf("unknown HASH_ALGO %q", c.HashAlgo))
	}
	switch c.UserStore {
	case StorePostgres, StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown USER_STORE %q", c.UserStore))
	}
	if c.HashWorkers < 1 {
		errs = append(errs, fmt.Errorf("HASH_WORKERS must be at least 1, got %d", c.HashWorkers))
	}
	if c.ProfileCacheTTL < 0 {
		errs = append(errs, fmt.Errorf("PROFILE_CACHE_TTL must not be negative, got %s", c.ProfileCacheTTL))
	}
	return errors.Join(errs...)
}

// PostgresDSN returns a DSN compatible with pgx
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

// Level resolves LOG_LEVEL, falling back to the environment default.
func (c *Config) Level() logrus.Level {
	if c.LogLevel != "" {
		if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
			return lvl
		}
	}
	if c.Env == "development" {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}
