package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/sbilibin2017/gw-event-checkin/internal/mailer"
)

// config holds everything read from the environment at startup.
type config struct {
	AppHost   string
	AppPort   string
	LogLevel  string
	LogFormat string

	GRPCPort string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	SMTP mailer.SMTPSettings

	JWTSecret     string
	JWTExp        time.Duration
	JWTRefreshExp time.Duration

	TicketSecret string
	TicketTTL    time.Duration
	QRSize       int

	ShutdownTimeout time.Duration
}

// parseConfig loads environment variables from a file, falling back to defaults
// for anything unset.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var n int
		n, err = strconv.Atoi(getEnv(key, defaultValue))
		return n
	}
	getSeconds := func(key, defaultValue string) time.Duration {
		return time.Duration(getInt(key, defaultValue)) * time.Second
	}
	getBool := func(key, defaultValue string) bool {
		if err != nil {
			return false
		}
		var b bool
		b, err = strconv.ParseBool(getEnv(key, defaultValue))
		return b
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("APP_LOG_FORMAT", "json")
	cfg.ShutdownTimeout = getSeconds("APP_SHUTDOWN_TIMEOUT_SECOND", "10")

	// gRPC health
	cfg.GRPCPort = getEnv("GRPC_PORT", "50051")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	cfg.PGPort = getInt("POSTGRES_PORT", "5432")
	cfg.PGMaxOpenConns = getInt("POSTGRES_MAX_OPEN_CONNS", "16")
	cfg.PGMaxIdleConns = getInt("POSTGRES_MAX_IDLE_CONNS", "8")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getInt("REDIS_PORT", "6379")
	cfg.RedisDB = getInt("REDIS_DB", "0")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisPoolSize = getInt("REDIS_POOL_SIZE", "10")
	cfg.RedisMinIdleConns = getInt("REDIS_MIN_IDLE_CONNS", "2")

	// Kafka config, empty broker list disables publishing
	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "guest-events")

	// SMTP config
	cfg.SMTP = mailer.SMTPSettings{
		Enabled:  getBool("SMTP_ENABLED", "false"),
		Host:     getEnv("SMTP_HOST", "localhost"),
		Port:     getInt("SMTP_PORT", "587"),
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "no-reply@localhost"),
		UseTLS:   getBool("SMTP_USE_TLS", "false"),
		Timeout:  getSeconds("SMTP_TIMEOUT_SECOND", "10"),
	}

	// JWT config
	cfg.JWTSecret = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.JWTExp = getSeconds("JWT_EXP_SECOND", "300")
	cfg.JWTRefreshExp = getSeconds("JWT_REFRESH_EXP_SECOND", "86400")

	// Ticket config
	cfg.TicketSecret = getEnv("TICKET_SECRET_KEY", cfg.JWTSecret)
	cfg.TicketTTL = getSeconds("TICKET_TTL_SECOND", "0")
	cfg.QRSize = getInt("TICKET_QR_SIZE", "256")

	return cfg, err
}
