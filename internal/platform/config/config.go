package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	strutil "attendsync/pkg/platform/strings"
)

// Config captures everything the service reads from the environment so main
// stays lean.
type Config struct {
	Addr        string
	DatabaseURL string

	Redis RedisConfig
	SMTP  SMTPConfig
	Kafka KafkaConfig

	// ReportRoles receive the daily exceptional report.
	ReportRoles []string

	// Cron expressions; robfig descriptors like @hourly are accepted.
	SyncSchedule   string
	ReportSchedule string

	// SyncTimeout bounds one reconciliation pass on the job queue.
	SyncTimeout time.Duration
	QueueSize   int
}

// RedisConfig controls the optional redis connection used for the pass lock.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// SMTPConfig controls outbound mail. An empty Host disables dispatch.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// KafkaConfig controls the optional audit event mirror. Empty Brokers
// disables publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// FromEnv builds a Config from environment variables with development
// defaults; production deployments override them.
func FromEnv() Config {
	cfg := Config{
		Addr:           envOr("ATTENDSYNC_ADDR", ":8080"),
		DatabaseURL:    envOr("ATTENDSYNC_DATABASE_URL", "postgres://localhost:5432/attendsync?sslmode=disable"),
		ReportRoles:    splitList(envOr("ATTENDSYNC_REPORT_ROLES", "System Manager,HR Manager")),
		SyncSchedule:   envOr("ATTENDSYNC_SYNC_SCHEDULE", "@hourly"),
		ReportSchedule: envOr("ATTENDSYNC_REPORT_SCHEDULE", "@daily"),
		SyncTimeout:    durationOr("ATTENDSYNC_SYNC_TIMEOUT", time.Hour),
		QueueSize:      intOr("ATTENDSYNC_QUEUE_SIZE", 16),
	}

	cfg.Redis = RedisConfig{
		URL:          os.Getenv("ATTENDSYNC_REDIS_URL"),
		PoolSize:     intOr("ATTENDSYNC_REDIS_POOL_SIZE", 10),
		MinIdleConns: intOr("ATTENDSYNC_REDIS_MIN_IDLE", 2),
		DialTimeout:  durationOr("ATTENDSYNC_REDIS_DIAL_TIMEOUT", 5*time.Second),
		ReadTimeout:  durationOr("ATTENDSYNC_REDIS_READ_TIMEOUT", 3*time.Second),
		WriteTimeout: durationOr("ATTENDSYNC_REDIS_WRITE_TIMEOUT", 3*time.Second),
	}

	cfg.SMTP = SMTPConfig{
		Host:     os.Getenv("ATTENDSYNC_SMTP_HOST"),
		Port:     intOr("ATTENDSYNC_SMTP_PORT", 587),
		Username: os.Getenv("ATTENDSYNC_SMTP_USERNAME"),
		Password: os.Getenv("ATTENDSYNC_SMTP_PASSWORD"),
	}

	cfg.Kafka = KafkaConfig{
		Brokers: splitList(os.Getenv("ATTENDSYNC_KAFKA_BROKERS")),
		Topic:   envOr("ATTENDSYNC_KAFKA_AUDIT_TOPIC", "attendsync.audit"),
	}

	return cfg
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intOr(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	return strutil.DedupeAndTrim(strings.Split(value, ","))
}
