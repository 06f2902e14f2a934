package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Checkout  CheckoutConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Stripe    StripeConfig
	SMTP      SMTPConfig
	Invoice   InvoiceConfig
	Telemetry TelemetryConfig
	Worker    WorkerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" required:"true"`
	Password        string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName          string        `envconfig:"DB_NAME" required:"true"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone        string        `envconfig:"DB_TIMEZONE" default:"Europe/Istanbul"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key,X-Cart-Session"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotent-Replayed,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Istanbul"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
	Issuer   string `envconfig:"JWT_ISSUER" default:"ticaret"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

// The storefront sells into exactly one region.
type CheckoutConfig struct {
	Region            string        `envconfig:"CHECKOUT_REGION" default:"TR"`
	Currency          string        `envconfig:"CHECKOUT_CURRENCY" default:"try"`
	ReservationTTL    time.Duration `envconfig:"CHECKOUT_RESERVATION_TTL" default:"15m"`
	MaxPaymentRetries int           `envconfig:"CHECKOUT_MAX_PAYMENT_RETRIES" default:"3"`
}

type RedisConfig struct {
	Addr          string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password      string        `envconfig:"REDIS_PASSWORD" default:""`
	DB            int           `envconfig:"REDIS_DB" default:"0"`
	OrderCacheTTL time.Duration `envconfig:"REDIS_ORDER_CACHE_TTL" default:"5m"`
	DedupTTL      time.Duration `envconfig:"REDIS_DEDUP_TTL" default:"48h"`
}

type KafkaConfig struct {
	Enabled bool     `envconfig:"KAFKA_ENABLED" default:"false"`
	Brokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"checkout.events"`
	Buffer  int      `envconfig:"KAFKA_BUFFER" default:"256"`
}

type StripeConfig struct {
	SecretKey     string `envconfig:"STRIPE_SECRET_KEY" default:""`
	WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET" default:""`
}

type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:"localhost"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	User     string `envconfig:"SMTP_USER" default:""`
	Password string `envconfig:"SMTP_PASSWORD" default:""`
	From     string `envconfig:"SMTP_FROM" default:"no-reply@ticaret.local"`
	SSL      bool   `envconfig:"SMTP_SSL" default:"false"`
}

type InvoiceConfig struct {
	BaseURL string        `envconfig:"INVOICE_BASE_URL" default:"http://localhost:8090"`
	APIKey  string        `envconfig:"INVOICE_API_KEY" default:""`
	Timeout time.Duration `envconfig:"INVOICE_TIMEOUT" default:"10s"`
}

type TelemetryConfig struct {
	Enabled     bool   `envconfig:"OTEL_ENABLED" default:"false"`
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4318"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"ticaret-checkout"`
}

type WorkerConfig struct {
	SweepInterval           time.Duration `envconfig:"WORKER_SWEEP_INTERVAL" default:"1m"`
	SweepBatchSize          int32         `envconfig:"WORKER_SWEEP_BATCH_SIZE" default:"500"`
	NotificationInterval    time.Duration `envconfig:"WORKER_NOTIFICATION_INTERVAL" default:"10s"`
	NotificationBatchSize   int32         `envconfig:"WORKER_NOTIFICATION_BATCH_SIZE" default:"50"`
	NotificationMaxAttempts int32         `envconfig:"WORKER_NOTIFICATION_MAX_ATTEMPTS" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Istanbul",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Istanbul",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 10800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-e2e-only",
			Duration: "1h",
			Issuer:   "ticaret-test",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Checkout: CheckoutConfig{
			Region:            "TR",
			Currency:          "try",
			ReservationTTL:    15 * time.Minute,
			MaxPaymentRetries: 3,
		},
		Redis: RedisConfig{
			OrderCacheTTL: 5 * time.Minute,
			DedupTTL:      48 * time.Hour,
		},
		Stripe: StripeConfig{
			WebhookSecret: "whsec_test",
		},
		Worker: WorkerConfig{
			SweepInterval:           time.Minute,
			SweepBatchSize:          500,
			NotificationInterval:    10 * time.Second,
			NotificationBatchSize:   50,
			NotificationMaxAttempts: 5,
		},
	}
}
