package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Razorpay
	Auth
	Kafka
}

type DB struct {
	HOST            string `env:"DB_HOST"`
	USER            string `env:"DB_USER"`
	PASSWORD        string `env:"DB_PASSWORD"`
	ServiceUser     string `env:"DB_SERVICE_USER"`
	ServicePassword string `env:"DB_SERVICE_PASSWORD"`
	NAME            string `env:"DB_NAME"`
	PORT            string `env:"DB_PORT"`
	SSLMODE         string `env:"DB_SSLMODE"`
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

// Razorpay holds the gateway credentials. KeyID/KeySecret empty means the
// gateway is not configured and both endpoints must fail fast with a 500.
type Razorpay struct {
	KeyID          string        `env:"RAZORPAY_KEY_ID"`
	KeySecret      string        `env:"RAZORPAY_KEY_SECRET"`
	BaseURL        string        `env:"RAZORPAY_BASE_URL" envDefault:"https://api.razorpay.com"`
	RequestTimeout time.Duration `env:"RAZORPAY_REQUEST_TIMEOUT" envDefault:"15s"`
	OrderCacheTTL  time.Duration `env:"RAZORPAY_ORDER_CACHE_TTL" envDefault:"5m"`
}

type Auth struct {
	JWTSecret string `env:"JWT_SECRET"`
}

type Kafka struct {
	Brokers       string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	PublishTopics string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"bookings.confirmed"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}
