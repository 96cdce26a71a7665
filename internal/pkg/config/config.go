package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (timezone, pricing, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	CORS    CORSConfig
	Log     LogConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Africa/Nairobi"`
}

// Addr empty disables the car cache.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CarTTL   time.Duration `envconfig:"REDIS_CAR_TTL" default:"30s"`
	FleetTTL time.Duration `envconfig:"REDIS_FLEET_TTL" default:"15s"`
}

// No brokers disables booking intent publishing.
type KafkaConfig struct {
	Brokers      []string `envconfig:"KAFKA_BROKERS"`
	IntentsTopic string   `envconfig:"KAFKA_INTENTS_TOPIC" default:"booking.intents"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Africa/Nairobi"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
}

type BookingConfig struct {
	// Calendar zone for bare YYYY-MM-DD dates and for "today".
	TimeZone             string        `envconfig:"BOOKING_TIMEZONE" default:"Africa/Nairobi"`
	DefaultLocationID    int           `envconfig:"BOOKING_DEFAULT_LOCATION_ID" default:"1"`
	CheckoutPath         string        `envconfig:"BOOKING_CHECKOUT_PATH" default:"/booking"`
	ServiceFeePercent    int64         `envconfig:"BOOKING_SERVICE_FEE_PERCENT" default:"10"`
	InsurancePerDayCents int64         `envconfig:"BOOKING_INSURANCE_PER_DAY_CENTS" default:"50000"`
	RelatedLimit         int           `envconfig:"BOOKING_RELATED_LIMIT" default:"4"`
	CountdownInterval    time.Duration `envconfig:"BOOKING_COUNTDOWN_INTERVAL" default:"1s"`
	SoftLockDuration     time.Duration `envconfig:"BOOKING_SOFT_LOCK_DURATION" default:"10m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location falls back to UTC when the zone database does not know the name.
func (c BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
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
			TimeZone: "UTC",
		},
		Kafka: KafkaConfig{
			IntentsTopic: "booking.intents",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Booking: BookingConfig{
			TimeZone:             "UTC",
			DefaultLocationID:    1,
			CheckoutPath:         "/booking",
			ServiceFeePercent:    10,
			InsurancePerDayCents: 50000,
			RelatedLimit:         4,
			CountdownInterval:    time.Second,
			SoftLockDuration:     10 * time.Minute,
		},
	}
}
