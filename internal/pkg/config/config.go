package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - Every value has a default: the demo services must boot with an empty environment
// - Ports default to the ones the reference web clients call (5000 onboard, 8000 flight status)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Seed      SeedConfig
	Static    StaticConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	OnboardPort      string        `envconfig:"ONBOARD_PORT" default:"5000"`
	FlightStatusPort string        `envconfig:"FLIGHT_STATUS_PORT" default:"8000"`
	ReadTimeout      time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout     time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout      time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout  time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`

	// The flight-status surface has always accepted credentialed requests.
	FlightStatusAllowCredentials bool `envconfig:"FLIGHT_STATUS_CORS_ALLOW_CREDENTIALS" default:"true"`
}

// WithCredentials returns a copy of c with AllowCredentials set to allow.
func (c CORSConfig) WithCredentials(allow bool) CORSConfig {
	c.AllowCredentials = allow
	return c
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

// SeedConfig points at an alternative YAML dataset; empty means the embedded demo data.
type SeedConfig struct {
	File string `envconfig:"SEED_FILE"`
}

// StaticConfig serves snack images under /static on the onboard surface when Dir is set.
type StaticConfig struct {
	Dir string `envconfig:"ONBOARD_STATIC_DIR"`
}

type TelemetryConfig struct {
	Enabled     bool   `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"flight-onboard"`
	PrettyPrint bool   `envconfig:"OTEL_STDOUT_PRETTY" default:"false"`
}

func (c ServerConfig) OnboardAddr() string {
	return ":" + c.OnboardPort
}

func (c ServerConfig) FlightStatusAddr() string {
	return ":" + c.FlightStatusPort
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
			OnboardPort:      "15000",
			FlightStatusPort: "18000",
			ReadTimeout:      time.Second,
			WriteTimeout:     time.Second,
			IdleTimeout:      time.Second,
			ShutdownTimeout:  time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,

			FlightStatusAllowCredentials: true,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "flight-onboard-test",
		},
	}
}
