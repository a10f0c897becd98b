// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all runtime settings for the station.
type Config struct {
	// Environment selects logger and server defaults (development, production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	HTTP struct {
		// Addr is the address the HTTP server listens on.
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout bounds reading of an entire request including the body.
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"30s" yaml:"readTimeout"`
		// WriteTimeout bounds writes of the response.
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"1m" yaml:"writeTimeout"`
		// IdleTimeout bounds keep-alive waits for the next request.
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
	} `yaml:"http"`

	// DatabaseURL is the PostgreSQL connection string. When empty the station
	// falls back to the in-memory store.
	DatabaseURL string `env:"DATABASE_URL" yaml:"databaseURL"`

	Scale struct {
		// Path points at the scale executable that prints a weight reading.
		Path string `env:"SCALE_EXE" yaml:"path"`
		// Timeout bounds one invocation of the scale executable.
		Timeout time.Duration `env:"SCALE_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"scale"`

	AMQP struct {
		// Addr is the RabbitMQ URL; publishing is disabled when empty.
		Addr string `env:"RABBITMQ_ADDR" yaml:"addr"`
		// Queue receives one JSON message per recorded measurement.
		Queue string `env:"RABBITMQ_QUEUE" env-default:"measurements" yaml:"queue"`
	} `yaml:"amqp"`

	// GracefulShutdownTimeout is how long in-flight requests get to finish.
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"`
}

// Load reads configuration from the optional yaml file at path, then the
// environment. An empty path reads the environment only.
func Load(path string) (*Config, error) {
	var cfg Config
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	return &cfg, nil
}
