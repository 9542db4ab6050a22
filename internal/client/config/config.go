package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/codecrafted/internal/common"
	"github.com/go-playground/validator/v10"
)

const (
	DataSourceGRPC = "grpc"
	DataSourceMock = "mock"
)

// Config holds runtime settings for the course browser CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the course API gRPC endpoint.
//   - DataSource: "grpc" talks to the server, "mock" serves the built-in
//     catalog in-process.
//   - RequestTimeout: per-call deadline for remote calls.
//   - MockLatency: simulated delay of every mock call.
//   - PopularLimit: how many popular courses are shown.
//   - MinPrice, MaxPrice: initial price filter.
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	ServerEndpointAddr  string        `validate:"required_if=DataSource grpc"`
	DataSource          string        `validate:"oneof=grpc mock"`
	RequestTimeout      time.Duration `validate:"gt=0"`
	MockLatency         time.Duration `validate:"gte=0"`
	PopularLimit        int           `validate:"gt=0"`
	MinPrice            float64       `validate:"gte=0"`
	MaxPrice            float64       `validate:"gtefield=MinPrice"`
	LogLevel            string        `validate:"oneof=debug info warn error"`
	LogFormat           string        `validate:"oneof=text json"`
	OnlineCheckInterval time.Duration `validate:"gt=0"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DataSource = DataSourceGRPC
	c.RequestTimeout = 5 * time.Second
	c.MockLatency = 300 * time.Millisecond
	c.PopularLimit = common.DefaultPopularLimit
	c.MinPrice = 0
	c.MaxPrice = 200
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.OnlineCheckInterval = 3 * time.Second
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid client config: %w", err)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones. It panics on invalid input.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}
