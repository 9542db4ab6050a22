package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/codecrafted/internal/flagx"
	"github.com/dmitrijs2005/codecrafted/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// use timex.Duration so they may be written as "3s" or as nanoseconds.
// Pointer fields distinguish "absent" from an explicit zero.
type JsonConfig struct {
	ServerEndpointAddr  string          `json:"server_endpoint_addr"`
	DataSource          string          `json:"data_source"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	MockLatency         *timex.Duration `json:"mock_latency"`
	PopularLimit        int             `json:"popular_limit"`
	MinPrice            *float64        `json:"min_price"`
	MaxPrice            *float64        `json:"max_price"`
	LogLevel            string          `json:"log_level"`
	LogFormat           string          `json:"log_format"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
}

// parseJson overlays Config with the fields present in the JSON file named
// by -c/-config (or $CODECRAFTED_CONFIG). It panics on read or unmarshal
// errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.DataSource != "" {
		cfg.DataSource = jc.DataSource
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.MockLatency != nil {
		cfg.MockLatency = jc.MockLatency.Duration
	}
	if jc.PopularLimit != 0 {
		cfg.PopularLimit = jc.PopularLimit
	}
	if jc.MinPrice != nil {
		cfg.MinPrice = *jc.MinPrice
	}
	if jc.MaxPrice != nil {
		cfg.MaxPrice = *jc.MaxPrice
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
}
