// Package config loads runtime configuration for the course browser CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config, or $CODECRAFTED_CONFIG.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string     address:port of the course API gRPC endpoint
//	-s string     data source, grpc or mock
//	-t duration   per-request timeout
//	-i int        online status check interval (seconds)
//	-p int        number of popular courses shown
//	-l string     log level
//
// # JSON schema
//
// Durations are timex.Duration values, so "3s" and integer nanoseconds are
// both accepted. Absent keys keep their earlier value:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "data_source": "mock",
//	  "request_timeout": "5s",
//	  "mock_latency": "300ms",
//	  "popular_limit": 8,
//	  "min_price": 0,
//	  "max_price": 200,
//	  "log_level": "warn",
//	  "log_format": "text",
//	  "online_check_interval": "3s"
//	}
//
// The merged result is checked with (*Config).Validate; LoadConfig panics
// when it fails.
package config
