package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/codecrafted/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     address and port of the course API server
//	-s string     data source: grpc or mock
//	-t duration   per-request timeout
//	-i int        online check interval in seconds
//	-p int        number of popular courses shown
//	-l string     log level
//
// Only the flags listed above are picked out of os.Args (flagx.FilterArgs),
// so other layers can define their own.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-i", "-p", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.DataSource, "s", cfg.DataSource, "data source (grpc|mock)")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.IntVar(&cfg.PopularLimit, "p", cfg.PopularLimit, "number of popular courses")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
