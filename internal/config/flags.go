package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/gymkeeper/internal/flagx"
)

// parseFlags populates Config fields from command-line flags (see package
// doc for the list). args are filtered with flagx.FilterArgs first so flags
// meant for other loaders do not trip the parser.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-s", "-d", "-r", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend: sqlite, postgres, redis, memory")
	fs.StringVar(&cfg.StorageDSN, "d", cfg.StorageDSN, "storage DSN")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	slideInterval := fs.Int("i", int(cfg.SlideInterval.Seconds()), "carousel interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// only an explicit -i overrides; sub-second values from JSON or env survive
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.SlideInterval = time.Duration(*slideInterval) * time.Second
		}
	})
}
