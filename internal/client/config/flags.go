package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   API base URL
//	-i int      online check interval (seconds)
//	-t string   token file
//
// Flags of other components are filtered out first.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-i", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.TokenFile, "t", cfg.TokenFile, "file holding the bearer token")
	interval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.OnlineCheckInterval = time.Duration(*interval) * time.Second
	return nil
}
