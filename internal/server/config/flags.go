package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string      bind address (e.g., ":5000")
//	-s string      JWT HMAC secret key
//	-t int         issued token validity, minutes
//	-m string      mirror DSN (SQLite file or postgres:// URL)
//	-print-token   print a signed token and exit
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-t", "-m", "-print-token"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to run server")
	fs.StringVar(&cfg.JWTSecret, "s", cfg.JWTSecret, "secret key")
	fs.StringVar(&cfg.MirrorDSN, "m", cfg.MirrorDSN, "mirror DSN (SQLite file or postgres:// URL)")
	fs.BoolVar(&cfg.PrintToken, "print-token", cfg.PrintToken, "print a signed token and exit")
	validity := fs.Int("t", int(cfg.TokenValidity.Minutes()), "token validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.TokenValidity = time.Duration(*validity) * time.Minute
	return nil
}
