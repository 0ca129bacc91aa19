// Package config handles configuration for the development backend,
// including defaults, an optional config file, environment and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/logging"
)

// Config holds runtime settings for the development backend.
//
// Fields:
//   - Addr: bind address of the HTTP listener.
//   - BasePath: prefix of every route, "/api" to match the admin client default.
//   - JWTSecret: HMAC secret for bearer tokens (HS256). Empty disables auth.
//   - TokenValidity: lifetime of tokens issued with -print-token.
//   - CORSOrigins: browser origins allowed to call the API.
//   - MirrorDSN: optional SQLite file or postgres:// URL that keeps the
//     served data across restarts.
type Config struct {
	Addr            string         `yaml:"addr"             json:"addr"             env:"DEVAPI_ADDR"`
	BasePath        string         `yaml:"base_path"        json:"base_path"        env:"DEVAPI_BASE_PATH"`
	JWTSecret       string         `yaml:"jwt_secret"       json:"jwt_secret"       env:"DEVAPI_JWT_SECRET"`
	TokenValidity   time.Duration  `yaml:"token_validity"   json:"token_validity"   env:"DEVAPI_TOKEN_VALIDITY"`
	CORSOrigins     []string       `yaml:"cors_origins"     json:"cors_origins"     env:"DEVAPI_CORS_ORIGINS" env-separator:","`
	MirrorDSN       string         `yaml:"mirror_dsn"       json:"mirror_dsn"       env:"DEVAPI_MIRROR_DSN"`
	ShutdownTimeout time.Duration  `yaml:"shutdown_timeout" json:"shutdown_timeout" env:"DEVAPI_SHUTDOWN_TIMEOUT"`
	Log             logging.Config `yaml:"log"              json:"log"`

	// PrintToken asks the binary to print a signed token and exit.
	PrintToken bool `yaml:"-" json:"-"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":5000"
	c.BasePath = "/api"
	c.TokenValidity = 24 * time.Hour
	c.CORSOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	c.ShutdownTimeout = 5 * time.Second
	c.Log = logging.Config{Level: "info", Format: "json"}
}

// LoadConfig builds a Config by applying defaults, then the optional config
// file and environment, and finally command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, os.Args[1:]); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, os.Args[1:]); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr must not be empty"))
	}
	if !strings.HasPrefix(c.BasePath, "/") {
		errs = append(errs, fmt.Errorf("base_path %q must start with /", c.BasePath))
	}
	if c.TokenValidity < 0 || c.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("durations must not be negative"))
	}
	for _, o := range c.CORSOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			errs = append(errs, fmt.Errorf("cors origin %q must be * or an http(s) origin", o))
		}
	}
	if c.PrintToken && c.JWTSecret == "" {
		errs = append(errs, errors.New("a jwt secret is required to print a token"))
	}
	return errors.Join(errs...)
}
