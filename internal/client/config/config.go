package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/client/failover"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/logging"
)

// Config holds runtime settings of the admin client.
type Config struct {
	APIBaseURL          string        `yaml:"api_base_url"          json:"api_base_url"          env:"ADMIN_API_BASE_URL"`
	RequestTimeout      time.Duration `yaml:"request_timeout"       json:"request_timeout"       env:"ADMIN_REQUEST_TIMEOUT"`
	RetryAttempts       int           `yaml:"retry_attempts"        json:"retry_attempts"        env:"ADMIN_RETRY_ATTEMPTS"`
	RetryBackoff        time.Duration `yaml:"retry_backoff"         json:"retry_backoff"         env:"ADMIN_RETRY_BACKOFF"`
	OnlineCheckInterval time.Duration `yaml:"online_check_interval" json:"online_check_interval" env:"ADMIN_ONLINE_CHECK_INTERVAL"`

	// TokenFile holds the bearer token; TokenEnv names a variable that may
	// hold it instead.
	TokenFile string `yaml:"token_file" json:"token_file" env:"ADMIN_TOKEN_FILE"`
	TokenEnv  string `yaml:"token_env"  json:"token_env"  env:"ADMIN_TOKEN_ENV"`

	// StickyResources stay on local data after a failure until the backend
	// answers a health probe. LocalResources never call the backend.
	StickyResources []string `yaml:"sticky_resources" json:"sticky_resources" env:"ADMIN_STICKY_RESOURCES" env-separator:","`
	LocalResources  []string `yaml:"local_resources"  json:"local_resources"  env:"ADMIN_LOCAL_RESOURCES"  env-separator:","`

	Mirror MirrorConfig   `yaml:"mirror" json:"mirror"`
	Export ExportConfig   `yaml:"export" json:"export"`
	Log    logging.Config `yaml:"log"    json:"log"`
}

// MirrorConfig enables the durable copy of fallback data in SQLite or, for a
// postgres:// DSN, PostgreSQL. An empty DSN disables it; empty Resources
// mirrors every resource.
type MirrorConfig struct {
	DSN       string   `yaml:"dsn"       json:"dsn"       env:"ADMIN_MIRROR_DSN"`
	Resources []string `yaml:"resources" json:"resources" env:"ADMIN_MIRROR_RESOURCES" env-separator:","`
}

// ExportConfig selects where report exports are stored: an S3 bucket when
// S3.Bucket is set, a presigned upload URL when UploadURL is set, otherwise
// Dir.
type ExportConfig struct {
	Dir       string   `yaml:"dir"        json:"dir"        env:"ADMIN_EXPORT_DIR"`
	UploadURL string   `yaml:"upload_url" json:"upload_url" env:"ADMIN_EXPORT_UPLOAD_URL"`
	S3        S3Config `yaml:"s3"         json:"s3"`
}

type S3Config struct {
	Bucket          string `yaml:"bucket"            json:"bucket"            env:"ADMIN_S3_BUCKET"`
	Prefix          string `yaml:"prefix"            json:"prefix"            env:"ADMIN_S3_PREFIX"`
	Region          string `yaml:"region"            json:"region"            env:"ADMIN_S3_REGION"`
	Endpoint        string `yaml:"endpoint"          json:"endpoint"          env:"ADMIN_S3_ENDPOINT"`
	AccessKeyID     string `yaml:"access_key_id"     json:"access_key_id"     env:"ADMIN_S3_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" json:"secret_access_key" env:"ADMIN_S3_SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `yaml:"use_path_style"    json:"use_path_style"    env:"ADMIN_S3_USE_PATH_STYLE"`
	// PresignTTL makes the sink report a presigned download URL.
	PresignTTL time.Duration `yaml:"presign_ttl" json:"presign_ttl" env:"ADMIN_S3_PRESIGN_TTL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 10 * time.Second
	c.RetryAttempts = 1
	c.RetryBackoff = 500 * time.Millisecond
	c.OnlineCheckInterval = 5 * time.Second
	c.TokenEnv = "ADMIN_TOKEN"
	c.Export.Dir = "exports"
	c.Export.S3.Region = "us-east-1"
	c.Log = logging.Config{Level: "info", Format: "text"}
}

// LoadConfig builds a Config from defaults, then the optional config file
// and environment, then command-line flags. Later sources take precedence.
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

// Validate checks values that would otherwise fail later in obscure ways.
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("api_base_url %q must be an absolute http(s) url", c.APIBaseURL))
	}
	if c.RequestTimeout < 0 || c.RetryBackoff < 0 || c.OnlineCheckInterval < 0 || c.Export.S3.PresignTTL < 0 {
		errs = append(errs, errors.New("durations must not be negative"))
	}
	if c.RetryAttempts < 0 {
		errs = append(errs, errors.New("retry_attempts must not be negative"))
	}
	for _, list := range [][]string{c.StickyResources, c.LocalResources, c.Mirror.Resources} {
		for _, r := range list {
			if !slices.Contains(models.Resources, r) {
				errs = append(errs, fmt.Errorf("unknown resource %q", r))
			}
		}
	}
	return errors.Join(errs...)
}

// Policies maps the configured resources to their failover policy. Local
// wins over sticky when a resource is listed twice.
func (c *Config) Policies() map[string]failover.Policy {
	out := make(map[string]failover.Policy, len(c.StickyResources)+len(c.LocalResources))
	for _, r := range c.StickyResources {
		out[r] = failover.PolicySticky
	}
	for _, r := range c.LocalResources {
		out[r] = failover.PolicyLocal
	}
	return out
}
