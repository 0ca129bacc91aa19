// Package config loads runtime configuration for the admin client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c/-config or CONFIG_PATH.
//  3. Environment variables (ADMIN_*, LOG_LEVEL, LOG_FORMAT).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   API base URL, e.g. http://localhost:5000/api
//	-i int      online status check interval (seconds)
//	-t string   file holding the bearer token
//
// # File format
//
// Files are read with cleanenv; the extension selects the format. In YAML
// durations are strings such as "3s"; in JSON they are nanoseconds.
//
//	api_base_url: http://localhost:5000/api
//	request_timeout: 10s
//	online_check_interval: 5s
//	sticky_resources: [bank-accounts]
//	mirror:
//	  dsn: fallback.db
//	export:
//	  s3:
//	    bucket: admin-exports
package config
