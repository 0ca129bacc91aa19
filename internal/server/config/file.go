package config

import (
	"fmt"

	"github.com/dmitrijs2005/marketadmin/internal/flagx"
	"github.com/ilyakaznacheev/cleanenv"
)

// parseFile overlays cfg with the file named by -c/-config or CONFIG_PATH
// and then with DEVAPI_* environment variables.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
		return nil
	}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return nil
}
