package utils

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/jinzhu/configor"

	"github.com/projecteru2/memsize/types"
)

// LoadConfig load config from file, an empty path gives the defaults
func LoadConfig(configPath string) (types.Config, error) {
	config := types.Config{}
	files := []string{}
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return config, errors.Mark(errors.Wrapf(err, "config %s", configPath), types.ErrConfigNotFound)
		}
		files = append(files, configPath)
	}

	if err := configor.New(&configor.Config{Silent: true}).Load(&config, files...); err != nil {
		return config, errors.Mark(errors.Wrapf(err, "config %s", configPath), types.ErrInvalidConfig)
	}
	if config.MaxConcurrency <= 0 {
		return config, errors.Wrapf(types.ErrInvalidConfig, "max_concurrency must be positive, got %d", config.MaxConcurrency)
	}
	if config.MaxFileSize <= 0 {
		return config, errors.Wrapf(types.ErrInvalidConfig, "max_file_size must be positive, got %s", config.MaxFileSize)
	}
	return config, nil
}
