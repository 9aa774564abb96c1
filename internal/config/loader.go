package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadRun reads and validates a YAML run file.
func LoadRun(path string) (Run, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Run{}, &OpError{
			Op:   "config.load_run",
			Kind: KindNotFound,
			Path: path,
			Err:  fmt.Errorf("%w: %w", ErrNotFound, err),
		}
	}

	var dto YAMLRun
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Run{}, &OpError{
			Op:   "config.load_run",
			Kind: KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapRun(path, dto)
}
