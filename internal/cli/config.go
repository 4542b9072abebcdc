package cli

import (
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Luxem4ik23/debgraph/pkg/apt"
	"github.com/Luxem4ik23/debgraph/pkg/errors"
)

// config holds the optional TOML configuration file contents.
type config struct {
	Index indexConfig `toml:"index"`
}

type indexConfig struct {
	Mirrors        []string `toml:"mirrors"`
	TimeoutSeconds int      `toml:"timeout_seconds"`
}

// defaultConfig returns the configuration used when no file is given.
func defaultConfig() *config {
	return &config{
		Index: indexConfig{
			Mirrors:        apt.DefaultMirrors,
			TimeoutSeconds: int(apt.DefaultTimeout / time.Second),
		},
	}
}

// loadConfig reads the TOML configuration at path. An empty path yields
// the defaults. Values missing from the file are filled from the defaults
// so a partial file never zeroes a setting.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var fileCfg config
	if _, err := toml.DecodeFile(path, &fileCfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to load config file %s", path)
	}
	if len(fileCfg.Index.Mirrors) > 0 {
		cfg.Index.Mirrors = fileCfg.Index.Mirrors
	}
	if fileCfg.Index.TimeoutSeconds > 0 {
		cfg.Index.TimeoutSeconds = fileCfg.Index.TimeoutSeconds
	}
	return cfg, nil
}

// timeout returns the index fetch timeout as a duration.
func (c *config) timeout() time.Duration {
	return time.Duration(c.Index.TimeoutSeconds) * time.Second
}
