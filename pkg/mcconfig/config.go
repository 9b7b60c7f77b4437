package mcconfig

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/craftget/craftget/pkg/mirror"
)

const DefaultPath = "craftget.toml"

// RuntimeConfig is the persisted launcher configuration. The
// install pipeline treats it as immutable for the duration of one
// run; only the CLI mutates and saves it.
type RuntimeConfig struct {
	MaxMemorySize int    `toml:"max_memory_size"`
	WindowWidth   int    `toml:"window_width"`
	WindowHeight  int    `toml:"window_height"`
	UserName      string `toml:"user_name"`
	UserType      string `toml:"user_type"`
	GameDir       string `toml:"game_dir"`
	GameVersion   string `toml:"game_version"`
	JavaPath      string `toml:"java_path"`

	Mirror mirror.Mirror `toml:"mirror"`
}

func Default() (*RuntimeConfig, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return &RuntimeConfig{
		MaxMemorySize: 5000,
		WindowWidth:   854,
		WindowHeight:  480,
		UserName:      "no_name",
		UserType:      "offline",
		GameDir:       cwd,
		GameVersion:   "no_game_version",
		JavaPath:      "/usr/bin/java",
		Mirror:        mirror.Official(),
	}, nil
}

func Load(path string) (*RuntimeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg RuntimeConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(
			"parse %s: %w", path, err,
		)
	}
	return &cfg, nil
}

func (c *RuntimeConfig) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
