// Package config loads the application configuration from a YAML file placed
// next to the executable. Every field has a default matching the muOS device
// layout, so running without a config file is the normal case.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up beside the executable when no --config flag
// is given.
const DefaultFileName = "randomizer-app.yaml"

type Config struct {
	Video struct {
		Fullscreen bool `yaml:"fullscreen"`
		TargetFPS  int  `yaml:"target_fps"`
	} `yaml:"video"`
	Input struct {
		// KeyboardFallback maps arrow keys/Enter/Backspace/Esc onto the
		// d-pad/A/B/Menu buttons. Development aid only; with it disabled a
		// missing gamepad is a startup failure.
		KeyboardFallback bool `yaml:"keyboard_fallback"`
		RepeatDelayMS    int  `yaml:"repeat_delay_ms"`
	} `yaml:"input"`
	ROMs struct {
		MountRoots []string `yaml:"mount_roots"`
		Extensions []string `yaml:"extensions"`
	} `yaml:"roms"`
	Randomizer struct {
		JavaBin    string `yaml:"java_bin"`
		JavaHeap   string `yaml:"java_heap"`
		Jar        string `yaml:"jar"`
		ConfigsDir string `yaml:"configs_dir"`
	} `yaml:"randomizer"`
	Logging struct {
		Level  string `yaml:"level"`
		Dir    string `yaml:"dir"`
		ToFile bool   `yaml:"to_file"`
	} `yaml:"logging"`
}

// New returns the built-in defaults.
func New() *Config {
	cfg := &Config{}
	cfg.Video.Fullscreen = true
	cfg.Video.TargetFPS = 60
	cfg.Input.RepeatDelayMS = 350
	cfg.ROMs.MountRoots = []string{"/mnt/mmc/ROMS", "/mnt/sdcard/ROMS"}
	cfg.ROMs.Extensions = []string{".gba", ".gbc", ".gb"}
	cfg.Randomizer.JavaBin = "/opt/java/bin/java"
	cfg.Randomizer.JavaHeap = "4608M"
	cfg.Randomizer.Jar = "3rd-party/PokeRandoZX.jar"
	cfg.Randomizer.ConfigsDir = "configs"
	cfg.Logging.Level = "info"
	cfg.Logging.Dir = "logs"
	cfg.Logging.ToFile = true
	return cfg
}

// Load reads the config file at path over the defaults. A missing file is not
// an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Video.TargetFPS <= 0 {
		return fmt.Errorf("video.target_fps must be positive, got %d", c.Video.TargetFPS)
	}
	if c.Input.RepeatDelayMS <= 0 {
		return fmt.Errorf("input.repeat_delay_ms must be positive, got %d", c.Input.RepeatDelayMS)
	}
	if len(c.ROMs.MountRoots) == 0 {
		return fmt.Errorf("roms.mount_roots must not be empty")
	}
	if len(c.ROMs.Extensions) == 0 {
		return fmt.Errorf("roms.extensions must not be empty")
	}
	for _, ext := range c.ROMs.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("roms.extensions entries must start with a dot, got %q", ext)
		}
	}
	return nil
}

// RepeatDelay converts the configured repeat delay to a duration.
func (c *Config) RepeatDelay() time.Duration {
	return time.Duration(c.Input.RepeatDelayMS) * time.Millisecond
}

// ResolvePath makes a config-relative path absolute by anchoring it at the
// executable's directory, mirroring how the device installation lays out the
// jar and settings files next to the binary.
func ResolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	exe, err := os.Executable()
	if err != nil {
		return p
	}
	return filepath.Join(filepath.Dir(exe), p)
}
