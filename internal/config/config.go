package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	PaperA4     = "a4"
	PaperLetter = "letter"
)

type Config struct {
	Export ExportConfig `yaml:"export,omitempty"`
	Log    LogConfig    `yaml:"log,omitempty"`
}

type ExportConfig struct {
	// Scale is the supersampling factor used when rasterizing the preview.
	Scale      float64 `yaml:"scale,omitempty"`
	Paper      string  `yaml:"paper,omitempty"`
	OutputDir  string  `yaml:"output_dir,omitempty"`
	ChromePath string  `yaml:"chrome_path,omitempty"`
}

type LogConfig struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// Load reads dataDir/config.yaml, applies environment overrides (including
// dataDir/.env) and fills in defaults. A missing file is not an error.
func Load(dataDir string) (*Config, error) {
	_ = godotenv.Load(filepath.Join(dataDir, ".env"))

	cfg := &Config{}
	path := filepath.Join(dataDir, "config.yaml")
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if p := os.Getenv("RESUMECRAFT_CHROME_PATH"); p != "" {
		cfg.Export.ChromePath = p
	} else if p := os.Getenv("CHROME_PATH"); p != "" && cfg.Export.ChromePath == "" {
		cfg.Export.ChromePath = p
	}
	if lvl := os.Getenv("RESUMECRAFT_LOG_LEVEL"); lvl != "" {
		cfg.Log.Level = lvl
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(dataDir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	path := filepath.Join(dataDir, "config.yaml")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) applyDefaults() {
	if c.Export.Scale == 0 {
		c.Export.Scale = 2
	}
	if c.Export.Paper == "" {
		c.Export.Paper = PaperA4
	}
	c.Export.Paper = strings.ToLower(c.Export.Paper)
	if c.Export.OutputDir == "" {
		c.Export.OutputDir = "."
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File == "" {
		c.Log.File = "resumecraft.log"
	}
}

func (c *Config) Validate() error {
	if c.Export.Scale <= 0 {
		return fmt.Errorf("export.scale must be positive, got %v", c.Export.Scale)
	}
	if c.Export.Paper != PaperA4 && c.Export.Paper != PaperLetter {
		return fmt.Errorf("export.paper must be a4 or letter, got %q", c.Export.Paper)
	}
	return nil
}
